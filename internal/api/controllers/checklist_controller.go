package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roteiro/internal/models/request_models"
	"roteiro/internal/services"
	"roteiro/pkg/utils"
)

type ChecklistController struct {
	checklistService services.ChecklistServiceInterface
}

func NewChecklistController(checklistService services.ChecklistServiceInterface) *ChecklistController {
	return &ChecklistController{checklistService: checklistService}
}

func (ct *ChecklistController) List(c *gin.Context) {
	resp, err := ct.checklistService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Checklist fetched successfully")
}

func (ct *ChecklistController) Create(c *gin.Context) {
	var req request_models.CreateChecklistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := ct.checklistService.Create(c.Request.Context(), currentUser(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, item, "Checklist item created successfully")
}

func (ct *ChecklistController) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Item ID is required")
		return
	}

	var req request_models.UpdateChecklistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := ct.checklistService.Update(c.Request.Context(), currentUser(c), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, item, "Checklist item updated successfully")
}

func (ct *ChecklistController) Toggle(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Item ID is required")
		return
	}

	item, err := ct.checklistService.Toggle(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, item, "Checklist item toggled successfully")
}

func (ct *ChecklistController) Remove(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Item ID is required")
		return
	}

	if err := ct.checklistService.Remove(c.Request.Context(), currentUser(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Checklist item removed successfully")
}
