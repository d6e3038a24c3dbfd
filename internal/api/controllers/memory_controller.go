package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roteiro/internal/models/request_models"
	"roteiro/internal/services"
	"roteiro/pkg/utils"
)

type MemoryController struct {
	memoryService services.MemoryServiceInterface
}

func NewMemoryController(memoryService services.MemoryServiceInterface) *MemoryController {
	return &MemoryController{memoryService: memoryService}
}

func (ct *MemoryController) List(c *gin.Context) {
	entries, err := ct.memoryService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, entries, "Memories fetched successfully")
}

func (ct *MemoryController) Create(c *gin.Context) {
	var req request_models.CreateMemoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	entry, err := ct.memoryService.Create(c.Request.Context(), currentUser(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, entry, "Memory recorded successfully")
}

func (ct *MemoryController) Remove(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Memory ID is required")
		return
	}

	if err := ct.memoryService.Remove(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Memory removed successfully")
}
