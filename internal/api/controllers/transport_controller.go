package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"roteiro/internal/models/request_models"
	"roteiro/internal/services"
	"roteiro/pkg/utils"
)

type TransportController struct {
	transportService services.TransportServiceInterface
}

func NewTransportController(transportService services.TransportServiceInterface) *TransportController {
	return &TransportController{transportService: transportService}
}

func (ct *TransportController) List(c *gin.Context) {
	legs, err := ct.transportService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, legs, "Transport legs fetched successfully")
}

func (ct *TransportController) Upcoming(c *gin.Context) {
	leg, err := ct.transportService.Upcoming(c.Request.Context(), time.Now())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if leg == nil {
		utils.RespondError(c, http.StatusNotFound, "No upcoming transport leg")
		return
	}
	utils.RespondSuccess(c, leg, "Upcoming transport leg fetched successfully")
}

func (ct *TransportController) Create(c *gin.Context) {
	var req request_models.TransportLegRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	leg, err := ct.transportService.Create(c.Request.Context(), currentUser(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, leg, "Transport leg created successfully")
}

func (ct *TransportController) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Leg ID is required")
		return
	}

	var req request_models.TransportLegRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	leg, err := ct.transportService.Update(c.Request.Context(), currentUser(c), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, leg, "Transport leg updated successfully")
}

func (ct *TransportController) Remove(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Leg ID is required")
		return
	}

	if err := ct.transportService.Remove(c.Request.Context(), currentUser(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Transport leg removed successfully")
}
