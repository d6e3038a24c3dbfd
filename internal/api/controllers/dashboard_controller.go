package controllers

import (
	"github.com/gin-gonic/gin"

	"roteiro/internal/services"
	"roteiro/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

func (ct *DashboardController) Summary(c *gin.Context) {
	summary, err := ct.dashboardService.Summary(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, summary, "Trip summary fetched successfully")
}
