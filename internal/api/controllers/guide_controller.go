package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"roteiro/internal/services"
	"roteiro/pkg/utils"
)

type GuideController struct {
	guideService services.GuideServiceInterface
}

func NewGuideController(guideService services.GuideServiceInterface) *GuideController {
	return &GuideController{guideService: guideService}
}

// Destinations filters the catalog by optional city, search and visited
// query parameters.
func (ct *GuideController) Destinations(c *gin.Context) {
	filter := services.GuideFilter{
		City:   c.Query("city"),
		Search: c.Query("search"),
	}
	if raw := c.Query("visited"); raw != "" {
		visited, err := strconv.ParseBool(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "visited must be true or false")
			return
		}
		filter.Visited = &visited
	}

	destinations, err := ct.guideService.Destinations(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, destinations, "Destinations fetched successfully")
}

func (ct *GuideController) Cities(c *gin.Context) {
	utils.RespondSuccess(c, ct.guideService.Cities(), "Cities fetched successfully")
}

func (ct *GuideController) ToggleVisited(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination ID is required")
		return
	}

	visited, err := ct.guideService.ToggleVisited(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"id": id, "visited": visited}, "Visited flag toggled successfully")
}
