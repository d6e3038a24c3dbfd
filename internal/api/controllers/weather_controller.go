package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roteiro/internal/services"
	"roteiro/pkg/utils"
)

type WeatherController struct {
	weatherService services.WeatherServiceInterface
}

func NewWeatherController(weatherService services.WeatherServiceInterface) *WeatherController {
	return &WeatherController{weatherService: weatherService}
}

func (ct *WeatherController) ByCity(c *gin.Context) {
	city := c.Param("city")
	if city == "" {
		utils.RespondError(c, http.StatusBadRequest, "City is required")
		return
	}
	utils.RespondSuccess(c, ct.weatherService.Lookup(city), "Weather fetched successfully")
}
