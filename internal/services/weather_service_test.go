package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"roteiro/internal/services"
)

func TestWeatherKnownCity(t *testing.T) {
	svc := services.NewWeatherService()

	report := svc.Lookup("London")
	assert.Equal(t, "London", report.City)
	assert.Equal(t, 14, report.TemperatureCelsius)
	assert.Equal(t, "Drizzle", report.Condition)
}

func TestWeatherUnknownCityFallsBack(t *testing.T) {
	svc := services.NewWeatherService()

	report := svc.Lookup("Atlantis")
	assert.Equal(t, "Atlantis", report.City)
	assert.NotZero(t, report.TemperatureCelsius)
	assert.NotEmpty(t, report.Condition)
}
