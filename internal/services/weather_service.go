package services

import "roteiro/internal/models/response_models"

// WeatherServiceInterface is the narrow weather-collaborator contract.
// This implementation simulates a provider with a fixed per-city table;
// swapping in a real provider only touches this package.
type WeatherServiceInterface interface {
	Lookup(city string) response_models.WeatherReport
}

type WeatherService struct{}

func NewWeatherService() WeatherServiceInterface {
	return &WeatherService{}
}

var weatherTable = map[string]response_models.WeatherReport{
	"Paris":    {TemperatureCelsius: 18, Condition: "Partly cloudy", IconID: "fa-cloud-sun"},
	"London":   {TemperatureCelsius: 14, Condition: "Drizzle", IconID: "fa-cloud-rain"},
	"Rome":     {TemperatureCelsius: 24, Condition: "Clear sky", IconID: "fa-sun"},
	"Milan":    {TemperatureCelsius: 21, Condition: "Overcast", IconID: "fa-cloud"},
	"Venice":   {TemperatureCelsius: 20, Condition: "Clear sky", IconID: "fa-sun"},
	"Brussels": {TemperatureCelsius: 16, Condition: "Drizzle", IconID: "fa-cloud-showers-heavy"},
}

func (s *WeatherService) Lookup(city string) response_models.WeatherReport {
	report, ok := weatherTable[city]
	if !ok {
		report = weatherTable["Paris"]
		report.City = city
		return report
	}
	report.City = city
	return report
}
