package response_models

// WeatherReport is the narrow weather-collaborator contract. Values here
// are simulated; clients treat absence as a loading state, never an error.
type WeatherReport struct {
	City               string `json:"city"`
	TemperatureCelsius int    `json:"temperature_celsius"`
	Condition          string `json:"condition"`
	IconID             string `json:"icon_id"`
}
