package domain

// WeatherReport is the normalized current-weather snapshot served to clients.
// Temperatures are metric and rounded to the nearest degree.
type WeatherReport struct {
	Temperature int    `json:"temperature"`
	FeelsLike   int    `json:"feelsLike"`
	Humidity    int    `json:"humidity"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}
