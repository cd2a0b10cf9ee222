package dto

// WeatherQuery binds the coordinates of a weather lookup.
type WeatherQuery struct {
	Lat *float64 `form:"lat" binding:"required,gte=-90,lte=90"`
	Lon *float64 `form:"lon" binding:"required,gte=-180,lte=180"`
}
