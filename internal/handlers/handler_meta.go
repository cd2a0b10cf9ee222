package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
)

// countryRegions backs the signup form's country/region pickers.
var countryRegions = map[string][]string{
	"United States": {
		"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado", "Connecticut",
		"Delaware", "Florida", "Georgia", "Hawaii", "Idaho", "Illinois", "Indiana", "Iowa",
		"Kansas", "Kentucky", "Louisiana", "Maine", "Maryland", "Massachusetts", "Michigan",
		"Minnesota", "Mississippi", "Missouri", "Montana", "Nebraska", "Nevada", "New Hampshire",
		"New Jersey", "New Mexico", "New York", "North Carolina", "North Dakota", "Ohio", "Oklahoma",
		"Oregon", "Pennsylvania", "Rhode Island", "South Carolina", "South Dakota", "Tennessee",
		"Texas", "Utah", "Vermont", "Virginia", "Washington", "West Virginia", "Wisconsin", "Wyoming",
	},
	"India": {
		"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh", "Goa",
		"Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand", "Karnataka", "Kerala",
		"Madhya Pradesh", "Maharashtra", "Manipur", "Meghalaya", "Mizoram", "Nagaland",
		"Odisha", "Punjab", "Rajasthan", "Sikkim", "Tamil Nadu", "Telangana", "Tripura",
		"Uttar Pradesh", "Uttarakhand", "West Bengal",
	},
	"China": {
		"Anhui", "Beijing", "Chongqing", "Fujian", "Gansu", "Guangdong", "Guangxi",
		"Guizhou", "Hainan", "Hebei", "Heilongjiang", "Henan", "Hubei", "Hunan",
		"Inner Mongolia", "Jiangsu", "Jiangxi", "Jilin", "Liaoning", "Ningxia",
		"Qinghai", "Shaanxi", "Shandong", "Shanghai", "Shanxi", "Sichuan", "Tianjin",
		"Tibet", "Xinjiang", "Yunnan", "Zhejiang",
	},
}

func registerMetaRoutes(rg *gin.Engine) {
	meta := rg.Group("/api/meta")
	{
		meta.GET("/countries", listCountries)
		meta.GET("/countries/:country/regions", listRegions)
	}
}

// listCountries godoc
// @Summary List supported countries
// @Tags meta
// @Produce json
// @Success 200 {array} string
// @Router /meta/countries [get]
func listCountries(c *gin.Context) {
	names := make([]string, 0, len(countryRegions))
	for name := range countryRegions {
		names = append(names, name)
	}
	sort.Strings(names)
	c.JSON(http.StatusOK, names)
}

// listRegions godoc
// @Summary List regions of a country
// @Tags meta
// @Produce json
// @Param country path string true "Country name"
// @Success 200 {array} string
// @Failure 404 {object} ErrorResponse
// @Router /meta/countries/{country}/regions [get]
func listRegions(c *gin.Context) {
	regions, ok := countryRegions[c.Param("country")]
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Unknown country"})
		return
	}
	c.JSON(http.StatusOK, regions)
}
