package domain

import "time"

// SizeUnit is the unit a farm's size is declared in.
type SizeUnit string

const (
	SizeUnitAcres    SizeUnit = "acres"
	SizeUnitHectares SizeUnit = "hectares"
)

// CropType enumerates the crops a farm can grow.
type CropType string

const (
	CropRice       CropType = "rice"
	CropWheat      CropType = "wheat"
	CropCorn       CropType = "corn"
	CropSoybeans   CropType = "soybeans"
	CropCotton     CropType = "cotton"
	CropSugarcane  CropType = "sugarcane"
	CropVegetables CropType = "vegetables"
	CropFruits     CropType = "fruits"
	CropOther      CropType = "other"
)

// SoilType enumerates recognized soil classifications.
type SoilType string

const (
	SoilClay   SoilType = "clay"
	SoilSandy  SoilType = "sandy"
	SoilLoamy  SoilType = "loamy"
	SoilSilt   SoilType = "silt"
	SoilPeat   SoilType = "peat"
	SoilChalky SoilType = "chalky"
	SoilOther  SoilType = "other"
)

// IrrigationType enumerates irrigation systems.
type IrrigationType string

const (
	IrrigationDrip        IrrigationType = "drip"
	IrrigationSprinkler   IrrigationType = "sprinkler"
	IrrigationSurface     IrrigationType = "surface"
	IrrigationCenterPivot IrrigationType = "center-pivot"
	IrrigationSubsurface  IrrigationType = "subsurface"
	IrrigationManual      IrrigationType = "manual"
	IrrigationNone        IrrigationType = "none"
	IrrigationOther       IrrigationType = "other"
)

// Location is a WGS84 coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// FarmProfile is the one-to-one farm record attached to a user.
type FarmProfile struct {
	ProfileID      string         `json:"profileID"`
	UserID         string         `json:"userID"`
	FarmName       string         `json:"farmName"`
	FarmSize       float64        `json:"farmSize"`
	SizeUnit       SizeUnit       `json:"sizeUnit"`
	PrimaryCrop    CropType       `json:"primaryCrop"`
	SecondaryCrops []CropType     `json:"secondaryCrops,omitempty"`
	SoilType       SoilType       `json:"soilType"`
	IrrigationType IrrigationType `json:"irrigationType"`
	Location       Location       `json:"location"`
	CreatedAt      time.Time      `json:"createdAt"`
	LastUpdatedAt  time.Time      `json:"lastUpdatedAt"`
}
