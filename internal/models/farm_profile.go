package models

import "time"

// FarmProfile is the persistence shape of a farm profile.
// SecondaryCrops maps to a text[] column via pgx.
type FarmProfile struct {
	ProfileID      string    `db:"profile_id"`
	UserID         string    `db:"user_id"`
	FarmName       string    `db:"farm_name"`
	FarmSize       float64   `db:"farm_size"`
	SizeUnit       string    `db:"size_unit"`
	PrimaryCrop    string    `db:"primary_crop"`
	SecondaryCrops []string  `db:"secondary_crops"`
	SoilType       string    `db:"soil_type"`
	IrrigationType string    `db:"irrigation_type"`
	LocationLat    float64   `db:"location_lat"`
	LocationLng    float64   `db:"location_lng"`
	CreatedAt      time.Time `db:"created_at"`
	LastUpdatedAt  time.Time `db:"last_updated_at"`
}
