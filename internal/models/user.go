package models

import (
	"database/sql"
	"time"
)

// User is the persistence shape of a farmer account.
type User struct {
	UserID              string         `db:"user_id"`
	Name                string         `db:"name"`
	Email               string         `db:"email"`
	PasswordHash        string         `db:"password_hash"`
	Country             string         `db:"country"`
	Region              string         `db:"region"`
	HasCompletedProfile bool           `db:"has_completed_profile"`
	FarmProfileID       sql.NullString `db:"farm_profile_id"`
	AuthProvider        sql.NullString `db:"auth_provider"`
	ProviderUserID      sql.NullString `db:"provider_user_id"`
	CreatedAt           time.Time      `db:"created_at"`
	LastUpdatedAt       time.Time      `db:"last_updated_at"`
}
