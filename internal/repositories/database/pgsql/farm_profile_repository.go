package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/agrolink/agrolink-backend/internal/apperrors"
	"github.com/agrolink/agrolink-backend/internal/core/domain"
	portsrepo "github.com/agrolink/agrolink-backend/internal/core/ports/repositories"
	"github.com/agrolink/agrolink-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFarmProfileRepository struct {
	BaseRepository
}

func newPgxFarmProfileRepository(db *pgxpool.Pool) portsrepo.FarmProfileRepository {
	return &PgxFarmProfileRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxFarmProfileRepository implements portsrepo.FarmProfileRepository
var _ portsrepo.FarmProfileRepository = (*PgxFarmProfileRepository)(nil)

func toModelFarmProfile(d domain.FarmProfile) models.FarmProfile {
	secondary := make([]string, len(d.SecondaryCrops))
	for i, c := range d.SecondaryCrops {
		secondary[i] = string(c)
	}
	return models.FarmProfile{
		ProfileID:      d.ProfileID,
		UserID:         d.UserID,
		FarmName:       d.FarmName,
		FarmSize:       d.FarmSize,
		SizeUnit:       string(d.SizeUnit),
		PrimaryCrop:    string(d.PrimaryCrop),
		SecondaryCrops: secondary,
		SoilType:       string(d.SoilType),
		IrrigationType: string(d.IrrigationType),
		LocationLat:    d.Location.Lat,
		LocationLng:    d.Location.Lng,
		CreatedAt:      d.CreatedAt,
		LastUpdatedAt:  d.LastUpdatedAt,
	}
}

func toDomainFarmProfile(m models.FarmProfile) domain.FarmProfile {
	var secondary []domain.CropType
	if len(m.SecondaryCrops) > 0 {
		secondary = make([]domain.CropType, len(m.SecondaryCrops))
		for i, c := range m.SecondaryCrops {
			secondary[i] = domain.CropType(c)
		}
	}
	return domain.FarmProfile{
		ProfileID:      m.ProfileID,
		UserID:         m.UserID,
		FarmName:       m.FarmName,
		FarmSize:       m.FarmSize,
		SizeUnit:       domain.SizeUnit(m.SizeUnit),
		PrimaryCrop:    domain.CropType(m.PrimaryCrop),
		SecondaryCrops: secondary,
		SoilType:       domain.SoilType(m.SoilType),
		IrrigationType: domain.IrrigationType(m.IrrigationType),
		Location:       domain.Location{Lat: m.LocationLat, Lng: m.LocationLng},
		CreatedAt:      m.CreatedAt,
		LastUpdatedAt:  m.LastUpdatedAt,
	}
}

const farmProfileColumns = `profile_id, user_id, farm_name, farm_size, size_unit,
		primary_crop, secondary_crops, soil_type, irrigation_type,
		location_lat, location_lng, created_at, last_updated_at`

func scanFarmProfile(row pgx.Row) (models.FarmProfile, error) {
	var m models.FarmProfile
	err := row.Scan(
		&m.ProfileID,
		&m.UserID,
		&m.FarmName,
		&m.FarmSize,
		&m.SizeUnit,
		&m.PrimaryCrop,
		&m.SecondaryCrops,
		&m.SoilType,
		&m.IrrigationType,
		&m.LocationLat,
		&m.LocationLng,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// CreateProfileAndMarkComplete inserts the profile and flips the user's
// completion flag plus profile reference in a single transaction, so no
// reader can observe one write without the other.
func (r *PgxFarmProfileRepository) CreateProfileAndMarkComplete(ctx context.Context, profile domain.FarmProfile) error {
	m := toModelFarmProfile(profile)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	insertQuery := `
        INSERT INTO farm_profiles (profile_id, user_id, farm_name, farm_size, size_unit,
            primary_crop, secondary_crops, soil_type, irrigation_type,
            location_lat, location_lng, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
    `
	_, err = tx.Exec(ctx, insertQuery,
		m.ProfileID,
		m.UserID,
		m.FarmName,
		m.FarmSize,
		m.SizeUnit,
		m.PrimaryCrop,
		m.SecondaryCrops,
		m.SoilType,
		m.IrrigationType,
		m.LocationLat,
		m.LocationLng,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to insert farm profile: %w", err)
	}

	updateQuery := `
        UPDATE users
        SET has_completed_profile = TRUE, farm_profile_id = $1, last_updated_at = $2
        WHERE user_id = $3;
    `
	cmdTag, err := tx.Exec(ctx, updateQuery, m.ProfileID, m.LastUpdatedAt, m.UserID)
	if err != nil {
		return fmt.Errorf("failed to mark user profile complete: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

func (r *PgxFarmProfileRepository) FindProfileByUserID(ctx context.Context, userID string) (*domain.FarmProfile, error) {
	query := `SELECT ` + farmProfileColumns + ` FROM farm_profiles WHERE user_id = $1;`
	m, err := scanFarmProfile(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find farm profile for user %s: %w", userID, err)
	}

	d := toDomainFarmProfile(m)
	return &d, nil
}

func (r *PgxFarmProfileRepository) UpdateProfile(ctx context.Context, profile domain.FarmProfile) error {
	m := toModelFarmProfile(profile)
	query := `
        UPDATE farm_profiles
        SET farm_name = $1, farm_size = $2, size_unit = $3, primary_crop = $4,
            secondary_crops = $5, soil_type = $6, irrigation_type = $7,
            location_lat = $8, location_lng = $9, last_updated_at = $10
        WHERE user_id = $11;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.FarmName,
		m.FarmSize,
		m.SizeUnit,
		m.PrimaryCrop,
		m.SecondaryCrops,
		m.SoilType,
		m.IrrigationType,
		m.LocationLat,
		m.LocationLng,
		m.LastUpdatedAt,
		m.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update farm profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
