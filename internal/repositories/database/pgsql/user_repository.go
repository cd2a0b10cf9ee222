package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/agrolink/agrolink-backend/internal/apperrors"
	"github.com/agrolink/agrolink-backend/internal/core/domain"
	portsrepo "github.com/agrolink/agrolink-backend/internal/core/ports/repositories"
	"github.com/agrolink/agrolink-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepository
var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

func toModelUser(d domain.User) models.User {
	m := models.User{
		UserID:              d.UserID,
		Name:                d.Name,
		Email:               d.Email,
		PasswordHash:        d.PasswordHash,
		Country:             d.Country,
		Region:              d.Region,
		HasCompletedProfile: d.HasCompletedProfile,
		CreatedAt:           d.CreatedAt,
		LastUpdatedAt:       d.LastUpdatedAt,
	}
	if d.FarmProfileID != nil {
		m.FarmProfileID = sql.NullString{String: *d.FarmProfileID, Valid: true}
	}
	if d.AuthProvider != "" {
		m.AuthProvider = sql.NullString{String: d.AuthProvider, Valid: true}
	}
	if d.ProviderUserID != "" {
		m.ProviderUserID = sql.NullString{String: d.ProviderUserID, Valid: true}
	}
	return m
}

func toDomainUser(m models.User) domain.User {
	d := domain.User{
		UserID:              m.UserID,
		Name:                m.Name,
		Email:               m.Email,
		PasswordHash:        m.PasswordHash,
		Country:             m.Country,
		Region:              m.Region,
		HasCompletedProfile: m.HasCompletedProfile,
		CreatedAt:           m.CreatedAt,
		LastUpdatedAt:       m.LastUpdatedAt,
	}
	if m.FarmProfileID.Valid {
		id := m.FarmProfileID.String
		d.FarmProfileID = &id
	}
	if m.AuthProvider.Valid {
		d.AuthProvider = m.AuthProvider.String
	}
	if m.ProviderUserID.Valid {
		d.ProviderUserID = m.ProviderUserID.String
	}
	return d
}

const userColumns = `user_id, name, email, password_hash, country, region,
		has_completed_profile, farm_profile_id, auth_provider, provider_user_id,
		created_at, last_updated_at`

func scanUser(row pgx.Row) (models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Name,
		&m.Email,
		&m.PasswordHash,
		&m.Country,
		&m.Region,
		&m.HasCompletedProfile,
		&m.FarmProfileID,
		&m.AuthProvider,
		&m.ProviderUserID,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// CreateUser inserts a new user. The unique index on lower(email) makes this
// create-if-absent: a duplicate email surfaces as apperrors.ErrDuplicate.
func (r *PgxUserRepository) CreateUser(ctx context.Context, user domain.User) error {
	m := toModelUser(user)
	query := `
        INSERT INTO users (user_id, name, email, password_hash, country, region,
            has_completed_profile, farm_profile_id, auth_provider, provider_user_id,
            created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.Name,
		m.Email,
		m.PasswordHash,
		m.Country,
		m.Region,
		m.HasCompletedProfile,
		m.FarmProfileID,
		m.AuthProvider,
		m.ProviderUserID,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}

	d := toDomainUser(m)
	return &d, nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1);`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	d := toDomainUser(m)
	return &d, nil
}

func (r *PgxUserRepository) UpdatePasswordHash(ctx context.Context, userID string, passwordHash string) error {
	query := `
        UPDATE users
        SET password_hash = $1, last_updated_at = now()
        WHERE user_id = $2;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, passwordHash, userID)
	if err != nil {
		return fmt.Errorf("failed to update password hash: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
