package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/eshaatri/homewash-dispatch/internal/pkg/models"
)

const professionalColumns = `id, fullname, photo_url, role, service_area,
		area_ids, last_latitude, last_longitude, is_suspended`

// ProfessionalRepo implements the professional repository interface
type ProfessionalRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewProfessionalRepo creates a new professional repository
func NewProfessionalRepo(cfg *models.Config, db *sqlx.DB) *ProfessionalRepo {
	return &ProfessionalRepo{
		cfg: cfg,
		db:  db,
	}
}

// GetProfessional retrieves a professional by id, returning nil when absent
func (r *ProfessionalRepo) GetProfessional(ctx context.Context, id string) (*models.Professional, error) {
	query := `SELECT ` + professionalColumns + ` FROM users WHERE id = $1 AND role = $2`

	var prof models.Professional
	err := r.db.GetContext(ctx, &prof, query, id, models.RoleProfessional)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get professional: %w", err)
	}

	return &prof, nil
}

// GetActiveProfessionals retrieves the non-suspended field professionals
// among the given ids
func (r *ProfessionalRepo) GetActiveProfessionals(ctx context.Context, ids []string) ([]*models.Professional, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT ` + professionalColumns + `
		FROM users
		WHERE id = ANY($1)
			AND role = $2
			AND is_suspended = FALSE
	`

	var pros []*models.Professional
	err := r.db.SelectContext(ctx, &pros, query, pq.Array(ids), models.RoleProfessional)
	if err != nil {
		return nil, fmt.Errorf("failed to get professionals: %w", err)
	}

	return pros, nil
}

// UpdateLastKnownLocation persists the last reported coordinate onto the
// professional record
func (r *ProfessionalRepo) UpdateLastKnownLocation(ctx context.Context, id string, latitude, longitude float64) error {
	query := `
		UPDATE users
		SET last_latitude = $1, last_longitude = $2, last_location_at = $3
		WHERE id = $4
	`

	_, err := r.db.ExecContext(ctx, query, latitude, longitude, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update last known location: %w", err)
	}

	return nil
}
