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

const bookingColumns = `id, customer_id, service_area, status,
		professional_id, professional_name, professional_photo,
		customer_latitude, customer_longitude, created_at, updated_at`

// BookingRepo implements the booking repository interface
type BookingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewBookingRepo creates a new booking repository
func NewBookingRepo(cfg *models.Config, db *sqlx.DB) *BookingRepo {
	return &BookingRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateBooking inserts a new booking record
func (r *BookingRepo) CreateBooking(ctx context.Context, booking *models.Booking) error {
	now := time.Now()
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = now
	}
	booking.UpdatedAt = now
	if booking.Status == "" {
		booking.Status = models.BookingStatusPending
	}

	query := `
		INSERT INTO bookings (
			id, customer_id, service_area, status,
			professional_id, professional_name, professional_photo,
			customer_latitude, customer_longitude, created_at, updated_at
		) VALUES (
			:id, :customer_id, :service_area, :status,
			:professional_id, :professional_name, :professional_photo,
			:customer_latitude, :customer_longitude, :created_at, :updated_at
		)
	`
	_, err := r.db.NamedExecContext(ctx, query, booking.ToDTO())
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	return nil
}

// GetBooking retrieves a booking by id, returning nil when it does not exist
func (r *BookingRepo) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var dto models.BookingDTO
	err := r.db.GetContext(ctx, &dto, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return dto.ToBooking(), nil
}

// AssignIfUnassigned transitions the booking PENDING -> PROFESSIONAL_ASSIGNED
// and caches the professional's display fields, only if the booking is still
// unassigned at write time. A nil booking means the conditional write matched
// no row: another caller already assigned it and this attempt must not retry.
func (r *BookingRepo) AssignIfUnassigned(ctx context.Context, bookingID string, prof *models.ProfessionalSummary) (*models.Booking, error) {
	query := `
		UPDATE bookings
		SET professional_id = $1,
			professional_name = $2,
			professional_photo = $3,
			status = $4,
			updated_at = $5
		WHERE id = $6
			AND status = $7
			AND professional_id IS NULL
		RETURNING ` + bookingColumns

	var dto models.BookingDTO
	err := r.db.QueryRowxContext(ctx, query,
		prof.ID, prof.FullName, prof.PhotoURL,
		models.BookingStatusProfessionalAssigned, time.Now(),
		bookingID, models.BookingStatusPending,
	).StructScan(&dto)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to assign booking: %w", err)
	}

	return dto.ToBooking(), nil
}

// ClaimOldestPending atomically assigns the professional to the oldest
// PENDING unassigned booking in any of the given service areas. The
// sub-select with SKIP LOCKED plus the repeated unassigned predicate make
// the claim safe against concurrent assignment from any path.
func (r *BookingRepo) ClaimOldestPending(ctx context.Context, areas []string, prof *models.ProfessionalSummary) (*models.Booking, error) {
	query := `
		UPDATE bookings
		SET professional_id = $1,
			professional_name = $2,
			professional_photo = $3,
			status = $4,
			updated_at = $5
		WHERE id = (
			SELECT id FROM bookings
			WHERE status = $6
				AND professional_id IS NULL
				AND service_area = ANY($7)
			ORDER BY created_at ASC
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
			AND professional_id IS NULL
		RETURNING ` + bookingColumns

	var dto models.BookingDTO
	err := r.db.QueryRowxContext(ctx, query,
		prof.ID, prof.FullName, prof.PhotoURL,
		models.BookingStatusProfessionalAssigned, time.Now(),
		models.BookingStatusPending, pq.Array(areas),
	).StructScan(&dto)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to claim pending booking: %w", err)
	}

	return dto.ToBooking(), nil
}

// UpdateBookingStatus unconditionally updates a booking's status
func (r *BookingRepo) UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) error {
	query := `UPDATE bookings SET status = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("booking %s not found", id)
	}

	return nil
}
