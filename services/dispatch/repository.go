package dispatch

import (
	"context"

	"github.com/eshaatri/homewash-dispatch/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/eshaatri/homewash-dispatch/services/dispatch BookingRepo,ProfessionalRepo,GeoRepo

// BookingRepo defines the interface for booking storage operations
type BookingRepo interface {
	// CreateBooking inserts a new booking record
	CreateBooking(ctx context.Context, booking *models.Booking) error

	// GetBooking returns a booking by id, or nil when it does not exist
	GetBooking(ctx context.Context, id string) (*models.Booking, error)

	// AssignIfUnassigned assigns the professional to the booking only if the
	// booking is still PENDING and unassigned at write time. Returns the
	// updated booking, or nil when the conditional write matched no row
	// (another caller won the race).
	AssignIfUnassigned(ctx context.Context, bookingID string, prof *models.ProfessionalSummary) (*models.Booking, error)

	// ClaimOldestPending atomically assigns the professional to the oldest
	// PENDING unassigned booking whose service area is in the given set.
	// Returns the claimed booking, or nil when no booking matched.
	ClaimOldestPending(ctx context.Context, areas []string, prof *models.ProfessionalSummary) (*models.Booking, error)

	// UpdateBookingStatus unconditionally updates a booking's status
	UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) error
}

// ProfessionalRepo defines the interface for professional storage operations
type ProfessionalRepo interface {
	// GetProfessional returns a professional by id, or nil when absent
	GetProfessional(ctx context.Context, id string) (*models.Professional, error)

	// GetActiveProfessionals returns the non-suspended field professionals
	// among the given ids
	GetActiveProfessionals(ctx context.Context, ids []string) ([]*models.Professional, error)

	// UpdateLastKnownLocation persists the last reported coordinate onto the
	// professional record
	UpdateLastKnownLocation(ctx context.Context, id string, latitude, longitude float64) error
}

// GeoRepo maintains the Redis geo mirror of reachable professional positions
// consumed by ops tooling. Dispatch decisions never read from it.
type GeoRepo interface {
	UpsertPosition(ctx context.Context, id string, latitude, longitude float64) error
	RemovePosition(ctx context.Context, id string) error
	Nearby(ctx context.Context, latitude, longitude, radiusKm float64) ([]*models.NearbyProfessional, error)
}
