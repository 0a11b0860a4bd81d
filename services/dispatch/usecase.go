package dispatch

import (
	"context"

	"github.com/eshaatri/homewash-dispatch/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/eshaatri/homewash-dispatch/services/dispatch DispatchUC

// DispatchUC defines the dispatch usecase operations
type DispatchUC interface {
	// CreateBooking inserts a PENDING booking and immediately attempts to
	// assign it to the nearest eligible reachable professional
	CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error)

	// AssignNewBooking matches a booking to the nearest eligible reachable
	// professional. Returns nil when no assignment was made.
	AssignNewBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error)

	// AssignPendingToProfessional claims the oldest pending booking in the
	// professional's service areas. Returns nil when nothing was claimed.
	AssignPendingToProfessional(ctx context.Context, professionalID string) (*models.Booking, error)

	// GetBooking returns a booking by id, or nil when absent
	GetBooking(ctx context.Context, id string) (*models.Booking, error)

	// UpdateBookingStatus unconditionally updates a booking's status
	UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) error

	// Identify resolves the professional a channel session wants to bind to,
	// or nil when no such professional exists
	Identify(ctx context.Context, professionalID string) (*models.Professional, error)

	// SetAvailability applies a reachable/unreachable transition, re-checking
	// suspension, and claims a pending booking when going reachable
	SetAvailability(ctx context.Context, professionalID string, available bool) (*models.AvailabilityResult, error)

	// RecordLocation stores a reported position in the live location store
	// and persists it best-effort onto the professional record
	RecordLocation(ctx context.Context, professionalID string, latitude, longitude float64)

	// Disconnect clears the professional's presence after its channel closed
	Disconnect(ctx context.Context, professionalID string)

	// Stats returns live store counts for reporting tooling
	Stats() *models.DispatchStats

	// NearbyProfessionals queries the geo mirror for reachable professionals
	// around a point
	NearbyProfessionals(ctx context.Context, latitude, longitude, radiusKm float64) ([]*models.NearbyProfessional, error)
}
