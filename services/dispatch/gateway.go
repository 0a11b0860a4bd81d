package dispatch

import (
	"context"

	"github.com/eshaatri/homewash-dispatch/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/eshaatri/homewash-dispatch/services/dispatch DispatchGW

// DispatchGW defines the interface for publishing dispatch events
type DispatchGW interface {
	// PublishPresenceEvent publishes a professional's online-status transition
	PublishPresenceEvent(ctx context.Context, event *models.PresenceEvent) error

	// PublishBookingAssigned publishes a successful booking assignment
	PublishBookingAssigned(ctx context.Context, event *models.BookingAssignedEvent) error
}
