package nats

import (
	"context"

	"github.com/eshaatri/homewash-dispatch/internal/pkg/constants"
	"github.com/eshaatri/homewash-dispatch/internal/pkg/logger"
	"github.com/eshaatri/homewash-dispatch/internal/pkg/models"
	natspkg "github.com/eshaatri/homewash-dispatch/internal/pkg/nats"
)

// DispatchGW publishes dispatch events to NATS for downstream consumers
// (notifications, analytics, ops dashboards).
type DispatchGW struct {
	natsClient *natspkg.Client
}

// NewDispatchGW creates a new dispatch gateway
func NewDispatchGW(natsClient *natspkg.Client) *DispatchGW {
	return &DispatchGW{
		natsClient: natsClient,
	}
}

// PublishPresenceEvent publishes a professional's online-status transition
func (g *DispatchGW) PublishPresenceEvent(_ context.Context, event *models.PresenceEvent) error {
	logger.Debug("publishing presence event",
		logger.String("professional_id", event.ProfessionalID),
		logger.Bool("online", event.Online))

	return g.natsClient.PublishJSON(constants.SubjectDispatchPresence, event)
}

// PublishBookingAssigned publishes a successful booking assignment
func (g *DispatchGW) PublishBookingAssigned(_ context.Context, event *models.BookingAssignedEvent) error {
	logger.Debug("publishing booking assigned event",
		logger.String("booking_id", event.BookingID),
		logger.String("professional_id", event.ProfessionalID))

	return g.natsClient.PublishJSON(constants.SubjectBookingAssigned, event)
}
