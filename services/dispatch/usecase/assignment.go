package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/eshaatri/homewash-dispatch/internal/pkg/logger"
	"github.com/eshaatri/homewash-dispatch/internal/pkg/models"
	"github.com/eshaatri/homewash-dispatch/internal/utils"
)

// CreateBooking inserts a PENDING booking and immediately attempts to assign
// it. An assignment failure does not fail the creation; the booking stays
// PENDING and remains claimable when a professional next becomes reachable.
func (uc *DispatchUC) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	booking.Status = models.BookingStatusPending
	booking.ProfessionalID = ""
	booking.ProfessionalName = ""
	booking.ProfessionalPhoto = ""

	if err := uc.bookingRepo.CreateBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	assigned, err := uc.AssignNewBooking(ctx, booking)
	if err != nil {
		logger.Warn("booking created but immediate assignment failed",
			logger.String("booking_id", booking.ID.String()),
			logger.Err(err))
		return booking, nil
	}
	if assigned != nil {
		return assigned, nil
	}
	return booking, nil
}

// AssignNewBooking matches the booking to the nearest eligible reachable
// professional and writes the assignment with a conditional update. Returns
// nil without error when no professional qualifies or when every candidate
// lost the write race.
func (uc *DispatchUC) AssignNewBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	if booking.ServiceArea == "" {
		return nil, nil
	}

	reachable := uc.presence.Reachable()
	if len(reachable) == 0 {
		return nil, nil
	}

	candidates, err := uc.professionalRepo.GetActiveProfessionals(ctx, reachable)
	if err != nil {
		return nil, fmt.Errorf("failed to load reachable professionals: %w", err)
	}

	best := uc.pickNearest(booking, orderBySnapshot(reachable, candidates))
	if best == nil {
		return nil, nil
	}

	assigned, err := uc.bookingRepo.AssignIfUnassigned(ctx, booking.ID.String(), best.Summary())
	if err != nil {
		return nil, fmt.Errorf("failed to assign booking: %w", err)
	}
	if assigned == nil {
		// Another path assigned the booking between our read and the write.
		logger.Info("booking already assigned elsewhere",
			logger.String("booking_id", booking.ID.String()))
		return nil, nil
	}

	uc.publishAssigned(ctx, assigned)

	logger.Info("booking assigned",
		logger.String("booking_id", assigned.ID.String()),
		logger.String("professional_id", assigned.ProfessionalID),
		logger.String("service_area", assigned.ServiceArea))

	return assigned, nil
}

// orderBySnapshot rearranges the fetched candidates into the presence
// snapshot's sorted order. The database returns rows in whatever order the
// plan produces, so selection must not depend on it.
func orderBySnapshot(reachable []string, candidates []*models.Professional) []*models.Professional {
	byID := make(map[string]*models.Professional, len(candidates))
	for _, candidate := range candidates {
		byID[candidate.ID] = candidate
	}

	ordered := make([]*models.Professional, 0, len(candidates))
	for _, id := range reachable {
		if candidate, ok := byID[id]; ok {
			ordered = append(ordered, candidate)
		}
	}
	return ordered
}

// pickNearest returns the closest candidate serving the booking's area, using
// the freshest position known per candidate. Candidates whose position cannot
// be resolved are skipped. Iteration order follows the sorted presence
// snapshot, so ties and positionless bookings resolve deterministically.
func (uc *DispatchUC) pickNearest(booking *models.Booking, candidates []*models.Professional) *models.Professional {
	var best *models.Professional
	bestDist := 0.0

	for _, candidate := range candidates {
		if !candidate.MatchesArea(booking.ServiceArea) {
			continue
		}

		pos, ok := uc.resolvePosition(candidate)
		if !ok {
			continue
		}

		dist := 0.0
		if booking.CustomerLocation != nil {
			dist = utils.CalculateDistance(
				utils.GeoPointFromLocation(*booking.CustomerLocation),
				utils.GeoPointFromLocation(pos),
			)
		}

		if best == nil || dist < bestDist {
			best = candidate
			bestDist = dist
		}
	}

	return best
}

// resolvePosition prefers the live in-memory location over the last-known
// coordinate persisted on the professional record.
func (uc *DispatchUC) resolvePosition(prof *models.Professional) (models.Location, bool) {
	if loc, ok := uc.locations.Lookup(prof.ID); ok {
		return loc, true
	}
	return prof.LastKnownLocation()
}

// AssignPendingToProfessional claims the oldest pending booking in the
// professional's service areas. Returns nil without error when the
// professional is unknown, serves no area, or no pending booking exists.
func (uc *DispatchUC) AssignPendingToProfessional(ctx context.Context, professionalID string) (*models.Booking, error) {
	prof, err := uc.professionalRepo.GetProfessional(ctx, professionalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load professional: %w", err)
	}
	if prof == nil || prof.IsSuspended {
		return nil, nil
	}

	areas := prof.AreaLabels()
	if len(areas) == 0 {
		return nil, nil
	}

	claimed, err := uc.bookingRepo.ClaimOldestPending(ctx, areas, prof.Summary())
	if err != nil {
		return nil, fmt.Errorf("failed to claim pending booking: %w", err)
	}
	if claimed == nil {
		return nil, nil
	}

	uc.publishAssigned(ctx, claimed)

	logger.Info("pending booking claimed",
		logger.String("booking_id", claimed.ID.String()),
		logger.String("professional_id", professionalID))

	return claimed, nil
}

// GetBooking returns a booking by id, or nil when absent
func (uc *DispatchUC) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return uc.bookingRepo.GetBooking(ctx, id)
}

// UpdateBookingStatus validates and applies a status update
func (uc *DispatchUC) UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) error {
	if !models.ValidBookingStatus(status) {
		return fmt.Errorf("invalid booking status: %s", status)
	}
	return uc.bookingRepo.UpdateBookingStatus(ctx, id, status)
}

// publishAssigned emits the assignment event. Publishing is best-effort; the
// assignment is already durable in the database.
func (uc *DispatchUC) publishAssigned(ctx context.Context, booking *models.Booking) {
	event := &models.BookingAssignedEvent{
		BookingID:      booking.ID.String(),
		ProfessionalID: booking.ProfessionalID,
		ServiceArea:    booking.ServiceArea,
		Timestamp:      time.Now(),
	}
	if err := uc.dispatchGW.PublishBookingAssigned(ctx, event); err != nil {
		logger.Warn("failed to publish booking assigned event",
			logger.String("booking_id", event.BookingID),
			logger.Err(err))
	}
}
