package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/eshaatri/homewash-dispatch/internal/pkg/logger"
	"github.com/eshaatri/homewash-dispatch/internal/pkg/models"
)

// Identify resolves the professional a channel session wants to bind to.
// Returns nil without error when no such professional exists; the channel
// handler treats that as a silently ignored identify.
func (uc *DispatchUC) Identify(ctx context.Context, professionalID string) (*models.Professional, error) {
	return uc.professionalRepo.GetProfessional(ctx, professionalID)
}

// SetAvailability applies a reachable/unreachable transition. Suspension is
// re-checked against the database on every transition so that a suspension
// applied mid-session takes effect at the next availability change. Going
// reachable also claims the oldest pending booking in the professional's
// areas, if any.
func (uc *DispatchUC) SetAvailability(ctx context.Context, professionalID string, available bool) (*models.AvailabilityResult, error) {
	prof, err := uc.professionalRepo.GetProfessional(ctx, professionalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load professional: %w", err)
	}
	if prof == nil {
		return nil, fmt.Errorf("unknown professional: %s", professionalID)
	}

	if prof.IsSuspended {
		uc.presence.MarkUnreachable(professionalID)
		uc.publishPresence(ctx, professionalID, false)
		return &models.AvailabilityResult{Online: false, Suspended: true}, nil
	}

	if !available {
		uc.presence.MarkUnreachable(professionalID)
		uc.publishPresence(ctx, professionalID, false)
		return &models.AvailabilityResult{Online: false}, nil
	}

	uc.presence.MarkReachable(professionalID)
	uc.publishPresence(ctx, professionalID, true)

	result := &models.AvailabilityResult{Online: true}

	// A claim failure must not undo the presence transition; the professional
	// is reachable and will be considered for the next incoming booking.
	claimed, err := uc.AssignPendingToProfessional(ctx, professionalID)
	if err != nil {
		logger.Warn("pending booking claim failed on becoming reachable",
			logger.String("professional_id", professionalID),
			logger.Err(err))
		return result, nil
	}
	result.AssignedBooking = claimed

	return result, nil
}

// RecordLocation stores the reported position in the live location store and
// mirrors it best-effort to the professional record and the geo set. The live
// store is authoritative for dispatch; mirror failures are only logged.
func (uc *DispatchUC) RecordLocation(ctx context.Context, professionalID string, latitude, longitude float64) {
	uc.locations.Record(professionalID, latitude, longitude)

	if err := uc.professionalRepo.UpdateLastKnownLocation(ctx, professionalID, latitude, longitude); err != nil {
		logger.Warn("failed to persist last known location",
			logger.String("professional_id", professionalID),
			logger.Err(err))
	}

	if err := uc.geoRepo.UpsertPosition(ctx, professionalID, latitude, longitude); err != nil {
		logger.Warn("failed to mirror position to geo set",
			logger.String("professional_id", professionalID),
			logger.Err(err))
	}
}

// Disconnect clears the professional's presence after its channel closed.
// The live location entry is kept; it still serves as the freshest position
// if the professional reconnects before reporting again.
func (uc *DispatchUC) Disconnect(ctx context.Context, professionalID string) {
	uc.presence.MarkUnreachable(professionalID)

	if err := uc.geoRepo.RemovePosition(ctx, professionalID); err != nil {
		logger.Warn("failed to remove position from geo set",
			logger.String("professional_id", professionalID),
			logger.Err(err))
	}

	uc.publishPresence(ctx, professionalID, false)
}

// Stats returns live store counts for reporting tooling
func (uc *DispatchUC) Stats() *models.DispatchStats {
	return &models.DispatchStats{
		ReachableProfessionals: uc.presence.Count(),
		TrackedLocations:       uc.locations.Count(),
		ReachableIDs:           uc.presence.Reachable(),
	}
}

// NearbyProfessionals queries the geo mirror for professionals around a point.
// A non-positive radius falls back to the configured default.
func (uc *DispatchUC) NearbyProfessionals(ctx context.Context, latitude, longitude, radiusKm float64) ([]*models.NearbyProfessional, error) {
	if radiusKm <= 0 {
		radiusKm = uc.cfg.Dispatch.NearbyRadiusKm
	}
	return uc.geoRepo.Nearby(ctx, latitude, longitude, radiusKm)
}

// publishPresence emits the presence transition event. Best-effort; the
// in-memory store already reflects the transition.
func (uc *DispatchUC) publishPresence(ctx context.Context, professionalID string, online bool) {
	event := &models.PresenceEvent{
		ProfessionalID: professionalID,
		Online:         online,
		Timestamp:      time.Now(),
	}
	if err := uc.dispatchGW.PublishPresenceEvent(ctx, event); err != nil {
		logger.Warn("failed to publish presence event",
			logger.String("professional_id", professionalID),
			logger.Err(err))
	}
}
