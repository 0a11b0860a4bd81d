package websocket

import (
	"context"
	"encoding/json"
	"time"

	"github.com/eshaatri/homewash-dispatch/internal/pkg/constants"
	"github.com/eshaatri/homewash-dispatch/internal/pkg/logger"
	"github.com/eshaatri/homewash-dispatch/internal/pkg/models"
	ws "github.com/eshaatri/homewash-dispatch/internal/pkg/websocket"
)

// handleIdentify binds the session to a professional. A missing professional
// id and an unknown professional are both ignored without a response; a
// professional id that does not match the authenticated subject is rejected.
func (h *DispatchHandler) handleIdentify(ctx context.Context, session *ws.Session, data json.RawMessage) {
	var req models.IdentifyRequest
	if err := unmarshalPayload(data, &req); err != nil || req.ProfessionalID == "" {
		return
	}

	if req.ProfessionalID != session.UserID {
		h.manager.SendErrorMessage(session, constants.ErrorUnauthorized,
			"cannot identify as another professional")
		return
	}

	prof, err := h.dispatchUC.Identify(ctx, req.ProfessionalID)
	if err != nil {
		logger.Error("identify lookup failed",
			logger.String("professional_id", req.ProfessionalID),
			logger.Err(err))
		h.manager.SendErrorMessage(session, constants.ErrorInternalError, "identify failed")
		return
	}
	if prof == nil {
		return
	}

	h.manager.Identify(session, prof.ID)

	logger.Info("session identified",
		logger.String("session_id", session.ID),
		logger.String("professional_id", prof.ID))

	// Observers learn about the professional as soon as it identifies; a
	// suspended account is announced offline.
	h.manager.Broadcast(constants.EventPresenceStatus, &models.PresenceEvent{
		ProfessionalID: prof.ID,
		Online:         !prof.IsSuspended,
		Timestamp:      time.Now(),
	})

	if prof.IsSuspended {
		h.manager.SendMessage(session, constants.EventAccountSuspended, &models.SuspendedNotice{
			ProfessionalID: prof.ID,
			Message:        "account is suspended",
		})
	}
}

// handleAvailability applies a reachable/unreachable transition for an
// identified session and broadcasts the resulting online status.
func (h *DispatchHandler) handleAvailability(ctx context.Context, session *ws.Session, data json.RawMessage) {
	if !h.requireIdentified(session) {
		return
	}

	var req models.AvailabilityRequest
	if err := unmarshalPayload(data, &req); err != nil {
		h.manager.SendErrorMessage(session, constants.ErrorInvalidFormat, "invalid availability payload")
		return
	}

	result, err := h.dispatchUC.SetAvailability(ctx, session.ProfessionalID, req.Available)
	if err != nil {
		logger.Error("availability transition failed",
			logger.String("professional_id", session.ProfessionalID),
			logger.Err(err))
		h.manager.SendErrorMessage(session, constants.ErrorInternalError, "availability update failed")
		return
	}

	if result.Suspended {
		h.manager.NotifyProfessional(session.ProfessionalID, constants.EventAccountSuspended,
			&models.SuspendedNotice{
				ProfessionalID: session.ProfessionalID,
				Message:        "account is suspended",
			})
	}

	h.manager.Broadcast(constants.EventPresenceStatus, &models.PresenceEvent{
		ProfessionalID: session.ProfessionalID,
		Online:         result.Online,
		Timestamp:      time.Now(),
	})

	if result.AssignedBooking != nil {
		h.manager.NotifyProfessional(session.ProfessionalID, constants.EventBookingAssigned,
			result.AssignedBooking)
	}
}
