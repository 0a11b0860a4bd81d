package websocket

import (
	"context"
	"encoding/json"

	"github.com/eshaatri/homewash-dispatch/internal/pkg/constants"
	"github.com/eshaatri/homewash-dispatch/internal/pkg/models"
	ws "github.com/eshaatri/homewash-dispatch/internal/pkg/websocket"
)

// handleLocation records a position report for an identified session.
// A payload missing latitude or longitude is ignored without a response.
func (h *DispatchHandler) handleLocation(ctx context.Context, session *ws.Session, data json.RawMessage) {
	if !h.requireIdentified(session) {
		return
	}

	var req models.LocationUpdateRequest
	if err := unmarshalPayload(data, &req); err != nil {
		h.manager.SendErrorMessage(session, constants.ErrorInvalidLocation, "invalid location payload")
		return
	}
	if req.Latitude == nil || req.Longitude == nil {
		return
	}

	h.dispatchUC.RecordLocation(ctx, session.ProfessionalID, *req.Latitude, *req.Longitude)
}
