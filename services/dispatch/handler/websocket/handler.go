package websocket

import (
	"context"
	"encoding/json"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eshaatri/homewash-dispatch/internal/pkg/constants"
	"github.com/eshaatri/homewash-dispatch/internal/pkg/logger"
	"github.com/eshaatri/homewash-dispatch/internal/pkg/models"
	ws "github.com/eshaatri/homewash-dispatch/internal/pkg/websocket"
	"github.com/eshaatri/homewash-dispatch/services/dispatch"
)

// DispatchHandler drives the professional presence channel: a session
// identifies as a professional, then toggles availability and streams
// position reports until it disconnects.
type DispatchHandler struct {
	manager    *ws.Manager
	dispatchUC dispatch.DispatchUC
}

// NewDispatchHandler creates a new presence channel handler
func NewDispatchHandler(manager *ws.Manager, dispatchUC dispatch.DispatchUC) *DispatchHandler {
	return &DispatchHandler{
		manager:    manager,
		dispatchUC: dispatchUC,
	}
}

// HandleWebSocket upgrades the connection and runs the session loop
func (h *DispatchHandler) HandleWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, h.handleSession)
}

// handleSession reads messages until the connection closes, then clears the
// professional's presence if the session had identified.
func (h *DispatchHandler) handleSession(session *ws.Session) error {
	defer h.handleDisconnect(session)

	logger.Info("presence channel connected",
		logger.String("session_id", session.ID),
		logger.String("user_id", session.UserID))

	for {
		var msg models.WSMessage
		if err := session.Conn.ReadJSON(&msg); err != nil {
			logger.Info("presence channel closed",
				logger.String("session_id", session.ID),
				logger.Err(err))
			return nil
		}

		h.handleMessage(session, msg)
	}
}

// handleMessage dispatches a single channel event
func (h *DispatchHandler) handleMessage(session *ws.Session, msg models.WSMessage) {
	ctx := context.Background()

	switch msg.Event {
	case constants.EventIdentify:
		h.handleIdentify(ctx, session, msg.Data)
	case constants.EventAvailabilityUpdate:
		h.handleAvailability(ctx, session, msg.Data)
	case constants.EventLocationUpdate:
		h.handleLocation(ctx, session, msg.Data)
	default:
		h.manager.SendErrorMessage(session, constants.ErrorInvalidFormat, "unknown event: "+msg.Event)
	}
}

// handleDisconnect clears presence state for an identified session. An
// unidentified session never touched any dispatch state.
func (h *DispatchHandler) handleDisconnect(session *ws.Session) {
	if session.ProfessionalID == "" {
		return
	}

	h.dispatchUC.Disconnect(context.Background(), session.ProfessionalID)

	h.manager.Broadcast(constants.EventPresenceStatus, &models.PresenceEvent{
		ProfessionalID: session.ProfessionalID,
		Online:         false,
		Timestamp:      time.Now(),
	})
}

// requireIdentified reports whether the session has identified, sending the
// channel error when it has not.
func (h *DispatchHandler) requireIdentified(session *ws.Session) bool {
	if session.ProfessionalID == "" {
		h.manager.SendErrorMessage(session, constants.ErrorNotIdentified, "identify first")
		return false
	}
	return true
}

func unmarshalPayload(data json.RawMessage, v interface{}) error {
	if len(data) == 0 {
		return json.Unmarshal([]byte("{}"), v)
	}
	return json.Unmarshal(data, v)
}
