package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/eshaatri/homewash-dispatch/internal/pkg/constants"
	"github.com/eshaatri/homewash-dispatch/internal/pkg/logger"
	"github.com/eshaatri/homewash-dispatch/internal/pkg/models"
)

// Session represents a single WebSocket connection. A session starts
// unidentified; ProfessionalID is set once the client sends an identify
// event and stays set until the connection closes.
type Session struct {
	ID             string
	UserID         string // subject of the JWT the connection was opened with
	ProfessionalID string
	Conn           *websocket.Conn

	writeMu sync.Mutex
}

// Manager manages WebSocket sessions and connection state
type Manager struct {
	sync.RWMutex
	sessions map[string]*Session
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		cfg:      jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates and handles a new WebSocket connection
func (m *Manager) HandleConnection(c echo.Context, handleSession func(*Session) error) error {
	claims, err := m.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	session := &Session{
		ID:     uuid.NewString(),
		UserID: claims.UserID,
		Conn:   ws,
	}

	m.AddSession(session)
	defer m.RemoveSession(session.ID)

	return handleSession(session)
}

// authenticateClient authenticates the WebSocket client using JWT
func (m *Manager) authenticateClient(c echo.Context) (*models.WebSocketClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
	}

	claims, err := m.validateToken(parts[1])
	if err != nil {
		logger.Warn("Token validation failed",
			logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return claims, nil
}

// validateToken validates the JWT token and returns the claims
func (m *Manager) validateToken(tokenString string) (*models.WebSocketClaims, error) {
	claims := &models.WebSocketClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.cfg.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// AddSession safely adds a session to the manager
func (m *Manager) AddSession(session *Session) {
	m.Lock()
	defer m.Unlock()
	m.sessions[session.ID] = session
}

// RemoveSession safely removes a session from the manager
func (m *Manager) RemoveSession(sessionID string) {
	m.Lock()
	defer m.Unlock()
	delete(m.sessions, sessionID)
}

// Identify binds a session to a professional id
func (m *Manager) Identify(session *Session, professionalID string) {
	m.Lock()
	defer m.Unlock()
	session.ProfessionalID = professionalID
}

// SessionCount returns the number of connected sessions
func (m *Manager) SessionCount() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.sessions)
}

// SendMessage sends a message to a WebSocket session
func (m *Manager) SendMessage(session *Session, event string, data interface{}) error {
	if session == nil || session.Conn == nil {
		return nil // Handle nil connection gracefully for tests
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %v", err)
	}

	response := models.WSMessage{
		Event: event,
		Data:  rawData,
	}

	session.writeMu.Lock()
	defer session.writeMu.Unlock()
	return session.Conn.WriteJSON(response)
}

// SendErrorMessage sends an error message to a WebSocket session
func (m *Manager) SendErrorMessage(session *Session, code string, message string) error {
	return m.SendMessage(session, constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

// Broadcast sends an event to every connected session
func (m *Manager) Broadcast(event string, data interface{}) {
	m.RLock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, session := range m.sessions {
		sessions = append(sessions, session)
	}
	m.RUnlock()

	for _, session := range sessions {
		if err := m.SendMessage(session, event, data); err != nil {
			logger.Warn("Error broadcasting message to session",
				logger.String("session_id", session.ID),
				logger.String("event", event),
				logger.Err(err))
		}
	}
}

// NotifyProfessional sends an event to every session identified as the given professional
func (m *Manager) NotifyProfessional(professionalID string, event string, data interface{}) {
	m.RLock()
	sessions := make([]*Session, 0, 1)
	for _, session := range m.sessions {
		if session.ProfessionalID == professionalID {
			sessions = append(sessions, session)
		}
	}
	m.RUnlock()

	for _, session := range sessions {
		if err := m.SendMessage(session, event, data); err != nil {
			logger.Warn("Error sending message to professional",
				logger.String("professional_id", professionalID),
				logger.String("event", event),
				logger.Err(err))
		}
	}
}
