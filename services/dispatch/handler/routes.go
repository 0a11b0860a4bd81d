package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/eshaatri/homewash-dispatch/internal/pkg/middleware"
	"github.com/eshaatri/homewash-dispatch/internal/pkg/models"
	"github.com/eshaatri/homewash-dispatch/services/dispatch/handler/http"
	"github.com/eshaatri/homewash-dispatch/services/dispatch/handler/websocket"
)

// Handler coordinates all protocol handlers for the dispatch service
type Handler struct {
	bookingHandler *http.BookingHandler
	adminHandler   *http.AdminHandler
	wsHandler      *websocket.DispatchHandler
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	bookingHandler *http.BookingHandler,
	adminHandler *http.AdminHandler,
	wsHandler *websocket.DispatchHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		bookingHandler: bookingHandler,
		adminHandler:   adminHandler,
		wsHandler:      wsHandler,
		cfg:            cfg,
	}
}

// RegisterRoutes registers all protocol handlers and their routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Booking intake and lifecycle
	bookingGroup := e.Group("/bookings")
	bookingGroup.POST("", h.bookingHandler.CreateBooking)
	bookingGroup.GET("/:id", h.bookingHandler.GetBooking)
	bookingGroup.PATCH("/:id/status", h.bookingHandler.UpdateStatus)

	// Internal endpoints for ops tooling, gated by API key
	internalGroup := e.Group("/internal/dispatch", middleware.ValidateAPIKey(h.cfg.Dispatch.InternalAPIKey))
	internalGroup.GET("/stats", h.adminHandler.Stats)
	internalGroup.GET("/nearby", h.adminHandler.Nearby)

	// Presence channel; the connection manager authenticates the JWT at
	// upgrade time.
	e.GET("/ws", h.wsHandler.HandleWebSocket)
}
