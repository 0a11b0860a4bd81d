package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eshaatri/homewash-dispatch/internal/pkg/logger"
	"github.com/eshaatri/homewash-dispatch/internal/pkg/models"
	"github.com/eshaatri/homewash-dispatch/internal/utils"
	"github.com/eshaatri/homewash-dispatch/services/dispatch"
)

// BookingHandler exposes the booking intake and lifecycle endpoints
type BookingHandler struct {
	dispatchUC dispatch.DispatchUC
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(dispatchUC dispatch.DispatchUC) *BookingHandler {
	return &BookingHandler{
		dispatchUC: dispatchUC,
	}
}

// CreateBookingRequest is the payload of the booking intake endpoint
type CreateBookingRequest struct {
	CustomerID  string           `json:"customer_id"`
	ServiceArea string           `json:"service_area"`
	Location    *models.Location `json:"location,omitempty"`
}

// UpdateStatusRequest is the payload of the booking status endpoint
type UpdateStatusRequest struct {
	Status models.BookingStatus `json:"status"`
}

// CreateBooking handles POST /bookings: the booking is persisted PENDING and
// dispatch immediately tries to assign the nearest reachable professional.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.CustomerID == "" || req.ServiceArea == "" {
		return utils.BadRequestResponse(c, "customer_id and service_area are required")
	}

	booking := &models.Booking{
		CustomerID:       req.CustomerID,
		ServiceArea:      req.ServiceArea,
		CustomerLocation: req.Location,
	}

	created, err := h.dispatchUC.CreateBooking(c.Request().Context(), booking)
	if err != nil {
		logger.Error("booking creation failed",
			logger.String("customer_id", req.CustomerID),
			logger.Err(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to create booking")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Booking created", created)
}

// GetBooking handles GET /bookings/:id
func (h *BookingHandler) GetBooking(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "Booking id is required")
	}

	booking, err := h.dispatchUC.GetBooking(c.Request().Context(), id)
	if err != nil {
		logger.Error("booking lookup failed",
			logger.String("booking_id", id),
			logger.Err(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to get booking")
	}
	if booking == nil {
		return utils.NotFoundResponse(c, "Booking not found")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", booking)
}

// UpdateStatus handles PATCH /bookings/:id/status
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "Booking id is required")
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if !models.ValidBookingStatus(req.Status) {
		return utils.BadRequestResponse(c, "Invalid booking status")
	}

	if err := h.dispatchUC.UpdateBookingStatus(c.Request().Context(), id, req.Status); err != nil {
		logger.Error("booking status update failed",
			logger.String("booking_id", id),
			logger.String("status", string(req.Status)),
			logger.Err(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to update booking status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking status updated", nil)
}
