package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/eshaatri/homewash-dispatch/internal/pkg/logger"
	"github.com/eshaatri/homewash-dispatch/internal/utils"
	"github.com/eshaatri/homewash-dispatch/services/dispatch"
)

// AdminHandler exposes the API-key-gated internal dispatch endpoints
type AdminHandler struct {
	dispatchUC dispatch.DispatchUC
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(dispatchUC dispatch.DispatchUC) *AdminHandler {
	return &AdminHandler{
		dispatchUC: dispatchUC,
	}
}

// Stats handles GET /internal/dispatch/stats
func (h *AdminHandler) Stats(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", h.dispatchUC.Stats())
}

// Nearby handles GET /internal/dispatch/nearby?latitude=&longitude=&radius_km=
func (h *AdminHandler) Nearby(c echo.Context) error {
	latitude, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "latitude is required")
	}
	longitude, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "longitude is required")
	}

	radiusKm := 0.0
	if raw := c.QueryParam("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "invalid radius_km")
		}
	}

	nearby, err := h.dispatchUC.NearbyProfessionals(c.Request().Context(), latitude, longitude, radiusKm)
	if err != nil {
		logger.Error("nearby lookup failed", logger.Err(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to query nearby professionals")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", nearby)
}
