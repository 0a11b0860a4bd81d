package usecase

import (
	"github.com/eshaatri/homewash-dispatch/internal/pkg/models"
	"github.com/eshaatri/homewash-dispatch/services/dispatch"
	"github.com/eshaatri/homewash-dispatch/services/dispatch/tracker"
)

// DispatchUC implements the dispatch usecase: presence, live locations and
// booking assignment. Assignment never relies on the in-process stores for
// correctness; the conditional writes in the booking repository are what make
// a booking land on exactly one professional.
type DispatchUC struct {
	cfg              *models.Config
	presence         *tracker.Presence
	locations        *tracker.Locations
	bookingRepo      dispatch.BookingRepo
	professionalRepo dispatch.ProfessionalRepo
	geoRepo          dispatch.GeoRepo
	dispatchGW       dispatch.DispatchGW
}

// NewDispatchUC creates a new dispatch usecase
func NewDispatchUC(
	cfg *models.Config,
	presence *tracker.Presence,
	locations *tracker.Locations,
	bookingRepo dispatch.BookingRepo,
	professionalRepo dispatch.ProfessionalRepo,
	geoRepo dispatch.GeoRepo,
	dispatchGW dispatch.DispatchGW,
) *DispatchUC {
	return &DispatchUC{
		cfg:              cfg,
		presence:         presence,
		locations:        locations,
		bookingRepo:      bookingRepo,
		professionalRepo: professionalRepo,
		geoRepo:          geoRepo,
		dispatchGW:       dispatchGW,
	}
}
