package models

import "time"

// IdentifyRequest is the payload of an identify channel event binding a
// session to a professional.
type IdentifyRequest struct {
	ProfessionalID string `json:"professional_id"`
}

// AvailabilityRequest is the payload of an availability_update channel event.
type AvailabilityRequest struct {
	Available bool `json:"available"`
}

// AvailabilityResult describes the outcome of an availability transition.
type AvailabilityResult struct {
	Online    bool `json:"online"`
	Suspended bool `json:"suspended"`
	// AssignedBooking is set when going reachable claimed a pending booking.
	AssignedBooking *Booking `json:"assigned_booking,omitempty"`
}

// PresenceEvent is broadcast to channel observers and published on NATS
// whenever a professional's online status changes.
type PresenceEvent struct {
	ProfessionalID string    `json:"professional_id"`
	Online         bool      `json:"online"`
	Timestamp      time.Time `json:"timestamp"`
}

// BookingAssignedEvent is published on NATS when a booking is assigned.
type BookingAssignedEvent struct {
	BookingID      string    `json:"booking_id"`
	ProfessionalID string    `json:"professional_id"`
	ServiceArea    string    `json:"service_area"`
	Timestamp      time.Time `json:"timestamp"`
}

// SuspendedNotice is sent to a session whose professional account is suspended.
type SuspendedNotice struct {
	ProfessionalID string `json:"professional_id"`
	Message        string `json:"message"`
}

// DispatchStats exposes live store counts for reporting tooling.
type DispatchStats struct {
	ReachableProfessionals int      `json:"reachable_professionals"`
	TrackedLocations       int      `json:"tracked_locations"`
	ReachableIDs           []string `json:"reachable_ids"`
}
