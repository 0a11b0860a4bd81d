package constants

// NATS Subjects
const (
	// Presence transitions of field professionals
	SubjectDispatchPresence = "dispatch.presence"

	// Booking assignment outcomes
	SubjectBookingAssigned = "dispatch.booking.assigned"
)
