package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"

	// Inbound events from professional clients
	EventIdentify           = "identify"
	EventAvailabilityUpdate = "availability_update"
	EventLocationUpdate     = "location_update"

	// Outbound events
	EventPresenceStatus   = "presence_status"
	EventBookingAssigned  = "booking_assigned"
	EventAccountSuspended = "account_suspended"
)

// WebSocket error codes
const (
	ErrorInvalidFormat   = "invalid_format"
	ErrorUnauthorized    = "unauthorized"
	ErrorNotIdentified   = "not_identified"
	ErrorInternalError   = "internal_error"
	ErrorInvalidLocation = "invalid_location"
)
