package constants

// Redis key formats
const (
	// Geo set mirroring the last reported position of reachable
	// professionals. Ops tooling only; the in-memory stores stay
	// authoritative for dispatch.
	KeyProfessionalGeo = "professionals:geo"
)
