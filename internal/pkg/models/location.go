package models

import "time"

// Location represents a geographical location with latitude and longitude
type Location struct {
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

// LocationUpdateRequest is the payload of a location_update channel event.
// Coordinates are pointers so a missing field can be told apart from zero.
type LocationUpdateRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// NearbyProfessional represents a professional returned by the admin
// nearby lookup, sourced from the Redis geo mirror.
type NearbyProfessional struct {
	ID         string  `json:"id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	DistanceKm float64 `json:"distance_km"`
	Geohash    string  `json:"geohash"`
}
