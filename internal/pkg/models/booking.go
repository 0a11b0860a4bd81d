package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the current status of a booking
type BookingStatus string

const (
	BookingStatusPending              BookingStatus = "PENDING"
	BookingStatusConfirmed            BookingStatus = "CONFIRMED"
	BookingStatusProfessionalAssigned BookingStatus = "PROFESSIONAL_ASSIGNED"
	BookingStatusProfessionalEnRoute  BookingStatus = "PROFESSIONAL_EN_ROUTE"
	BookingStatusInProgress           BookingStatus = "IN_PROGRESS"
	BookingStatusCompleted            BookingStatus = "COMPLETED"
	BookingStatusCancelled            BookingStatus = "CANCELLED"
)

// ValidBookingStatus reports whether s is one of the known booking statuses.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusProfessionalAssigned,
		BookingStatusProfessionalEnRoute, BookingStatusInProgress,
		BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking represents a customer service booking.
// A booking has at most one assigned professional at a time; once the status
// reaches PROFESSIONAL_ASSIGNED the professional fields must be populated.
type Booking struct {
	ID                uuid.UUID     `json:"id" db:"id"`
	CustomerID        string        `json:"customer_id" db:"customer_id"`
	ServiceArea       string        `json:"service_area" db:"service_area"`
	Status            BookingStatus `json:"status" db:"status"`
	ProfessionalID    string        `json:"professional_id,omitempty" db:"professional_id"`
	ProfessionalName  string        `json:"professional_name,omitempty" db:"professional_name"`
	ProfessionalPhoto string        `json:"professional_photo,omitempty" db:"professional_photo"`
	CustomerLocation  *Location     `json:"customer_location,omitempty"`
	CreatedAt         time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at" db:"updated_at"`
}

// BookingDTO is used for database operations to flatten nullable columns
type BookingDTO struct {
	ID                uuid.UUID       `db:"id"`
	CustomerID        string          `db:"customer_id"`
	ServiceArea       string          `db:"service_area"`
	Status            BookingStatus   `db:"status"`
	ProfessionalID    sql.NullString  `db:"professional_id"`
	ProfessionalName  sql.NullString  `db:"professional_name"`
	ProfessionalPhoto sql.NullString  `db:"professional_photo"`
	CustomerLatitude  sql.NullFloat64 `db:"customer_latitude"`
	CustomerLongitude sql.NullFloat64 `db:"customer_longitude"`
	CreatedAt         time.Time       `db:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at"`
}

// ToDTO converts a Booking to a BookingDTO
func (b *Booking) ToDTO() *BookingDTO {
	dto := &BookingDTO{
		ID:          b.ID,
		CustomerID:  b.CustomerID,
		ServiceArea: b.ServiceArea,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
	if b.ProfessionalID != "" {
		dto.ProfessionalID = sql.NullString{String: b.ProfessionalID, Valid: true}
		dto.ProfessionalName = sql.NullString{String: b.ProfessionalName, Valid: true}
		dto.ProfessionalPhoto = sql.NullString{String: b.ProfessionalPhoto, Valid: true}
	}
	if b.CustomerLocation != nil {
		dto.CustomerLatitude = sql.NullFloat64{Float64: b.CustomerLocation.Latitude, Valid: true}
		dto.CustomerLongitude = sql.NullFloat64{Float64: b.CustomerLocation.Longitude, Valid: true}
	}
	return dto
}

// ToBooking converts a BookingDTO to a Booking
func (dto *BookingDTO) ToBooking() *Booking {
	b := &Booking{
		ID:                dto.ID,
		CustomerID:        dto.CustomerID,
		ServiceArea:       dto.ServiceArea,
		Status:            dto.Status,
		ProfessionalID:    dto.ProfessionalID.String,
		ProfessionalName:  dto.ProfessionalName.String,
		ProfessionalPhoto: dto.ProfessionalPhoto.String,
		CreatedAt:         dto.CreatedAt,
		UpdatedAt:         dto.UpdatedAt,
	}
	if dto.CustomerLatitude.Valid && dto.CustomerLongitude.Valid {
		b.CustomerLocation = &Location{
			Latitude:  dto.CustomerLatitude.Float64,
			Longitude: dto.CustomerLongitude.Float64,
			Timestamp: dto.CreatedAt,
		}
	}
	return b
}
