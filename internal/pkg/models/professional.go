package models

import (
	"database/sql"
	"strings"

	"github.com/lib/pq"
)

// RoleProfessional is the role value of field professionals in the users table.
const RoleProfessional = "professional"

// Professional represents a field professional as stored in the database.
// The dispatch core only reads these records and writes back the last-known
// coordinate; everything else is mutated by the account endpoints.
type Professional struct {
	ID            string          `json:"id" db:"id"`
	FullName      string          `json:"fullname" db:"fullname"`
	PhotoURL      string          `json:"photo_url" db:"photo_url"`
	Role          string          `json:"role" db:"role"`
	ServiceArea   string          `json:"service_area" db:"service_area"` // free-text label, possibly comma separated
	AreaIDs       pq.StringArray  `json:"area_ids" db:"area_ids"`
	LastLatitude  sql.NullFloat64 `json:"-" db:"last_latitude"`
	LastLongitude sql.NullFloat64 `json:"-" db:"last_longitude"`
	IsSuspended   bool            `json:"is_suspended" db:"is_suspended"`
}

// ProfessionalSummary carries the fields cached onto a booking at assignment time.
type ProfessionalSummary struct {
	ID       string `json:"id"`
	FullName string `json:"fullname"`
	PhotoURL string `json:"photo_url"`
}

// Summary returns the assignment summary of the professional.
func (p *Professional) Summary() *ProfessionalSummary {
	return &ProfessionalSummary{
		ID:       p.ID,
		FullName: p.FullName,
		PhotoURL: p.PhotoURL,
	}
}

// MatchesArea reports whether the professional serves the given area label.
// An area can be addressed by display name or by id, so a match succeeds if
// the label equals the professional's area verbatim, appears in its
// comma-separated area list, or appears in its area-id set.
func (p *Professional) MatchesArea(label string) bool {
	if label == "" {
		return false
	}
	if p.ServiceArea == label {
		return true
	}
	for _, part := range strings.Split(p.ServiceArea, ",") {
		if strings.TrimSpace(part) == label {
			return true
		}
	}
	for _, id := range p.AreaIDs {
		if id == label {
			return true
		}
	}
	return false
}

// AreaLabels returns every label the professional can be matched on: the
// comma-split free-text area unioned with the area-id set, deduplicated.
func (p *Professional) AreaLabels() []string {
	seen := make(map[string]struct{})
	labels := make([]string, 0, len(p.AreaIDs)+1)

	add := func(label string) {
		if label == "" {
			return
		}
		if _, ok := seen[label]; ok {
			return
		}
		seen[label] = struct{}{}
		labels = append(labels, label)
	}

	for _, part := range strings.Split(p.ServiceArea, ",") {
		add(strings.TrimSpace(part))
	}
	for _, id := range p.AreaIDs {
		add(id)
	}
	return labels
}

// LastKnownLocation returns the coordinate persisted on the professional
// record, or false when none has ever been recorded.
func (p *Professional) LastKnownLocation() (Location, bool) {
	if !p.LastLatitude.Valid || !p.LastLongitude.Valid {
		return Location{}, false
	}
	return Location{
		Latitude:  p.LastLatitude.Float64,
		Longitude: p.LastLongitude.Float64,
	}, true
}
