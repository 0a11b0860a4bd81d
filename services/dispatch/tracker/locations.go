package tracker

import (
	"sync"
	"time"

	"github.com/eshaatri/homewash-dispatch/internal/pkg/models"
)

// Locations caches the last reported position of each professional,
// independent of persistent storage and optimized for reads during
// assignment. Entries are never expired; a stale entry for a professional
// that went unreachable is harmless because presence is checked first.
type Locations struct {
	mu      sync.RWMutex
	entries map[string]models.Location
}

// NewLocations creates an empty location store
func NewLocations() *Locations {
	return &Locations{
		entries: make(map[string]models.Location),
	}
}

// Record overwrites the professional's last-known position, stamping the
// current time. Coordinates are stored as reported, without range checks.
func (l *Locations) Record(id string, latitude, longitude float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries[id] = models.Location{
		Latitude:  latitude,
		Longitude: longitude,
		Timestamp: time.Now(),
	}
}

// Lookup returns the professional's last reported position, or false when
// none has been reported since the process started
func (l *Locations) Lookup(id string) (models.Location, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	loc, ok := l.entries[id]
	return loc, ok
}

// Count returns the number of tracked positions
func (l *Locations) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
