package tracker

import (
	"sort"
	"sync"
)

// Presence is the single source of truth for which professionals are
// currently reachable. State is process-local and resets on restart; a
// disconnected professional is removed by its channel handler.
type Presence struct {
	mu  sync.RWMutex
	ids map[string]struct{}
}

// NewPresence creates an empty presence store
func NewPresence() *Presence {
	return &Presence{
		ids: make(map[string]struct{}),
	}
}

// MarkReachable adds the professional to the reachable set. Idempotent.
func (p *Presence) MarkReachable(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ids[id] = struct{}{}
}

// MarkUnreachable removes the professional from the reachable set. Idempotent.
func (p *Presence) MarkUnreachable(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.ids, id)
}

// IsReachable reports whether the professional is currently reachable
func (p *Presence) IsReachable(id string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.ids[id]
	return ok
}

// Reachable returns a sorted snapshot of the reachable set. The snapshot is
// a copy; later store mutations never change a returned slice. Sorting keeps
// candidate iteration order deterministic during assignment.
func (p *Presence) Reachable() []string {
	p.mu.RLock()
	ids := make([]string, 0, len(p.ids))
	for id := range p.ids {
		ids = append(ids, id)
	}
	p.mu.RUnlock()

	sort.Strings(ids)
	return ids
}

// Count returns the number of reachable professionals
func (p *Presence) Count() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.ids)
}
