package pooleditor

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Registry owns the live editor sessions. Each dialog instance opens
// its own session and closes it when the dialog goes away; idle
// sessions are reaped by Sweep so abandoned dialogs do not leak.
type Registry struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration
}

// NewRegistry creates a registry whose sessions expire after ttl of
// inactivity. A non-positive ttl disables expiry.
func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
	}
}

// Open creates a session for one editor dialog, pre-selecting the
// zone's current pool.
func (r *Registry) Open(zoneID int64, catalog *Catalog, initial []int64) *Session {
	s := newSession(zoneID, catalog, initial)
	r.mu.Lock()
	r.sessions[s.id] = s
	r.mu.Unlock()
	return s
}

// Get returns a live session and marks it as touched.
func (r *Registry) Get(id uuid.UUID) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if ok {
		s.mu.Lock()
		s.touched = time.Now()
		s.mu.Unlock()
	}
	return s, ok
}

// Close discards a session. Closing an unknown id is a no-op.
func (r *Registry) Close(id uuid.UUID) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep drops sessions idle longer than the ttl and returns how many
// were removed.
func (r *Registry) Sweep(now time.Time) int {
	if r.ttl <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, s := range r.sessions {
		s.mu.Lock()
		idle := now.Sub(s.touched)
		s.mu.Unlock()
		if idle > r.ttl {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// StartSweeper reaps idle sessions every interval until stop is closed.
func (r *Registry) StartSweeper(interval time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case now := <-ticker.C:
				r.Sweep(now)
			}
		}
	}()
}
