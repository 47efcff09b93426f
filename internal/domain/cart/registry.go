// internal/domain/cart/registry.go
package cart

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/ekart-storefront/internal/config"
)

// Registry hands out one Manager per storefront session and retires
// managers that have been idle past the session TTL.
type Registry struct {
	store  Store
	orders OrderPlacer
	cfg    config.CartConfig
	log    *logrus.Logger

	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	manager  *Manager
	lastSeen time.Time
}

// NewRegistry creates an empty session registry.
func NewRegistry(store Store, orders OrderPlacer, cfg config.CartConfig, log *logrus.Logger) *Registry {
	return &Registry{
		store:    store,
		orders:   orders,
		cfg:      cfg,
		log:      log,
		sessions: make(map[string]*session),
	}
}

// Get returns the manager for the given session, creating it on first
// use, and refreshes the session's idle clock.
func (r *Registry) Get(sessionID string) *Manager {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		s = &session{
			manager: NewManager(r.store, r.orders, r.cfg, r.log.WithField("session_id", sessionID)),
		}
		r.sessions[sessionID] = s
	}
	s.lastSeen = time.Now()
	return s.manager
}

// Drop removes a session and cancels its pending sync. Used on logout.
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[sessionID]; ok {
		s.manager.Stop()
		delete(r.sessions, sessionID)
	}
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep evicts idle sessions on a ticker until the context is canceled.
func (r *Registry) Sweep(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.evictIdle(time.Now())
		}
	}
}

func (r *Registry) evictIdle(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, s := range r.sessions {
		if now.Sub(s.lastSeen) > r.cfg.SessionTTL {
			s.manager.Stop()
			delete(r.sessions, id)
			r.log.WithField("session_id", id).Debug("evicted idle cart session")
		}
	}
}
