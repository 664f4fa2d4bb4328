package session

import (
	"sync"

	"storefront-checkout/internal/pkg/clock"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

// Factory builds a fresh session for a shopper.
type Factory func(userID uuid.UUID) *Session

func NewFactory(
	cart shared.CartService,
	recorder shared.LifecycleRecorder,
	clk clock.Clock,
	cfg config.CheckoutConfig,
) Factory {
	containerCfg := ContainerConfig{
		Window:       cfg.ReservationWindow,
		TickInterval: cfg.TickInterval,
	}
	return func(userID uuid.UUID) *Session {
		container := NewContainer(userID, cart, recorder, clk, containerCfg)
		return NewSession(userID, container, cfg.CancelTimeout)
	}
}

// Registry keeps at most one checkout session per shopper.
type Registry struct {
	newSession Factory

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

func NewRegistry(newSession Factory) *Registry {
	return &Registry{
		newSession: newSession,
		sessions:   make(map[uuid.UUID]*Session),
	}
}

func (r *Registry) Get(userID uuid.UUID) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[userID]
	return s, ok
}

func (r *Registry) GetOrCreate(userID uuid.UUID) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[userID]; ok {
		return s
	}
	s := r.newSession(userID)
	r.sessions[userID] = s
	return s
}

// Remove drops the shopper's session and stops its countdown.
func (r *Registry) Remove(userID uuid.UUID) {
	r.mu.Lock()
	s, ok := r.sessions[userID]
	delete(r.sessions, userID)
	r.mu.Unlock()

	if ok {
		s.Close()
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Close stops every live countdown. Used on shutdown.
func (r *Registry) Close() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[uuid.UUID]*Session)
	r.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}
