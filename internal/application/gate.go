package application

import (
	"github.com/example/coworking-hub/internal/store"
)

// SessionSource exposes the session flags the gate decides on.
type SessionSource interface {
	Session() store.Session
}

// Gate is the single authorization predicate in front of every mutating
// operation. It reads the store's session flags; it never mutates anything
// itself, so a denial is always side-effect free.
//
// The gate deliberately knows nothing about credentials. Swapping the
// plaintext password checks in AuthService for a real credential mechanism
// would leave the gate and every gated service untouched.
type Gate struct {
	sessions SessionSource
}

// NewGate constructs a gate reading from the provided session source.
func NewGate(sessions SessionSource) *Gate {
	return &Gate{sessions: sessions}
}

// RequireAdmin returns nil when the current session holds admin elevation and
// ErrUnauthorized otherwise.
func (g *Gate) RequireAdmin() error {
	if g == nil || g.sessions == nil {
		return ErrUnauthorized
	}
	if !g.sessions.Session().Admin {
		return ErrUnauthorized
	}
	return nil
}
