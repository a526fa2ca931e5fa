package access

import (
	"context"
	"time"

	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

// Decision is the gatekeeper's verdict for one request.
// Session is non-nil only when a valid session backed the decision, so the
// caller never needs a second store lookup.
type Decision struct {
	Allow      bool
	RedirectTo string
	Session    *ports.Session
}

// Gatekeeper gates requests on session-token validity. It holds no per-request
// state; every Check is independent.
type Gatekeeper struct {
	routes   *RouteTable
	sessions ports.SessionStore
	landing  string
	login    string
	now      func() time.Time
}

// NewGatekeeper builds a Gatekeeper. landing is the canonical logged-in
// landing path, login the canonical login path; both come from configuration.
func NewGatekeeper(routes *RouteTable, sessions ports.SessionStore, landing, login string) *Gatekeeper {
	return &Gatekeeper{
		routes:   routes,
		sessions: sessions,
		landing:  landing,
		login:    login,
		now:      time.Now,
	}
}

// Check classifies path and gates it on the validity of token.
//
// api paths are always allowed without touching the session store. For auth
// paths a valid session redirects to the landing page unless already there;
// anonymous access is permitted. For protected paths an invalid or absent
// session redirects to the login page unless already there.
//
// A missing, unknown or expired token and a failed store lookup are all the
// same invalid outcome: the gate fails closed. At most one store lookup is
// performed per call.
func (g *Gatekeeper) Check(ctx context.Context, path, token string) Decision {
	switch g.routes.Classify(path) {
	case ClassAPI:
		return Decision{Allow: true}

	case ClassAuth:
		session := g.lookup(ctx, token)
		if session != nil && path != g.landing {
			return Decision{RedirectTo: g.landing, Session: session}
		}
		return Decision{Allow: true, Session: session}

	default: // ClassProtected
		session := g.lookup(ctx, token)
		if session == nil {
			if path == g.login {
				return Decision{Allow: true}
			}
			return Decision{RedirectTo: g.login}
		}
		return Decision{Allow: true, Session: session}
	}
}

// lookup resolves token to a session, returning nil for any invalid outcome.
func (g *Gatekeeper) lookup(ctx context.Context, token string) *ports.Session {
	if token == "" {
		return nil
	}
	session, found, err := g.sessions.Get(ctx, token)
	if err != nil || !found {
		return nil
	}
	if !session.ExpiresAt.After(g.now()) {
		return nil
	}
	return &session
}
