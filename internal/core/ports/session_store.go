package ports

import (
	"context"
	"time"
)

// Session is the record bound to an opaque session token.
type Session struct {
	UserID    string
	Role      string
	ExpiresAt time.Time
}

// SessionStore is the token-expiry lookup collaborator of the gatekeeper.
// The gate only reads sessions; issuance and deletion belong to login/logout.
type SessionStore interface {
	// Get returns the session bound to token. found is false when the token
	// is unknown. Callers must treat a non-nil error the same as not found.
	Get(ctx context.Context, token string) (session Session, found bool, err error)
	Put(ctx context.Context, token string, session Session) error
	Delete(ctx context.Context, token string) error
}
