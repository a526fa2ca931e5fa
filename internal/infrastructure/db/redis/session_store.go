package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

// SessionStore keeps opaque session tokens in Redis.
// Key format: session:<token>, value "<user_id>:<role>", TTL = time to expiry.
// The key's own TTL and the session's ExpiresAt agree by construction, so an
// expired session is simply absent.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore wraps the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) Get(ctx context.Context, token string) (ports.Session, bool, error) {
	key := s.key(token)

	value, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return ports.Session{}, false, nil
	}
	if err != nil {
		return ports.Session{}, false, fmt.Errorf("session get: %w", err)
	}

	ttl, err := s.client.TTL(ctx, key).Result()
	if err != nil {
		return ports.Session{}, false, fmt.Errorf("session ttl: %w", err)
	}

	userID, role := splitSessionValue(value)
	return ports.Session{
		UserID:    userID,
		Role:      role,
		ExpiresAt: time.Now().Add(ttl),
	}, true, nil
}

func (s *SessionStore) Put(ctx context.Context, token string, session ports.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session put: expiry %v is not in the future", session.ExpiresAt)
	}
	value := session.UserID + ":" + session.Role
	if err := s.client.Set(ctx, s.key(token), value, ttl).Err(); err != nil {
		return fmt.Errorf("session put: %w", err)
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}

func (s *SessionStore) key(token string) string {
	return "session:" + token
}

func splitSessionValue(value string) (userID, role string) {
	for i := len(value) - 1; i >= 0; i-- {
		if value[i] == ':' {
			return value[:i], value[i+1:]
		}
	}
	return value, ""
}
