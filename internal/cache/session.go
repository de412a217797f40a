package cache

import (
	"context"
	"time"

	"github.com/Behyna/otp-services/otpgateway/pkg/otpgateway"
)

var _ otpgateway.SessionStore = (*SessionStore)(nil)

// SessionStore scopes the shared cache to one logical verification session.
// The gateway client reads and writes its request-id slot through it.
type SessionStore struct {
	cache     Cache
	sessionID string
	ttl       time.Duration
}

func NewSessionStore(cache Cache, sessionID string, ttl time.Duration) *SessionStore {
	return &SessionStore{cache: cache, sessionID: sessionID, ttl: ttl}
}

func (s *SessionStore) Get(ctx context.Context, key string) (string, bool) {
	value, err := s.cache.Get(ctx, s.key(key))
	if err != nil {
		return "", false
	}
	return value, true
}

func (s *SessionStore) Set(ctx context.Context, key, value string) error {
	return s.cache.Set(ctx, s.key(key), value, s.ttl)
}

func (s *SessionStore) Delete(ctx context.Context, key string) error {
	return s.cache.Del(ctx, s.key(key))
}

func (s *SessionStore) key(key string) string {
	return Sessions.Key(s.sessionID) + ":" + key
}
