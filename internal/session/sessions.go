package session

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-feedback/internal/config"
	"github.com/MKhiriev/go-feedback/internal/logger"
)

// Sessions bundles the configured identity Store with the notice Flasher.
type Sessions struct {
	Store   Store
	Flasher *Flasher

	redis *redis.Client
}

// NewSessions builds the backend selected by cfg.Backend. The redis backend
// connects eagerly and fails if Redis is unreachable.
func NewSessions(ctx context.Context, cfg config.Session, log *logger.Logger) (*Sessions, error) {
	s := &Sessions{Flasher: NewFlasher(cfg.SignKey, cfg.SecureCookie)}

	switch cfg.Backend {
	case config.SessionBackendCookie:
		s.Store = NewCookieStore(cfg.CookieName, cfg.SignKey, cfg.Issuer, cfg.Duration, cfg.SecureCookie)
	case config.SessionBackendRedis:
		client, err := NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Err(err).Str("func", "NewSessions").Msg("error connecting redis")
			return nil, err
		}
		s.redis = client
		s.Store = NewRedisStore(client, cfg.CookieName, cfg.SignKey, cfg.Duration, cfg.SecureCookie)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}

	log.Info().Str("backend", cfg.Backend).Msg("session store ready")
	return s, nil
}

// Close releases the Redis connection, if any.
func (s *Sessions) Close() error {
	if s.redis == nil {
		return nil
	}
	return s.redis.Close()
}
