// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-feedback/internal/config"
	"github.com/MKhiriev/go-feedback/internal/logger"
	"github.com/MKhiriev/go-feedback/internal/utils"
)

const redisKeyPrefix = "session:"

// redisClient is the part of *redis.Client the store needs.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisStore keeps session ids in the cookie and usernames in Redis.
//
// The cookie value is "<id>.<hmac>" so forged ids are rejected before any
// Redis round trip.
type RedisStore struct {
	client   redisClient
	cookie   cookieOptions
	signKey  string
	duration time.Duration
	ids      *utils.UUIDGenerator
}

func NewRedisStore(client redisClient, cookieName, signKey string, duration time.Duration, secure bool) *RedisStore {
	return &RedisStore{
		client:   client,
		cookie:   cookieOptions{name: cookieName, secure: secure},
		signKey:  signKey,
		duration: duration,
		ids:      utils.NewUUIDGenerator(),
	}
}

// NewRedisClient connects to Redis and pings it.
func NewRedisClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis failed: %w", err)
	}

	return client, nil
}

func (s *RedisStore) Username(r *http.Request) (string, bool) {
	id, ok := s.sessionID(r)
	if !ok {
		return "", false
	}

	username, err := s.client.Get(r.Context(), redisKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return "", false
	}
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*RedisStore.Username").Msg("redis get session failed")
		return "", false
	}

	return username, username != ""
}

// SetUsername always issues a new session id and drops the previous one.
func (s *RedisStore) SetUsername(w http.ResponseWriter, r *http.Request, username string) error {
	if username == "" {
		return ErrEmptyUsername
	}

	if old, ok := s.sessionID(r); ok {
		if err := s.client.Del(r.Context(), redisKeyPrefix+old).Err(); err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*RedisStore.SetUsername").Msg("redis delete old session failed")
		}
	}

	id := s.ids.Generate()
	if err := s.client.Set(r.Context(), redisKeyPrefix+id, username, s.duration).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrSavingSession, err)
	}

	s.cookie.set(w, id+"."+utils.HashString(id, s.signKey), s.duration)
	return nil
}

func (s *RedisStore) Clear(w http.ResponseWriter, r *http.Request) error {
	s.cookie.expire(w)

	id, ok := s.sessionID(r)
	if !ok {
		return nil
	}

	if err := s.client.Del(r.Context(), redisKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrDeletingSession, err)
	}
	return nil
}

// sessionID returns the id from a correctly signed cookie.
func (s *RedisStore) sessionID(r *http.Request) (string, bool) {
	raw, ok := s.cookie.read(r)
	if !ok {
		return "", false
	}

	id, signature, found := strings.Cut(raw, ".")
	if !found || id == "" || !utils.VerifyHashString(id, signature, s.signKey) {
		return "", false
	}

	return id, true
}
