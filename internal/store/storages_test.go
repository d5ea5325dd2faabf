// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-feedback/internal/config"
	"github.com/MKhiriev/go-feedback/internal/logger"
	"github.com/MKhiriev/go-feedback/migrations"
	"github.com/MKhiriev/go-feedback/models"
)

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()
	cfg := config.Storage{DB: config.DB{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "feedback.db"),
	}}

	s, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestNewStorages_UnknownDriver(t *testing.T) {
	_, err := NewStorages(context.Background(), config.Storage{DB: config.DB{Driver: "mysql"}}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

func TestSQLite_DuplicateUsernameKeepsOneRow(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	_, err := s.UserRepository.CreateUser(ctx, alice)
	require.NoError(t, err)

	dup := alice
	dup.Email = "other@example.com"
	_, err = s.UserRepository.CreateUser(ctx, dup)
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)

	var count int
	require.NoError(t, s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users WHERE username = ?", "alice").Scan(&count))
	assert.Equal(t, 1, count)

	found, err := s.UserRepository.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.Email, found.Email)
}

func TestSQLite_FeedbackForMissingUser(t *testing.T) {
	s := newSQLiteStorages(t)

	_, err := s.FeedbackRepository.CreateFeedback(context.Background(), models.Feedback{Title: "t", Content: "c", Username: "ghost"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSQLite_FeedbackLifecycleAndCascade(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	_, err := s.UserRepository.CreateUser(ctx, alice)
	require.NoError(t, err)

	first, err := s.FeedbackRepository.CreateFeedback(ctx, models.Feedback{Title: "Hi", Content: "First note", Username: "alice"})
	require.NoError(t, err)
	second, err := s.FeedbackRepository.CreateFeedback(ctx, models.Feedback{Title: "Again", Content: "Second", Username: "alice"})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)

	require.NoError(t, s.FeedbackRepository.UpdateFeedback(ctx, models.FeedbackUpdate{ID: first.ID, Title: "Hello", Content: "Edited"}))
	got, err := s.FeedbackRepository.FindFeedbackByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello", got.Title)
	assert.Equal(t, "Edited", got.Content)

	require.NoError(t, s.UserRepository.DeleteUser(ctx, "alice"))

	_, err = s.UserRepository.FindUserByUsername(ctx, "alice")
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = s.FeedbackRepository.FindFeedbackByID(ctx, second.ID)
	assert.ErrorIs(t, err, ErrFeedbackNotFound)

	list, err := s.FeedbackRepository.ListFeedbackByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.ErrorIs(t, s.UserRepository.DeleteUser(ctx, "alice"), ErrUserNotFound)
}

func TestStorages_Ping(t *testing.T) {
	s := newSQLiteStorages(t)
	assert.NoError(t, s.Ping(context.Background()))
}

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{name: "plain path", dsn: "feedback.db", want: "feedback.db?_foreign_keys=on"},
		{name: "with params", dsn: "file:feedback.db?cache=shared", want: "file:feedback.db?cache=shared&_foreign_keys=on"},
		{name: "already set", dsn: "feedback.db?_foreign_keys=off", want: "feedback.db?_foreign_keys=off"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sqliteDSN(tt.dsn))
		})
	}
}

func TestSQLite_ForeignKeysOnFreshConnections(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	// no idle connections: every query below runs on a newly opened one
	s.db.SetMaxIdleConns(0)

	for i := 0; i < 2; i++ {
		var enabled int
		require.NoError(t, s.db.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&enabled))
		assert.Equal(t, 1, enabled)
	}
}

func TestNewDB_PlaceholderFollowsDialect(t *testing.T) {
	tests := []struct {
		dialect string
		want    string
	}{
		{dialect: migrations.DialectPostgres, want: "SELECT title FROM feedback WHERE id = $1"},
		{dialect: migrations.DialectSQLite, want: "SELECT title FROM feedback WHERE id = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.dialect, func(t *testing.T) {
			db := newDB(nil, tt.dialect, logger.Nop())

			query, args, err := db.builder.Select("title").From("feedback").Where(sq.Eq{"id": int64(3000000000)}).ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, []any{int64(3000000000)}, args)
		})
	}
}
