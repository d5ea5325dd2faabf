package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-feedback/internal/logger"
	"github.com/MKhiriev/go-feedback/internal/mock"
	"github.com/MKhiriev/go-feedback/internal/store"
	"github.com/MKhiriev/go-feedback/models"
)

func TestGuardService_IsAuthorized(t *testing.T) {
	guard := NewGuardService(nil, logger.Nop())

	tests := []struct {
		identity string
		owner    string
		want     bool
	}{
		{"alice", "alice", true},
		{"alice", "bob", false},
		{"", "alice", false},
		{"", "", false},
		{"Alice", "alice", false},
	}

	for _, tt := range tests {
		t.Run(tt.identity+"->"+tt.owner, func(t *testing.T) {
			assert.Equal(t, tt.want, guard.IsAuthorized(tt.identity, tt.owner))
		})
	}
}

func TestGuardService_AuthorizeUser(t *testing.T) {
	guard := NewGuardService(nil, logger.Nop())

	assert.NoError(t, guard.AuthorizeUser(context.Background(), "alice", "alice"))
	assert.ErrorIs(t, guard.AuthorizeUser(context.Background(), "bob", "alice"), ErrUnauthorized)
	assert.ErrorIs(t, guard.AuthorizeUser(context.Background(), "", "alice"), ErrUnauthorized)
}

func TestGuardService_AuthorizeFeedback(t *testing.T) {
	note := models.Feedback{ID: 1, Title: "Hi", Content: "First note", Username: "alice"}

	tests := []struct {
		name     string
		identity string
		repoErr  error
		wantErr  error
	}{
		{name: "owner", identity: "alice"},
		{name: "other user", identity: "bob", wantErr: ErrUnauthorized},
		{name: "anonymous", identity: "", wantErr: ErrUnauthorized},
		{name: "missing feedback", identity: "alice", repoErr: store.ErrFeedbackNotFound, wantErr: store.ErrFeedbackNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockFeedbackRepository(ctrl)
			if tt.repoErr != nil {
				repo.EXPECT().FindFeedbackByID(gomock.Any(), int64(1)).Return(models.Feedback{}, tt.repoErr)
			} else {
				repo.EXPECT().FindFeedbackByID(gomock.Any(), int64(1)).Return(note, nil)
			}

			got, err := NewGuardService(repo, logger.Nop()).AuthorizeFeedback(context.Background(), tt.identity, 1)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, note, got)
		})
	}
}
