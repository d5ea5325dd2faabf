// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-feedback/internal/logger"
	"github.com/MKhiriev/go-feedback/internal/store"
	"github.com/MKhiriev/go-feedback/models"
)

// guardService enforces the single ownership rule of the application: only
// the identity named in the session may act on resources it owns.
type guardService struct {
	feedbackRepository store.FeedbackRepository
	logger             *logger.Logger
}

// NewGuardService constructs a GuardService that looks feedback owners up in
// feedbackRepository.
func NewGuardService(feedbackRepository store.FeedbackRepository, logger *logger.Logger) GuardService {
	return &guardService{
		feedbackRepository: feedbackRepository,
		logger:             logger,
	}
}

// IsAuthorized is true iff identity is non-empty and equals owner.
func (g *guardService) IsAuthorized(identity, owner string) bool {
	return identity != "" && identity == owner
}

// AuthorizeUser returns [ErrUnauthorized] unless identity is username.
func (g *guardService) AuthorizeUser(ctx context.Context, identity, username string) error {
	if !g.IsAuthorized(identity, username) {
		logger.FromContext(ctx).Info().
			Str("identity", identity).
			Str("username", username).
			Msg("access to user denied")
		return ErrUnauthorized
	}

	return nil
}

// AuthorizeFeedback loads the feedback and checks the identity against its
// owner. A missing feedback is reported before any ownership decision.
func (g *guardService) AuthorizeFeedback(ctx context.Context, identity string, feedbackID int64) (models.Feedback, error) {
	feedback, err := g.feedbackRepository.FindFeedbackByID(ctx, feedbackID)
	if err != nil {
		return models.Feedback{}, fmt.Errorf("error loading feedback %d: %w", feedbackID, err)
	}

	if !g.IsAuthorized(identity, feedback.Username) {
		logger.FromContext(ctx).Info().
			Str("identity", identity).
			Int64("feedback_id", feedbackID).
			Msg("access to feedback denied")
		return models.Feedback{}, ErrUnauthorized
	}

	return feedback, nil
}
