package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-feedback/internal/logger"
	"github.com/MKhiriev/go-feedback/internal/store"
	"github.com/MKhiriev/go-feedback/models"
)

type userService struct {
	guard              GuardService
	userRepository     store.UserRepository
	feedbackRepository store.FeedbackRepository
	logger             *logger.Logger
}

func NewUserService(guard GuardService, userRepository store.UserRepository, feedbackRepository store.FeedbackRepository, logger *logger.Logger) UserService {
	return &userService{
		guard:              guard,
		userRepository:     userRepository,
		feedbackRepository: feedbackRepository,
		logger:             logger,
	}
}

// GetProfile returns the user and its feedback, for the owner only.
func (s *userService) GetProfile(ctx context.Context, identity, username string) (models.UserPage, error) {
	if err := s.guard.AuthorizeUser(ctx, identity, username); err != nil {
		return models.UserPage{}, err
	}

	user, err := s.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		return models.UserPage{}, fmt.Errorf("error loading user: %w", err)
	}

	feedback, err := s.feedbackRepository.ListFeedbackByUsername(ctx, username)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.GetProfile").Msg("error listing feedback")
		return models.UserPage{}, fmt.Errorf("error listing feedback: %w", err)
	}

	return models.UserPage{User: user, Feedback: feedback}, nil
}

// DeleteUser removes the account and all its feedback, for the owner only.
func (s *userService) DeleteUser(ctx context.Context, identity, username string) error {
	if err := s.guard.AuthorizeUser(ctx, identity, username); err != nil {
		return err
	}

	if err := s.userRepository.DeleteUser(ctx, username); err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}

	logger.FromContext(ctx).Info().Str("username", username).Msg("user deleted")
	return nil
}
