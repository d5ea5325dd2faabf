package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-feedback/internal/logger"
	"github.com/MKhiriev/go-feedback/internal/store"
	"github.com/MKhiriev/go-feedback/internal/validators"
	"github.com/MKhiriev/go-feedback/models"
)

// feedbackService runs every operation behind the guard first: nothing is
// validated or written for a caller that does not own the resource.
type feedbackService struct {
	guard              GuardService
	feedbackRepository store.FeedbackRepository
	logger             *logger.Logger
}

// NewFeedbackService constructs a FeedbackService whose operations are all
// checked by guard.
func NewFeedbackService(guard GuardService, feedbackRepository store.FeedbackRepository, logger *logger.Logger) FeedbackService {
	return &feedbackService{
		guard:              guard,
		feedbackRepository: feedbackRepository,
		logger:             logger,
	}
}

// Add stores a new note for username. Only username itself may add one.
func (s *feedbackService) Add(ctx context.Context, identity, username string, form models.FeedbackForm) (models.Feedback, error) {
	if err := s.guard.AuthorizeUser(ctx, identity, username); err != nil {
		return models.Feedback{}, err
	}

	if fieldErrors := validators.ValidateForm(ctx, form); len(fieldErrors) > 0 {
		return models.Feedback{}, fieldErrors
	}

	created, err := s.feedbackRepository.CreateFeedback(ctx, models.Feedback{
		Title:    form.Title,
		Content:  form.Content,
		Username: username,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*feedbackService.Add").Msg("error creating feedback")
		return models.Feedback{}, fmt.Errorf("error creating feedback: %w", err)
	}

	return created, nil
}

// Get returns the note with id if identity owns it.
func (s *feedbackService) Get(ctx context.Context, identity string, id int64) (models.Feedback, error) {
	return s.guard.AuthorizeFeedback(ctx, identity, id)
}

// Update replaces title and content of the note with id. On a validation
// failure the stored note is returned alongside the [validators.FieldErrors].
func (s *feedbackService) Update(ctx context.Context, identity string, id int64, form models.FeedbackForm) (models.Feedback, error) {
	feedback, err := s.guard.AuthorizeFeedback(ctx, identity, id)
	if err != nil {
		return models.Feedback{}, err
	}

	if fieldErrors := validators.ValidateForm(ctx, form); len(fieldErrors) > 0 {
		return feedback, fieldErrors
	}

	update := models.FeedbackUpdate{ID: id, Title: form.Title, Content: form.Content}
	if err = s.feedbackRepository.UpdateFeedback(ctx, update); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*feedbackService.Update").Int64("id", id).Msg("error updating feedback")
		return models.Feedback{}, fmt.Errorf("error updating feedback: %w", err)
	}

	feedback.Title = update.Title
	feedback.Content = update.Content
	return feedback, nil
}

// Delete removes the note with id and returns it as it was.
func (s *feedbackService) Delete(ctx context.Context, identity string, id int64) (models.Feedback, error) {
	feedback, err := s.guard.AuthorizeFeedback(ctx, identity, id)
	if err != nil {
		return models.Feedback{}, err
	}

	if err = s.feedbackRepository.DeleteFeedback(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*feedbackService.Delete").Int64("id", id).Msg("error deleting feedback")
		return models.Feedback{}, fmt.Errorf("error deleting feedback: %w", err)
	}

	return feedback, nil
}
