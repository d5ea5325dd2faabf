package store

import (
	"context"

	"github.com/MKhiriev/go-feedback/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// DeleteUser removes the user and every feedback it owns in one transaction.
	DeleteUser(ctx context.Context, username string) error
}

// FeedbackRepository persists feedback notes.
type FeedbackRepository interface {
	CreateFeedback(ctx context.Context, feedback models.Feedback) (models.Feedback, error)
	FindFeedbackByID(ctx context.Context, id int64) (models.Feedback, error)
	ListFeedbackByUsername(ctx context.Context, username string) ([]models.Feedback, error)
	UpdateFeedback(ctx context.Context, update models.FeedbackUpdate) error
	DeleteFeedback(ctx context.Context, id int64) error
}
