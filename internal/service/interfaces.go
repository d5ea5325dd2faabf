package service

import (
	"context"

	"github.com/MKhiriev/go-feedback/models"
)

// AuthService owns the password-credential flow.
type AuthService interface {
	// Register validates form, hashes the password and persists the user.
	Register(ctx context.Context, form models.RegisterForm) (models.User, error)
	// HashUser builds the user with a hashed password and returns it unsaved.
	HashUser(form models.RegisterForm) (models.User, error)
	// Authenticate returns the stored user when the password matches.
	Authenticate(ctx context.Context, form models.LoginForm) (models.User, error)
}

// GuardService decides whether a session identity may act on a resource.
type GuardService interface {
	IsAuthorized(identity, owner string) bool
	AuthorizeUser(ctx context.Context, identity, username string) error
	AuthorizeFeedback(ctx context.Context, identity string, feedbackID int64) (models.Feedback, error)
}

// UserService serves the owner-only user page and account deletion.
type UserService interface {
	GetProfile(ctx context.Context, identity, username string) (models.UserPage, error)
	DeleteUser(ctx context.Context, identity, username string) error
}

// FeedbackService manages feedback notes on behalf of their owner.
type FeedbackService interface {
	Add(ctx context.Context, identity, username string, form models.FeedbackForm) (models.Feedback, error)
	Get(ctx context.Context, identity string, id int64) (models.Feedback, error)
	Update(ctx context.Context, identity string, id int64, form models.FeedbackForm) (models.Feedback, error)
	// Delete removes the note and returns it as it was before deletion.
	Delete(ctx context.Context, identity string, id int64) (models.Feedback, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
