package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-feedback/internal/config"
	"github.com/MKhiriev/go-feedback/internal/logger"
	"github.com/MKhiriev/go-feedback/internal/store"
	"github.com/MKhiriev/go-feedback/internal/validators"
	"github.com/MKhiriev/go-feedback/models"
)

// authService hashes passwords with bcrypt on registration and verifies them
// on login. The plaintext password never leaves this type.
type authService struct {
	userRepository store.UserRepository

	// hashCost is the bcrypt work factor used for new hashes. Stored hashes
	// carry their own cost, so changing it never breaks existing logins.
	hashCost int

	// dummyHash is compared against when the username is unknown so both
	// failure paths spend the same bcrypt time.
	dummyHash []byte

	logger *logger.Logger
}

// NewAuthService constructs an AuthService over userRepository using the work
// factor from cfg.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	cost := cfg.PasswordHashCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	dummyHash, err := bcrypt.GenerateFromPassword([]byte("go-feedback"), cost)
	if err != nil {
		logger.Err(err).Str("func", "NewAuthService").Msg("error generating dummy hash")
	}

	return &authService{
		userRepository: userRepository,
		hashCost:       cost,
		dummyHash:      dummyHash,
		logger:         logger,
	}
}

// Register validates form, hashes its password and stores the new user.
//
// Returns [validators.FieldErrors] on invalid input and a wrapped
// [store.ErrUsernameAlreadyExists] when the username is taken.
func (a *authService) Register(ctx context.Context, form models.RegisterForm) (models.User, error) {
	log := logger.FromContext(ctx)

	if fieldErrors := validators.ValidateForm(ctx, form); len(fieldErrors) > 0 {
		log.Debug().Object("form", form).Str("errors", fieldErrors.Error()).Msg("invalid registration form")
		return models.User{}, fieldErrors
	}

	user, err := a.HashUser(form)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Object("form", form).Msg("error hashing password")
		return models.User{}, err
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Object("form", form).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("username", registeredUser.Username).Msg("user registered")
	return registeredUser, nil
}

// HashUser returns the user described by form with its password replaced by
// a bcrypt hash. Nothing is persisted.
func (a *authService) HashUser(form models.RegisterForm) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), a.hashCost)
	if err != nil {
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	return models.User{
		Username:  form.Username,
		Password:  string(hash),
		Email:     form.Email,
		FirstName: form.FirstName,
		LastName:  form.LastName,
	}, nil
}

// Authenticate looks the user up and compares the password with the stored
// hash. Unknown usernames and wrong passwords both yield
// [ErrInvalidCredentials].
func (a *authService) Authenticate(ctx context.Context, form models.LoginForm) (models.User, error) {
	log := logger.FromContext(ctx)

	if fieldErrors := validators.ValidateForm(ctx, form); len(fieldErrors) > 0 {
		return models.User{}, fieldErrors
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, form.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		_ = bcrypt.CompareHashAndPassword(a.dummyHash, []byte(form.Password))
		log.Info().Object("form", form).Msg("login for unknown user")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Authenticate").Object("form", form).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(form.Password)); err != nil {
		log.Info().Object("form", form).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}
