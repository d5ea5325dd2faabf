package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-feedback/internal/config"
	"github.com/MKhiriev/go-feedback/internal/logger"
	"github.com/MKhiriev/go-feedback/internal/mock"
	"github.com/MKhiriev/go-feedback/internal/store"
	"github.com/MKhiriev/go-feedback/internal/validators"
	"github.com/MKhiriev/go-feedback/models"
)

// newTestAuthSvc builds an authService over a mocked repository with the
// cheapest bcrypt cost.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(repo, config.App{PasswordHashCost: bcrypt.MinCost}, logger.Nop()).(*authService)
	return svc, repo
}

var aliceForm = models.RegisterForm{
	Username:  "alice",
	Password:  "pw1",
	Email:     "alice@example.com",
	FirstName: "Alice",
	LastName:  "Liddell",
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_StoresHashNotPlaintext(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "alice", u.Username)
			assert.NotEqual(t, "pw1", u.Password)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("pw1")))
			return u, nil
		},
	)

	user, err := svc.Register(ctx, aliceForm)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "pw1", user.Password)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUsernameAlreadyExists)

	_, err := svc.Register(context.Background(), aliceForm)
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

func TestAuthService_Register_InvalidFormSkipsStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	form := aliceForm
	form.Email = "nope"

	_, err := svc.Register(context.Background(), form)

	var fieldErrors validators.FieldErrors
	require.True(t, errors.As(err, &fieldErrors))
	assert.Equal(t, "Invalid email address.", fieldErrors.First("email"))
}

func TestAuthService_Register_MultibytePasswordOverBcryptLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	form := aliceForm
	form.Password = strings.Repeat("é", 40)

	_, err := svc.Register(context.Background(), form)

	var fieldErrors validators.FieldErrors
	require.True(t, errors.As(err, &fieldErrors))
	assert.Equal(t, "Field cannot be longer than 72 bytes.", fieldErrors.First("password"))
}

func TestAuthService_HashUser_DoesNotPersist(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	user, err := svc.HashUser(aliceForm)
	require.NoError(t, err)

	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "Alice", user.FirstName)
	assert.Equal(t, "Liddell", user.LastName)

	cost, err := bcrypt.Cost([]byte(user.Password))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestAuthService_HashUser_SaltsEachHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	first, err := svc.HashUser(aliceForm)
	require.NoError(t, err)
	second, err := svc.HashUser(aliceForm)
	require.NoError(t, err)

	assert.NotEqual(t, first.Password, second.Password)
}

// ── Authenticate ─────────────────────────────────────────────────────────────

func storedAlice(t *testing.T) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("pw1"), bcrypt.MinCost)
	require.NoError(t, err)
	return models.User{Username: "alice", Password: string(hash), FirstName: "Alice"}
}

func TestAuthService_Authenticate(t *testing.T) {
	tests := []struct {
		name     string
		form     models.LoginForm
		setup    func(repo *mock.MockUserRepository, stored models.User)
		wantErr  error
		wantUser string
	}{
		{
			name: "correct password",
			form: models.LoginForm{Username: "alice", Password: "pw1"},
			setup: func(repo *mock.MockUserRepository, stored models.User) {
				repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(stored, nil)
			},
			wantUser: "alice",
		},
		{
			name: "wrong password",
			form: models.LoginForm{Username: "alice", Password: "wrong"},
			setup: func(repo *mock.MockUserRepository, stored models.User) {
				repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(stored, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name: "unknown user",
			form: models.LoginForm{Username: "bob", Password: "pw1"},
			setup: func(repo *mock.MockUserRepository, _ models.User) {
				repo.EXPECT().FindUserByUsername(gomock.Any(), "bob").Return(models.User{}, store.ErrUserNotFound)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name: "store failure",
			form: models.LoginForm{Username: "alice", Password: "pw1"},
			setup: func(repo *mock.MockUserRepository, _ models.User) {
				repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{}, store.ErrExecutingQuery)
			},
			wantErr: store.ErrExecutingQuery,
		},
		{
			name:    "empty form",
			form:    models.LoginForm{},
			setup:   func(*mock.MockUserRepository, models.User) {},
			wantErr: validators.ErrInvalidForm,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo := newTestAuthSvc(t, ctrl)
			tt.setup(repo, storedAlice(t))

			user, err := svc.Authenticate(context.Background(), tt.form)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, user.Username)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUser, user.Username)
		})
	}
}

// TestAuthService_Authenticate_FailuresIndistinguishable checks that callers
// cannot tell an unknown user from a wrong password.
func TestAuthService_Authenticate_FailuresIndistinguishable(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(storedAlice(t), nil)
	repo.EXPECT().FindUserByUsername(gomock.Any(), "ghost").Return(models.User{}, store.ErrUserNotFound)

	_, wrongPassword := svc.Authenticate(context.Background(), models.LoginForm{Username: "alice", Password: "x"})
	_, unknownUser := svc.Authenticate(context.Background(), models.LoginForm{Username: "ghost", Password: "x"})

	assert.Equal(t, wrongPassword, unknownUser)
}
