package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-feedback/internal/logger"
	"github.com/MKhiriev/go-feedback/internal/metrics"
	"github.com/MKhiriev/go-feedback/internal/service"
	"github.com/MKhiriev/go-feedback/internal/session"
	"github.com/MKhiriev/go-feedback/models"
)

const (
	testSignKey    = "handler-test-sign-key"
	testCookieName = "session"
)

// ─────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────

type fakeAuthService struct {
	register     func(ctx context.Context, form models.RegisterForm) (models.User, error)
	authenticate func(ctx context.Context, form models.LoginForm) (models.User, error)
}

func (f *fakeAuthService) Register(ctx context.Context, form models.RegisterForm) (models.User, error) {
	return f.register(ctx, form)
}

func (f *fakeAuthService) HashUser(form models.RegisterForm) (models.User, error) {
	return models.User{Username: form.Username}, nil
}

func (f *fakeAuthService) Authenticate(ctx context.Context, form models.LoginForm) (models.User, error) {
	return f.authenticate(ctx, form)
}

type fakeGuardService struct {
	authorizeUser     func(ctx context.Context, identity, username string) error
	authorizeFeedback func(ctx context.Context, identity string, id int64) (models.Feedback, error)
}

func (f *fakeGuardService) IsAuthorized(identity, owner string) bool {
	return identity != "" && identity == owner
}

func (f *fakeGuardService) AuthorizeUser(ctx context.Context, identity, username string) error {
	return f.authorizeUser(ctx, identity, username)
}

func (f *fakeGuardService) AuthorizeFeedback(ctx context.Context, identity string, id int64) (models.Feedback, error) {
	return f.authorizeFeedback(ctx, identity, id)
}

type fakeUserService struct {
	getProfile func(ctx context.Context, identity, username string) (models.UserPage, error)
	deleteUser func(ctx context.Context, identity, username string) error
}

func (f *fakeUserService) GetProfile(ctx context.Context, identity, username string) (models.UserPage, error) {
	return f.getProfile(ctx, identity, username)
}

func (f *fakeUserService) DeleteUser(ctx context.Context, identity, username string) error {
	return f.deleteUser(ctx, identity, username)
}

type fakeFeedbackService struct {
	add    func(ctx context.Context, identity, username string, form models.FeedbackForm) (models.Feedback, error)
	get    func(ctx context.Context, identity string, id int64) (models.Feedback, error)
	update func(ctx context.Context, identity string, id int64, form models.FeedbackForm) (models.Feedback, error)
	delete func(ctx context.Context, identity string, id int64) (models.Feedback, error)
}

func (f *fakeFeedbackService) Add(ctx context.Context, identity, username string, form models.FeedbackForm) (models.Feedback, error) {
	return f.add(ctx, identity, username, form)
}

func (f *fakeFeedbackService) Get(ctx context.Context, identity string, id int64) (models.Feedback, error) {
	return f.get(ctx, identity, id)
}

func (f *fakeFeedbackService) Update(ctx context.Context, identity string, id int64, form models.FeedbackForm) (models.Feedback, error) {
	return f.update(ctx, identity, id, form)
}

func (f *fakeFeedbackService) Delete(ctx context.Context, identity string, id int64) (models.Feedback, error) {
	return f.delete(ctx, identity, id)
}

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(_ context.Context) string {
	return f.version
}

func (f *fakeAppInfoService) GetBuildInfo(_ context.Context) models.AppBuildInfo {
	return models.NewAppBuildInfo(f.version, "", "")
}

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(_ context.Context) error {
	return f.err
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestSessions() *session.Sessions {
	return &session.Sessions{
		Store:   session.NewCookieStore(testCookieName, testSignKey, "go-feedback", time.Hour, false),
		Flasher: session.NewFlasher(testSignKey, false),
	}
}

// newTestHandler wires h over services with cookie sessions and a healthy
// database. Unused service fields may stay nil.
func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()

	if services.AppInfoService == nil {
		services.AppInfoService = &fakeAppInfoService{version: "test-version"}
	}
	return NewHandler(services, newTestSessions(), &fakePinger{}, metrics.New(), 0, logger.Nop())
}

// sessionCookie mints the cookie a browser would hold after logging in as username.
func sessionCookie(t *testing.T, h *Handler, username string) *http.Cookie {
	t.Helper()

	rec := httptest.NewRecorder()
	require.NoError(t, h.sessions.Store.SetUsername(rec, httptest.NewRequest(http.MethodGet, "/", nil), username))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

// do sends one request through the full router. A non-nil form is sent as
// an URL-encoded body.
func do(h *Handler, method, target string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// noticesFrom returns the notices a redirect response queued for the next page.
func noticesFrom(h *Handler, rec *httptest.ResponseRecorder) []models.Notice {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return h.sessions.Flasher.Pop(httptest.NewRecorder(), req)
}

func responseCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func notice(category models.NoticeCategory, message string) []models.Notice {
	return []models.Notice{{Category: category, Message: message}}
}
