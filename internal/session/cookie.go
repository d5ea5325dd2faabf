package session

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-feedback/internal/logger"
	"github.com/MKhiriev/go-feedback/internal/utils"
)

// CookieStore keeps the identity in a signed JWT inside the session cookie.
type CookieStore struct {
	cookie   cookieOptions
	signKey  string
	issuer   string
	duration time.Duration
}

func NewCookieStore(cookieName, signKey, issuer string, duration time.Duration, secure bool) *CookieStore {
	return &CookieStore{
		cookie:   cookieOptions{name: cookieName, secure: secure},
		signKey:  signKey,
		issuer:   issuer,
		duration: duration,
	}
}

func (s *CookieStore) Username(r *http.Request) (string, bool) {
	raw, ok := s.cookie.read(r)
	if !ok {
		return "", false
	}

	token, err := utils.ValidateAndParseSessionToken(raw, s.signKey, s.issuer)
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("rejected session cookie")
		return "", false
	}

	return token.Username, true
}

func (s *CookieStore) SetUsername(w http.ResponseWriter, r *http.Request, username string) error {
	if username == "" {
		return ErrEmptyUsername
	}

	token, err := utils.GenerateSessionToken(s.issuer, username, s.duration, s.signKey)
	if err != nil {
		return err
	}

	s.cookie.set(w, token.String(), s.duration)
	return nil
}

func (s *CookieStore) Clear(w http.ResponseWriter, r *http.Request) error {
	s.cookie.expire(w)
	return nil
}
