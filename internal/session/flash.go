package session

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-feedback/internal/utils"
	"github.com/MKhiriev/go-feedback/models"
)

const defaultFlashCookieName = "notice"

// Flasher carries one-shot notices to the next page a browser renders. Notices
// live in an HMAC-signed cookie until Pop consumes them.
type Flasher struct {
	cookie  cookieOptions
	signKey string
}

func NewFlasher(signKey string, secure bool) *Flasher {
	return &Flasher{
		cookie:  cookieOptions{name: defaultFlashCookieName, secure: secure},
		signKey: signKey,
	}
}

// Flash queues notice after any notices still pending on r.
func (f *Flasher) Flash(w http.ResponseWriter, r *http.Request, notice models.Notice) {
	notices := append(f.pending(r), notice)

	payload, err := json.Marshal(notices)
	if err != nil {
		return
	}

	encoded := base64.RawURLEncoding.EncodeToString(payload)
	f.cookie.set(w, encoded+"."+utils.HashString(encoded, f.signKey), 0)
}

// Pop returns the pending notices and clears them.
func (f *Flasher) Pop(w http.ResponseWriter, r *http.Request) []models.Notice {
	notices := f.pending(r)
	if _, ok := f.cookie.read(r); ok {
		f.cookie.expire(w)
	}
	return notices
}

func (f *Flasher) pending(r *http.Request) []models.Notice {
	raw, ok := f.cookie.read(r)
	if !ok {
		return nil
	}

	encoded, signature, found := strings.Cut(raw, ".")
	if !found || !utils.VerifyHashString(encoded, signature, f.signKey) {
		return nil
	}

	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil
	}

	var notices []models.Notice
	if err = json.Unmarshal(payload, &notices); err != nil {
		return nil
	}
	return notices
}
