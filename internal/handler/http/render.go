package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-feedback/internal/logger"
	"github.com/MKhiriev/go-feedback/internal/utils"
	"github.com/MKhiriev/go-feedback/internal/validators"
	"github.com/MKhiriev/go-feedback/models"
)

const (
	pageRegister     = "register.html"
	pageLogin        = "login.html"
	pageUser         = "user.html"
	pageFeedbackForm = "feedback_form.html"
	pageError        = "error.html"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = parsePages(pageRegister, pageLogin, pageUser, pageFeedbackForm, pageError)

// parsePages builds one template set per page, each on its own clone of
// the layout so that every page can define its own "content" block.
func parsePages(names ...string) map[string]*template.Template {
	layout := template.Must(template.New("layout.html").ParseFS(templateFS, "templates/layout.html"))

	parsed := make(map[string]*template.Template, len(names))
	for _, name := range names {
		parsed[name] = template.Must(template.Must(layout.Clone()).ParseFS(templateFS, "templates/"+name))
	}
	return parsed
}

// pageData is the single model every template renders from.
type pageData struct {
	Title    string
	Identity string
	Notices  []models.Notice
	Errors   validators.FieldErrors

	Form     any
	Action   string
	User     models.User
	Feedback []models.Feedback

	Status  int
	Message string
}

// render executes page into a buffer first so a template failure never
// leaves a half-written response behind.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data pageData) {
	log := logger.FromRequest(r)

	data.Identity, _ = utils.GetUsernameFromContext(r.Context())
	data.Notices = h.sessions.Flasher.Pop(w, r)

	tmpl, ok := pages[page]
	if !ok {
		log.Error().Str("page", page).Msg("unknown page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Err(err).Str("page", page).Msg("error rendering page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// renderError answers with the error page whose status is derived from err.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Int("status", status).Msg("request failed")
	}

	h.render(w, r, status, pageError, pageData{
		Title:   http.StatusText(status),
		Status:  status,
		Message: http.StatusText(status),
	})
}

func (h *Handler) flash(w http.ResponseWriter, r *http.Request, category models.NoticeCategory, message string) {
	h.sessions.Flasher.Flash(w, r, models.Notice{Category: category, Message: message})
}

// redirectWithNotice queues a notice for the next page and redirects there.
func (h *Handler) redirectWithNotice(w http.ResponseWriter, r *http.Request, to string, category models.NoticeCategory, message string) {
	h.flash(w, r, category, message)
	http.Redirect(w, r, to, http.StatusFound)
}

func userPath(username string) string {
	return "/users/" + url.PathEscape(username)
}
