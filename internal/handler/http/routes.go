package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(5, "text/html", "text/plain", "application/json"))
	router.Use(h.withSession)

	// service endpoints
	router.Group(func(r chi.Router) {
		r.Get("/version", h.getServerVersion)
		r.Get("/health", h.health)
		r.Handle("/metrics", h.metrics.Handler())
	})

	// anonymous pages
	router.Group(func(r chi.Router) {
		r.Get("/", h.index)
		r.Get("/register", h.registerPage)
		r.Post("/register", h.register)
		r.Get("/login", h.loginPage)
		r.Post("/login", h.login)
		r.Get("/logout", h.logout)
	})

	// owner-only pages, the guard runs inside every handler
	router.Group(func(r chi.Router) {
		r.Get("/users/{username}", h.showUser)
		r.Post("/users/{username}/delete", h.deleteUser)
		r.Get("/users/{username}/feedback/add", h.addFeedbackPage)
		r.Post("/users/{username}/feedback/add", h.addFeedback)
		r.Get("/feedback/{id}/update", h.updateFeedbackPage)
		r.Post("/feedback/{id}/update", h.updateFeedback)
		r.Post("/feedback/{id}/delete", h.deleteFeedback)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
