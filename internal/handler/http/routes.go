package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.live)
		r.Post("/register", h.register)
		r.Post("/login", h.login)
	})

	// routes that require a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/analyze", h.analyze)
		r.Post("/history", h.history)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
