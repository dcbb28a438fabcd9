package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Collection names as they appear in the URL.
const (
	collectionUsers        = "users"
	collectionEmployee     = "employee"
	collectionActivityLogs = "activityLogs"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.metrics.Middleware)

	// promhttp negotiates its own compression
	if h.metrics != nil {
		router.Method("GET", "/metrics", h.metrics.Handler())
	}

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/version", h.getServerVersion)
		r.Get("/ping", h.ping)

		r.Route("/"+collectionUsers, func(r chi.Router) {
			r.Get("/", h.listUsers)
			r.Post("/", h.createUser)
			r.Patch("/{id}", h.patchUser)
		})

		r.Route("/"+collectionEmployee, func(r chi.Router) {
			r.Get("/", h.listEmployees)
			r.Post("/", h.createEmployee)
			r.Get("/{id}", h.getEmployee)
			r.Put("/{id}", h.updateEmployee)
			r.Delete("/{id}", h.deleteEmployee)
		})

		r.Route("/"+collectionActivityLogs, func(r chi.Router) {
			r.Get("/", h.listActivityLogs)
			r.Post("/", h.createActivityLog)
			r.Delete("/{id}", h.deleteActivityLog)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod())

	return router
}
