package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const (
	defaultRequestTimeout = 30 * time.Second
	corsMaxAge            = 300
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(h.requestTimeout()))
	router.Use(cors.Handler(h.corsOptions()))
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/refresh", h.refresh)
		r.Post("/api/auth/password-reset-request", h.passwordResetRequest)
		r.Post("/api/auth/password-reset", h.passwordReset)

		r.Get("/api/version", h.version)
		r.Get("/api/health", h.health)
	})

	// routes resolving the caller from the access token
	router.Group(func(r chi.Router) {
		r.Get("/api/user/profile", h.requireAccessToken(h.profile))
		r.Get("/api/auth/profile", h.requireAccessToken(h.profile))
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	return router
}

func (h *Handler) requestTimeout() time.Duration {
	if h.cfg.RequestTimeout <= 0 {
		return defaultRequestTimeout
	}
	return h.cfg.RequestTimeout
}

func (h *Handler) corsOptions() cors.Options {
	origins := h.cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         corsMaxAge,
	}
}
