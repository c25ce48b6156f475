// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/trananh/movira/internal/catalog/film"
	"github.com/trananh/movira/internal/catalog/importer"
	"github.com/trananh/movira/internal/catalog/person"
	"github.com/trananh/movira/internal/media/post"
	"github.com/trananh/movira/internal/platform/config"
	"github.com/trananh/movira/internal/platform/constants"
	"github.com/trananh/movira/internal/platform/middleware"
	"github.com/trananh/movira/internal/platform/sec"
	"github.com/trananh/movira/internal/social/comment"
	"github.com/trananh/movira/internal/social/like"
	"github.com/trananh/movira/internal/social/notification"
	"github.com/trananh/movira/internal/social/subject"
	"github.com/trananh/movira/internal/users/auth"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here. No other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler. Always returns 200 if the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. Returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles authentication routes (login, register, refresh).
	Auth *auth.Handler

	// Post handles the community feed of image and article posts.
	Post *post.Handler

	// Comment handles threaded comments under posts and films.
	Comment *comment.Handler

	// Like handles like and unlike toggles plus the operator recount.
	Like *like.Handler

	// Notification handles the per-user notification inbox.
	Notification *notification.Handler

	// Film serves the film catalogue.
	Film *film.Handler

	// Person serves the cast and crew catalogue.
	Person *person.Handler

	// Importer handles operator-only TMDB imports.
	Importer *importer.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under a versioned prefix. The
	// request timeout is applied per group because admin imports fan out to
	// an upstream provider and need more headroom than interactive traffic.
	r.Route("/api/v1", func(api chi.Router) {
		api.Group(func(std chi.Router) {
			std.Use(chimw.Timeout(constants.GlobalRequestTimeout))

			std.Mount("/auth", h.Auth.Routes())

			std.Route("/posts", func(posts chi.Router) {
				h.Post.Routes()(posts)
				posts.Route("/{subjectID}/comments", h.Comment.SubjectRoutes(subject.KindPost))
			})

			std.Route("/films", func(films chi.Router) {
				h.Film.Routes()(films)
				films.Route("/{subjectID}/comments", h.Comment.SubjectRoutes(subject.KindFilm))
			})

			std.Route("/people", h.Person.Routes())
			std.Route("/comments", h.Comment.ItemRoutes())

			std.Route("/likes", func(likes chi.Router) {
				likes.Use(middleware.RequireAuth)
				h.Like.Routes()(likes)
			})

			std.Route("/notifications", func(inbox chi.Router) {
				inbox.Use(middleware.RequireAuth)
				h.Notification.Routes()(inbox)
			})
		})

		api.Route("/admin", func(admin chi.Router) {
			admin.Use(chimw.Timeout(constants.ImportRequestTimeout))
			admin.Use(middleware.RequireAuth)
			admin.Use(middleware.RequireRole(sec.RoleAdmin))

			h.Like.AdminRoutes()(admin)
			h.Importer.Routes()(admin)
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
