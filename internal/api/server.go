// Package api provides the HTTP API server and handlers for the ShelfTalk application.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/shelftalk/shelftalk-server/internal/http/response"
	"github.com/shelftalk/shelftalk-server/internal/ratelimit"
	"github.com/shelftalk/shelftalk-server/internal/service"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	authService           *service.AuthService
	recommendationService *service.RecommendationService
	loginLimiter          *ratelimit.KeyedRateLimiter
	router                *chi.Mux
	logger                *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
// loginLimiter guards the token endpoint; pass nil to disable rate limiting.
func NewServer(
	authService *service.AuthService,
	recommendationService *service.RecommendationService,
	loginLimiter *ratelimit.KeyedRateLimiter,
	logger *slog.Logger,
) *Server {
	s := &Server{
		authService:           authService,
		recommendationService: recommendationService,
		loginLimiter:          loginLimiter,
		router:                chi.NewRouter(),
		logger:                logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check.
	s.router.Get("/health", s.handleHealthCheck)

	s.router.Route("/auth", func(r chi.Router) {
		r.Post("/register", s.handleRegister)

		// Token issuance is the credential-guessing surface; rate limit by IP.
		r.With(s.loginRateLimit).Post("/token", s.handleToken)

		r.Route("/users/me", func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Get("/", s.handleGetCurrentUser)
			r.Put("/update", s.handleUpdateProfile)
			r.Get("/recommendations", s.handleListMyRecommendations)
			r.Delete("/", s.handleDeleteAccount)
		})
	})

	s.router.With(s.requireAuth).Post("/recommend", s.handleCreateRecommendation)

	s.router.Route("/recommendations", func(r chi.Router) {
		// Reads are public; only deletion needs an owner.
		r.Get("/{id}", s.handleGetRecommendation)
		r.With(s.requireAuth).Delete("/{id}", s.handleDeleteRecommendation)
	})
}

// handleHealthCheck returns server health status.
func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, map[string]string{
		"status": "healthy",
	}, s.logger)
}
