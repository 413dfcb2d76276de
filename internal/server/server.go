package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gymtrack/apiserver/config"
	"github.com/gymtrack/apiserver/internal/db"
	"github.com/gymtrack/apiserver/internal/handlers"
	"github.com/gymtrack/apiserver/internal/services"
	"github.com/gymtrack/apiserver/internal/store"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	db         *sql.DB
}

// New constructs a Server with basic middleware and defaults.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	jwtSecret := strings.TrimSpace(cfg.JWTSecret)
	if jwtSecret == "" {
		_ = dbConn.Close()
		return nil, errors.New("JWT_SECRET is required")
	}

	userRepo := store.NewUserRepository(dbConn)
	migrationRepo := store.NewMigrationRepository(dbConn)
	exerciseRepo := store.NewExerciseRepository(dbConn)
	planRepo := store.NewWorkoutPlanRepository(dbConn)
	sessionRepo := store.NewWorkoutSessionRepository(dbConn)

	userService := services.NewUserService(userRepo, migrationRepo)
	exerciseService := services.NewExerciseService(exerciseRepo)
	planService := services.NewWorkoutPlanService(planRepo)
	sessionService := services.NewWorkoutSessionService(sessionRepo)

	authMiddleware := handlers.RequireAuth(jwtSecret)

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
	)
	router.Get("/healthz", handlers.Healthz)
	router.Route("/auth", func(r chi.Router) {
		handlers.AuthRouter(r, userService, jwtSecret)
	})
	router.Route("/exercises", func(r chi.Router) {
		handlers.ExerciseRouter(r, exerciseService)
	})
	router.Route("/workout-plans", func(r chi.Router) {
		handlers.WorkoutPlanRouter(r, planService, authMiddleware)
	})
	router.Route("/workout-sessions", func(r chi.Router) {
		handlers.WorkoutSessionRouter(r, sessionService, authMiddleware)
	})

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		db:         dbConn,
	}, nil
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown() error {
	if s.db != nil {
		_ = s.db.Close()
	}
	return s.httpServer.Close()
}
