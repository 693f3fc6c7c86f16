package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fridayfive/backend/internal/handler"
	"github.com/fridayfive/backend/internal/listing"
	"github.com/fridayfive/backend/internal/logging"
	"github.com/fridayfive/backend/internal/prefs"
	"github.com/fridayfive/backend/internal/repository"
	"github.com/fridayfive/backend/internal/service"
	"github.com/fridayfive/backend/pkg/auth"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		sessionSecret = "dev-secret-change-in-production-32bytes"
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin-dev-password"
		slog.Warn("ADMIN_PASSWORD not set, using the development default")
	}

	prefsPath := os.Getenv("PREFS_PATH")
	if prefsPath == "" {
		prefsPath = "./data/column-prefs.json"
	}

	// No DATABASE_URL means degraded mode: the server stays up, reads come
	// back empty and writes fail with a tagged "unavailable" error instead
	// of crashing callers.
	var pool *pgxpool.Pool
	var submissionRepo repository.SubmissionRepository
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		var err error
		pool, err = repository.NewPool(context.Background(), dbURL)
		if err != nil {
			logging.Fatal("failed to connect to database", "error", err)
		}
		defer pool.Close()
		submissionRepo = repository.NewPgSubmissionRepository(pool)
	} else {
		slog.Warn("DATABASE_URL not set, running without a submission store")
		submissionRepo = repository.NewUnavailableSubmissionRepository()
	}

	engine := listing.NewEngine(submissionRepo)
	if err := engine.Load(context.Background()); err != nil {
		if errors.Is(err, repository.ErrUnavailable) {
			slog.Warn("submission store unavailable, starting with an empty view")
		} else {
			logging.Fatal("initial submission load failed", "error", err)
		}
	}

	submissionService := service.NewSubmissionService(submissionRepo)

	sessionSecretBytes := auth.SessionSecretBytes(sessionSecret)
	authRequired := os.Getenv("AUTH_REQUIRED") != "false"

	healthHandler := handler.NewHealthHandler(pool)
	authHandler := handler.NewAuthHandler(adminPassword, sessionSecretBytes)
	submissionHandler := handler.NewSubmissionHandler(submissionService)
	adminHandler := handler.NewAdminSubmissionHandler(engine)
	prefsHandler := handler.NewPrefsHandler(prefs.NewFileStore(prefsPath))

	publicLimiter := handler.NewRateLimiter(30)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", healthHandler.Health)

	// Anonymous surfaces get rate limiting.
	mux.Handle("POST /api/auth/login", publicLimiter.Middleware(http.HandlerFunc(authHandler.Login)))
	mux.Handle("POST /api/submissions", publicLimiter.Middleware(http.HandlerFunc(submissionHandler.Submit)))
	mux.HandleFunc("POST /api/auth/logout", authHandler.Logout)
	mux.HandleFunc("GET /api/auth/me", authHandler.Me)

	wrapAuth := func(next http.Handler) http.Handler {
		if authRequired {
			return auth.RequireAuth(sessionSecretBytes)(next)
		}
		return auth.DevAuth(next)
	}
	mux.Handle("GET /api/admin/submissions", wrapAuth(http.HandlerFunc(adminHandler.List)))
	mux.Handle("POST /api/admin/submissions/reload", wrapAuth(http.HandlerFunc(adminHandler.Reload)))
	mux.Handle("POST /api/admin/submissions/random", wrapAuth(http.HandlerFunc(adminHandler.Random)))
	mux.Handle("POST /api/admin/submissions/commit", wrapAuth(http.HandlerFunc(adminHandler.Commit)))
	mux.Handle("PATCH /api/admin/submissions/{id}/selected", wrapAuth(http.HandlerFunc(adminHandler.ToggleSelected)))
	mux.Handle("DELETE /api/admin/submissions/{id}", wrapAuth(http.HandlerFunc(adminHandler.Delete)))
	mux.Handle("GET /api/admin/prefs/columns", wrapAuth(http.HandlerFunc(prefsHandler.GetColumns)))
	mux.Handle("PUT /api/admin/prefs/columns", wrapAuth(http.HandlerFunc(prefsHandler.PutColumns)))

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           86400,
	})

	root := handler.RequestLogger(handler.SecurityHeaders(c.Handler(mux)))

	server := &http.Server{
		Addr:         ":8080",
		Handler:      root,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
