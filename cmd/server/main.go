package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tipstream/api/internal/config"
	"github.com/tipstream/api/internal/database"
	"github.com/tipstream/api/internal/handler"
	"github.com/tipstream/api/internal/middleware"
	"github.com/tipstream/api/internal/repository"
	"github.com/tipstream/api/internal/service"
)

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.JWT.Secret == "" {
		// Only possible in development; Validate rejects it elsewhere
		cfg.JWT.Secret = "tipstream-dev-secret"
		slog.Warn("JWT_SECRET not set, using development secret")
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Apply table definitions and indexes
	if err := database.ApplySchema(ctx, db); err != nil {
		slog.Error("failed to apply schema", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	tipRepo := repository.NewTipRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	// Initialize services
	tokenService := service.NewTokenService(service.TokenServiceConfig{
		Secret: cfg.JWT.Secret,
		Issuer: cfg.JWT.Issuer,
		TTL:    cfg.JWT.TTL,
	})

	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:     userRepo,
		TokenService: tokenService,
	})

	tipService := service.NewTipService(service.TipServiceConfig{
		TipRepo:     tipRepo,
		CommentRepo: commentRepo,
		UserRepo:    userRepo,
	})

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService)
	tipHandler := handler.NewTipHandler(tipService)
	healthHandler := handler.NewHealthHandler(db)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", healthHandler.Check)

	// Auth endpoints (public)
	mux.HandleFunc("POST /register", authHandler.Register)
	mux.HandleFunc("POST /login", authHandler.Login)

	// User endpoints
	authMiddleware := middleware.Auth(tokenService)
	mux.HandleFunc("GET /users", userHandler.List)
	mux.Handle("GET /users/me", authMiddleware(http.HandlerFunc(userHandler.Me)))
	mux.Handle("GET /users/{userId}", authMiddleware(http.HandlerFunc(userHandler.Get)))

	// Tip endpoints
	mux.Handle("POST /add-tips", authMiddleware(http.HandlerFunc(tipHandler.Create)))
	mux.Handle("GET /tips", authMiddleware(http.HandlerFunc(tipHandler.List)))
	mux.Handle("GET /tips/{tipId}", authMiddleware(http.HandlerFunc(tipHandler.Detail)))
	mux.Handle("POST /tips/{tipId}/up-votes", authMiddleware(http.HandlerFunc(tipHandler.UpVote)))
	mux.Handle("POST /tips/{tipId}/down-votes", authMiddleware(http.HandlerFunc(tipHandler.DownVote)))
	mux.Handle("POST /tips/{tipId}/comments", authMiddleware(http.HandlerFunc(tipHandler.AddComment)))

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
