package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matchdaybr/campeonato-system/backend"
	"github.com/matchdaybr/campeonato-system/brackets"
	"github.com/matchdaybr/campeonato-system/config"
	"github.com/matchdaybr/campeonato-system/handlers"
	"github.com/matchdaybr/campeonato-system/middleware"
	api "github.com/matchdaybr/campeonato-system/routes"
	"github.com/matchdaybr/campeonato-system/services"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.String("backend", cfg.BackendBaseURL),
		slog.Duration("refresh_interval", cfg.RefreshInterval))

	// Backend client: the only data source of the service.
	backendClient := backend.NewClient(cfg.BackendBaseURL, cfg.BackendTimeout, logger)

	// WebSocket hub for live view pushes.
	wsHub := brackets.NewHub(logger)
	go wsHub.Run()
	logger.Info("WebSocket hub started")

	// Services.
	viewService := services.NewViewService(backendClient, logger)
	refreshService := services.NewRefreshService(viewService, wsHub, logger)
	logger.Info("services initialized")

	// Refresh scheduler: polls followed competitions and pushes changed
	// views to their rooms.
	schedulerCtx, cancelScheduler := context.WithCancel(context.Background())
	defer cancelScheduler()
	go refreshService.Run(schedulerCtx, cfg.RefreshInterval)

	// HTTP handlers and routes.
	auth := middleware.NewAuth(cfg.JWTSecretKey)
	competitionHandler := handlers.NewCompetitionHandler(viewService, refreshService)
	namingHandler := handlers.NewNamingHandler()
	webSocketHandler := handlers.NewWebSocketHandler(wsHub, refreshService)

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		cfg.CORSAllowedOrigins,
		auth,
		competitionHandler,
		namingHandler,
		webSocketHandler,
	)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancelScheduler()

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
