package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/coursedesk/media-library/docs"
	"github.com/coursedesk/media-library/internal/clients"
	"github.com/coursedesk/media-library/internal/config"
	"github.com/coursedesk/media-library/internal/handlers"
	"github.com/coursedesk/media-library/internal/logger"
	"github.com/coursedesk/media-library/internal/middlewares"
	"github.com/coursedesk/media-library/internal/services"
)

const maxRequestSize = 1 * 1024 * 1024 // 1MB, the API carries JSON only

// @title CourseDesk Media Library API
// @version 1.0
// @description Assignment and filtering engine for the course media library

// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description API key for service-to-service authentication
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting CourseDesk Media Library Service")

	// Initialize collaborator client and library service
	libraryClient := clients.NewLibraryClient(cfg.Collaborators, cfg.APIKey)
	libraryService := services.NewLibraryService(libraryClient, cfg.CatalogLocale)

	// Load the initial lesson catalog; a failure here is not fatal, the
	// catalog can be refreshed on demand
	startupCtx, cancel := context.WithTimeout(context.Background(), cfg.Collaborators.RequestTimeout)
	if err := libraryService.RefreshLessons(startupCtx); err != nil {
		logger.Logger.Warn("initial lesson catalog load failed", zap.Error(err))
	}
	cancel()

	// Initialize middleware and handlers
	apiKeyMw := middlewares.APIKeyMiddleware(cfg.APIKey)
	libraryHandler := handlers.NewLibraryHandler(libraryService, logger.Logger, apiKeyMw)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middlewares.RequestIDMiddleware)
	r.Use(middlewares.LoggerMiddleware(logger.Logger))
	r.Use(middlewares.RecoveryMiddleware(logger.Logger))
	r.Use(middlewares.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middlewares.RequestSizeLimitMiddleware(maxRequestSize))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Scope router to /api/v1
	r.Route("/api/v1", func(r chi.Router) {
		libraryHandler.RegisterRoutes(r)
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}
