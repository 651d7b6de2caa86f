// Package config provides configuration for the application
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server        ServerConfig
	Logging       LoggingConfig
	CORS          CORSConfig
	Collaborators CollaboratorConfig
	APIKey        string
	CatalogLocale string
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port int
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// CollaboratorConfig holds the base URLs and timeout for the remote
// lesson and video library services
type CollaboratorConfig struct {
	LessonServiceURL string
	VideoServiceURL  string
	RequestTimeout   time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	godotenv.Load()

	cfg := &Config{}

	// Server configuration
	serverPortStr := os.Getenv("SERVER_PORT")
	if serverPortStr == "" {
		serverPortStr = "8080" // default port
	}
	serverPort, err := strconv.Atoi(serverPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}
	cfg.Server.Port = serverPort

	// Logging configuration
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info" // default level
	}
	cfg.Logging.Level = logLevel

	// CORS configuration
	corsOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if corsOrigins == "" {
		// Default to allow all origins if not specified (for development)
		cfg.CORS.AllowedOrigins = []string{"*"}
	} else {
		// Parse comma-separated origins
		origins := strings.Split(corsOrigins, ",")
		cfg.CORS.AllowedOrigins = make([]string, 0, len(origins))
		for _, origin := range origins {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				cfg.CORS.AllowedOrigins = append(cfg.CORS.AllowedOrigins, origin)
			}
		}
		// If no valid origins found, default to allow all
		if len(cfg.CORS.AllowedOrigins) == 0 {
			cfg.CORS.AllowedOrigins = []string{"*"}
		}
	}

	// Lesson service configuration
	lessonURL := os.Getenv("LESSON_SERVICE_URL")
	if lessonURL == "" {
		return nil, fmt.Errorf("LESSON_SERVICE_URL is required")
	}
	cfg.Collaborators.LessonServiceURL = strings.TrimRight(lessonURL, "/")

	// Video library service configuration
	videoURL := os.Getenv("VIDEO_SERVICE_URL")
	if videoURL == "" {
		return nil, fmt.Errorf("VIDEO_SERVICE_URL is required")
	}
	cfg.Collaborators.VideoServiceURL = strings.TrimRight(videoURL, "/")

	// Collaborator request timeout (default: 15 seconds)
	timeoutStr := os.Getenv("COLLABORATOR_TIMEOUT")
	if timeoutStr == "" {
		timeoutStr = "15s"
	}
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid COLLABORATOR_TIMEOUT: %w", err)
	}
	cfg.Collaborators.RequestTimeout = timeout

	// API Key configuration (optional, for service-to-service authentication)
	cfg.APIKey = os.Getenv("API_KEY")

	// Catalog display locale (default: en)
	cfg.CatalogLocale = os.Getenv("CATALOG_LOCALE")
	if cfg.CatalogLocale == "" {
		cfg.CatalogLocale = "en"
	}

	return cfg, nil
}
