package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime parameter of the service.
type Config struct {
	BackendBaseURL     string
	BackendTimeout     time.Duration
	JWTSecretKey       string
	ServerPort         int
	RefreshInterval    time.Duration
	CORSAllowedOrigins []string
}

// Load reads configuration from environment variables, optionally
// preloading a .env file for local development. Missing required keys
// are an error; everything else has a sensible default.
func Load() (*Config, error) {
	_ = godotenv.Load()

	backendURL := os.Getenv("BACKEND_BASE_URL")
	if backendURL == "" {
		return nil, fmt.Errorf("BACKEND_BASE_URL environment variable is not set")
	}
	backendURL = strings.TrimRight(backendURL, "/")

	jwtKey := os.Getenv("JWT_SECRET_KEY")
	if jwtKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY environment variable is not set")
	}

	portStr := os.Getenv("SERVER_PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	refreshInterval, err := durationEnv("REFRESH_INTERVAL", 30*time.Second)
	if err != nil {
		return nil, err
	}

	backendTimeout, err := durationEnv("BACKEND_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	origins := []string{"*"}
	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		origins = origins[:0]
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
	}

	return &Config{
		BackendBaseURL:     backendURL,
		BackendTimeout:     backendTimeout,
		JWTSecretKey:       jwtKey,
		ServerPort:         port,
		RefreshInterval:    refreshInterval,
		CORSAllowedOrigins: origins,
	}, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", key, d)
	}
	return d, nil
}
