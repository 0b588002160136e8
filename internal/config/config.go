package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Identity IdentityConfig
	Backend  BackendConfig
	Security SecurityConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

// IdentityConfig points at the external identity provider that owns
// sessions, credentials, and the OAuth code exchange.
type IdentityConfig struct {
	URL     string
	AnonKey string
}

// BackendConfig points at the webhook-driven document-processing backend.
// WebhookBaseURL is the base for both document endpoints and the
// provisioning notification endpoint.
type BackendConfig struct {
	WebhookBaseURL string
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Identity: IdentityConfig{
			URL:     getEnv("IDENTITY_URL", "http://localhost:9999"),
			AnonKey: getEnv("IDENTITY_ANON_KEY", ""),
		},
		Backend: BackendConfig{
			WebhookBaseURL: getEnv("WEBHOOK_BASE_URL", "http://localhost:5678/webhook"),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	if config.IsProduction() {
		if config.Identity.AnonKey == "" {
			log.Fatal("IDENTITY_ANON_KEY must be set in production environments")
		}
		if os.Getenv("IDENTITY_URL") == "" || os.Getenv("WEBHOOK_BASE_URL") == "" {
			log.Fatal("IDENTITY_URL and WEBHOOK_BASE_URL must be set in production environments")
		}
	}

	return config
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins). Consider setting specific origins for security.")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	return origins
}
