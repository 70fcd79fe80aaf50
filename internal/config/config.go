package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	// Application
	Version     string
	Environment string
	ServerID    string
	Port        int
	LogLevel    string

	// Logdy (lightweight web log viewer)
	LogdyEnabled bool
	LogdyHost    string
	LogdyPort    int

	// Storage
	DatabasePath string

	// Alert admission
	// A room that produced an accepted event must stay quiet for this
	// long before another signal is admitted.
	DebounceWindow time.Duration

	// SMS gateway (Twilio-compatible REST API)
	SMSAccountSID    string
	SMSAuthToken     string
	SMSFromNumber    string
	SMSAPIBaseURL    string
	SMSSendTimeout   time.Duration
	DispatchWorkers  int
	DispatchDeadline time.Duration

	// Phone normalization
	DefaultCountryPrefix string

	// NATS (live alert feed for connected clients)
	// Default: nats://localhost:4222 (works with Docker Compose setup)
	NatsURL            string
	NatsConnectTimeout time.Duration
	NatsReconnectWait  time.Duration
	NatsMaxReconnects  int
	NatsDrainTimeout   time.Duration // For graceful shutdown
	AlertsSubject      string

	// Intake rate limiting
	IntakeRatePerSec int
	IntakeBurst      int

	// Swagger Configuration
	SwaggerHost string
	SwaggerPort int

	// Graceful Shutdown
	ShutdownTimeout time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("No .env file found or error loading .env file, using environment variables and defaults")
	} else {
		log.Info().Msg("Loaded configuration from .env file")
	}

	return &Config{
		// Application
		Version:     getEnv("VERSION", "1.0.0"),
		Environment: getEnv("ENVIRONMENT", "development"),
		ServerID:    getEnv("SERVER_ID", "realert-1"),
		Port:        getEnvInt("PORT", 8000),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		// Logdy (lightweight web log viewer)
		LogdyEnabled: getEnvBool("LOGDY_ENABLED", false),
		LogdyHost:    getEnv("LOGDY_HOST", "localhost"),
		LogdyPort:    getEnvInt("LOGDY_PORT", 8080),

		// Storage
		DatabasePath: getEnv("DATABASE_PATH", "realert.db"),

		// Alert admission
		DebounceWindow: getEnvDuration("DEBOUNCE_WINDOW", 5*time.Second),

		// SMS gateway
		SMSAccountSID:    getEnv("SMS_ACCOUNT_SID", ""),
		SMSAuthToken:     getEnv("SMS_AUTH_TOKEN", ""),
		SMSFromNumber:    getEnv("SMS_FROM_NUMBER", ""),
		SMSAPIBaseURL:    getEnv("SMS_API_BASE_URL", "https://api.twilio.com"),
		SMSSendTimeout:   getEnvDuration("SMS_SEND_TIMEOUT", 10*time.Second),
		DispatchWorkers:  getEnvInt("DISPATCH_WORKERS", 8),
		DispatchDeadline: getEnvDuration("DISPATCH_DEADLINE", 60*time.Second),

		// Phone normalization
		DefaultCountryPrefix: getEnv("DEFAULT_COUNTRY_PREFIX", "+1"),

		// NATS (configured for Docker Compose setup)
		NatsURL:            getNatsURL(),
		NatsConnectTimeout: getEnvDuration("NATS_CONNECT_TIMEOUT", 10*time.Second),
		NatsReconnectWait:  getEnvDuration("NATS_RECONNECT_WAIT", 2*time.Second),
		NatsMaxReconnects:  getEnvInt("NATS_MAX_RECONNECTS", -1), // -1 = unlimited
		NatsDrainTimeout:   getEnvDuration("NATS_DRAIN_TIMEOUT", 5*time.Second),
		AlertsSubject:      getEnv("ALERTS_SUBJECT", "alerts.events"),

		// Intake rate limiting
		IntakeRatePerSec: getEnvInt("INTAKE_RATE_PER_SEC", 50),
		IntakeBurst:      getEnvInt("INTAKE_BURST", 100),

		// Swagger Configuration
		SwaggerHost: getEnv("SWAGGER_HOST", "localhost"),
		SwaggerPort: getEnvInt("SWAGGER_PORT", 8000),

		// Graceful Shutdown
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// Helper functions for Docker environment detection
func isRunningInDocker() bool {
	// Check for Docker-specific environment indicators
	if os.Getenv("DOCKER_CONTAINER") == "true" {
		return true
	}

	// Check for .dockerenv file
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true
	}

	return false
}

// getNatsURL returns the appropriate NATS URL based on environment
func getNatsURL() string {
	if envURL := os.Getenv("NATS_URL"); envURL != "" {
		return envURL
	}

	// If running in Docker, use service name; otherwise use localhost
	if isRunningInDocker() {
		return "nats://nats:4222"
	}

	return "nats://localhost:4222"
}
