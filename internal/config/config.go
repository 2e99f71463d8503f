package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends accepted by STORAGE_BACKEND
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Port           string
	StorageBackend string
	LogLevel       string
	SeedDemoData   bool

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	AMQPURL      string
	AMQPExchange string

	CloserInterval    time.Duration
	CloserConcurrency int
	ReminderWindow    time.Duration

	SessionTTL     time.Duration
	RejectCascade  bool
	SuspensionFine float64
}

// Load reads an optional .env file and returns a populated Config.
func Load() (*Config, error) {
	// a missing .env is fine, the process environment still applies
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", BackendMemory)),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		SeedDemoData:   getEnvBool("SEED_DEMO_DATA", false),

		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "bluepenguin"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "bluepenguin"),
		PostgresDB:       getEnv("POSTGRES_DB", "bluepenguin"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "auction_events"),

		CloserInterval:    getEnvDuration("CLOSER_INTERVAL", time.Minute),
		CloserConcurrency: getEnvInt("CLOSER_CONCURRENCY", 4),
		ReminderWindow:    getEnvDuration("REMINDER_WINDOW", 24*time.Hour),

		SessionTTL:     getEnvDuration("SESSION_TTL", 2*time.Hour),
		RejectCascade:  getEnvBool("REJECT_CASCADE", true),
		SuspensionFine: getEnvFloat("SUSPENSION_FINE", 50),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendMemory, BackendPostgres:
	default:
		return fmt.Errorf("config: unknown STORAGE_BACKEND %q", c.StorageBackend)
	}
	if c.CloserInterval <= 0 {
		return fmt.Errorf("config: CLOSER_INTERVAL must be positive")
	}
	if c.CloserConcurrency < 1 {
		return fmt.Errorf("config: CLOSER_CONCURRENCY must be at least 1")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("config: SESSION_TTL must be positive")
	}
	if c.SuspensionFine < 0 {
		return fmt.Errorf("config: SUSPENSION_FINE cannot be negative")
	}
	return nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + c.Port
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
