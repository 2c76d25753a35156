package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port       string
	Env        string
	CORSOrigin string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Tokens are issued by the hosted auth provider; the API only verifies them.
	AuthJWTSecret   string
	AuthJWTAudience string

	// MaintenanceAPIKey guards the internal cache refresh endpoint.
	MaintenanceAPIKey string

	// Timezone used for calendar periods and day/month buckets.
	Timezone string

	// Message broker. Change forwarding is disabled when AMQPURL is empty.
	AMQPURL      string
	AMQPExchange string

	// Report dataset cache
	ReportCacheSize int
	ReportCacheTTL  time.Duration
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port:       getEnv("PORT", "8080"),
		Env:        getEnv("ENV", "development"),
		CORSOrigin: getEnv("CORS_ORIGIN", "*"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "carteira"),
		DBPassword: getEnv("DB_PASSWORD", "carteira"),
		DBName:     getEnv("DB_NAME", "carteira"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		AuthJWTSecret:   getEnv("AUTH_JWT_SECRET", "fallback-secret-key-for-dev-only"),
		AuthJWTAudience: getEnv("AUTH_JWT_AUDIENCE", "authenticated"),

		MaintenanceAPIKey: getEnv("MAINTENANCE_API_KEY", ""),

		Timezone: getEnv("APP_TIMEZONE", "America/Sao_Paulo"),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "carteira.records"),
	}

	sizeStr := getEnv("REPORT_CACHE_SIZE", "256")
	size, err := strconv.Atoi(sizeStr)
	if err != nil || size < 1 {
		log.Printf("Warning: invalid REPORT_CACHE_SIZE value '%s', falling back to 256\n", sizeStr)
		size = 256
	}
	config.ReportCacheSize = size

	ttlStr := getEnv("REPORT_CACHE_TTL", "5m")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		log.Printf("Warning: invalid REPORT_CACHE_TTL value '%s', falling back to 5m\n", ttlStr)
		ttl = 5 * time.Minute
	}
	config.ReportCacheTTL = ttl

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// Location resolves Timezone, falling back to UTC when it is unknown.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("Warning: unknown APP_TIMEZONE '%s', using UTC\n", c.Timezone)
		return time.UTC
	}
	return loc
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
