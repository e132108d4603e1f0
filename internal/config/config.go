// Package config handles configuration loading for the trails service.
package config

import (
	"fmt"
	"log"
	"os"
	"time"
)

// Config holds all configuration for the trails service.
type Config struct {
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSSLMode       string
	AuthProviderURL string
	AuthTimeout     time.Duration
	AllowedOrigins  []string
	CookieSecure    bool
	SeedDevData     bool
	Port            string
	Environment     string
	LogLevel        string
	LogFormat       string
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		DBHost:          getEnvRequired("DB_HOST"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBUser:          getEnvRequired("DB_USER"),
		DBPassword:      getEnvRequired("DB_PASSWORD"),
		DBName:          getEnvRequired("DB_NAME"),
		DBSSLMode:       getEnv("DB_SSLMODE", "disable"),
		AuthProviderURL: getEnv("AUTH_PROVIDER_URL", "https://web.socem.plymouth.ac.uk/COMP2001/auth/api/users"),
		AuthTimeout:     parseDuration(getEnv("AUTH_TIMEOUT", "10s"), 10*time.Second),
		AllowedOrigins:  []string{getEnv("ALLOWED_ORIGIN", "http://localhost:3000")},
		CookieSecure:    getEnv("COOKIE_SECURE", "true") == "true",
		SeedDevData:     getEnv("SEED_DEV_DATA", "false") == "true",
		Port:            getEnv("PORT", "8000"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "text"),
	}
}

// DSN builds the Postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("required environment variable %s is not set", key)
	}
	return value
}

func parseDuration(value string, defaultValue time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
