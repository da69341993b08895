// Package config provides configuration management for the application.
// It handles loading and validation of configuration values from environment
// variables, with support for required variables, default values, and
// collective error reporting: every problem found during loading is reported
// at once instead of failing on the first one.
//
// All security-sensitive knobs (token signing secret, token lifetime, bcrypt
// cost) are loaded here exactly once at startup and injected into the auth
// components as immutable values. Nothing reads the environment lazily later.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// PoolConfig represents configuration for the database connection pool.
type PoolConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	MaxSize  int
}

// AuthConfig holds authentication-related configuration.
type AuthConfig struct {
	// TokenSecret is the server-held key used to sign and verify identity
	// tokens. Rotating it invalidates every outstanding token, which is
	// acceptable because tokens are short-lived and stateless.
	TokenSecret string
	// TokenMaxLifetime bounds how long after issuance a token is accepted.
	TokenMaxLifetime time.Duration
	// BcryptCost is the work factor for password digests.
	BcryptCost int
}

// ServerConfig holds HTTP server-related configuration.
type ServerConfig struct {
	Port string
	// MaxConcurrentRequests bounds how many requests are processed at once.
	// Requests beyond the bound queue up to QueueBacklog before being shed.
	MaxConcurrentRequests int
	QueueBacklog          int
}

// AppConfig is the top-level configuration structure for the application.
type AppConfig struct {
	DB     *PoolConfig
	Auth   *AuthConfig
	Server *ServerConfig
}

// getRequiredEnv reads a required environment variable and appends an error
// to the errors slice if the variable is not set.
func getRequiredEnv(key string, errors *[]string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		*errors = append(*errors, fmt.Sprintf("missing required environment variable: %s", key))
		return ""
	}
	return value
}

// getOptionalEnv reads an optional environment variable with a default value.
func getOptionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getOptionalEnvInt reads an optional environment variable parsed as an int.
// Uses defaultValue if not set; appends an error if parsing fails.
func getOptionalEnvInt(key string, defaultValue int, errors *[]string) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected integer, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueInt
}

// getOptionalEnvDuration reads an optional environment variable parsed as a
// time.Duration ("15m", "24h", ...). Uses defaultValue if not set; appends an
// error if parsing fails.
func getOptionalEnvDuration(key string, defaultValue time.Duration, errors *[]string) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueDuration, err := time.ParseDuration(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected duration string, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueDuration
}

// validateBcryptCost clamps the configured bcrypt cost into the range the
// bcrypt implementation accepts, collecting an error when clamping happens.
func validateBcryptCost(cost int, errors *[]string) int {
	if cost < bcrypt.MinCost {
		*errors = append(*errors, fmt.Sprintf("BCRYPT_COST (%d) is below minimum %d, clamping", cost, bcrypt.MinCost))
		return bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		*errors = append(*errors, fmt.Sprintf("BCRYPT_COST (%d) is above maximum %d, clamping", cost, bcrypt.MaxCost))
		return bcrypt.MaxCost
	}
	return cost
}

// LoadConfig creates and returns an AppConfig by reading and validating
// environment variables. It collects all errors encountered during loading
// and returns a single aggregated error if any exist.
func LoadConfig() (*AppConfig, error) {
	var errors []string

	// Database configuration
	dbUser := getRequiredEnv("DB_USER", &errors)
	dbPassword := getRequiredEnv("DB_PASSWORD", &errors)
	dbName := getRequiredEnv("DB_NAME", &errors)
	dbHost := getOptionalEnv("DB_HOST", "localhost")
	dbPort := getOptionalEnvInt("DB_PORT", 5432, &errors)
	poolSize := getOptionalEnvInt("DB_POOL_SIZE", 10, &errors)
	if poolSize < 1 {
		errors = append(errors, fmt.Sprintf("DB_POOL_SIZE (%d) must be at least 1", poolSize))
		poolSize = 1
	}

	dbConfig := &PoolConfig{
		Host:     dbHost,
		Port:     dbPort,
		User:     dbUser,
		Password: dbPassword,
		DBName:   dbName,
		MaxSize:  poolSize,
	}

	// Auth configuration
	tokenSecret := getRequiredEnv("TOKEN_SECRET", &errors)
	tokenMaxLifetime := getOptionalEnvDuration("TOKEN_MAX_LIFETIME", 24*time.Hour, &errors)
	if tokenMaxLifetime <= 0 {
		errors = append(errors, fmt.Sprintf("TOKEN_MAX_LIFETIME must be positive, got %s", tokenMaxLifetime))
	}
	bcryptCost := validateBcryptCost(getOptionalEnvInt("BCRYPT_COST", bcrypt.DefaultCost, &errors), &errors)

	authConfig := &AuthConfig{
		TokenSecret:      tokenSecret,
		TokenMaxLifetime: tokenMaxLifetime,
		BcryptCost:       bcryptCost,
	}

	// Server configuration. The concurrency bound sizes the request worker
	// pool for normal interactive load plus a handful of longer-running
	// download-style requests; the backlog is the queueing ceiling beyond
	// which new requests are shed.
	serverConfig := &ServerConfig{
		Port:                  getOptionalEnv("PORT", "8080"),
		MaxConcurrentRequests: getOptionalEnvInt("HTTP_MAX_CONCURRENT_REQUESTS", 30, &errors),
		QueueBacklog:          getOptionalEnvInt("HTTP_QUEUE_BACKLOG", 60, &errors),
	}
	if serverConfig.MaxConcurrentRequests < 1 {
		errors = append(errors, fmt.Sprintf("HTTP_MAX_CONCURRENT_REQUESTS (%d) must be at least 1", serverConfig.MaxConcurrentRequests))
		serverConfig.MaxConcurrentRequests = 1
	}
	if serverConfig.QueueBacklog < 0 {
		errors = append(errors, fmt.Sprintf("HTTP_QUEUE_BACKLOG (%d) must not be negative", serverConfig.QueueBacklog))
		serverConfig.QueueBacklog = 0
	}

	if len(errors) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errors, "\n- "))
	}

	return &AppConfig{
		DB:     dbConfig,
		Auth:   authConfig,
		Server: serverConfig,
	}, nil
}
