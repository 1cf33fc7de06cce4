package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
// In Go, we use structs to group related data
type Config struct {
	// Server configuration
	Port    string
	BaseURL string // public base URL used in discovery documents

	// GeoIP database configuration
	GeoIPDBPath string // path to the GeoLite2 City database

	// Logging
	LogLevel  string // debug, info, warn, error
	LogPretty bool

	// Result cache configuration
	CacheType       string // "memory", "redis", or "none"
	CacheMaxEntries int    // memory backend capacity
	CacheTTLSeconds int

	// Redis configuration (cache backend)
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Load reads configuration from environment variables
// with sensible defaults
// This is a function that returns a pointer to Config
func Load() *Config {
	// Load .env file if it exists (for local development)
	// In production/Docker, environment variables are set directly
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	return &Config{
		// Server config with defaults
		Port:    getEnv("PORT", "3000"),
		BaseURL: getEnv("BASE_URL", "http://localhost:3000"),

		// GeoIP database config
		GeoIPDBPath: getEnv("GEOIP_DB_PATH", "./data/GeoLite2-City.mmdb"),

		// Logging config
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogPretty: getEnvAsBool("LOG_PRETTY", false),

		// Result cache config (default: in-memory, 10k entries, 1 hour TTL)
		CacheType:       getEnv("CACHE_TYPE", "memory"),
		CacheMaxEntries: getEnvAsInt("CACHE_MAX_ENTRIES", 10000),
		CacheTTLSeconds: getEnvAsInt("CACHE_TTL_SECONDS", 3600),

		// Redis config
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
	}
}

// getEnv reads an environment variable or returns a default value
// This is a helper function (lowercase = private to this package)
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAsInt reads an environment variable as an integer
// Returns default if not set or invalid
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	// Try to convert string to integer
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		// If conversion fails, return default
		return defaultValue
	}

	return value
}

// getEnvAsBool reads an environment variable as a boolean
// Returns default if not set or invalid
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}
