// Package config handles configuration loading for the blog service.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// PlaceholderAPIKey is the sentinel the AI relay treats as "no key
// configured": no Authorization header is attached upstream.
const PlaceholderAPIKey = "your-api-key-here"

// Config holds all configuration for the blog service.
type Config struct {
	Port        string
	Environment string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret string
	JWTExpiry time.Duration

	AIURL         string
	AIModel       string
	AIAPIKey      string
	AITimeout     time.Duration
	AIMaxTokens   int
	AITemperature float64
	AITopP        float64
}

// Load reads configuration from the environment. A .env file in the
// working directory is merged in first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("SERVER_PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		DBHost:     getEnvRequired("DB_HOST"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnvRequired("DB_USER"),
		DBPassword: getEnvRequired("DB_PASSWORD"),
		DBName:     getEnvRequired("DB_NAME"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret: getEnvRequired("JWT_SECRET"),
		JWTExpiry: parseDuration(getEnv("JWT_EXPIRY", "24h"), 24*time.Hour),

		AIURL:         getEnv("AI_URL", "http://localhost:8000/v1/chat/completions"),
		AIModel:       getEnv("AI_MODEL", "Qwen/Qwen2.5-7B-Instruct"),
		AIAPIKey:      getEnv("AI_API_KEY", PlaceholderAPIKey),
		AITimeout:     parseDuration(getEnv("AI_TIMEOUT", "30s"), 30*time.Second),
		AIMaxTokens:   parseInt(getEnv("AI_MAX_TOKENS", "2048"), 2048),
		AITemperature: parseFloat(getEnv("AI_TEMPERATURE", "0.7"), 0.7),
		AITopP:        parseFloat(getEnv("AI_TOP_P", "0.9"), 0.9),
	}
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

func parseInt(value string, defaultValue int) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func parseFloat(value string, defaultValue float64) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return f
}
