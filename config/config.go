package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUrl       string
	AutoMigrate bool
	FrontendURL string
	// Admin auth: mutating endpoints require a bearer token signed
	// with this secret.
	AdminJWTSecret string
	// SMTP configuration for the optional new-message notification
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromEmail string
	NotifyEmailTo string
	// Redis configuration for the contact-form rate limiter
	RedisURL      string
	RedisPassword string
	// Rate limiting for POST /contact-messages
	RateLimitWindowSeconds    int
	RateLimitContactThreshold int
}

func LoadConfig() (*Config, error) {
	// .env only matters locally; ignored in production when absent
	_ = godotenv.Load()

	cfg := &Config{
		Port:                      getEnv("PORT", "8080"),
		DBUrl:                     getEnv("DATABASE_URL", ""),
		AutoMigrate:               getEnvBool("AUTO_MIGRATE", true),
		FrontendURL:               strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		AdminJWTSecret:            getEnv("ADMIN_JWT_SECRET", ""),
		SMTPHost:                  getEnv("SMTP_HOST", ""),
		SMTPPort:                  getEnv("SMTP_PORT", "587"),
		SMTPUsername:              getEnv("SMTP_USERNAME", ""),
		SMTPPassword:              getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail:             getEnv("SMTP_FROM_EMAIL", ""),
		NotifyEmailTo:             getEnv("NOTIFY_EMAIL_TO", ""),
		RedisURL:                  getEnv("REDIS_URL", ""),
		RedisPassword:             getEnv("REDIS_PASSWORD", ""),
		RateLimitWindowSeconds:    getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitContactThreshold: getEnvInt("RATE_LIMIT_CONTACT_THRESHOLD", 5),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.AdminJWTSecret == "" {
		log.Println("WARNING: ADMIN_JWT_SECRET not configured. Mutating endpoints will reject all requests.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
