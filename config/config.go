package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	FrontendURL    string
	AllowedOrigins []string
	TrustedProxies []string // Proxies allowed to set X-Forwarded-For; none by default
	// AWS SES Configuration
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSRegion          string
	EmailFrom          string // Verified SES sender identity
	EmailTo            string // Inbox that receives contact submissions
	SESEndpoint        string // Optional endpoint override (local SES emulator)
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	ContactRateLimit              int
	ContactRateLimitWindowSeconds int
}

// requiredKeys are the environment variables the contact pipeline cannot run without
var requiredKeys = []string{
	"AWS_ACCESS_KEY_ID",
	"AWS_SECRET_ACCESS_KEY",
	"AWS_REGION",
	"EMAIL_FROM",
	"EMAIL_TO",
}

// LoadConfig reads configuration from the environment (and a local .env file if present).
// It fails if any of the email delivery settings are missing.
func LoadConfig() (*Config, error) {
	// Only effective locally, production injects real env vars
	_ = godotenv.Load()

	if missing := missingKeys(); len(missing) > 0 {
		return nil, fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	frontendURL := strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:4321"), "/")

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		FrontendURL:    frontendURL,
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{frontendURL}),
		TrustedProxies: getEnvList("TRUSTED_PROXIES", nil),
		// AWS SES Configuration
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		AWSRegion:          os.Getenv("AWS_REGION"),
		EmailFrom:          os.Getenv("EMAIL_FROM"),
		EmailTo:            os.Getenv("EMAIL_TO"),
		SESEndpoint:        getEnv("AWS_SES_ENDPOINT", ""),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration
		ContactRateLimit:              getEnvInt("CONTACT_RATE_LIMIT", 5),                  // 5 submissions
		ContactRateLimitWindowSeconds: getEnvInt("CONTACT_RATE_LIMIT_WINDOW_SECONDS", 600), // per 10 minutes
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func missingKeys() []string {
	var missing []string
	for _, key := range requiredKeys {
		if strings.TrimSpace(os.Getenv(key)) == "" {
			missing = append(missing, key)
		}
	}
	return missing
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

// getEnvList splits a comma separated variable, dropping empty entries and trailing slashes
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return fallback
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimRight(strings.TrimSpace(item), "/")
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
