package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	DBUrl             string
	JWTSecret         string
	SessionCookieName string
	SessionTTL        time.Duration
	OAuthServerURL    string
	OAuthClientID     string
	AdminOpenIDs      []string
	RedisURL          string
	InquiryRateLimit  int
	InquiryRateWindow time.Duration
	LogLevel          string
	LogFormat         string
	AppEnv            string
	CORSAllowOrigins  string
	EnableDocs        bool
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	jwtSecret, exists := os.LookupEnv("JWT_SECRET")
	if !exists || jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return &Config{
		Port:              getEnv("PORT", "8080"),
		DBUrl:             getEnv("DB_URL", ""),
		JWTSecret:         jwtSecret,
		SessionCookieName: getEnv("SESSION_COOKIE_NAME", "app_session_id"),
		SessionTTL:        time.Duration(getEnvInt("SESSION_TTL_HOURS", 24*365)) * time.Hour,
		OAuthServerURL:    strings.TrimRight(getEnv("OAUTH_SERVER_URL", ""), "/"),
		OAuthClientID:     getEnv("OAUTH_CLIENT_ID", ""),
		AdminOpenIDs:      getEnvList("ADMIN_OPEN_IDS"),
		RedisURL:          getEnv("REDIS_URL", ""),
		InquiryRateLimit:  getEnvInt("INQUIRY_RATE_LIMIT", 5),
		InquiryRateWindow: time.Duration(getEnvInt("INQUIRY_RATE_WINDOW_MINUTES", 60)) * time.Minute,
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "json"),
		AppEnv:            normalizeEnv(getEnv("APP_ENV", "production")),
		CORSAllowOrigins:  getEnv("CORS_ALLOW_ORIGINS", "*"),
		EnableDocs:        getEnvBool("ENABLE_API_DOCS", false),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}

	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvList(key string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return nil
	}

	items := make([]string, 0)
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}

func (c *Config) IsDevelopment() bool {
	return c != nil && c.AppEnv == "development"
}

// SecureCookies reports whether session cookies must carry the Secure flag.
func (c *Config) SecureCookies() bool {
	return c != nil && c.AppEnv != "development" && c.AppEnv != "test"
}

// DocsEnabled reports whether the procedure catalogue page is served.
func (c *Config) DocsEnabled() bool {
	return c != nil && c.EnableDocs && c.AppEnv == "development"
}
