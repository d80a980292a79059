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

// Config хранит все параметры запуска приложения.
type Config struct {
	Env                 string
	HTTPPort            string
	ProposalAPIBaseURL  string
	IdentityURL         string
	IdentityAPIKey      string
	IdentityJWTSecret   string
	AllowedEmailDomains []string
	AllowedOrigins      []string
	UpstreamTimeout     time.Duration
	SessionTTL          time.Duration
	RateLimitLimit      int64
	RateLimitPeriod     time.Duration
}

// Load читает переменные окружения и возвращает готовую конфигурацию.
func Load() (*Config, error) {
	// Загружаем .env только если он существует, иначе используем системные переменные.
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("config: .env не найден, используем переменные окружения: %v", err)
	}

	env := getEnv("APP_ENV", "development")

	cfg := &Config{
		Env:                env,
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		ProposalAPIBaseURL: getEnv("PROPOSAL_API_BASE_URL", ""),
		IdentityURL:        getEnv("IDENTITY_URL", ""),
		IdentityAPIKey:     getEnv("IDENTITY_API_KEY", ""),
	}

	if cfg.ProposalAPIBaseURL == "" {
		if env == "production" {
			return nil, fmt.Errorf("config: PROPOSAL_API_BASE_URL обязателен в production")
		}
		cfg.ProposalAPIBaseURL = "http://localhost:9000"
		log.Printf("config: WARNING - PROPOSAL_API_BASE_URL не задан, используем %s", cfg.ProposalAPIBaseURL)
	}

	if cfg.IdentityURL == "" {
		if env == "production" {
			return nil, fmt.Errorf("config: IDENTITY_URL обязателен в production")
		}
		cfg.IdentityURL = "http://localhost:9999"
		log.Printf("config: WARNING - IDENTITY_URL не задан, используем %s", cfg.IdentityURL)
	}

	// Секрет, которым провайдер идентичности подписывает access токены.
	jwtSecret := getEnv("IDENTITY_JWT_SECRET", "")
	if env == "production" {
		if jwtSecret == "" || len(jwtSecret) < 32 {
			return nil, fmt.Errorf("config: IDENTITY_JWT_SECRET обязателен и должен быть не менее 32 символов в production")
		}
	} else if jwtSecret == "" {
		jwtSecret = "super-secret-development-only-change-in-production"
		log.Printf("config: WARNING - используется дефолтный IDENTITY_JWT_SECRET, измените в production!")
	}
	cfg.IdentityJWTSecret = jwtSecret

	// Домены, с которых разрешена подача заявок.
	domainsStr := getEnv("ALLOWED_EMAIL_DOMAINS", "vitstudent.ac.in,vit.ac.in")
	cfg.AllowedEmailDomains = splitAndTrim(domainsStr)

	// CORS allowed origins
	originsStr := getEnv("CORS_ALLOWED_ORIGINS", "")
	if originsStr == "" {
		if env == "production" {
			return nil, fmt.Errorf("config: CORS_ALLOWED_ORIGINS обязателен в production")
		}
		cfg.AllowedOrigins = []string{"http://localhost:3000", "http://localhost:3001"}
	} else {
		cfg.AllowedOrigins = splitAndTrim(originsStr)
	}

	cfg.UpstreamTimeout = mustParseDuration(getEnv("UPSTREAM_TIMEOUT", "30s"))
	cfg.SessionTTL = mustParseDuration(getEnv("FORM_SESSION_TTL", "2h"))
	cfg.RateLimitLimit = mustParseInt64(getEnv("RATE_LIMIT_LIMIT", "60"))
	cfg.RateLimitPeriod = mustParseDuration(getEnv("RATE_LIMIT_PERIOD", "1m"))

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или дефолт.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// splitAndTrim режет строку по запятым и убирает пробелы.
func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// mustParseDuration безопасно парсит строку в duration.
func mustParseDuration(v string) time.Duration {
	dur, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: не удалось распарсить длительность %q: %v", v, err)
	}
	return dur
}

// mustParseInt64 безопасно парсит строку в int64.
func mustParseInt64(v string) int64 {
	num, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Fatalf("config: не удалось распарсить число %q: %v", v, err)
	}
	return num
}
