package config

import (
	"fmt"
	"os"
	"strconv"
	"strings" // For LogLevel normalization
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPracticumEndpoint  = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	DefaultRetryInterval      = 600 * time.Second
	DefaultMinRequestInterval = 5 * time.Second
	DefaultHTTPTimeout        = 30 * time.Second
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken     string
	TelegramToken      string
	TelegramChatID     int64
	PracticumEndpoint  string
	RetryInterval      time.Duration
	PollCronSpec       string // Overrides RetryInterval when set
	MinRequestInterval time.Duration
	HTTPTimeout        time.Duration
	FromDate           int64 // Initial cursor, 0 means "now"
	LogLevel           string
	Environment        string
}

// Load reads configuration from environment variables and .env file (if present).
// All three secrets must be set; the error names every one that is missing.
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	var err error

	cfg.PracticumToken = os.Getenv("PRACTICUM_TOKEN")
	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	chatIDStr := os.Getenv("TELEGRAM_CHAT_ID")

	var missing []string
	if cfg.PracticumToken == "" {
		missing = append(missing, "PRACTICUM_TOKEN")
	}
	if cfg.TelegramToken == "" {
		missing = append(missing, "TELEGRAM_TOKEN")
	}
	if chatIDStr == "" {
		missing = append(missing, "TELEGRAM_CHAT_ID")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("required environment variables are not set: %s", strings.Join(missing, ", "))
	}

	cfg.TelegramChatID, err = strconv.ParseInt(chatIDStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
	}

	cfg.PracticumEndpoint = os.Getenv("PRACTICUM_ENDPOINT")
	if cfg.PracticumEndpoint == "" {
		cfg.PracticumEndpoint = DefaultPracticumEndpoint
	}

	cfg.RetryInterval, err = durationEnv("RETRY_INTERVAL", DefaultRetryInterval)
	if err != nil {
		return nil, err
	}
	cfg.MinRequestInterval, err = durationEnv("PRACTICUM_MIN_REQUEST_INTERVAL", DefaultMinRequestInterval)
	if err != nil {
		return nil, err
	}
	cfg.HTTPTimeout, err = durationEnv("HTTP_TIMEOUT", DefaultHTTPTimeout)
	if err != nil {
		return nil, err
	}

	cfg.PollCronSpec = strings.TrimSpace(os.Getenv("POLL_CRON_SPEC"))

	if fromDateStr := os.Getenv("FROM_DATE"); fromDateStr != "" {
		cfg.FromDate, err = strconv.ParseInt(fromDateStr, 10, 64)
		if err != nil || cfg.FromDate < 0 {
			return nil, fmt.Errorf("invalid FROM_DATE %q: must be a non-negative unix timestamp", fromDateStr)
		}
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	return cfg, nil
}

// durationEnv accepts either a Go duration ("10m") or a bare number of seconds ("600").
func durationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}

	var d time.Duration
	if secs, err := strconv.ParseInt(raw, 10, 64); err == nil {
		d = time.Duration(secs) * time.Second
	} else {
		d, err = time.ParseDuration(raw)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %w", key, err)
		}
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive, got %s", key, raw)
	}
	return d, nil
}
