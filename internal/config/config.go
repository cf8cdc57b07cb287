package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App          AppConfig
	Mattermost   MattermostConfig
	Redis        RedisConfig
	Logger       LoggerConfig
	Notification NotificationConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// MattermostConfig holds the Mattermost API connection values. All four
// credential fields are mandatory; the service cannot start without them.
type MattermostConfig struct {
	BaseURL           string
	BotToken          string
	SlashToken        string
	CallbackURL       string
	RequestTimeoutSec int
}

// RedisConfig holds Redis connection values for the submission guard.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// NotificationConfig holds stub notification endpoints.
type NotificationConfig struct {
	EmailFrom  string
	WebhookURL string
}

// Load reads configuration from environment variables, applying defaults
// where possible. Missing Mattermost settings are a fatal startup condition.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "ticket-bridge"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Mattermost: MattermostConfig{
			BaseURL:           strings.TrimRight(os.Getenv("MATTERMOST_URL"), "/"),
			BotToken:          os.Getenv("BOT_TOKEN"),
			SlashToken:        os.Getenv("SLASH_TOKEN"),
			CallbackURL:       strings.TrimRight(os.Getenv("CALLBACK_URL"), "/"),
			RequestTimeoutSec: getEnvAsInt("MATTERMOST_REQUEST_TIMEOUT_SECONDS", 10),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Notification: NotificationConfig{
			EmailFrom:  getEnv("NOTIFY_EMAIL_FROM", ""),
			WebhookURL: getEnv("NOTIFY_WEBHOOK_URL", ""),
		},
	}

	if err := cfg.Mattermost.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (m MattermostConfig) validate() error {
	var missing []string
	if m.BaseURL == "" {
		missing = append(missing, "MATTERMOST_URL")
	}
	if m.BotToken == "" {
		missing = append(missing, "BOT_TOKEN")
	}
	if m.SlashToken == "" {
		missing = append(missing, "SLASH_TOKEN")
	}
	if m.CallbackURL == "" {
		missing = append(missing, "CALLBACK_URL")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// RequestTimeout returns the outbound Mattermost request timeout.
func (m MattermostConfig) RequestTimeout() time.Duration {
	if m.RequestTimeoutSec <= 0 {
		return 10 * time.Second
	}
	return time.Duration(m.RequestTimeoutSec) * time.Second
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
