package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort                   = "8080"
	defaultAppEnv                 = "development"
	defaultLogLevel               = "info"
	defaultCacheTTL               = 10 * time.Minute
	defaultAnalyticsRetentionDays = 365
	defaultWorkerInterval         = 5 * time.Minute
)

// Config holds the process configuration read from the environment
type Config struct {
	Port     string
	AppEnv   string
	LogLevel string

	DatabaseURL         string
	RedisURL            string
	FirebaseCredentials string
	FirebaseWeb         FirebaseWeb
	AdminEmails         []string

	CacheTTL               time.Duration
	AnalyticsSalt          string
	AnalyticsRetentionDays int
	WorkerInterval         time.Duration
}

// FirebaseWeb is the browser SDK configuration for the login page
type FirebaseWeb struct {
	APIKey     string `json:"apiKey"`
	AuthDomain string `json:"authDomain"`
	ProjectID  string `json:"projectId"`
}

// Load reads .env (when present) and then the environment
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Println("No .env file found, using system environment")
	}

	cfg := &Config{
		Port:                os.Getenv("PORT"),
		AppEnv:              os.Getenv("APP_ENV"),
		LogLevel:            os.Getenv("LOG_LEVEL"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		RedisURL:            os.Getenv("REDIS_URL"),
		FirebaseCredentials: os.Getenv("FIREBASE_CREDENTIALS_PATH"),
		FirebaseWeb: FirebaseWeb{
			APIKey:     os.Getenv("FIREBASE_API_KEY"),
			AuthDomain: os.Getenv("FIREBASE_AUTH_DOMAIN"),
			ProjectID:  os.Getenv("FIREBASE_PROJECT_ID"),
		},
		AdminEmails:   splitList(os.Getenv("ADMIN_EMAILS")),
		AnalyticsSalt: os.Getenv("ANALYTICS_SALT"),
	}

	var errs []error
	var err error
	if cfg.CacheTTL, err = durationEnv("CACHE_TTL"); err != nil {
		errs = append(errs, err)
	}
	if cfg.WorkerInterval, err = durationEnv("WORKER_INTERVAL"); err != nil {
		errs = append(errs, err)
	}
	if cfg.AnalyticsRetentionDays, err = intEnv("ANALYTICS_RETENTION_DAYS"); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	setDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.AppEnv == "" {
		cfg.AppEnv = defaultAppEnv
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.AnalyticsRetentionDays == 0 {
		cfg.AnalyticsRetentionDays = defaultAnalyticsRetentionDays
	}
	if cfg.WorkerInterval == 0 {
		cfg.WorkerInterval = defaultWorkerInterval
	}
	if cfg.AnalyticsSalt == "" {
		cfg.AnalyticsSalt = "portfolio-" + cfg.AppEnv
	}
}

// Validate checks the loaded values
func (c *Config) Validate() error {
	var errs []error

	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be a number between 1 and 65535, got %q", c.Port))
	}
	if c.CacheTTL < 0 {
		errs = append(errs, fmt.Errorf("CACHE_TTL must be positive, got %s", c.CacheTTL))
	}
	if c.WorkerInterval < 0 {
		errs = append(errs, fmt.Errorf("WORKER_INTERVAL must be positive, got %s", c.WorkerInterval))
	}
	if c.AnalyticsRetentionDays < 0 {
		errs = append(errs, fmt.Errorf("ANALYTICS_RETENTION_DAYS must be positive, got %d", c.AnalyticsRetentionDays))
	}
	// an empty allowlist denies every account, so admin login would be useless
	if c.FirebaseCredentials != "" && len(c.AdminEmails) == 0 {
		errs = append(errs, errors.New("ADMIN_EMAILS must list at least one account when FIREBASE_CREDENTIALS_PATH is set"))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", c.LogLevel))
	}

	return errors.Join(errs...)
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func durationEnv(key string) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func intEnv(key string) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
