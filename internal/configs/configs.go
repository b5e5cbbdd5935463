package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppURL                 string
	Environment            string
	DatabaseDSN            string
	JWTSecret              string
	JWTExpiresIn           time.Duration
	BcryptCost             int
	RateLimit              int
	RedisAddr              string
	RedisKeyPrefix         string
	ShutdownTimeoutSeconds int
	LogLevel               slog.Level
}

func (c Config) Production() bool {
	return c.Environment == "production"
}

// Load reads configuration from the environment and, when path is not
// empty, from a YAML file. Environment variables win over the file.
func Load(path string) (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("app_host", "127.0.0.1")
	v.SetDefault("app_port", "8080")
	v.SetDefault("app_env", "development")
	v.SetDefault("database_dsn", "tasks.db")
	v.SetDefault("jwt_expires_in", "7d")
	v.SetDefault("bcrypt_cost", 10)
	v.SetDefault("rate_limit_per_minute", 0)
	v.SetDefault("redis_addr", "")
	v.SetDefault("redis_key_prefix", "task_manager:ratelimit:")
	v.SetDefault("shutdown_timeout_seconds", 20)
	v.SetDefault("log_level", "info")
	v.SetDefault("jwt_secret", "")

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var errs []error

	expiresIn, err := parseExpiry(v.GetString("jwt_expires_in"))
	if err != nil {
		errs = append(errs, fmt.Errorf("JWT_EXPIRES_IN: %w", err))
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString("log_level"))); err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", v.GetString("app_host"), v.GetString("app_port")),
		Environment:            v.GetString("app_env"),
		DatabaseDSN:            v.GetString("database_dsn"),
		JWTSecret:              v.GetString("jwt_secret"),
		JWTExpiresIn:           expiresIn,
		BcryptCost:             getInt(v, "bcrypt_cost", &errs),
		RateLimit:              getInt(v, "rate_limit_per_minute", &errs),
		RedisAddr:              v.GetString("redis_addr"),
		RedisKeyPrefix:         v.GetString("redis_key_prefix"),
		ShutdownTimeoutSeconds: getInt(v, "shutdown_timeout_seconds", &errs),
		LogLevel:               level,
	}

	errs = append(errs, validate(cfg)...)
	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}

	return cfg, nil
}

func validate(cfg Config) []error {
	var errs []error

	if cfg.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET must be set"))
	}
	if cfg.DatabaseDSN == "" {
		errs = append(errs, errors.New("DATABASE_DSN must not be empty"))
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		errs = append(errs, errors.New("BCRYPT_COST must be between 4 and 31"))
	}
	if cfg.RateLimit < 0 {
		errs = append(errs, errors.New("RATE_LIMIT_PER_MINUTE must not be negative"))
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		errs = append(errs, errors.New("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0"))
	}

	return errs
}

func getInt(v *viper.Viper, key string, errs *[]error) int {
	raw := strings.TrimSpace(v.GetString(key))
	i, err := strconv.Atoi(raw)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("invalid integer value for %s", strings.ToUpper(key)))
		return 0
	}
	return i
}

// parseExpiry accepts Go durations ("168h") and whole days ("7d").
func parseExpiry(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if days, ok := strings.CutSuffix(raw, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("invalid duration %q", raw)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive, got %q", raw)
	}
	return d, nil
}

// LoadDotEnv loads a .env file into the environment if one exists.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Info(".env file not found, using environment variables")
			return
		}
		slog.Warn("failed to load .env file", "error", err)
	}
}
