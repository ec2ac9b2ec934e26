package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	App     AppConfig
	Log     LogConfig
	Ledger  LedgerConfig
	Metrics MetricsConfig
}

type AppConfig struct {
	Environment string
}

type LogConfig struct {
	Level  slog.Level
	Format string
}

type LedgerConfig struct {
	SavingsInterestRate   decimal.Decimal
	CurrentOverdraftLimit decimal.Decimal
}

type MetricsConfig struct {
	// TextfilePath receives the metrics in Prometheus text format on exit; empty disables it
	TextfilePath string
}

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Load reads configuration from the environment after merging the optional
// file named by ENV_FILE (default .env). Variables already set take precedence.
func Load() (*Config, error) {
	envFile := getEnv("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	savingsRate, err := getDecimalEnv("SAVINGS_INTEREST_RATE", decimal.NewFromFloat(0.02))
	if err != nil {
		return nil, err
	}

	overdraftLimit, err := getDecimalEnv("CURRENT_OVERDRAFT_LIMIT", decimal.NewFromInt(500))
	if err != nil {
		return nil, err
	}

	config := &Config{
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
		},
		Log: LogConfig{
			Level:  getLevelEnv("LOG_LEVEL", slog.LevelWarn),
			Format: strings.ToLower(getEnv("LOG_FORMAT", LogFormatText)),
		},
		Ledger: LedgerConfig{
			SavingsInterestRate:   savingsRate,
			CurrentOverdraftLimit: overdraftLimit,
		},
		Metrics: MetricsConfig{
			TextfilePath: getEnv("METRICS_TEXTFILE", ""),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejects settings the ledger cannot operate with
func (c *Config) Validate() error {
	if c.Ledger.SavingsInterestRate.IsNegative() {
		return fmt.Errorf("SAVINGS_INTEREST_RATE must not be negative, got %s", c.Ledger.SavingsInterestRate)
	}

	if c.Ledger.CurrentOverdraftLimit.IsNegative() {
		return fmt.Errorf("CURRENT_OVERDRAFT_LIMIT must not be negative, got %s", c.Ledger.CurrentOverdraftLimit)
	}

	switch c.Log.Format {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("LOG_FORMAT must be %q or %q, got %q", LogFormatText, LogFormatJSON, c.Log.Format)
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getDecimalEnv returns defaultValue when key is unset and an error when it is set but not a number
func getDecimalEnv(key string, defaultValue decimal.Decimal) (decimal.Decimal, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s must be a decimal number, got %q", key, value)
	}
	return d, nil
}

// getLevelEnv accepts slog level names (debug, info, warn, error) or a numeric level
func getLevelEnv(key string, defaultValue slog.Level) slog.Level {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err == nil {
		return level
	}

	return slog.Level(getIntEnv(key, int(defaultValue)))
}
