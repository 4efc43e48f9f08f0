package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // STATEMENT_TIMEZONE must resolve on hosts without a zoneinfo database

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"statementAnalyzer/internal/adapters/logger" // Import the logger package for LogLevel
)

// Config holds all application configuration.
type Config struct {
	// Logging
	LogLevel  logger.LogLevel
	LogFormat string `validate:"oneof=json console"`

	// Statement layout
	HeaderRow  int    `validate:"gte=0,lte=50"`
	TimeLayout string `validate:"required"`
	Location   *time.Location

	// Trend projection
	TrendDegree int `validate:"gte=0,lte=6"`
	HorizonDays int `validate:"gte=0,lte=366"`

	// Presentation
	DisplayDateLayout string `validate:"required"`
}

var validate = validator.New()

// LoadConfig loads configuration from environment variables (.env file).
func LoadConfig() (*Config, error) {
	// Load .env file, but don't fail if it doesn't exist (allow pure env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	var err error
	var errs []string // Collect validation errors

	cfg.LogLevel = logger.ParseLevel(getEnv("LOG_LEVEL", "INFO"))
	cfg.LogFormat = strings.ToLower(getEnv("LOG_FORMAT", "console"))

	cfg.HeaderRow, err = getEnvAsIntRequired("STATEMENT_HEADER_ROW", 2)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid STATEMENT_HEADER_ROW: %v", err))
	}
	cfg.TimeLayout = getEnv("STATEMENT_TIME_LAYOUT", "2006.01.02 15:04:05")

	tz := getEnv("STATEMENT_TIMEZONE", "UTC")
	cfg.Location, err = time.LoadLocation(tz)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid STATEMENT_TIMEZONE %q: %v", tz, err))
	}

	cfg.TrendDegree, err = getEnvAsIntRequired("TREND_DEGREE", 3)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid TREND_DEGREE: %v", err))
	}
	cfg.HorizonDays, err = getEnvAsIntRequired("TREND_HORIZON_DAYS", 30)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid TREND_HORIZON_DAYS: %v", err))
	}

	cfg.DisplayDateLayout = getEnv("DISPLAY_DATE_LAYOUT", "02 January 2006")

	if err := validate.Struct(cfg); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				errs = append(errs, fmt.Sprintf("%s failed %q (value %v)", fe.Field(), fe.ActualTag(), fe.Value()))
			}
		} else {
			errs = append(errs, err.Error())
		}
	}

	// The layout must carry at least a calendar date.
	ref := time.Date(2006, 1, 2, 15, 4, 5, 0, time.UTC)
	if parsed, perr := time.Parse(cfg.TimeLayout, ref.Format(cfg.TimeLayout)); perr != nil || parsed.YearDay() != ref.YearDay() || parsed.Year() != ref.Year() {
		errs = append(errs, fmt.Sprintf("STATEMENT_TIME_LAYOUT %q is not a usable Go time layout", cfg.TimeLayout))
	}

	// Combine validation errors
	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}

	return cfg, nil
}

// --- Env Var Helpers ---

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsIntRequired(key string, defaultValue int) (int, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		// Use default if env var is not set at all
		return defaultValue, nil
	}
	value, err := strconv.Atoi(strings.TrimSpace(valueStr))
	if err != nil {
		// Return error if env var is set but invalid
		return 0, fmt.Errorf("invalid integer value '%s' for key %s: %w", valueStr, key, err)
	}
	return value, nil
}
