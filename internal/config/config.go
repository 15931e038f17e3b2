package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/workforcehq/attendance-engine-go/internal/domain/reconcile"
	"github.com/workforcehq/attendance-engine-go/internal/pkg/validator"
)

type Config struct {
	Database   DatabaseConfig
	App        AppConfig
	Attendance reconcile.Config
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	FrontendURL string
}

func Load() (*Config, error) {
	// A missing .env file is fine in production; env vars still apply.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// Attendance engine configuration. An invalid value here would silently
	// corrupt every lateness and overtime calculation, so loading fails hard.
	weekendDays, err := reconcile.ParseWeekendDays(getEnv("ATTENDANCE_WEEKEND_DAYS", "saturday,sunday"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_WEEKEND_DAYS: %w", err)
	}

	lateCutoff := getEnv("ATTENDANCE_LATE_CUTOFF", reconcile.DefaultLateCutoff)
	if _, ok := validator.IsValidTimeOfDay(lateCutoff); !ok {
		return nil, fmt.Errorf("invalid ATTENDANCE_LATE_CUTOFF: %q is not an HH:MM time", lateCutoff)
	}

	shiftMinutes, err := strconv.Atoi(getEnv("ATTENDANCE_SHIFT_MINUTES", strconv.Itoa(reconcile.DefaultStandardShiftMinutes)))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_SHIFT_MINUTES: %w", err)
	}

	config.Attendance = reconcile.Config{
		WeekendDays:          weekendDays,
		LateCutoff:           lateCutoff,
		StandardShiftMinutes: shiftMinutes,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if err := c.Attendance.Validate(); err != nil {
		return fmt.Errorf("%w: %v", reconcile.ErrInvalidConfiguration, err)
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
