package app

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/patriotauto/scheduler/internal/scheduler/grid"
	"github.com/patriotauto/scheduler/pkg/jwtx"
)

type Config struct {
	Issuer    string        // Issuer claim for access tokens
	JWTSecret string        // Required: HS256 signing secret, at least 32 bytes
	TokenTTL  time.Duration // Access token lifetime (default: 8h)

	DatabaseFile string // Path to SQLite database file (default: ./scheduler.db)

	DayStart    string // Business day opening time, HH:MM (default: 08:00)
	DayEnd      string // Business day closing time, HH:MM (default: 17:00)
	SlotMinutes int    // Grid slot width in minutes (default: 30)

	TenantName    string // First-run bootstrap: tenant name (default: Patriot Auto)
	AdminEmail    string // First-run bootstrap: admin email (optional)
	AdminPassword string // First-run bootstrap: admin password (optional)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Issuer:    getEnvOrDefault("SCHED_ISSUER", "patriot-scheduler"),
		JWTSecret: os.Getenv("SCHED_JWT_SECRET"),
		TokenTTL:  getEnvDurationOrDefault("SCHED_TOKEN_TTL", jwtx.DefaultAccessTokenTTL),

		DatabaseFile: getEnvOrDefault("SCHED_DATABASE_FILE", "scheduler.db"),

		DayStart:    getEnvOrDefault("SCHED_DAY_START", "08:00"),
		DayEnd:      getEnvOrDefault("SCHED_DAY_END", "17:00"),
		SlotMinutes: getEnvIntOrDefault("SCHED_SLOT_MINUTES", 30),

		TenantName:    getEnvOrDefault("SCHED_TENANT_NAME", "Patriot Auto"),
		AdminEmail:    os.Getenv("SCHED_ADMIN_EMAIL"),
		AdminPassword: os.Getenv("SCHED_ADMIN_PASSWORD"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

// BusinessHours parses the configured day boundaries into a validated grid
// configuration.
func (c Config) BusinessHours() (grid.BusinessHours, error) {
	start, err := grid.ParseClock(c.DayStart)
	if err != nil {
		return grid.BusinessHours{}, fmt.Errorf("SCHED_DAY_START: %w", err)
	}
	end, err := grid.ParseClock(c.DayEnd)
	if err != nil {
		return grid.BusinessHours{}, fmt.Errorf("SCHED_DAY_END: %w", err)
	}

	hours := grid.BusinessHours{
		DayStartMinutes: start,
		DayEndMinutes:   end,
		SlotMinutes:     c.SlotMinutes,
	}
	if err := hours.Validate(); err != nil {
		return grid.BusinessHours{}, err
	}
	return hours, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
