package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds the application configuration. Everything the store adapter and
// background jobs need is constructed here and passed in explicitly; nothing
// reads the environment after startup.
type Config struct {
	ServerPort           int
	DatabasePath         string
	MasterKey            string // hex-encoded 32-byte key; empty disables at-rest encryption
	AllowedOrigins       []string
	HealthAuditSchedule  string // cron expression for the periodic vault health audit
	HealthAlertThreshold int    // health score below which an alert event is recorded
}

// Load loads configuration from environment variables or sets defaults.
func Load() (*Config, error) {
	portStr := getEnv("PORT", "3002")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	threshold, err := strconv.Atoi(getEnv("HEALTH_ALERT_THRESHOLD", "70"))
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort:           port,
		DatabasePath:         getEnv("DATABASE_PATH", "./passpocket.db"),
		MasterKey:            getEnv("VAULT_MASTER_KEY", ""),
		AllowedOrigins:       splitOrigins(getEnv("ALLOWED_ORIGINS", "*")),
		HealthAuditSchedule:  getEnv("HEALTH_AUDIT_SCHEDULE", "@hourly"),
		HealthAlertThreshold: threshold,
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
