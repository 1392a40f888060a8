package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	configFile = "telemetry_config.json"
	dbFile     = "telemetry.db"
)

type TelemetryConfig struct {
	Enabled       bool `json:"enabled"`
	Anonymize     bool `json:"anonymize"`
	RetentionDays int  `json:"retention_days"`
}

func DefaultTelemetryConfig() TelemetryConfig {
	return TelemetryConfig{
		Enabled:       false,
		Anonymize:     true,
		RetentionDays: 30,
	}
}

// LoadTelemetryConfig reads the config stored in dir, falling back to the
// defaults when it is missing or unreadable.
func LoadTelemetryConfig(dir string) TelemetryConfig {
	config := DefaultTelemetryConfig()

	data, err := os.ReadFile(filepath.Join(dir, configFile))
	if err != nil {
		return config
	}

	if err := json.Unmarshal(data, &config); err != nil {
		return DefaultTelemetryConfig()
	}
	return config
}

func SaveTelemetryConfig(dir string, config TelemetryConfig) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create telemetry directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, configFile), data, 0644)
}

// DBPath is the telemetry database location inside dir.
func DBPath(dir string) string {
	return filepath.Join(dir, dbFile)
}
