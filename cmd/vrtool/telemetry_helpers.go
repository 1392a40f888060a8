package main

import (
	"fmt"
	"os"

	"vrtool/pkg/config"
	"vrtool/pkg/telemetry"
)

func telemetryDir() string {
	return config.DefaultConfigDir()
}

// track runs fn under the telemetry recorder when telemetry is enabled.
func track(command string, fn func(*telemetry.Outcome) error) error {
	rec, err := telemetry.OpenRecorder(telemetryDir(), logger)
	if err != nil {
		logger.Debug("telemetry unavailable", "error", err)
		rec = nil
	}
	defer rec.Close()

	if rec != nil {
		rec.Classify = errorType
	}
	return rec.Track(command, fn)
}

// openTelemetryDB opens the existing database without creating one.
func openTelemetryDB() (*telemetry.TelemetryDB, error) {
	path := telemetry.DBPath(telemetryDir())
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("no telemetry recorded yet (enable it with 'vrtool telemetry enable')")
	}
	return telemetry.NewTelemetryDB(path)
}
