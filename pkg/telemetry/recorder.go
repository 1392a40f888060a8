package telemetry

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
)

// Recorder writes one event per tracked command. A nil *Recorder is valid
// and records nothing, which is what OpenRecorder returns while telemetry is
// disabled.
type Recorder struct {
	db        *TelemetryDB
	sessionID string
	anonymize bool
	logger    *slog.Logger

	// Classify maps a command error to a short error type.
	Classify func(error) string
}

// Outcome carries details of a tracked command back to the recorder.
type Outcome struct {
	Project     string
	FilesCopied int
}

func OpenRecorder(dir string, logger *slog.Logger) (*Recorder, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	cfg := LoadTelemetryConfig(dir)
	if !cfg.Enabled {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create telemetry directory: %w", err)
	}
	db, err := NewTelemetryDB(DBPath(dir))
	if err != nil {
		return nil, err
	}

	if cfg.RetentionDays > 0 {
		if _, err := db.DeleteOldEvents(time.Duration(cfg.RetentionDays) * 24 * time.Hour); err != nil {
			logger.Debug("telemetry retention cleanup failed", "error", err)
		}
	}

	return &Recorder{
		db:        db,
		sessionID: uuid.NewString(),
		anonymize: cfg.Anonymize,
		logger:    logger,
		Classify:  func(err error) string { return fmt.Sprintf("%T", err) },
	}, nil
}

// Track runs fn and records its duration and result. Failures to record are
// logged and never change fn's error.
func (r *Recorder) Track(command string, fn func(*Outcome) error) error {
	var outcome Outcome
	start := time.Now()
	err := fn(&outcome)
	if r == nil {
		return err
	}

	event := Event{
		ID:          uuid.NewString(),
		Timestamp:   start,
		SessionID:   r.sessionID,
		Command:     command,
		Duration:    time.Since(start),
		Success:     err == nil,
		ProjectHash: r.projectRef(outcome.Project),
		FilesCopied: outcome.FilesCopied,
	}
	if err != nil {
		event.ErrorType = r.Classify(err)
	}

	if saveErr := r.db.SaveEvent(event); saveErr != nil {
		r.logger.Debug("failed to record telemetry event", "command", command, "error", saveErr)
	}
	return err
}

func (r *Recorder) projectRef(project string) string {
	if project == "" || !r.anonymize {
		return project
	}
	sum := sha256.Sum256([]byte(project))
	return hex.EncodeToString(sum[:8])
}

func (r *Recorder) Close() error {
	if r == nil {
		return nil
	}
	return r.db.Close()
}
