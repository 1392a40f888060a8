package telemetry

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// TelemetryDB handles database operations
type TelemetryDB struct {
	db *sql.DB
}

// NewTelemetryDB creates/opens telemetry database
func NewTelemetryDB(path string) (*TelemetryDB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	tdb := &TelemetryDB{db: db}
	if err := tdb.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return tdb, nil
}

func (t *TelemetryDB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS events (
		id TEXT PRIMARY KEY,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		session_id TEXT,
		command TEXT NOT NULL,
		duration_ms INTEGER,
		success BOOLEAN,
		error_type TEXT,
		project_hash TEXT,
		files_copied INTEGER
	);

	CREATE INDEX IF NOT EXISTS idx_events_time ON events(timestamp);
	CREATE INDEX IF NOT EXISTS idx_events_command ON events(command);
	`

	_, err := t.db.Exec(schema)
	return err
}

// SaveEvent saves a telemetry event
func (t *TelemetryDB) SaveEvent(e Event) error {
	query := `
	INSERT OR REPLACE INTO events (
		id, timestamp, session_id, command, duration_ms, success,
		error_type, project_hash, files_copied
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := t.db.Exec(query,
		e.ID, e.Timestamp, e.SessionID, e.Command, e.Duration.Milliseconds(),
		e.Success, e.ErrorType, e.ProjectHash, e.FilesCopied,
	)
	return err
}

// QueryEvents returns events recorded at or after since
func (t *TelemetryDB) QueryEvents(since time.Time) ([]Event, error) {
	rows, err := t.db.Query(`
		SELECT id, timestamp, session_id, command, duration_ms, success,
			error_type, project_hash, files_copied
		FROM events WHERE timestamp >= ? ORDER BY timestamp
	`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

func (t *TelemetryDB) GetAllEvents() ([]Event, error) {
	return t.QueryEvents(time.Time{})
}

// GetStats returns usage statistics
func (t *TelemetryDB) GetStats(days int) (Stats, error) {
	since := time.Now().AddDate(0, 0, -days)

	stats := Stats{}

	var successful int
	var avgDuration sql.NullFloat64
	err := t.db.QueryRow(`
		SELECT COUNT(*), COUNT(CASE WHEN success = 1 THEN 1 END), AVG(duration_ms)
		FROM events WHERE timestamp >= ?
	`, since).Scan(&stats.TotalCommands, &successful, &avgDuration)
	if err != nil {
		return stats, err
	}
	if stats.TotalCommands > 0 {
		stats.SuccessRate = float64(successful) / float64(stats.TotalCommands) * 100
	}
	if avgDuration.Valid {
		stats.AvgCommandDuration = time.Duration(avgDuration.Float64) * time.Millisecond
	}

	err = t.db.QueryRow(`
		SELECT COUNT(CASE WHEN command = 'new' THEN 1 END), COUNT(CASE WHEN command = 'push' THEN 1 END)
		FROM events WHERE success = 1 AND timestamp >= ?
	`, since).Scan(&stats.ProjectsGenerated, &stats.MediaPushes)
	if err != nil {
		return stats, err
	}

	stats.TopCommands, err = t.getTopCommands(since)
	if err != nil {
		return stats, err
	}

	stats.CommonErrors, err = t.getCommonErrors(since)
	if err != nil {
		return stats, err
	}

	return stats, nil
}

func (t *TelemetryDB) getTopCommands(since time.Time) ([]CommandStat, error) {
	query := `
		SELECT command, COUNT(*) as count, AVG(duration_ms) as avg_dur,
			(COUNT(CASE WHEN success = 1 THEN 1 END) * 100.0 / COUNT(*)) as success_rate
		FROM events WHERE command != '' AND timestamp >= ?
		GROUP BY command ORDER BY count DESC LIMIT 10
	`

	rows, err := t.db.Query(query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var commands []CommandStat
	for rows.Next() {
		var cs CommandStat
		var avgDur sql.NullFloat64
		var successRate sql.NullFloat64

		if err := rows.Scan(&cs.Command, &cs.Count, &avgDur, &successRate); err != nil {
			return nil, err
		}

		if avgDur.Valid {
			cs.AvgDuration = int64(avgDur.Float64)
		}
		if successRate.Valid {
			cs.SuccessRate = successRate.Float64
		}

		commands = append(commands, cs)
	}

	return commands, rows.Err()
}

func (t *TelemetryDB) getCommonErrors(since time.Time) ([]ErrorStat, error) {
	query := `
		SELECT error_type, COUNT(*) as count
		FROM events WHERE success = 0 AND error_type != '' AND timestamp >= ?
		GROUP BY error_type ORDER BY count DESC LIMIT 10
	`

	rows, err := t.db.Query(query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var errors []ErrorStat
	for rows.Next() {
		var es ErrorStat
		if err := rows.Scan(&es.ErrorType, &es.Count); err != nil {
			return nil, err
		}
		errors = append(errors, es)
	}

	return errors, rows.Err()
}

// DeleteOldEvents removes events older than the specified duration
func (t *TelemetryDB) DeleteOldEvents(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)
	res, err := t.db.Exec(`DELETE FROM events WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Close closes the database connection
func (t *TelemetryDB) Close() error {
	return t.db.Close()
}

func scanEvents(rows *sql.Rows) ([]Event, error) {
	var events []Event
	for rows.Next() {
		var e Event
		var durationMs sql.NullInt64
		var sessionID, errorType, projectHash sql.NullString
		var filesCopied sql.NullInt64

		err := rows.Scan(
			&e.ID, &e.Timestamp, &sessionID, &e.Command, &durationMs,
			&e.Success, &errorType, &projectHash, &filesCopied,
		)
		if err != nil {
			return nil, err
		}

		if durationMs.Valid {
			e.Duration = time.Duration(durationMs.Int64) * time.Millisecond
		}
		e.SessionID = sessionID.String
		e.ErrorType = errorType.String
		e.ProjectHash = projectHash.String
		e.FilesCopied = int(filesCopied.Int64)

		events = append(events, e)
	}
	return events, rows.Err()
}
