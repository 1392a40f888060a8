package testutil

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteTestHelper inspects a SQLite database written by the code under test
type SQLiteTestHelper struct {
	DB     *sql.DB
	DBPath string
}

// TempDBPath returns a fresh database path inside the test's temp dir
func TempDBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "telemetry.db")
}

// OpenSQLite opens dbPath for inspection and closes it when the test ends
func OpenSQLite(t *testing.T, dbPath string) *SQLiteTestHelper {
	t.Helper()

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	helper := &SQLiteTestHelper{DB: db, DBPath: dbPath}
	t.Cleanup(func() {
		_ = helper.DB.Close()
	})
	return helper
}

// Exec executes a SQL statement
func (h *SQLiteTestHelper) Exec(t *testing.T, query string, args ...interface{}) {
	t.Helper()
	if _, err := h.DB.Exec(query, args...); err != nil {
		t.Fatalf("Failed to execute SQL: %v", err)
	}
}

// RowExists checks if a row exists
func (h *SQLiteTestHelper) RowExists(t *testing.T, table string, where string, args ...interface{}) bool {
	t.Helper()
	var count int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", table, where)
	if err := h.DB.QueryRow(query, args...).Scan(&count); err != nil {
		t.Fatalf("Failed to check existence: %v", err)
	}
	return count > 0
}

// Count returns the count of rows in a table
func (h *SQLiteTestHelper) Count(t *testing.T, table string) int {
	t.Helper()
	var count int
	if err := h.DB.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&count); err != nil {
		t.Fatalf("Failed to count: %v", err)
	}
	return count
}
