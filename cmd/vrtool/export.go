package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"vrtool/pkg/telemetry"
)

type exportedEvent struct {
	ID          string `json:"id"`
	Timestamp   string `json:"timestamp"`
	SessionID   string `json:"session_id"`
	Command     string `json:"command"`
	Success     bool   `json:"success"`
	DurationMs  int64  `json:"duration_ms"`
	ErrorType   string `json:"error_type,omitempty"`
	ProjectHash string `json:"project,omitempty"`
	FilesCopied int    `json:"files_copied,omitempty"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export telemetry data",
	Example: `  vrtool export --format json  # Export as JSON
  vrtool export --format csv   # Export as CSV`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")
		if format != "json" && format != "csv" {
			return fmt.Errorf("unknown format: %s", format)
		}
		if output == "" {
			output = "vrtool-telemetry." + format
		}

		db, err := openTelemetryDB()
		if err != nil {
			return err
		}
		defer db.Close()

		events, err := db.GetAllEvents()
		if err != nil {
			return fmt.Errorf("failed to read events: %w", err)
		}

		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", output, err)
		}
		defer f.Close()

		if err := writeEvents(f, format, events); err != nil {
			return err
		}

		fmt.Printf("Exported %d events to %s\n", len(events), output)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("format", "json", "Export format (json, csv)")
	exportCmd.Flags().String("output", "", "Output file")
	rootCmd.AddCommand(exportCmd)
}

func writeEvents(w io.Writer, format string, events []telemetry.Event) error {
	rows := make([]exportedEvent, len(events))
	for i, e := range events {
		rows[i] = exportedEvent{
			ID:          e.ID,
			Timestamp:   e.Timestamp.Format(time.RFC3339),
			SessionID:   e.SessionID,
			Command:     e.Command,
			Success:     e.Success,
			DurationMs:  e.Duration.Milliseconds(),
			ErrorType:   e.ErrorType,
			ProjectHash: e.ProjectHash,
			FilesCopied: e.FilesCopied,
		}
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)

	case "csv":
		cw := csv.NewWriter(w)
		cw.Write([]string{"id", "timestamp", "session_id", "command", "success", "duration_ms", "error_type", "project", "files_copied"})
		for _, r := range rows {
			cw.Write([]string{
				r.ID, r.Timestamp, r.SessionID, r.Command,
				strconv.FormatBool(r.Success), strconv.FormatInt(r.DurationMs, 10),
				r.ErrorType, r.ProjectHash, strconv.Itoa(r.FilesCopied),
			})
		}
		cw.Flush()
		return cw.Error()

	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
