package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vrtool/pkg/telemetry"
)

var telemetryStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show telemetry status",
	Run: func(cmd *cobra.Command, args []string) {
		config := telemetry.LoadTelemetryConfig(telemetryDir())

		fmt.Println("Telemetry Status")
		fmt.Println("----------------")
		fmt.Printf("Enabled: %v\n", config.Enabled)
		fmt.Printf("Anonymized: %v\n", config.Anonymize)
		fmt.Printf("Data location: %s\n", telemetry.DBPath(telemetryDir()))
		fmt.Printf("Retention: %d days\n", config.RetentionDays)

		db, err := openTelemetryDB()
		if err != nil {
			return
		}
		defer db.Close()

		if stats, err := db.GetStats(7); err == nil {
			fmt.Printf("\nCommands (last 7 days): %d\n", stats.TotalCommands)
		}
	},
}

func init() {
	telemetryCmd.AddCommand(telemetryStatusCmd)
}
