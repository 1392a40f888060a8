package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vrtool/pkg/telemetry"
)

var telemetryDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Disable telemetry collection",
	RunE: func(cmd *cobra.Command, args []string) error {
		config := telemetry.LoadTelemetryConfig(telemetryDir())
		config.Enabled = false
		if err := telemetry.SaveTelemetryConfig(telemetryDir(), config); err != nil {
			return fmt.Errorf("failed to save telemetry config: %w", err)
		}
		fmt.Println("Telemetry disabled")
		fmt.Println("No new data will be collected")
		fmt.Printf("Existing data remains in %s\n", telemetry.DBPath(telemetryDir()))
		return nil
	},
}

func init() {
	telemetryCmd.AddCommand(telemetryDisableCmd)
}
