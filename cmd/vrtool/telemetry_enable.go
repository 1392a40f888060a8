package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vrtool/pkg/telemetry"
)

var telemetryEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Enable telemetry collection",
	RunE: func(cmd *cobra.Command, args []string) error {
		config := telemetry.LoadTelemetryConfig(telemetryDir())
		config.Enabled = true
		if err := telemetry.SaveTelemetryConfig(telemetryDir(), config); err != nil {
			return fmt.Errorf("failed to save telemetry config: %w", err)
		}
		fmt.Println("Telemetry enabled")
		fmt.Printf("Data is stored locally in %s\n", telemetry.DBPath(telemetryDir()))
		fmt.Println("Export it anytime with 'vrtool export'")
		return nil
	},
}

func init() {
	telemetryCmd.AddCommand(telemetryEnableCmd)
}
