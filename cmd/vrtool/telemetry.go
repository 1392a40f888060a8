package main

import (
	"github.com/spf13/cobra"
)

var telemetryCmd = &cobra.Command{
	Use:   "telemetry",
	Short: "Manage the local usage log",
	Long: `vrtool can keep a local log of 'new' and 'push' runs in
~/.vrtool/telemetry.db. It is off by default and never leaves the machine.`,
}

func init() {
	rootCmd.AddCommand(telemetryCmd)
}
