package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show usage statistics",
	Example: `  vrtool stats            # Last 7 days
  vrtool stats --days 30  # Last 30 days`,
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")

		db, err := openTelemetryDB()
		if err != nil {
			return err
		}
		defer db.Close()

		stats, err := db.GetStats(days)
		if err != nil {
			return fmt.Errorf("failed to read statistics: %w", err)
		}

		fmt.Printf("Usage Statistics (Last %d Days)\n", days)
		fmt.Println("================================")
		fmt.Printf("Commands executed: %d\n", stats.TotalCommands)
		fmt.Printf("Success rate: %.1f%%\n", stats.SuccessRate)
		fmt.Printf("Avg command time: %v\n", stats.AvgCommandDuration)
		fmt.Printf("Projects generated: %d\n", stats.ProjectsGenerated)
		fmt.Printf("Media pushes: %d\n", stats.MediaPushes)

		if len(stats.TopCommands) > 0 {
			fmt.Println("\nTop Commands:")
			for _, c := range stats.TopCommands {
				fmt.Printf("  %s: %d\n", c.Command, c.Count)
			}
		}

		if len(stats.CommonErrors) > 0 {
			fmt.Println("\nCommon Errors:")
			for _, e := range stats.CommonErrors {
				fmt.Printf("  %s: %d occurrences\n", e.ErrorType, e.Count)
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("days", 7, "Number of days to include")
	rootCmd.AddCommand(statsCmd)
}
