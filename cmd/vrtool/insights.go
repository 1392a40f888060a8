package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vrtool/pkg/telemetry"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show usage insights and suggestions",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")

		db, err := openTelemetryDB()
		if err != nil {
			return err
		}
		defer db.Close()

		insights, err := telemetry.NewInsightsAnalyzer(db).GenerateInsights(days)
		if err != nil {
			return fmt.Errorf("failed to analyze telemetry: %w", err)
		}

		if len(insights) == 0 {
			fmt.Println("No issues detected.")
			return nil
		}

		fmt.Println("Insights")
		fmt.Println("========")

		for _, insight := range insights {
			marker := "-"
			if insight.Severity == "high" {
				marker = "!"
			}
			fmt.Printf("\n%s %s\n", marker, insight.Title)
			fmt.Printf("   %s\n", insight.Description)
		}
		return nil
	},
}

func init() {
	insightsCmd.Flags().Int("days", 30, "Number of days to analyze")
	rootCmd.AddCommand(insightsCmd)
}
