package telemetry

import (
	"fmt"
	"time"
)

type InsightsAnalyzer struct {
	db *TelemetryDB
}

func NewInsightsAnalyzer(db *TelemetryDB) *InsightsAnalyzer {
	return &InsightsAnalyzer{db: db}
}

func (a *InsightsAnalyzer) GenerateInsights(days int) ([]Insight, error) {
	insights := []Insight{}

	stats, err := a.db.GetStats(days)
	if err != nil {
		return nil, err
	}
	if stats.TotalCommands == 0 {
		return insights, nil
	}

	if stats.SuccessRate < 80 {
		insights = append(insights, Insight{
			Type:        "success_rate",
			Title:       "Low Success Rate",
			Description: fmt.Sprintf("Only %.1f%% of commands succeeded. Check the common errors below.", stats.SuccessRate),
			Severity:    "high",
		})
	}

	for _, e := range stats.CommonErrors {
		switch e.ErrorType {
		case "destination_exists":
			insights = append(insights, Insight{
				Type:        "errors",
				Title:       "Project Name Collisions",
				Description: "Generation often stops because the project directory already exists. Pick a new name or remove the old project first.",
				Severity:    "medium",
			})
		case "bridge_failed":
			insights = append(insights, Insight{
				Type:        "device",
				Title:       "Media Push Failures",
				Description: "adb push keeps failing. Check that the headset is connected and authorized (adb devices).",
				Severity:    "medium",
			})
		}
	}

	if stats.AvgCommandDuration > 30*time.Second {
		insights = append(insights, Insight{
			Type:        "performance",
			Title:       "Slow Commands",
			Description: "Average command duration is over 30 seconds. Large media directories slow down pushes.",
			Severity:    "low",
		})
	}

	if stats.SuccessRate >= 90 && len(stats.CommonErrors) == 0 {
		insights = append(insights, Insight{
			Type:        "success",
			Title:       "Excellent Performance",
			Description: "Over 90% success rate with no errors.",
			Severity:    "low",
		})
	}

	return insights, nil
}
