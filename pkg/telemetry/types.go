package telemetry

import "time"

// Event is one recorded CLI invocation
type Event struct {
	ID          string
	Timestamp   time.Time
	SessionID   string
	Command     string
	Duration    time.Duration
	Success     bool
	ErrorType   string
	ProjectHash string
	FilesCopied int
}

type Stats struct {
	TotalCommands      int
	SuccessRate        float64
	AvgCommandDuration time.Duration
	ProjectsGenerated  int
	MediaPushes        int
	TopCommands        []CommandStat
	CommonErrors       []ErrorStat
}

type CommandStat struct {
	Command     string
	Count       int
	AvgDuration int64
	SuccessRate float64
}

type ErrorStat struct {
	ErrorType string
	Count     int
}

type Insight struct {
	Type        string
	Title       string
	Description string
	Severity    string
}
