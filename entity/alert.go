package entity

import "time"

// Level is the discrete alert severity derived from a rolling statistic.
type Level string

const (
	LevelGreen  Level = "GREEN"
	LevelYellow Level = "YELLOW"
	LevelRed    Level = "RED"
)

// Alert is published to the alerts topic whenever the computed level for an
// (area, metric) key changes. Value carries the rolling statistic, not the
// instantaneous reading.
type Alert struct {
	Area      string    `json:"area"`
	Metric    string    `json:"metric"`
	Level     Level     `json:"level"`
	Value     float64   `json:"value"`
	Threshold float64   `json:"threshold"`
	Timestamp time.Time `json:"timestamp"`
	Reason    string    `json:"reason"`
}
