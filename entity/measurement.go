package entity

import "time"

// Measurement is the canonical sensor reading published to the readings topic.
// Area and metric are normalized before they become routing-key segments;
// sensor id and position are provider fields passed through uninterpreted.
type Measurement struct {
	City      string    `json:"city"`
	Area      string    `json:"area"`
	SensorID  string    `json:"sensorId"`
	Position  string    `json:"position"`
	Metric    string    `json:"metric"`
	Value     float64   `json:"value"`
	Timestamp time.Time `json:"timestamp"`
}
