// Package routing defines the dot-delimited routing-key grammar shared by the
// producer, aggregator and gateway services.
//
// Wire contract:
//
//	readings: reading.<area>.<metric>   e.g. reading.gazi_baba.pm10
//	alerts:   alert.<area>.<level>      e.g. alert.centar.RED
package routing

import (
	"fmt"
	"strings"
)

const (
	ReadingPrefix = "reading"
	AlertPrefix   = "alert"
)

// NormalizeSegment turns a free-form name into a stable routing-key segment:
// lowercase, spaces replaced by underscores. Blank input becomes "unknown".
func NormalizeSegment(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "unknown"
	}
	return strings.ReplaceAll(strings.ToLower(s), " ", "_")
}

// ReadingKey builds the routing key for a measurement.
func ReadingKey(area, metric string) string {
	return fmt.Sprintf("%s.%s.%s", ReadingPrefix, NormalizeSegment(area), NormalizeSegment(metric))
}

// AlertKey builds the routing key for an alert. The level segment keeps its
// case (levels are uppercase on the wire).
func AlertKey(area, level string) string {
	return fmt.Sprintf("%s.%s.%s", AlertPrefix, NormalizeSegment(area), level)
}

// ParseReadingKey extracts (area, metric) from a reading routing key.
// The key must have at least three segments and start with "reading";
// segments are returned verbatim, not re-validated against a known set.
func ParseReadingKey(key string) (area, metric string, err error) {
	return parse(key, ReadingPrefix)
}

// ParseAlertKey extracts (area, level) from an alert routing key.
func ParseAlertKey(key string) (area, level string, err error) {
	return parse(key, AlertPrefix)
}

func parse(key, prefix string) (string, string, error) {
	parts := strings.Split(key, ".")
	if len(parts) < 3 {
		return "", "", fmt.Errorf("routing key %q: expected at least 3 segments, got %d", key, len(parts))
	}
	if parts[0] != prefix {
		return "", "", fmt.Errorf("routing key %q: expected prefix %q, got %q", key, prefix, parts[0])
	}
	return parts[1], parts[2], nil
}
