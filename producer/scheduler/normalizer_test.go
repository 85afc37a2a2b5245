package scheduler

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airpulse-io/airpulse/entity"
	"github.com/airpulse-io/airpulse/producer/area"
)

func newTestNormalizer() *Normalizer {
	return NewNormalizer(area.NewSkopjeResolver())
}

func TestNormalizeWellFormedRecord(t *testing.T) {
	n := newTestNormalizer()

	m := n.Normalize("skopje", entity.RawReading{
		SensorID: "sensor-123",
		Position: "41.9981,21.4254",
		Stamp:    "2024-12-10T21:00:00+01:00",
		Type:     "pm10",
		Value:    "25.5",
	})

	assert.Equal(t, "SKOPJE", m.City)
	assert.Equal(t, "centar", m.Area)
	assert.Equal(t, "sensor-123", m.SensorID)
	assert.Equal(t, "pm10", m.Metric)
	assert.Equal(t, 25.5, m.Value)

	expected, err := time.Parse(time.RFC3339, "2024-12-10T21:00:00+01:00")
	require.NoError(t, err)
	assert.True(t, m.Timestamp.Equal(expected))
}

func TestNormalizeBadTimestampFallsBackToNow(t *testing.T) {
	n := newTestNormalizer()
	before := time.Now()

	m := n.Normalize("skopje", entity.RawReading{
		Stamp: "not-a-timestamp",
		Type:  "pm10",
		Value: "10",
	})

	assert.False(t, m.Timestamp.Before(before))
	assert.False(t, m.Timestamp.After(time.Now()))
}

func TestNormalizeBadValueBecomesNaN(t *testing.T) {
	n := newTestNormalizer()

	m := n.Normalize("skopje", entity.RawReading{
		Stamp: "2024-12-10T21:00:00+01:00",
		Type:  "pm10",
		Value: "N/A",
	})

	assert.True(t, math.IsNaN(m.Value))
}

func TestNormalizeNonSkopjeCityKeepsUnknownArea(t *testing.T) {
	n := newTestNormalizer()

	m := n.Normalize("bitola", entity.RawReading{
		Position: "41.0297,21.3292",
		Stamp:    "2024-12-10T21:00:00+01:00",
		Type:     "pm25",
		Value:    "12.0",
	})

	assert.Equal(t, area.Unknown, m.Area)
	assert.Equal(t, "BITOLA", m.City)
}

func TestNormalizeUnparseablePositionKeepsUnknownArea(t *testing.T) {
	n := newTestNormalizer()

	for _, position := range []string{"", "garbage", "41.99"} {
		m := n.Normalize("skopje", entity.RawReading{
			Position: position,
			Stamp:    "2024-12-10T21:00:00+01:00",
			Type:     "pm10",
			Value:    "10",
		})
		assert.Equal(t, area.Unknown, m.Area)
	}
}
