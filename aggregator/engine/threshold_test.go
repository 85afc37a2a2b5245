package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/airpulse-io/airpulse/entity"
)

func newTestTable() *ThresholdTable {
	table := NewThresholdTable()
	table.Register("pm10", CeilingPolicy(50.0))
	return table
}

func TestCeilingPolicyStrictComparison(t *testing.T) {
	table := newTestTable()

	cases := []struct {
		name      string
		statistic float64
		level     entity.Level
	}{
		{"below ceiling", 49.9, entity.LevelGreen},
		{"exactly at ceiling", 50.0, entity.LevelGreen},
		{"above ceiling", 50.1, entity.LevelRed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			level, threshold := table.Evaluate("pm10", tc.statistic)
			assert.Equal(t, tc.level, level)
			assert.Equal(t, 50.0, threshold)
		})
	}
}

func TestUnrecognizedMetricIsNeutral(t *testing.T) {
	table := newTestTable()

	for _, statistic := range []float64{0, 49.9, 50.1, 1e9} {
		level, threshold := table.Evaluate("noise", statistic)
		assert.Equal(t, entity.LevelGreen, level)
		assert.Equal(t, 0.0, threshold)
	}
}

func TestRegisterReplacesPolicy(t *testing.T) {
	table := newTestTable()
	table.Register("pm10", CeilingPolicy(10.0))

	level, threshold := table.Evaluate("pm10", 20.0)
	assert.Equal(t, entity.LevelRed, level)
	assert.Equal(t, 10.0, threshold)
}
