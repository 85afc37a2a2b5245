package engine

import "github.com/airpulse-io/airpulse/entity"

// Policy maps a rolling statistic to an alert level and the threshold that
// produced it.
type Policy func(statistic float64) (entity.Level, float64)

// CeilingPolicy classifies statistic > ceiling as RED, otherwise GREEN.
// The comparison is strict: a statistic exactly at the ceiling stays GREEN.
func CeilingPolicy(ceiling float64) Policy {
	return func(statistic float64) (entity.Level, float64) {
		if statistic > ceiling {
			return entity.LevelRed, ceiling
		}
		return entity.LevelGreen, ceiling
	}
}

// ThresholdTable is an open per-metric policy registry. Metrics without a
// registered policy evaluate to a neutral GREEN with threshold 0, so new
// metrics flow through the pipeline without alerting until a policy exists.
type ThresholdTable struct {
	policies map[string]Policy
}

func NewThresholdTable() *ThresholdTable {
	return &ThresholdTable{policies: make(map[string]Policy)}
}

// Register installs or replaces the policy for a metric.
func (t *ThresholdTable) Register(metric string, policy Policy) {
	t.policies[metric] = policy
}

// Evaluate classifies a statistic for the given metric.
func (t *ThresholdTable) Evaluate(metric string, statistic float64) (entity.Level, float64) {
	if policy, ok := t.policies[metric]; ok {
		return policy(statistic)
	}
	return entity.LevelGreen, 0
}
