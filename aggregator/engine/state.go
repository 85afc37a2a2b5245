package engine

import "github.com/airpulse-io/airpulse/entity"

// levelFilter is the per-key edge detector on the level signal: it emits only
// when the newly computed level differs from the last emitted one. The very
// first evaluation has no prior and therefore always emits, including a first
// GREEN (the reference behavior is preserved deliberately).
type levelFilter struct {
	lastEmitted *entity.Level
}

// transition records level and reports whether an alert must be emitted.
// The stored level is updated unconditionally.
func (f *levelFilter) transition(level entity.Level) bool {
	emit := f.lastEmitted == nil || *f.lastEmitted != level
	f.lastEmitted = &level
	return emit
}
