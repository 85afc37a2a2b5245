package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/airpulse-io/airpulse/entity"
)

func TestFilterEmitsOnFirstObservation(t *testing.T) {
	var f levelFilter
	// The reference behavior emits even when the first level is GREEN.
	assert.True(t, f.transition(entity.LevelGreen))
}

func TestFilterSuppressesSteadyState(t *testing.T) {
	var f levelFilter

	assert.True(t, f.transition(entity.LevelRed))
	assert.False(t, f.transition(entity.LevelRed))
	assert.False(t, f.transition(entity.LevelRed))
}

func TestFilterEmitsOnEveryTransition(t *testing.T) {
	var f levelFilter

	assert.True(t, f.transition(entity.LevelGreen))
	assert.True(t, f.transition(entity.LevelRed))
	assert.True(t, f.transition(entity.LevelGreen))
	assert.True(t, f.transition(entity.LevelYellow))
	assert.False(t, f.transition(entity.LevelYellow))
}
