package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowNeverExceedsCapacity(t *testing.T) {
	w := newWindow(10)

	for i := 1; i <= 100; i++ {
		w.observe(float64(i))
		assert.LessOrEqual(t, w.size(), 10)
	}
}

func TestWindowMeanMatchesContents(t *testing.T) {
	w := newWindow(3)

	assert.Equal(t, 4.0, w.observe(4))          // [4]
	assert.Equal(t, 5.0, w.observe(6))          // [4 6]
	assert.Equal(t, 4.0, w.observe(2))          // [4 6 2]
	assert.Equal(t, 6.0, w.observe(10))         // [6 2 10], 4 evicted
	assert.Equal(t, []float64{6, 2, 10}, w.values)
}

func TestWindowFIFOEviction(t *testing.T) {
	w := newWindow(10)

	values := []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100, 100}
	var mean float64
	for _, v := range values {
		mean = w.observe(v)
	}

	// 11 values into a window of 10: the first 10 is dropped,
	// mean over [20..100,100] = 64.0.
	assert.Equal(t, 10, w.size())
	assert.InDelta(t, 64.0, mean, 1e-9)
	assert.Equal(t, 20.0, w.values[0])
}

func TestEmptyWindowMeanIsZero(t *testing.T) {
	w := newWindow(5)
	assert.Equal(t, 0.0, w.mean())
}
