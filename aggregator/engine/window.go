// Package engine implements the stateful half of the pipeline: per-key
// sliding windows, the per-metric threshold table and the level-transition
// filter that gates alert emission.
package engine

// window is a fixed-capacity FIFO of the most recent numeric observations
// for one (area, metric) key, oldest first.
type window struct {
	values   []float64
	capacity int
}

func newWindow(capacity int) *window {
	return &window{
		values:   make([]float64, 0, capacity),
		capacity: capacity,
	}
}

// observe appends value, evicts from the front while the window exceeds its
// capacity, and returns the arithmetic mean over the remaining contents.
// The mean is recomputed from scratch on every call; at window sizes this
// small, recomputation is preferred over incremental bookkeeping.
func (w *window) observe(value float64) float64 {
	w.values = append(w.values, value)
	for len(w.values) > w.capacity {
		w.values = w.values[1:]
	}
	return w.mean()
}

func (w *window) mean() float64 {
	if len(w.values) == 0 {
		// Unreachable after the first observe; kept as a safeguard.
		return 0.0
	}
	var sum float64
	for _, v := range w.values {
		sum += v
	}
	return sum / float64(len(w.values))
}

func (w *window) size() int {
	return len(w.values)
}
