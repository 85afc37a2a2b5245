package engine

import (
	"container/list"
	"fmt"
	"sync"
	"time"

	"github.com/airpulse-io/airpulse/entity"
)

// Engine owns all per-key aggregation state. A single mutex serializes
// observation and transition checking for every key: message handlers run
// concurrently, and an observe must never interleave with a transition check
// on the same key.
//
// The key population is capped: once maxKeys distinct (area, metric) keys are
// live, the least-recently observed key's window and filter are evicted
// together, so memory stays bounded under a changing key population.
type Engine struct {
	mu         sync.Mutex
	states     map[string]*keyState
	order      *list.List // LRU order, front = most recently observed
	windowSize int
	maxKeys    int
	thresholds *ThresholdTable
}

type keyState struct {
	window  *window
	filter  levelFilter
	element *list.Element // holds the key, for LRU eviction
}

func New(windowSize, maxKeys int, thresholds *ThresholdTable) *Engine {
	return &Engine{
		states:     make(map[string]*keyState),
		order:      list.New(),
		windowSize: windowSize,
		maxKeys:    maxKeys,
		thresholds: thresholds,
	}
}

// Process feeds one reading into the window for (area, metric), evaluates the
// rolling mean against the metric's policy, and returns an alert when the
// level changed since the last emission for that key. It returns nil when the
// level is steady.
func (e *Engine) Process(area, metric string, value float64, observedAt time.Time) *entity.Alert {
	key := area + "|" + metric

	e.mu.Lock()
	defer e.mu.Unlock()

	state, ok := e.states[key]
	if !ok {
		state = &keyState{window: newWindow(e.windowSize)}
		state.element = e.order.PushFront(key)
		e.states[key] = state
		e.evictOverflow()
	} else {
		e.order.MoveToFront(state.element)
	}

	mean := state.window.observe(value)
	level, threshold := e.thresholds.Evaluate(metric, mean)

	if !state.filter.transition(level) {
		return nil
	}

	return &entity.Alert{
		Area:      area,
		Metric:    metric,
		Level:     level,
		Value:     mean,
		Threshold: threshold,
		Timestamp: observedAt,
		Reason:    fmt.Sprintf("Average %s over last %d readings = %.1f", metric, state.window.size(), mean),
	}
}

// Keys reports the number of live (area, metric) keys. Used by tests and
// operational logging.
func (e *Engine) Keys() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.states)
}

func (e *Engine) evictOverflow() {
	for len(e.states) > e.maxKeys {
		oldest := e.order.Back()
		if oldest == nil {
			return
		}
		e.order.Remove(oldest)
		delete(e.states, oldest.Value.(string))
	}
}
