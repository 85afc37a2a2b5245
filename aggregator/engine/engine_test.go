package engine

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airpulse-io/airpulse/entity"
)

func newTestEngine() *Engine {
	return New(10, 1024, newTestTable())
}

func TestEngineRampScenario(t *testing.T) {
	e := newTestEngine()
	now := time.Now()

	// Values climb from 10 to 100; the 11th reading pushes the mean past the
	// pm10 ceiling of 50 exactly once.
	values := []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100, 100}

	var alerts []*entity.Alert
	for _, v := range values {
		if alert := e.Process("gazi_baba", "pm10", v, now); alert != nil {
			alerts = append(alerts, alert)
		}
	}

	// First observation emits GREEN (no prior level). The mean crosses 50 at
	// the 10th reading (mean of [10..100] is 55), emitting RED exactly once;
	// the 11th reading keeps the level RED (mean 64) with no new emission.
	require.Len(t, alerts, 2)
	assert.Equal(t, entity.LevelGreen, alerts[0].Level)

	red := alerts[1]
	assert.Equal(t, entity.LevelRed, red.Level)
	assert.Equal(t, "gazi_baba", red.Area)
	assert.Equal(t, "pm10", red.Metric)
	assert.InDelta(t, 55.0, red.Value, 1e-9)
	assert.Equal(t, 50.0, red.Threshold)

	// A 12th reading of 5 lowers the mean but not below the ceiling — still
	// RED, no transition, no new alert.
	alert := e.Process("gazi_baba", "pm10", 5, now)
	assert.Nil(t, alert)
}

func TestEngineAlertCarriesStatisticNotReading(t *testing.T) {
	e := newTestEngine()
	now := time.Now()

	e.Process("centar", "pm10", 40, now)
	alert := e.Process("centar", "pm10", 80, now)

	// Mean over [40 80] is 60: RED, and the alert value is the mean.
	require.NotNil(t, alert)
	assert.Equal(t, entity.LevelRed, alert.Level)
	assert.InDelta(t, 60.0, alert.Value, 1e-9)
	assert.Contains(t, alert.Reason, "pm10")
}

func TestEngineKeysAreIndependent(t *testing.T) {
	e := newTestEngine()
	now := time.Now()

	// Driving one key RED must not affect another key's state.
	for i := 0; i < 5; i++ {
		e.Process("gazi_baba", "pm10", 100, now)
	}
	alert := e.Process("centar", "pm10", 10, now)

	require.NotNil(t, alert)
	assert.Equal(t, entity.LevelGreen, alert.Level)
	assert.InDelta(t, 10.0, alert.Value, 1e-9)
}

func TestEngineEvictsLeastRecentKey(t *testing.T) {
	e := New(10, 3, newTestTable())
	now := time.Now()

	for i := 0; i < 3; i++ {
		e.Process(fmt.Sprintf("area_%d", i), "pm10", 10, now)
	}
	require.Equal(t, 3, e.Keys())

	// Touch area_0 so area_1 becomes the eviction candidate.
	e.Process("area_0", "pm10", 10, now)
	e.Process("area_3", "pm10", 10, now)

	assert.Equal(t, 3, e.Keys())

	// area_1 was evicted: its next observation starts a fresh window and a
	// fresh filter, so it emits again even at a steady GREEN.
	alert := e.Process("area_1", "pm10", 10, now)
	assert.NotNil(t, alert)
}

func TestEngineConcurrentObservationsStayBounded(t *testing.T) {
	e := newTestEngine()
	now := time.Now()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			area := fmt.Sprintf("area_%d", g%4)
			for i := 0; i < 200; i++ {
				e.Process(area, "pm10", float64(i%100), now)
			}
		}(g)
	}
	wg.Wait()

	assert.Equal(t, 4, e.Keys())
}
