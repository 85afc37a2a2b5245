package scheduler

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/airpulse-io/airpulse/config"
	"github.com/airpulse-io/airpulse/infra"
	"github.com/airpulse-io/airpulse/infra/produce"
)

// Scheduler polls the upstream provider for every configured city on a fixed
// interval and publishes each normalized measurement. One city's failure
// never prevents fetching and publishing for the others.
type Scheduler struct {
	infra      *infra.Infra
	normalizer *Normalizer
	cities     []string
	interval   time.Duration
}

func NewScheduler(infraClient *infra.Infra, normalizer *Normalizer, cfg *config.EnvConfig) *Scheduler {
	return &Scheduler{
		infra:      infraClient,
		normalizer: normalizer,
		cities:     cfg.PulseEco.Cities,
		interval:   cfg.Producer.PollInterval,
	}
}

// Start runs the polling loop until the context is cancelled. The first cycle
// runs immediately.
func (s *Scheduler) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.fetchForAllCities(ctx)
		for {
			select {
			case <-ctx.Done():
				s.infra.Logger.InfoWithContextf(ctx, "[Scheduler] Shutting down...")
				return
			case <-ticker.C:
				s.fetchForAllCities(ctx)
			}
		}
	}()
}

func (s *Scheduler) fetchForAllCities(ctx context.Context) {
	for _, city := range s.cities {
		s.fetchForCity(ctx, city)
	}
}

func (s *Scheduler) fetchForCity(ctx context.Context, city string) {
	rawList, err := s.infra.PulseEco.CurrentData(ctx, city)
	if err != nil {
		s.infra.Logger.WarningWithContextf(ctx, "[Scheduler] Failed to fetch data for city %s: %v", strings.ToUpper(city), err)
		return
	}

	s.infra.Logger.InfoWithContextf(ctx, "[Scheduler] Fetched %d measurements for city %s", len(rawList), strings.ToUpper(city))

	for _, raw := range rawList {
		measurement := s.normalizer.Normalize(city, raw)

		err := s.infra.Produce.ReadingService.PublishMeasurement(ctx, measurement)
		switch {
		case errors.Is(err, produce.ErrInvalidValue):
			// One bad sensor reading must not block the batch.
			s.infra.Logger.WarningWithContextf(ctx, "[Scheduler] Skipping measurement with invalid value: area=%s metric=%s raw=%q",
				measurement.Area, measurement.Metric, raw.Value)
		case err != nil:
			s.infra.Logger.ErrorWithContextf(ctx, err, "[Scheduler] Failed to publish measurement: area=%s metric=%s sensor=%s",
				measurement.Area, measurement.Metric, measurement.SensorID)
		default:
			s.infra.Logger.InfoWithContextf(ctx, "[Scheduler] Published: city=%s area=%s metric=%s value=%.2f",
				measurement.City, measurement.Area, measurement.Metric, measurement.Value)
		}
	}
}
