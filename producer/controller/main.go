package controller

import (
	"context"
	"fmt"

	"github.com/airpulse-io/airpulse/config"
	"github.com/airpulse-io/airpulse/entity"
	"github.com/airpulse-io/airpulse/infra"
	"github.com/airpulse-io/airpulse/producer/scheduler"
)

type Controller struct {
	Config     *config.Config
	Infra      *infra.Infra
	Normalizer *scheduler.Normalizer
}

func NewController(config *config.Config, infra *infra.Infra, normalizer *scheduler.Normalizer) *Controller {
	if normalizer == nil {
		panic("Failed to initialize Normalizer")
	}
	return &Controller{
		Config:     config,
		Infra:      infra,
		Normalizer: normalizer,
	}
}

// currentData fetches the latest provider data for a city, serving from the
// Redis cache when a recent response exists.
func (ctrl *Controller) currentData(ctx context.Context, city string) ([]entity.RawReading, error) {
	cacheKey := fmt.Sprintf("pulseeco:current:%s", city)

	var cached []entity.RawReading
	if err := ctrl.Infra.Redis.Get(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	}

	readings, err := ctrl.Infra.PulseEco.CurrentData(ctx, city)
	if err != nil {
		return nil, err
	}

	if err := ctrl.Infra.Redis.Set(ctx, cacheKey, readings, ctrl.Config.EnvConfig.Producer.CacheTTL); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "Failed to cache current data for city %s: %v", city, err)
	}

	return readings, nil
}
