package controller

import (
	"github.com/airpulse-io/airpulse/config"
	"github.com/airpulse-io/airpulse/gateway/ws"
	"github.com/airpulse-io/airpulse/infra"
	"github.com/airpulse-io/airpulse/repository"
)

type Controller struct {
	Config     *config.Config
	Infra      *infra.Infra
	Repository *repository.Repository
	Hub        *ws.Hub
}

func NewController(config *config.Config, infra *infra.Infra, repo *repository.Repository, hub *ws.Hub) *Controller {
	if repo == nil {
		panic("Failed to initialize Repository")
	}
	return &Controller{
		Config:     config,
		Infra:      infra,
		Repository: repo,
		Hub:        hub,
	}
}
