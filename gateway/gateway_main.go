package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/airpulse-io/airpulse/config"
	"github.com/airpulse-io/airpulse/gateway/controller"
	routes "github.com/airpulse-io/airpulse/gateway/route"
	"github.com/airpulse-io/airpulse/gateway/worker"
	"github.com/airpulse-io/airpulse/gateway/ws"
	infraPkg "github.com/airpulse-io/airpulse/infra"
	"github.com/airpulse-io/airpulse/repository"
)

func main() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("No .env file found, continuing with environment variables")
	}

	cfg := config.NewConfig()
	infra := infraPkg.InitInfra(cfg)
	repo := repository.InitRepository(infra)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := ws.NewHub()

	alertConsumer := worker.NewAlertConsumer(infra.RabbitMQ.Channel, infra, repo, hub, cfg.EnvConfig.Gateway.AlertTTL)
	if err := alertConsumer.Start(ctx); err != nil {
		infra.Logger.ErrorWithContextf(ctx, err, "Failed to start Alert consumer: %v", err)
		log.Fatalf("Failed to start Alert consumer: %v", err)
	}

	ctrl := controller.NewController(cfg, infra, repo, hub)
	router := routes.SetupRouter(ctrl)

	go func() {
		log.Println("HTTP Server started on :8081")
		if err := router.Run(":8081"); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	infra.Logger.InfoWithContextf(ctx, "Shutting down gateway...")
	cancel()

	infra.RabbitMQ.Close()
	infra.Logger.InfoWithContextf(context.Background(), "Gateway exited properly")
	infra.Logger.Shutdown(context.Background())
}
