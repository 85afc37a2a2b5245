package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/airpulse-io/airpulse/config"
	infraPkg "github.com/airpulse-io/airpulse/infra"
	"github.com/airpulse-io/airpulse/producer/area"
	"github.com/airpulse-io/airpulse/producer/controller"
	routes "github.com/airpulse-io/airpulse/producer/route"
	"github.com/airpulse-io/airpulse/producer/scheduler"
)

func main() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("No .env file found, continuing with environment variables")
	}

	cfg := config.NewConfig()
	infra := infraPkg.InitInfra(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	normalizer := scheduler.NewNormalizer(area.NewSkopjeResolver())

	poller := scheduler.NewScheduler(infra, normalizer, cfg.EnvConfig)
	poller.Start(ctx)

	ctrl := controller.NewController(cfg, infra, normalizer)
	router := routes.SetupRouter(ctrl)

	go func() {
		log.Println("HTTP Server started on :8080")
		if err := router.Run(":8080"); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	infra.Logger.InfoWithContextf(ctx, "Shutting down producer...")
	cancel()

	infra.RabbitMQ.Close()
	infra.Logger.InfoWithContextf(context.Background(), "Producer exited properly")
	infra.Logger.Shutdown(context.Background())
}
