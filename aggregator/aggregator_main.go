package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/airpulse-io/airpulse/aggregator/engine"
	"github.com/airpulse-io/airpulse/aggregator/worker"
	"github.com/airpulse-io/airpulse/config"
	infraPkg "github.com/airpulse-io/airpulse/infra"
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

	thresholds := engine.NewThresholdTable()
	thresholds.Register("pm10", engine.CeilingPolicy(cfg.EnvConfig.Aggregator.PM10Ceiling))
	thresholds.Register("pm25", engine.CeilingPolicy(cfg.EnvConfig.Aggregator.PM25Ceiling))

	aggEngine := engine.New(
		cfg.EnvConfig.Aggregator.WindowSize,
		cfg.EnvConfig.Aggregator.MaxKeys,
		thresholds,
	)

	readingConsumer := worker.NewReadingConsumer(infra.RabbitMQ.Channel, infra, aggEngine)
	if err := readingConsumer.Start(ctx); err != nil {
		infra.Logger.ErrorWithContextf(ctx, err, "Failed to start Reading consumer: %v", err)
		log.Fatalf("Failed to start Reading consumer: %v", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	infra.Logger.InfoWithContextf(ctx, "Shutting down aggregator...")
	cancel()

	infra.RabbitMQ.Close()
	infra.Logger.InfoWithContextf(context.Background(), "Aggregator exited properly")
	infra.Logger.Shutdown(context.Background())
}
