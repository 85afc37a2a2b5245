package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type EnvConfig struct {
	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}
	Redis struct {
		Password  string
		Database  int
		RedisHost string
		RedisPort string
	}
	Postgres struct {
		HOST     string
		Database string
		Username string
		Password string
		Port     string
	}
	PulseEco struct {
		Domain   string
		Username string
		Password string
		Cities   []string
	}
	Producer struct {
		PollInterval time.Duration
		CacheTTL     time.Duration
	}
	Aggregator struct {
		WindowSize  int
		MaxKeys     int
		PM10Ceiling float64
		PM25Ceiling float64
	}
	Gateway struct {
		AlertTTL time.Duration
	}
	Grafana struct {
		OTLPEndpoint string
		ServiceName  string
	}
	Environment struct {
		Mode  string
		Group string
	}
}

func LoadEnvConfig() *EnvConfig {
	var config EnvConfig

	// RabbitMQ
	config.RabbitMQ.Host = os.Getenv("RABBITMQ_HOST")
	if config.RabbitMQ.Host == "" {
		config.RabbitMQ.Host = "localhost"
	}
	config.RabbitMQ.Port = os.Getenv("RABBITMQ_PORT")
	if config.RabbitMQ.Port == "" {
		config.RabbitMQ.Port = "5672"
	}
	config.RabbitMQ.Username = os.Getenv("RABBITMQ_USER")
	if config.RabbitMQ.Username == "" {
		config.RabbitMQ.Username = "guest"
	}
	config.RabbitMQ.Password = os.Getenv("RABBITMQ_PASSWORD")
	if config.RabbitMQ.Password == "" {
		config.RabbitMQ.Password = "guest"
	}

	// Redis
	config.Redis.Password = os.Getenv("REDIS_PASSWORD")
	config.Redis.Database, _ = strconv.Atoi(os.Getenv("REDIS_DB"))
	config.Redis.RedisHost = os.Getenv("REDIS_HOST")
	if config.Redis.RedisHost == "" {
		config.Redis.RedisHost = "localhost"
	}
	config.Redis.RedisPort = os.Getenv("REDIS_PORT")
	if config.Redis.RedisPort == "" {
		config.Redis.RedisPort = "6379"
	}

	// Postgres
	config.Postgres.HOST = os.Getenv("PGPOOL_HOST")
	config.Postgres.Database = os.Getenv("PGPOOL_DB")
	config.Postgres.Username = os.Getenv("PGPOOL_USER")
	config.Postgres.Password = os.Getenv("PGPOOL_PASSWORD")
	config.Postgres.Port = os.Getenv("PGPOOL_PORT")
	if config.Postgres.Port == "" {
		config.Postgres.Port = "5432"
	}

	// pulse.eco upstream
	config.PulseEco.Domain = os.Getenv("PULSEECO_DOMAIN")
	if config.PulseEco.Domain == "" {
		config.PulseEco.Domain = "pulse.eco"
	}
	config.PulseEco.Username = os.Getenv("PULSEECO_USERNAME")
	config.PulseEco.Password = os.Getenv("PULSEECO_PASSWORD")
	if cities := os.Getenv("PULSEECO_CITIES"); cities != "" {
		for _, city := range strings.Split(cities, ",") {
			city = strings.TrimSpace(city)
			if city != "" {
				config.PulseEco.Cities = append(config.PulseEco.Cities, city)
			}
		}
	} else {
		config.PulseEco.Cities = []string{"skopje"}
	}

	// Producer
	config.Producer.PollInterval = durationFromEnv("PRODUCER_POLL_INTERVAL_MS", 60_000)
	config.Producer.CacheTTL = durationFromEnv("PRODUCER_CACHE_TTL_MS", 30_000)

	// Aggregator
	config.Aggregator.WindowSize = intFromEnv("AGGREGATOR_WINDOW_SIZE", 10)
	config.Aggregator.MaxKeys = intFromEnv("AGGREGATOR_MAX_KEYS", 1024)
	config.Aggregator.PM10Ceiling = floatFromEnv("AGGREGATOR_PM10_CEILING", 50.0)
	config.Aggregator.PM25Ceiling = floatFromEnv("AGGREGATOR_PM25_CEILING", 25.0)

	// Gateway
	config.Gateway.AlertTTL = durationFromEnv("GATEWAY_ALERT_TTL_MS", 60_000)

	// Grafana/OpenTelemetry
	grafanaEndpoint := os.Getenv("GRAFANA_OTLP_ENDPOINT")
	if strings.HasPrefix(grafanaEndpoint, "https://") {
		config.Grafana.OTLPEndpoint = strings.TrimPrefix(grafanaEndpoint, "https://")
	} else if strings.HasPrefix(grafanaEndpoint, "http://") {
		config.Grafana.OTLPEndpoint = strings.TrimPrefix(grafanaEndpoint, "http://")
	} else {
		config.Grafana.OTLPEndpoint = grafanaEndpoint
	}
	config.Grafana.ServiceName = os.Getenv("SERVICE_NAME")
	if config.Grafana.ServiceName == "" {
		config.Grafana.ServiceName = "airpulse"
	}

	config.Environment.Mode = os.Getenv("DEPLOY_ENV")
	if config.Environment.Mode == "" {
		config.Environment.Mode = "development"
	}
	config.Environment.Group = os.Getenv("GROUP_NAME")
	if config.Environment.Group == "" {
		config.Environment.Group = "local"
	}

	return &config
}

func intFromEnv(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}

func floatFromEnv(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func durationFromEnv(key string, fallbackMs int64) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseInt(val, 10, 64); err == nil && parsed > 0 {
			return time.Duration(parsed) * time.Millisecond
		}
	}
	return time.Duration(fallbackMs) * time.Millisecond
}
