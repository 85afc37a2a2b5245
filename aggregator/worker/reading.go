package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/airpulse-io/airpulse/aggregator/engine"
	"github.com/airpulse-io/airpulse/entity"
	"github.com/airpulse-io/airpulse/infra"
	"github.com/airpulse-io/airpulse/infra/produce"
	"github.com/airpulse-io/airpulse/routing"
)

const (
	// AggReadingsQueue receives every reading regardless of area/metric.
	AggReadingsQueue   = "agg.readings"
	aggReadingsPattern = "reading.#"
)

// ReadingConsumer consumes readings, feeds the aggregation engine and
// publishes alerts on level transitions.
type ReadingConsumer struct {
	channel *amqp.Channel
	infra   *infra.Infra
	engine  *engine.Engine

	readingsProcessed metric.Int64Counter
	alertsEmitted     metric.Int64Counter
	messagesDropped   metric.Int64Counter
}

func NewReadingConsumer(channel *amqp.Channel, infraClient *infra.Infra, aggEngine *engine.Engine) *ReadingConsumer {
	meter := otel.Meter("airpulse/aggregator")

	readingsProcessed, _ := meter.Int64Counter("aggregator.readings.processed")
	alertsEmitted, _ := meter.Int64Counter("aggregator.alerts.emitted")
	messagesDropped, _ := meter.Int64Counter("aggregator.messages.dropped")

	return &ReadingConsumer{
		channel:           channel,
		infra:             infraClient,
		engine:            aggEngine,
		readingsProcessed: readingsProcessed,
		alertsEmitted:     alertsEmitted,
		messagesDropped:   messagesDropped,
	}
}

// Start declares the readings queue, binds it with a wildcard covering all
// areas and metrics, and begins consuming.
func (c *ReadingConsumer) Start(ctx context.Context) error {
	_, err := c.channel.QueueDeclare(
		AggReadingsQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare readings queue: %w", err)
	}

	err = c.channel.QueueBind(
		AggReadingsQueue,
		aggReadingsPattern,
		produce.ReadingsExchange,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to bind readings queue: %w", err)
	}

	msgs, err := c.channel.Consume(
		AggReadingsQueue,
		"",
		false, // manual ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register readings consumer: %w", err)
	}

	c.infra.Logger.InfoWithContextf(ctx, "[Reading Consumer] Started listening on queue: %s", AggReadingsQueue)

	go func() {
		for {
			select {
			case <-ctx.Done():
				c.infra.Logger.InfoWithContextf(ctx, "[Reading Consumer] Shutting down...")
				return
			case msg, ok := <-msgs:
				if !ok {
					c.infra.Logger.WarningWithContextf(ctx, "[Reading Consumer] Channel closed")
					return
				}
				c.handleReading(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *ReadingConsumer) handleReading(ctx context.Context, msg amqp.Delivery) {
	area, metricName, err := routing.ParseReadingKey(msg.RoutingKey)
	if err != nil {
		// Malformed addressing is a payload fault, never retried.
		c.infra.Logger.WarningWithContextf(ctx, "[Reading Consumer] Ignoring message with unexpected routing key %q: %v", msg.RoutingKey, err)
		c.messagesDropped.Add(ctx, 1)
		_ = msg.Nack(false, false)
		return
	}

	var reading entity.Measurement
	if err := json.Unmarshal(msg.Body, &reading); err != nil {
		c.infra.Logger.ErrorWithContextf(ctx, err, "[Reading Consumer] Failed to unmarshal reading, routingKey=%s", msg.RoutingKey)
		c.messagesDropped.Add(ctx, 1)
		_ = msg.Nack(false, false)
		return
	}

	// Older producers may omit area/metric from the body; the routing key is
	// authoritative either way.
	if reading.Area == "" {
		reading.Area = area
	}
	if reading.Metric == "" {
		reading.Metric = metricName
	}
	if reading.Timestamp.IsZero() {
		reading.Timestamp = time.Now()
	}

	alert := c.engine.Process(area, metricName, reading.Value, reading.Timestamp)
	c.readingsProcessed.Add(ctx, 1)

	if alert != nil {
		if err := c.infra.Produce.AlertService.PublishAlert(ctx, *alert); err != nil {
			// Retries are exhausted inside the publisher; the alert is
			// dropped rather than blocking the consume loop.
			c.infra.Logger.ErrorWithContextf(ctx, err, "[Reading Consumer] Failed to publish alert for %s/%s", area, metricName)
		} else {
			c.alertsEmitted.Add(ctx, 1)
			c.infra.Logger.InfoWithContextf(ctx, "[Reading Consumer] Alert %s for %s/%s value=%.2f", alert.Level, area, metricName, alert.Value)
		}
	}

	_ = msg.Ack(false)
}
