package produce

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/cenkalti/backoff/v5"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/airpulse-io/airpulse/entity"
	"github.com/airpulse-io/airpulse/routing"
)

const (
	// ReadingsExchange is the durable topic exchange for sensor readings.
	// Queues and bindings are declared by the consuming services.
	ReadingsExchange = "readings.topic"

	publishMaxTries = 3
)

// ErrInvalidValue marks a measurement whose value failed upstream parsing
// (NaN/Inf). Such records are dropped before publication, never forwarded.
var ErrInvalidValue = errors.New("measurement value is not finite")

// ReadingProduceService publishes canonical measurements to the readings topic.
type ReadingProduceService struct {
	channel *amqp.Channel
}

func InitReadingProduceService(channel *amqp.Channel) *ReadingProduceService {
	err := channel.ExchangeDeclare(
		ReadingsExchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		panic("Failed to declare Readings exchange: " + err.Error())
	}

	return &ReadingProduceService{channel: channel}
}

// PublishMeasurement publishes one measurement with routing key
// reading.<area>.<metric>. Transient broker failures are retried with
// exponential backoff; a non-finite value returns ErrInvalidValue without
// touching the broker.
func (s *ReadingProduceService) PublishMeasurement(ctx context.Context, m entity.Measurement) error {
	if math.IsNaN(m.Value) || math.IsInf(m.Value, 0) {
		return ErrInvalidValue
	}

	routingKey := routing.ReadingKey(m.Area, m.Metric)

	body, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal measurement: %w", err)
	}

	return publishConfirmed(ctx, s.channel, ReadingsExchange, routingKey, body)
}

// publishConfirmed publishes one persistent JSON message and waits for the
// broker ack, retrying transient failures with bounded exponential backoff.
func publishConfirmed(ctx context.Context, channel *amqp.Channel, exchange, routingKey string, body []byte) error {
	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = time.Second
	expBackoff.Multiplier = 2

	operation := func() (struct{}, error) {
		confirmation, err := channel.PublishWithDeferredConfirmWithContext(
			ctx,
			exchange,
			routingKey,
			false, // mandatory
			false, // immediate
			amqp.Publishing{
				ContentType:  "application/json",
				Body:         body,
				DeliveryMode: amqp.Persistent,
			},
		)
		if err != nil {
			return struct{}{}, err
		}

		acked, err := confirmation.WaitContext(ctx)
		if err != nil {
			return struct{}{}, err
		}
		if !acked {
			return struct{}{}, errors.New("publish nacked by broker")
		}
		return struct{}{}, nil
	}

	_, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(expBackoff),
		backoff.WithMaxTries(publishMaxTries),
	)
	if err != nil {
		return fmt.Errorf("failed to publish to %s with key %s: %w", exchange, routingKey, err)
	}
	return nil
}
