package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"gorm.io/datatypes"

	"github.com/airpulse-io/airpulse/entity"
	"github.com/airpulse-io/airpulse/gateway/ws"
	"github.com/airpulse-io/airpulse/infra"
	"github.com/airpulse-io/airpulse/infra/produce"
	"github.com/airpulse-io/airpulse/repository"
	"github.com/airpulse-io/airpulse/routing"
)

const (
	// GatewayAlertsQueue receives every alert for every area and level.
	GatewayAlertsQueue = "gw.alerts"
	// GatewayAlertsDLQ holds alerts that were rejected or expired; no
	// automatic reprocessing, operator-visible only.
	GatewayAlertsDLQ = "gw.alerts.dlq"

	gatewayAlertsPattern = "alert.*.*"
)

// AlertConsumer consumes alerts from the TTL'd, dead-lettered gateway queue,
// fans them out to live subscribers and persists them for history queries.
type AlertConsumer struct {
	channel    *amqp.Channel
	infra      *infra.Infra
	repository *repository.Repository
	hub        *ws.Hub
	alertTTL   time.Duration
}

func NewAlertConsumer(channel *amqp.Channel, infraClient *infra.Infra, repo *repository.Repository, hub *ws.Hub, alertTTL time.Duration) *AlertConsumer {
	return &AlertConsumer{
		channel:    channel,
		infra:      infraClient,
		repository: repo,
		hub:        hub,
		alertTTL:   alertTTL,
	}
}

// Start declares the dead-letter topology and the alerts queue, binds it with
// a wildcard covering all areas and levels, and begins consuming.
func (c *AlertConsumer) Start(ctx context.Context) error {
	err := c.channel.ExchangeDeclare(
		produce.AlertsDeadLetterExchange,
		"fanout",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare dead-letter exchange: %w", err)
	}

	_, err = c.channel.QueueDeclare(
		GatewayAlertsDLQ,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare dead-letter queue: %w", err)
	}

	err = c.channel.QueueBind(GatewayAlertsDLQ, "", produce.AlertsDeadLetterExchange, false, nil)
	if err != nil {
		return fmt.Errorf("failed to bind dead-letter queue: %w", err)
	}

	// Rejected or expired messages leave for the DLQ; nothing is ever
	// requeued onto this queue.
	_, err = c.channel.QueueDeclare(
		GatewayAlertsQueue,
		true,
		false,
		false,
		false,
		amqp.Table{
			"x-message-ttl":          c.alertTTL.Milliseconds(),
			"x-dead-letter-exchange": produce.AlertsDeadLetterExchange,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to declare alerts queue: %w", err)
	}

	err = c.channel.QueueBind(GatewayAlertsQueue, gatewayAlertsPattern, produce.AlertsExchange, false, nil)
	if err != nil {
		return fmt.Errorf("failed to bind alerts queue: %w", err)
	}

	msgs, err := c.channel.Consume(
		GatewayAlertsQueue,
		"",
		false, // manual ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register alerts consumer: %w", err)
	}

	c.infra.Logger.InfoWithContextf(ctx, "[Alert Consumer] Started listening on queue: %s", GatewayAlertsQueue)

	go func() {
		for {
			select {
			case <-ctx.Done():
				c.infra.Logger.InfoWithContextf(ctx, "[Alert Consumer] Shutting down...")
				return
			case msg, ok := <-msgs:
				if !ok {
					c.infra.Logger.WarningWithContextf(ctx, "[Alert Consumer] Channel closed")
					return
				}
				c.handleAlert(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *AlertConsumer) handleAlert(ctx context.Context, msg amqp.Delivery) {
	if _, _, err := routing.ParseAlertKey(msg.RoutingKey); err != nil {
		c.infra.Logger.WarningWithContextf(ctx, "[Alert Consumer] Ignoring message with unexpected routing key %q: %v", msg.RoutingKey, err)
		_ = msg.Nack(false, false)
		return
	}

	var alert entity.Alert
	if err := json.Unmarshal(msg.Body, &alert); err != nil {
		c.infra.Logger.ErrorWithContextf(ctx, err, "[Alert Consumer] Failed to unmarshal alert, routingKey=%s", msg.RoutingKey)
		_ = msg.Nack(false, false)
		return
	}

	// Forward before persisting: subscribers see the alert even when the
	// history write dead-letters the message.
	if err := c.hub.Broadcast(alert); err != nil {
		c.infra.Logger.ErrorWithContextf(ctx, err, "[Alert Consumer] Failed to broadcast alert for area %s", alert.Area)
	} else {
		c.infra.Logger.InfoWithContextf(ctx, "[Alert Consumer] Forwarded %s alert for %s/%s to channels %s and %s",
			alert.Level, alert.Area, alert.Metric, routing.NormalizeSegment(alert.Area), ws.CatchAllChannel)
	}

	record := &entity.AlertRecord{
		ID:        uuid.New(),
		Area:      alert.Area,
		Metric:    alert.Metric,
		Level:     string(alert.Level),
		Value:     alert.Value,
		Threshold: alert.Threshold,
		Timestamp: alert.Timestamp,
		Reason:    alert.Reason,
		Payload:   datatypes.JSON(msg.Body),
	}
	if err := c.repository.AlertRecordRepo.Create(ctx, record); err != nil {
		c.infra.Logger.ErrorWithContextf(ctx, err, "[Alert Consumer] Failed to persist alert for %s/%s", alert.Area, alert.Metric)
		_ = msg.Nack(false, false)
		return
	}

	_ = msg.Ack(false)
}
