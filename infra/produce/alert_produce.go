package produce

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/airpulse-io/airpulse/entity"
	"github.com/airpulse-io/airpulse/routing"
)

const (
	// AlertsExchange is the durable topic exchange for level-transition alerts.
	AlertsExchange = "alerts.topic"

	// AlertsDeadLetterExchange receives alert-queue messages that were
	// rejected or expired. Consumers bind their dead-letter queue to it.
	AlertsDeadLetterExchange = "alerts.dlx"
)

// AlertProduceService publishes alerts to the alerts topic.
type AlertProduceService struct {
	channel *amqp.Channel
}

func InitAlertProduceService(channel *amqp.Channel) *AlertProduceService {
	err := channel.ExchangeDeclare(
		AlertsExchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		panic("Failed to declare Alerts exchange: " + err.Error())
	}

	return &AlertProduceService{channel: channel}
}

// PublishAlert publishes one alert with routing key alert.<area>.<level>.
func (s *AlertProduceService) PublishAlert(ctx context.Context, alert entity.Alert) error {
	routingKey := routing.AlertKey(alert.Area, string(alert.Level))

	body, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal alert: %w", err)
	}

	return publishConfirmed(ctx, s.channel, AlertsExchange, routingKey, body)
}
