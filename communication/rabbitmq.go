package communication

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitMQ holds the connection used to send reports outside the explorer
type RabbitMQ struct {
	connection *amqp.Connection
	channel    *amqp.Channel
}

// NewRabbitMQ dials url and opens the channel where reports are published
func NewRabbitMQ(url string) (*RabbitMQ, error) {
	connection, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	channel, err := connection.Channel()
	if err != nil {
		_ = connection.Close()
		return nil, fmt.Errorf("error opening RabbitMQ channel: %w", err)
	}

	return &RabbitMQ{connection: connection, channel: channel}, nil
}

// DeclareExchanges declares every exchange in exchangesConfig, stopping at the first failure
func (r *RabbitMQ) DeclareExchanges(exchangesConfig []ExchangeDeclarationConfig) error {
	for _, exchange := range exchangesConfig {
		err := r.channel.ExchangeDeclare(exchange.Name, exchange.Type, exchange.Durable, exchange.AutoDeleted, exchange.Internal, exchange.NoWait, nil)
		if err != nil {
			return fmt.Errorf("error declaring exchange %s: %w", exchange.Name, err)
		}
	}
	return nil
}

// PublishReport sends body tagged with reportID. Persistent configs survive a broker restart.
func (r *RabbitMQ) PublishReport(ctx context.Context, publishingConfig PublishingConfig, reportID string, body []byte) error {
	deliveryMode := amqp.Transient
	if publishingConfig.Persistent {
		deliveryMode = amqp.Persistent
	}

	return r.channel.PublishWithContext(ctx,
		publishingConfig.Exchange,
		publishingConfig.RoutingKey,
		publishingConfig.Mandatory,
		publishingConfig.Immediate,
		amqp.Publishing{
			ContentType:  publishingConfig.ContentType,
			DeliveryMode: deliveryMode,
			MessageId:    reportID,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
}

// KillBadBunny closes the channel and then the connection
func (r *RabbitMQ) KillBadBunny() error {
	if err := r.channel.Close(); err != nil {
		return fmt.Errorf("error closing RabbitMQ channel: %w", err)
	}
	if err := r.connection.Close(); err != nil {
		return fmt.Errorf("error closing RabbitMQ connection: %w", err)
	}
	return nil
}
