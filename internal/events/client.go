package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/stakevault/staking-ledger-service/internal/config"
)

// Emitter publishes the observable ledger events for external indexers.
// Publishing happens after the ledger transaction has committed; a publish
// failure never unwinds committed state.
type Emitter interface {
	PublishEvent(ctx context.Context, routingKey string, event interface{}) error
	IsConnectionHealthy() error
	Stop() error
}

type RabbitMqClient struct {
	connection   *amqp.Connection
	channel      *amqp.Channel
	exchangeName string
}

func NewRabbitMqClient(cfg *config.QueueConfig) (*RabbitMqClient, error) {
	amqpURI := fmt.Sprintf("amqp://%s:%s@%s", cfg.User, cfg.Password, cfg.Url)

	conn, err := amqp.Dial(amqpURI)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	err = ch.ExchangeDeclare(
		cfg.ExchangeName,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, err
	}

	return &RabbitMqClient{
		connection:   conn,
		channel:      ch,
		exchangeName: cfg.ExchangeName,
	}, nil
}

func (c *RabbitMqClient) PublishEvent(ctx context.Context, routingKey string, event interface{}) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	return c.channel.PublishWithContext(
		ctx,
		c.exchangeName,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}

func (c *RabbitMqClient) IsConnectionHealthy() error {
	if c.connection == nil || c.connection.IsClosed() {
		return errors.New("rabbitmq connection is closed")
	}
	if c.channel == nil || c.channel.IsClosed() {
		return errors.New("rabbitmq channel is closed")
	}
	return nil
}

func (c *RabbitMqClient) Stop() error {
	if err := c.channel.Close(); err != nil {
		return err
	}
	return c.connection.Close()
}
