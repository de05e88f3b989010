package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"rusty/internal/models"

	amqp "github.com/streadway/amqp"
	"go.uber.org/zap"
)

// QueueName is the durable queue catalog events are published to.
const QueueName = "catalog_events"

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *zap.Logger
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// NewClient connects to RabbitMQ, opens a channel and declares the event queue.
func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if _, err := declareQueue(ch); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	logger.Info("rabbitmq client connected", zap.String("queue", QueueName))

	return &Client{
		conn:    conn,
		channel: ch,
		logger:  logger,
	}, nil
}

func declareQueue(ch *amqp.Channel) (amqp.Queue, error) {
	q, err := ch.QueueDeclare(
		QueueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return amqp.Queue{}, fmt.Errorf("failed to declare %s: %w", QueueName, err)
	}
	return q, nil
}

// Close closes the channel and the connection.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	return errors.Join(errs...)
}

// PublishEvent publishes event as a persistent JSON message.
func (c *Client) PublishEvent(ctx context.Context, event models.Event) error {
	if c.channel == nil {
		return errors.New("RabbitMQ channel is not available")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = c.channel.Publish(
		"",        // default exchange
		QueueName, // routing key
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    event.ID,
			Type:         event.Type,
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.OccurredAt,
		})
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	c.logger.Debug("event published", zap.String("type", event.Type), zap.Int("entity_id", event.EntityID))
	return nil
}

// ConsumeEvents delivers decoded events to handler until ctx is cancelled or
// the channel closes. Messages are acked when handler succeeds and nacked
// without requeue when the body is not an event. A handler error requeues the
// message and ends consumption with that error.
func (c *Client) ConsumeEvents(ctx context.Context, handler func(models.Event) error) error {
	if c.channel == nil {
		return errors.New("RabbitMQ channel is not available for consumption")
	}

	queue, err := declareQueue(c.channel)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		queue.Name,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return errors.New("event channel closed")
			}
			if err := c.handle(msg, handler); err != nil {
				return err
			}
		}
	}
}

// handle acks a processed event and drops a malformed one. A handler failure
// requeues the event and is returned so the consumer stops instead of
// receiving the same delivery again.
func (c *Client) handle(msg amqp.Delivery, handler func(models.Event) error) error {
	event, err := DecodeEvent(msg.Body)
	if err != nil {
		c.logger.Warn("dropping malformed event", zap.Uint64("delivery_tag", msg.DeliveryTag), zap.Error(err))
		if nackErr := msg.Nack(false, false); nackErr != nil {
			c.logger.Error("nack failed", zap.Error(nackErr))
		}
		return nil
	}

	if err := handler(event); err != nil {
		if nackErr := msg.Nack(false, true); nackErr != nil {
			c.logger.Error("nack failed", zap.Error(nackErr))
		}
		return fmt.Errorf("handle event %s: %w", event.ID, err)
	}
	if ackErr := msg.Ack(false); ackErr != nil {
		c.logger.Error("ack failed", zap.Error(ackErr))
	}
	return nil
}

// DecodeEvent parses a message body into an Event.
func DecodeEvent(body []byte) (models.Event, error) {
	var event models.Event
	if err := json.Unmarshal(body, &event); err != nil {
		return models.Event{}, fmt.Errorf("decode event: %w", err)
	}
	if event.Type == "" {
		return models.Event{}, errors.New("decode event: missing type")
	}
	return event, nil
}
