package rabbitmq

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	amqp "github.com/streadway/amqp"
)

// FeedbackQueue is the durable queue feedback events are published to.
const FeedbackQueue = "feedback_queue"

// FeedbackCreatedType is the AMQP message type of a feedback.created event.
const FeedbackCreatedType = "feedback.created"

// FeedbackEvent is the body of a feedback.created message.
type FeedbackEvent struct {
	FeedbackID string    `json:"feedbackId"`
	Type       string    `json:"type"`
	Rating     *int      `json:"rating,omitempty"`
	ProductID  string    `json:"productId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// NewClient connects to RabbitMQ, opens a channel and declares the feedback queue.
func NewClient(cfg Config) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if _, err := declareFeedbackQueue(ch); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare %s: %w", FeedbackQueue, err)
	}

	logrus.WithField("queue", FeedbackQueue).Info("RabbitMQ client connected")

	return &Client{
		conn:    conn,
		channel: ch,
	}, nil
}

func declareFeedbackQueue(ch *amqp.Channel) (amqp.Queue, error) {
	return ch.QueueDeclare(
		FeedbackQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
}

// Close closes the RabbitMQ channel and connection.
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
	if len(errs) > 0 {
		return fmt.Errorf("errors during RabbitMQ client close: %v", errs)
	}
	return nil
}

// EncodeFeedbackEvent builds the persistent AMQP message for event.
func EncodeFeedbackEvent(event FeedbackEvent) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("failed to marshal feedback event: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		Type:         FeedbackCreatedType,
		MessageId:    event.FeedbackID,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
	}, nil
}

// DecodeFeedbackEvent parses the body of a feedback.created message.
func DecodeFeedbackEvent(body []byte) (FeedbackEvent, error) {
	var event FeedbackEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return FeedbackEvent{}, fmt.Errorf("failed to decode feedback event: %w", err)
	}
	return event, nil
}

// PublishFeedbackCreated publishes a feedback.created event to the feedback queue.
func (c *Client) PublishFeedbackCreated(event FeedbackEvent) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	msg, err := EncodeFeedbackEvent(event)
	if err != nil {
		return err
	}

	// default exchange routes by queue name
	if err := c.channel.Publish("", FeedbackQueue, false, false, msg); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	logrus.WithField("feedback_id", event.FeedbackID).Debug("Sent feedback event")
	return nil
}

// ConsumeFeedbackEvents delivers feedback events to handler in a background goroutine.
// A handler error nacks and requeues the message; success acks it.
func (c *Client) ConsumeFeedbackEvents(handler func(event FeedbackEvent) error) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}

	queue, err := declareFeedbackQueue(c.channel)
	if err != nil {
		return fmt.Errorf("failed to declare queue for consuming: %w", err)
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

	go func() {
		for msg := range msgs {
			log := logrus.WithField("delivery_tag", msg.DeliveryTag)
			event, err := DecodeFeedbackEvent(msg.Body)
			if err != nil {
				// a malformed body will never decode, so don't requeue it
				log.WithError(err).Error("Dropping malformed feedback event")
				if nackErr := msg.Nack(false, false); nackErr != nil {
					log.WithError(nackErr).Error("Error nacking message")
				}
				continue
			}
			if err := handler(event); err != nil {
				log.WithError(err).Error("Error processing feedback event")
				if requeueErr := msg.Nack(false, true); requeueErr != nil {
					log.WithError(requeueErr).Error("Error nacking message")
				}
				continue
			}
			if ackErr := msg.Ack(false); ackErr != nil {
				log.WithError(ackErr).Error("Error acking message")
			}
		}
		logrus.Info("Feedback consumer stopped")
	}()

	return nil
}
