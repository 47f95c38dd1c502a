package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
	"github.com/sdupi-network/sdupi-token-core/consumer"
	"github.com/sdupi-network/sdupi-token-core/internal/config"
)

// QueueManager publishes operation events to a RabbitMQ topic exchange.
// The routing key of every message is the event type, so consumers can
// bind selectively, e.g. "token.v1.*" or "staking.v1.EventStaked".
type QueueManager struct {
	cfg  *config.QueueConfig
	conn *amqp.Connection
	ch   *amqp.Channel
}

var _ consumer.EventSink = (*QueueManager)(nil)

func NewQueueManager(cfg *config.QueueConfig) (*QueueManager, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close() //nolint:errcheck
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()   //nolint:errcheck
		conn.Close() //nolint:errcheck
		return nil, fmt.Errorf("failed to declare exchange %s: %w", cfg.Exchange, err)
	}

	return &QueueManager{
		cfg:  cfg,
		conn: conn,
		ch:   ch,
	}, nil
}

func (qm *QueueManager) Start() error {
	if qm.conn.IsClosed() {
		return fmt.Errorf("rabbitmq connection is closed")
	}
	return nil
}

func (qm *QueueManager) Push(ctx context.Context, ev *consumer.OperationEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal operation event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, qm.cfg.PublishTimeout)
	defer cancel()

	err = qm.ch.PublishWithContext(
		ctx,
		qm.cfg.Exchange,
		ev.Type, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType: "application/json",
			MessageId:   ev.ID,
			Timestamp:   time.Unix(ev.Timestamp, 0),
			Body:        body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish operation event: %w", err)
	}
	return nil
}

// Stop gracefully stops the interaction with the queue, ensuring all resources are properly released.
func (qm *QueueManager) Stop() error {
	log.Info().Msg("Shutting down queue manager")

	if err := qm.ch.Close(); err != nil {
		return fmt.Errorf("failed to close channel: %w", err)
	}
	if err := qm.conn.Close(); err != nil {
		return fmt.Errorf("failed to close connection: %w", err)
	}
	return nil
}
