package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/ms-shaziya7/capture-moments/config"
)

// Handler processes one message value; returning an error stops consumption.
type Handler func(ctx context.Context, key, value []byte) error

type Consumer struct {
	topic  string
	reader *kafka.Reader
}

// NewConsumer reads the notifications topic as part of cfg.GroupID.
func NewConsumer(cfg config.KafkaConfig) (*Consumer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("no kafka brokers configured")
	}
	if cfg.NotificationsTopic == "" {
		return nil, errors.New("kafka notifications topic is required")
	}
	return &Consumer{
		topic: cfg.NotificationsTopic,
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           cfg.Brokers,
			GroupID:           cfg.GroupID,
			Topic:             cfg.NotificationsTopic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
	}, nil
}

func (c *Consumer) Topic() string {
	return c.topic
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// Consume blocks until ctx is cancelled (returning nil), the reader fails, or handler returns an error.
func (c *Consumer) Consume(ctx context.Context, handler Handler) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read %s: %w", c.topic, err)
		}

		if err := handler(ctx, msg.Key, msg.Value); err != nil {
			return fmt.Errorf("handle %s offset %d: %w", c.topic, msg.Offset, err)
		}
	}
}
