package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

type Producer struct {
	brokers []string
	writer  *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		BatchTimeout:           50 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		Async:                  false,
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		brokers: brokers,
		writer:  writer,
	}
}

// PublishBooking writes event keyed by booking id, so every event of one
// booking lands on the same partition.
func (p *Producer) PublishBooking(ctx context.Context, topic string, event BookingEvent) error {
	msg, err := newMessage(topic, event.BookingID, event.Type, event)
	if err != nil {
		return err
	}
	return p.write(ctx, msg)
}

// PublishAccount writes event keyed by the account email.
func (p *Producer) PublishAccount(ctx context.Context, topic string, event AccountEvent) error {
	msg, err := newMessage(topic, event.Email, event.Type, event)
	if err != nil {
		return err
	}
	return p.write(ctx, msg)
}

func (p *Producer) write(ctx context.Context, msg kafka.Message) error {
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write %s event to Kafka: %w", eventTypeOf(msg), err)
	}

	log.Printf("published %s to kafka topic=%s key=%s", eventTypeOf(msg), msg.Topic, msg.Key)
	return nil
}

// newMessage encodes event as JSON and carries its type in the event_type
// header so consumers can route without decoding the body.
func newMessage(topic, key, eventType string, event interface{}) (kafka.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal %s event: %w", eventType, err)
	}

	return kafka.Message{
		Topic:   topic,
		Key:     []byte(key),
		Value:   data,
		Headers: []kafka.Header{{Key: HeaderEventType, Value: []byte(eventType)}},
		Time:    time.Now(),
	}, nil
}

func eventTypeOf(msg kafka.Message) string {
	for _, h := range msg.Headers {
		if h.Key == HeaderEventType {
			return string(h.Value)
		}
	}
	return "unknown"
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}

// CheckConnection dials the first broker and lists partitions.
func (p *Producer) CheckConnection(ctx context.Context) error {
	if len(p.brokers) == 0 {
		return fmt.Errorf("no kafka brokers configured")
	}
	conn, err := kafka.DialContext(ctx, "tcp", p.brokers[0])
	if err != nil {
		return fmt.Errorf("failed to connect to Kafka: %w", err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions()
	if err != nil {
		return fmt.Errorf("failed to read partitions: %w", err)
	}

	log.Printf("connected to kafka, %d partitions visible", len(partitions))
	return nil
}
