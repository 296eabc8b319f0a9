// Package kafka forwards audit events to a Kafka topic. Delivery is
// synchronous per event; callers wanting fire-and-forget wrap this sink in
// an async publisher.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"sokoni/internal/audit"
)

// Sink publishes audit events to Kafka keyed by tenant so one tenant's trail
// stays ordered within a partition.
type Sink struct {
	client *kgo.Client
	topic  string
}

func NewSink(brokers []string, topic string) (*Sink, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return &Sink{client: client, topic: topic}, nil
}

type wireEvent struct {
	Timestamp  string            `json:"timestamp"`
	Category   string            `json:"category"`
	TenantID   string            `json:"tenant_id"`
	EntityType string            `json:"entity_type"`
	EntityID   string            `json:"entity_id"`
	Action     string            `json:"action"`
	RequestID  string            `json:"request_id,omitempty"`
	Data       map[string]string `json:"data,omitempty"`
}

func (s *Sink) Append(ctx context.Context, event audit.Event) error {
	payload, err := json.Marshal(wireEvent{
		Timestamp:  event.Timestamp.Format(time.RFC3339Nano),
		Category:   string(event.Category),
		TenantID:   event.TenantID.String(),
		EntityType: event.EntityType,
		EntityID:   event.EntityID,
		Action:     event.Action,
		RequestID:  event.RequestID,
		Data:       event.Data,
	})
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}

	record := &kgo.Record{
		Topic: s.topic,
		Key:   []byte(event.TenantID.String()),
		Value: payload,
	}
	if err := s.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce audit event: %w", err)
	}
	return nil
}

func (s *Sink) Close() {
	s.client.Close()
}
