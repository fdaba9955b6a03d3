package repository

import (
	"context"

	"StockPulse/internal/domain/repository"
	pkgkafka "StockPulse/pkg/kafka"
)

// KafkaSnapshotPublisher implements Publisher for Kafka. Snapshots are keyed
// by the sorted symbol list so consumers see per-portfolio ordering.
type KafkaSnapshotPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

// NewKafkaSnapshotPublisher creates a Kafka snapshot publisher.
func NewKafkaSnapshotPublisher(producer *pkgkafka.Producer, topic string) repository.Publisher {
	return &KafkaSnapshotPublisher{producer: producer, topic: topic}
}

func (p *KafkaSnapshotPublisher) Publish(ctx context.Context, key string, snapshot interface{}) error {
	return p.producer.Publish(ctx, p.topic, []byte(key), snapshot)
}

func (p *KafkaSnapshotPublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
