package publisher

import (
	"CloudDeck_Monitoring/internal/monitoring/model"
	"CloudDeck_Monitoring/pkg/infra"
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
)

// kafkaPublisher writes health events to the monitoring topic, keyed by app id
// so per-app ordering is preserved across partitions.
type kafkaPublisher struct {
	writer infra.KafkaWriter
}

func (p *kafkaPublisher) PublishHealthEvent(ctx context.Context, event model.HealthEvent) error {
	b, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("kafkaPublisher.PublishHealthEvent: %w", err)
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.AppID),
		Value: b,
	})
	if err != nil {
		return fmt.Errorf("kafkaPublisher.PublishHealthEvent: %w", err)
	}
	return nil
}

func NewKafkaPublisher(writer infra.KafkaWriter) Publisher {
	return &kafkaPublisher{
		writer: writer,
	}
}
