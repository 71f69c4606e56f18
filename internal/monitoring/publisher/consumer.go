package publisher

import (
	"CloudDeck_Monitoring/internal/monitoring/model"
	"CloudDeck_Monitoring/pkg/hub"
	"CloudDeck_Monitoring/pkg/infra"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
)

// HealthEventConsumer reads health events from the monitoring topic and
// rebroadcasts them into the local websocket hub, so dashboards see events
// produced by every engine instance, not just this one.
type HealthEventConsumer interface {
	Start()
	Stop()
}

type healthEventConsumer struct {
	kafkaReader infra.KafkaReader
	hub         *hub.Hub
	logger      *zap.Logger
}

func (c *healthEventConsumer) Start() {
	go func() {
		for {
			m, err := c.kafkaReader.FetchMessage(context.Background())
			if err != nil {
				if errors.Is(err, io.EOF) {
					return
				}
				err = fmt.Errorf("HealthEventConsumer.Start: %w", err)
				c.logger.Log(zap.ErrorLevel, "failed to fetch message", zap.Error(err))
				continue
			}
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if m.Value != nil {
				var event model.HealthEvent
				if err = json.Unmarshal(m.Value, &event); err != nil {
					err = fmt.Errorf("HealthEventConsumer.Start: %w", err)
					c.logger.Log(zap.ErrorLevel, "failed to unmarshal health event", zap.Error(err))
				} else if err = c.hub.Broadcast(hub.Event{
					Type:    hub.EventTypeHealthStatus,
					AppID:   event.AppID,
					Payload: event,
				}); err != nil {
					err = fmt.Errorf("HealthEventConsumer.Start: %w", err)
					c.logger.Log(zap.WarnLevel, "dropped health event broadcast", zap.Error(err))
				}
			}
			err = c.kafkaReader.CommitMessages(ctx, m)
			cancel()
			if err != nil {
				err = fmt.Errorf("HealthEventConsumer.Start: %w", err)
				c.logger.Log(zap.ErrorLevel, "failed to commit messages", zap.Error(err))
			}
		}
	}()
}

// Stop closes the kafka reader, which unblocks the consume loop.
func (c *healthEventConsumer) Stop() {
	c.kafkaReader.Close()
}

func NewHealthEventConsumer(reader infra.KafkaReader, h *hub.Hub, logger *zap.Logger) HealthEventConsumer {
	return &healthEventConsumer{
		kafkaReader: reader,
		hub:         h,
		logger:      logger,
	}
}
