package publisher

import (
	"CloudDeck_Monitoring/internal/monitoring/model"
	"context"
)

// Publisher is the fire-and-forget sink for health-state events. Delivery is
// best-effort: callers log failures and move on, correctness never depends on
// an event arriving.
type Publisher interface {
	PublishHealthEvent(ctx context.Context, event model.HealthEvent) error
}

type multiPublisher struct {
	publishers []Publisher
}

// PublishHealthEvent forwards to every underlying publisher and returns the
// first failure after trying them all.
func (m *multiPublisher) PublishHealthEvent(ctx context.Context, event model.HealthEvent) error {
	var firstErr error
	for _, p := range m.publishers {
		if err := p.PublishHealthEvent(ctx, event); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func NewMultiPublisher(publishers ...Publisher) Publisher {
	return &multiPublisher{publishers: publishers}
}
