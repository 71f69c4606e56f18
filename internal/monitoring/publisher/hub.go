package publisher

import (
	"CloudDeck_Monitoring/internal/monitoring/model"
	"CloudDeck_Monitoring/pkg/hub"
	"context"
	"fmt"
)

// hubPublisher pushes health events straight into the in-process websocket
// hub for dashboards connected to this instance.
type hubPublisher struct {
	hub *hub.Hub
}

func (p *hubPublisher) PublishHealthEvent(_ context.Context, event model.HealthEvent) error {
	if err := p.hub.Broadcast(hub.Event{
		Type:    hub.EventTypeHealthStatus,
		AppID:   event.AppID,
		Payload: event,
	}); err != nil {
		return fmt.Errorf("hubPublisher.PublishHealthEvent: %w", err)
	}
	return nil
}

func NewHubPublisher(h *hub.Hub) Publisher {
	return &hubPublisher{
		hub: h,
	}
}
