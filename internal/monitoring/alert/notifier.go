package alert

import (
	"CloudDeck_Monitoring/internal/monitoring/model"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// AlertMessage is the channel-independent rendering input. Each channel sender
// turns it into its own wire format.
type AlertMessage struct {
	Title        string
	Summary      string
	Severity     string
	DetailFields map[string]string
}

type Notifier interface {
	SendAlert(ctx context.Context, app model.App, severity string, diagnostic string)
}

type notifier struct {
	senders map[string]ChannelSender
	logger  *zap.Logger
}

// SendAlert fans the alert out to every enabled channel concurrently. Channel
// failures are independent: each one is logged and none of them blocks or
// fails the others. Delivery is at-most-once, partial delivery counts as
// success at this level.
func (n *notifier) SendAlert(ctx context.Context, app model.App, severity string, diagnostic string) {
	channels := app.EnabledAlertChannels()
	if len(channels) == 0 {
		return
	}
	msg := buildAlertMessage(app, severity, diagnostic)
	results := make([]error, len(channels))
	var g errgroup.Group
	for i, ch := range channels {
		g.Go(func() error {
			sender, ok := n.senders[ch.Type]
			if !ok {
				results[i] = fmt.Errorf("no sender registered for channel type %q", ch.Type)
				return nil
			}
			results[i] = sender.Send(ctx, ch, msg)
			return nil
		})
	}
	g.Wait()
	for i, err := range results {
		if err != nil {
			n.logger.Error("failed to deliver alert",
				zap.Error(fmt.Errorf("Notifier.SendAlert: %w", err)),
				zap.String("app_id", app.ID),
				zap.String("channel_type", channels[i].Type),
				zap.String("destination", channels[i].Destination))
		}
	}
}

func buildAlertMessage(app model.App, severity string, diagnostic string) AlertMessage {
	msg := AlertMessage{
		Title:    fmt.Sprintf("[%s] %s is %s", severity, app.AppName, app.HealthStatus),
		Summary:  diagnostic,
		Severity: severity,
		DetailFields: map[string]string{
			"app":                  app.AppName,
			"status":               app.HealthStatus,
			"consecutive_failures": fmt.Sprintf("%d", app.ConsecutiveFailures),
			"response_time":        fmt.Sprintf("%dms", app.ResponseTimeMs),
			"uptime":               fmt.Sprintf("%.2f%%", app.UptimePercentage),
		},
	}
	if msg.Summary == "" {
		msg.Summary = fmt.Sprintf("%s reported %s at %s", app.AppName, app.HealthStatus, time.Now().Format(time.RFC3339))
	}
	return msg
}

func NewNotifier(logger *zap.Logger, senders map[string]ChannelSender) Notifier {
	return &notifier{
		senders: senders,
		logger:  logger,
	}
}
