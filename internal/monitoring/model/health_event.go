package model

import "time"

// HealthEvent is published on every monitoring state mutation for live
// dashboards. Delivery is best-effort and outside the correctness path.
type HealthEvent struct {
	AppID               string     `json:"app_id"`
	HealthStatus        string     `json:"health_status"`
	LastCheck           *time.Time `json:"last_check"`
	ResponseTimeMs      int64      `json:"response_time_ms"`
	UptimePercentage    float64    `json:"uptime_percentage"`
	ConsecutiveFailures int        `json:"consecutive_failures"`
}

// NewHealthEvent snapshots the dashboard-relevant fields of an app record.
func NewHealthEvent(app App) HealthEvent {
	return HealthEvent{
		AppID:               app.ID,
		HealthStatus:        app.HealthStatus,
		LastCheck:           app.LastCheck,
		ResponseTimeMs:      app.ResponseTimeMs,
		UptimePercentage:    app.UptimePercentage,
		ConsecutiveFailures: app.ConsecutiveFailures,
	}
}
