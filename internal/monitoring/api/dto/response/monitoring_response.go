package response

import (
	"CloudDeck_Monitoring/internal/monitoring/model"
	"time"
)

type Response struct {
	Message string `json:"message"`
}

type AppMonitoringResponse struct {
	ID                  string                `json:"id"`
	AppName             string                `json:"app_name"`
	HealthStatus        string                `json:"health_status"`
	ConsecutiveFailures int                   `json:"consecutive_failures"`
	ResponseTimeMs      int64                 `json:"response_time_ms"`
	AvgResponseTimeMs   float64               `json:"avg_response_time_ms"`
	UptimePercentage    float64               `json:"uptime_percentage"`
	ChecksPerformed     int64                 `json:"checks_performed"`
	LastCheck           *time.Time            `json:"last_check"`
	MonitoringEnabled   bool                  `json:"monitoring_enabled"`
	Policy              model.MonitoringPolicy `json:"policy"`
	AlertChannels       []model.AlertChannel   `json:"alert_channels"`
}

func NewAppMonitoringResponse(app model.App) AppMonitoringResponse {
	return AppMonitoringResponse{
		ID:                  app.ID,
		AppName:             app.AppName,
		HealthStatus:        app.HealthStatus,
		ConsecutiveFailures: app.ConsecutiveFailures,
		ResponseTimeMs:      app.ResponseTimeMs,
		AvgResponseTimeMs:   app.AvgResponseTimeMs,
		UptimePercentage:    app.UptimePercentage,
		ChecksPerformed:     app.ChecksPerformed,
		LastCheck:           app.LastCheck,
		MonitoringEnabled:   app.MonitoringEnabled,
		Policy:              app.Policy,
		AlertChannels:       app.AlertChannels,
	}
}

type StatsResponse struct {
	TotalApps           int64            `json:"total_apps"`
	CountsByStatus      map[string]int64 `json:"counts_by_status"`
	AvgResponseTimeMs   float64          `json:"avg_response_time_ms"`
	AvgUptimePercentage float64          `json:"avg_uptime_percentage"`
}

type IncidentResponse struct {
	ID              string     `json:"id"`
	AppID           string     `json:"app_id"`
	Type            string     `json:"type"`
	Severity        string     `json:"severity"`
	Description     string     `json:"description"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time"`
	Resolved        bool       `json:"resolved"`
	DurationSeconds int64      `json:"duration_seconds"`
}

func NewIncidentResponse(incident model.Incident) IncidentResponse {
	return IncidentResponse{
		ID:              incident.ID,
		AppID:           incident.AppID,
		Type:            incident.Type,
		Severity:        incident.Severity,
		Description:     incident.Description,
		StartTime:       incident.StartTime,
		EndTime:         incident.EndTime,
		Resolved:        incident.Resolved,
		DurationSeconds: incident.DurationSeconds,
	}
}

type UptimeResponse struct {
	UptimePercentage float64 `json:"uptime_percentage"`
}
