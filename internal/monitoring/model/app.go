package model

import "time"

const (
	HealthStatusUnknown    = "unknown"
	HealthStatusUp         = "up"
	HealthStatusDown       = "down"
	HealthStatusWarning    = "warning"
	HealthStatusRestarting = "restarting"
)

const (
	AlertChannelEmail   = "email"
	AlertChannelChat    = "chat"
	AlertChannelWebhook = "webhook"
)

const (
	DefaultCheckIntervalSeconds     = 30
	DefaultMaxFailuresBeforeRestart = 3
	MinProbeTimeoutSeconds          = 5
	MaxProbeTimeoutSeconds          = 300
)

// MonitoringPolicy is the per-app knob set applied on the next scheduler tick.
type MonitoringPolicy struct {
	HealthCheckPath          string `json:"health_check_path"`
	TimeoutSeconds           int    `json:"timeout_seconds"`
	CheckIntervalSeconds     int    `json:"check_interval_seconds"`
	AutoRestartEnabled       bool   `json:"auto_restart_enabled"`
	MaxFailuresBeforeRestart int    `json:"max_failures_before_restart"`
}

// ClampTimeout bounds the probe timeout at configuration time so a bad policy
// can never produce a hanging or instantly-failing probe.
func (p *MonitoringPolicy) ClampTimeout() {
	if p.TimeoutSeconds < MinProbeTimeoutSeconds {
		p.TimeoutSeconds = MinProbeTimeoutSeconds
	}
	if p.TimeoutSeconds > MaxProbeTimeoutSeconds {
		p.TimeoutSeconds = MaxProbeTimeoutSeconds
	}
}

type AlertChannel struct {
	Type        string `json:"type"`
	Destination string `json:"destination"`
	Enabled     bool   `json:"enabled"`
}

// App is the monitoring record of one deployed application. It is mutated only
// by the check pipeline and the metrics aggregator; registration and
// soft-deactivation happen upstream.
type App struct {
	ID                  string           `gorm:"default:(-)" json:"id"`
	AppName             string           `json:"app_name"`
	DeploymentURL       string           `json:"deployment_url"`
	HealthStatus        string           `json:"health_status"`
	ConsecutiveFailures int              `json:"consecutive_failures"`
	ResponseTimeMs      int64            `json:"response_time_ms"`
	AvgResponseTimeMs   float64          `json:"avg_response_time_ms"`
	UptimePercentage    float64          `json:"uptime_percentage"`
	ChecksPerformed     int64            `json:"checks_performed"`
	LastCheck           *time.Time       `json:"last_check"`
	LastFailure         *time.Time       `json:"last_failure"`
	MonitoringEnabled   bool             `json:"monitoring_enabled"`
	Policy              MonitoringPolicy `gorm:"embedded;embeddedPrefix:policy_" json:"policy"`
	AlertChannels       []AlertChannel   `gorm:"serializer:json" json:"alert_channels"`
	Incidents           []Incident       `gorm:"foreignKey:AppID" json:"incidents"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

// EnabledAlertChannels filters the configured channel list down to the ones
// the notifier may dispatch to.
func (a App) EnabledAlertChannels() []AlertChannel {
	var channels []AlertChannel
	for _, ch := range a.AlertChannels {
		if ch.Enabled {
			channels = append(channels, ch)
		}
	}
	return channels
}
