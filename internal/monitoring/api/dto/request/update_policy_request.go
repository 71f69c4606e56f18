package request

type AlertChannelRequest struct {
	Type        string `json:"type" binding:"required,oneof=email chat webhook"`
	Destination string `json:"destination" binding:"required"`
	Enabled     bool   `json:"enabled"`
}

type UpdatePolicyRequest struct {
	HealthCheckPath          string                `json:"health_check_path"`
	TimeoutSeconds           int                   `json:"timeout_seconds" binding:"required,gte=1"`
	CheckIntervalSeconds     int                   `json:"check_interval_seconds" binding:"required,gte=1"`
	AutoRestartEnabled       bool                  `json:"auto_restart_enabled"`
	MaxFailuresBeforeRestart int                   `json:"max_failures_before_restart" binding:"required,gte=1"`
	AlertChannels            []AlertChannelRequest `json:"alert_channels" binding:"omitempty,dive"`
}
