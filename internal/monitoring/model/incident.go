package model

import "time"

const (
	IncidentTypeDowntime     = "downtime"
	IncidentTypeSlowResponse = "slow_response"
	IncidentTypeErrorRate    = "error_rate"
)

const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Incident is a bounded interval of abnormal health for one app. At most one
// unresolved downtime incident exists per app at any time.
type Incident struct {
	ID              string     `json:"id"`
	AppID           string     `gorm:"index" json:"app_id"`
	Type            string     `json:"type"`
	Severity        string     `json:"severity"`
	Description     string     `json:"description"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time"`
	Resolved        bool       `json:"resolved"`
	DurationSeconds int64      `json:"duration_seconds"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
