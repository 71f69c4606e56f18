package alert

import "CloudDeck_Monitoring/internal/monitoring/model"

const (
	downAlertFailureThreshold    = 3
	slowAlertFailureThreshold    = 2
	warningAlertFailureThreshold = 5
	slowResponseThresholdMs      = 5000
	criticalFailureThreshold     = 5
)

// ShouldAlert decides, after the state machine has run, whether the new
// observation warrants waking a human. The failure-count thresholds debounce
// transient noise: a single blip never alerts.
func ShouldAlert(app model.App, newStatus string, responseTimeMs int64) bool {
	if !app.MonitoringEnabled {
		return false
	}
	if newStatus == model.HealthStatusDown && app.ConsecutiveFailures >= downAlertFailureThreshold {
		return true
	}
	if responseTimeMs > slowResponseThresholdMs && app.ConsecutiveFailures >= slowAlertFailureThreshold {
		return true
	}
	if newStatus == model.HealthStatusWarning && app.ConsecutiveFailures >= warningAlertFailureThreshold {
		return true
	}
	return false
}

// AlertSeverity grades the alert message independently of the decision to
// send it.
func AlertSeverity(newStatus string, consecutiveFailures int, responseTimeMs int64) string {
	if newStatus == model.HealthStatusDown {
		if consecutiveFailures >= criticalFailureThreshold {
			return model.SeverityCritical
		}
		return model.SeverityHigh
	}
	if responseTimeMs > slowResponseThresholdMs {
		return model.SeverityMedium
	}
	return model.SeverityLow
}
