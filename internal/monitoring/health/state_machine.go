package health

import (
	"CloudDeck_Monitoring/internal/monitoring/model"
	"CloudDeck_Monitoring/internal/monitoring/probe"
	"time"
)

// ApplyObservation folds one probe outcome into an app's monitoring record and
// returns the updated copy. It is pure: the input record is never mutated and
// no state is kept between calls. Every health status accepts every outcome;
// only the effects differ.
func ApplyObservation(app model.App, outcome probe.Outcome, now time.Time) model.App {
	app.ChecksPerformed++
	n := app.ChecksPerformed
	app.ResponseTimeMs = outcome.ResponseTimeMs
	app.AvgResponseTimeMs = (app.AvgResponseTimeMs*float64(n-1) + float64(outcome.ResponseTimeMs)) / float64(n)

	app.HealthStatus = outcome.Status
	switch outcome.Status {
	case model.HealthStatusUp:
		app.ConsecutiveFailures = 0
	case model.HealthStatusDown, model.HealthStatusWarning:
		app.ConsecutiveFailures++
		failedAt := now
		app.LastFailure = &failedAt
	}

	checkedAt := now
	app.LastCheck = &checkedAt
	app.UptimePercentage = UptimePercentage(app.ChecksPerformed, app.ConsecutiveFailures)
	return app
}

// UptimePercentage derives uptime from the current failure streak. This
// conflates the streak with historical downtime, which is wrong as an SLA but
// is kept for compatibility with the numbers the dashboard has always shown.
func UptimePercentage(checksPerformed int64, consecutiveFailures int) float64 {
	if checksPerformed <= 0 {
		return 100
	}
	uptime := float64(checksPerformed-int64(consecutiveFailures)) / float64(checksPerformed) * 100
	if uptime < 0 {
		return 0
	}
	if uptime > 100 {
		return 100
	}
	return uptime
}
