package remediate

import (
	"CloudDeck_Monitoring/internal/monitoring/health"
	"CloudDeck_Monitoring/internal/monitoring/model"
	"CloudDeck_Monitoring/internal/monitoring/publisher"
	"CloudDeck_Monitoring/internal/monitoring/repository"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Backend is the cloud provider restart capability: opaque, possibly slow,
// possibly failing.
type Backend interface {
	Restart(ctx context.Context, app model.App) error
}

// Remediator performs one restart attempt per decision. There is no retry
// loop in here: the next scheduled check cycle is the retry mechanism, and
// the scheduler re-selects an app in restarting state only after it has gone
// unchecked for many intervals.
type Remediator interface {
	ShouldRemediate(app model.App) bool
	Remediate(ctx context.Context, app model.App) (model.App, error)
}

type remediator struct {
	backend Backend
	appRepo repository.AppRepository
	pub     publisher.Publisher
	logger  *zap.Logger
}

func (r *remediator) ShouldRemediate(app model.App) bool {
	if !app.Policy.AutoRestartEnabled {
		return false
	}
	if app.HealthStatus != model.HealthStatusDown {
		return false
	}
	threshold := app.Policy.MaxFailuresBeforeRestart
	if threshold <= 0 {
		threshold = model.DefaultMaxFailuresBeforeRestart
	}
	return app.ConsecutiveFailures >= threshold
}

// Remediate moves the app through restarting and back. A failed restart puts
// the app back to down, not unknown, so the next scheduled probe re-evaluates
// truthfully. Errors are returned only for registry failures; a failed restart
// itself is an expected outcome.
func (r *remediator) Remediate(ctx context.Context, app model.App) (model.App, error) {
	app.HealthStatus = model.HealthStatusRestarting
	app, err := r.persistAndPublish(ctx, app)
	if err != nil {
		return app, fmt.Errorf("Remediator.Remediate: %w", err)
	}
	r.logger.Info("restarting app",
		zap.String("app_id", app.ID),
		zap.Int("consecutive_failures", app.ConsecutiveFailures))

	if restartErr := r.backend.Restart(ctx, app); restartErr != nil {
		r.logger.Error("restart attempt failed",
			zap.Error(fmt.Errorf("Remediator.Remediate: %w", restartErr)),
			zap.String("app_id", app.ID))
		app.HealthStatus = model.HealthStatusDown
		app, err = r.persistAndPublish(ctx, app)
		if err != nil {
			return app, fmt.Errorf("Remediator.Remediate: %w", err)
		}
		return app, nil
	}

	now := time.Now()
	app.HealthStatus = model.HealthStatusUp
	app.ConsecutiveFailures = 0
	app.LastCheck = &now
	app.UptimePercentage = health.UptimePercentage(app.ChecksPerformed, app.ConsecutiveFailures)
	app, err = r.persistAndPublish(ctx, app)
	if err != nil {
		return app, fmt.Errorf("Remediator.Remediate: %w", err)
	}
	r.logger.Info("app restarted successfully", zap.String("app_id", app.ID))
	return app, nil
}

func (r *remediator) persistAndPublish(ctx context.Context, app model.App) (model.App, error) {
	updated, err := r.appRepo.UpdateAppMonitoring(ctx, app)
	if err != nil {
		return app, err
	}
	if pubErr := r.pub.PublishHealthEvent(ctx, model.NewHealthEvent(updated)); pubErr != nil {
		r.logger.Warn("failed to publish health event",
			zap.Error(pubErr),
			zap.String("app_id", updated.ID))
	}
	return updated, nil
}

func NewRemediator(backend Backend, appRepo repository.AppRepository, pub publisher.Publisher, logger *zap.Logger) Remediator {
	return &remediator{
		backend: backend,
		appRepo: appRepo,
		pub:     pub,
		logger:  logger,
	}
}
