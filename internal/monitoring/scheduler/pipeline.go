package scheduler

import (
	"CloudDeck_Monitoring/internal/monitoring/alert"
	apperrors "CloudDeck_Monitoring/internal/monitoring/errors"
	"CloudDeck_Monitoring/internal/monitoring/health"
	"CloudDeck_Monitoring/internal/monitoring/incident"
	"CloudDeck_Monitoring/internal/monitoring/model"
	"CloudDeck_Monitoring/internal/monitoring/probe"
	"CloudDeck_Monitoring/internal/monitoring/publisher"
	"CloudDeck_Monitoring/internal/monitoring/remediate"
	"CloudDeck_Monitoring/internal/monitoring/repository"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Pipeline is the full probe-to-remediation sequence for one app. The tick
// path and the manual trigger both run through it, so a forced check behaves
// exactly like a scheduled one.
type Pipeline interface {
	RunCheck(ctx context.Context, app model.App) (model.App, error)
}

type pipeline struct {
	prober          probe.Prober
	appRepo         repository.AppRepository
	incidentManager incident.Manager
	notifier        alert.Notifier
	remediator      remediate.Remediator
	checkHistory    repository.CheckHistoryRepository
	pub             publisher.Publisher
	logger          *zap.Logger
}

// RunCheck probes the app, folds the outcome into its record and drives the
// downstream effects. Panics anywhere in the sequence are contained here and
// reported as errors, leaving the stored record untouched by this check.
func (p *pipeline) RunCheck(ctx context.Context, app model.App) (updated model.App, err error) {
	defer func() {
		if r := recover(); r != nil {
			updated = app
			err = fmt.Errorf("Pipeline.RunCheck: panic during check of app %s: %v", app.ID, r)
		}
	}()
	return p.runCheck(ctx, app)
}

func (p *pipeline) runCheck(ctx context.Context, app model.App) (model.App, error) {
	if !app.MonitoringEnabled {
		return app, fmt.Errorf("Pipeline.RunCheck: %w", apperrors.ErrMonitoringDisabled)
	}
	policy := app.Policy
	policy.ClampTimeout()
	timeout := time.Duration(policy.TimeoutSeconds) * time.Second

	outcome, err := p.prober.Check(ctx, app.DeploymentURL, policy.HealthCheckPath, timeout)
	if err != nil {
		return app, fmt.Errorf("Pipeline.RunCheck: %w", err)
	}

	now := time.Now()
	previousStatus := app.HealthStatus
	updated := health.ApplyObservation(app, outcome, now)

	updated, err = p.appRepo.UpdateAppMonitoring(ctx, updated)
	if err != nil {
		return app, fmt.Errorf("Pipeline.RunCheck: %w", err)
	}

	result, err := p.incidentManager.HandleTransition(ctx, previousStatus, updated, now)
	if err != nil {
		p.logger.Error("failed to update incidents",
			zap.Error(fmt.Errorf("Pipeline.RunCheck: %w", err)),
			zap.String("app_id", updated.ID))
	} else {
		if result.Opened != nil {
			p.logger.Warn("incident opened",
				zap.String("app_id", updated.ID),
				zap.String("incident_id", result.Opened.ID),
				zap.String("severity", result.Opened.Severity))
		}
		if result.Resolved != nil {
			p.logger.Info("incident resolved",
				zap.String("app_id", updated.ID),
				zap.String("incident_id", result.Resolved.ID),
				zap.Int64("duration_seconds", result.Resolved.DurationSeconds))
		}
	}

	if histErr := p.checkHistory.IndexCheckOutcome(ctx, repository.NewCheckOutcome(
		updated.ID, outcome.Status, outcome.StatusCode, outcome.ResponseTimeMs, outcome.Detail, now)); histErr != nil {
		p.logger.Warn("failed to index check outcome",
			zap.Error(histErr),
			zap.String("app_id", updated.ID))
	}

	if pubErr := p.pub.PublishHealthEvent(ctx, model.NewHealthEvent(updated)); pubErr != nil {
		p.logger.Warn("failed to publish health event",
			zap.Error(pubErr),
			zap.String("app_id", updated.ID))
	}

	if alert.ShouldAlert(updated, updated.HealthStatus, outcome.ResponseTimeMs) {
		severity := alert.AlertSeverity(updated.HealthStatus, updated.ConsecutiveFailures, outcome.ResponseTimeMs)
		p.notifier.SendAlert(ctx, updated, severity, outcome.Detail)
	}

	if p.remediator.ShouldRemediate(updated) {
		updated, err = p.remediator.Remediate(ctx, updated)
		if err != nil {
			return updated, fmt.Errorf("Pipeline.RunCheck: %w", err)
		}
	}
	return updated, nil
}

func NewPipeline(
	prober probe.Prober,
	appRepo repository.AppRepository,
	incidentManager incident.Manager,
	notifier alert.Notifier,
	remediator remediate.Remediator,
	checkHistory repository.CheckHistoryRepository,
	pub publisher.Publisher,
	logger *zap.Logger,
) Pipeline {
	return &pipeline{
		prober:          prober,
		appRepo:         appRepo,
		incidentManager: incidentManager,
		notifier:        notifier,
		remediator:      remediator,
		checkHistory:    checkHistory,
		pub:             pub,
		logger:          logger,
	}
}
