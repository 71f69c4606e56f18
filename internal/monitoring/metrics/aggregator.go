package metrics

import (
	"CloudDeck_Monitoring/internal/monitoring/health"
	"CloudDeck_Monitoring/internal/monitoring/repository"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Aggregator runs the slow batch side of monitoring: periodic stat rollups
// and retention pruning of old resolved incidents. Incident creation and
// resolution stay in the real-time path; only cleanup happens here.
type Aggregator interface {
	RollupMonitoringStats(ctx context.Context) error
	PruneResolvedIncidents(ctx context.Context) error
}

type aggregator struct {
	appRepo           repository.AppRepository
	incidentRepo      repository.IncidentRepository
	incidentRetention time.Duration
	logger            *zap.Logger
}

// RollupMonitoringStats recomputes the stored uptime percentage for every
// active app from its current failure streak. A per-app failure is logged and
// skipped so one bad row never aborts the rollup.
func (a *aggregator) RollupMonitoringStats(ctx context.Context) error {
	apps, err := a.appRepo.GetActiveApps(ctx)
	if err != nil {
		return fmt.Errorf("Aggregator.RollupMonitoringStats: %w", err)
	}
	for _, app := range apps {
		if app.ChecksPerformed == 0 {
			continue
		}
		uptime := health.UptimePercentage(app.ChecksPerformed, app.ConsecutiveFailures)
		if uptime == app.UptimePercentage {
			continue
		}
		app.UptimePercentage = uptime
		if _, err = a.appRepo.UpdateAppMonitoring(ctx, app); err != nil {
			a.logger.Error("failed to roll up app stats",
				zap.Error(fmt.Errorf("Aggregator.RollupMonitoringStats: %w", err)),
				zap.String("app_id", app.ID))
		}
	}
	return nil
}

func (a *aggregator) PruneResolvedIncidents(ctx context.Context) error {
	cutoff := time.Now().Add(-a.incidentRetention)
	deleted, err := a.incidentRepo.DeleteResolvedIncidentsBefore(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("Aggregator.PruneResolvedIncidents: %w", err)
	}
	if deleted > 0 {
		a.logger.Info("pruned resolved incidents",
			zap.Int64("deleted", deleted),
			zap.Time("cutoff", cutoff))
	}
	return nil
}

func NewAggregator(appRepo repository.AppRepository, incidentRepo repository.IncidentRepository, incidentRetention time.Duration, logger *zap.Logger) Aggregator {
	return &aggregator{
		appRepo:           appRepo,
		incidentRepo:      incidentRepo,
		incidentRetention: incidentRetention,
		logger:            logger,
	}
}
