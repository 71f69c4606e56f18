package repository

import (
	apperrors "CloudDeck_Monitoring/internal/monitoring/errors"
	"CloudDeck_Monitoring/internal/monitoring/model"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MonitoringOverview is the aggregate read model behind the stats endpoint.
type MonitoringOverview struct {
	TotalApps           int64
	CountsByStatus      map[string]int64
	AvgResponseTimeMs   float64
	AvgUptimePercentage float64
}

// AppRepository is the registry of monitored targets. The check pipeline is
// the only writer of the monitoring columns; registration CRUD lives upstream.
type AppRepository interface {
	GetAppsDueForCheck(ctx context.Context) ([]model.App, error)
	GetAppByID(ctx context.Context, appID string) (model.App, error)
	GetActiveApps(ctx context.Context) ([]model.App, error)
	UpdateAppMonitoring(ctx context.Context, app model.App) (model.App, error)
	UpdateAppPolicy(ctx context.Context, appID string, policy model.MonitoringPolicy, channels []model.AlertChannel) (model.App, error)
	GetMonitoringOverview(ctx context.Context) (MonitoringOverview, error)
}

// monitoringColumns are the only columns the check pipeline may touch. Listing
// them explicitly keeps zero values (a reset failure streak) in the update.
var monitoringColumns = []string{
	"health_status",
	"consecutive_failures",
	"response_time_ms",
	"avg_response_time_ms",
	"uptime_percentage",
	"checks_performed",
	"last_check",
	"last_failure",
	"updated_at",
}

// restartingReclaimFactor widens the due interval for rows stuck in
// restarting. A remediation whose outcome write failed leaves the row in
// restarting; after this many check intervals without a check the scheduler
// selects it again.
const restartingReclaimFactor = 10

type appRepository struct {
	db *gorm.DB
}

func (r *appRepository) GetAppsDueForCheck(ctx context.Context) ([]model.App, error) {
	var apps []model.App
	result := r.db.WithContext(ctx).
		Where("monitoring_enabled = ?", true).
		Where("health_status <> ? OR last_check IS NULL OR last_check <= NOW() - (policy_check_interval_seconds * ? * INTERVAL '1 second')",
			model.HealthStatusRestarting, restartingReclaimFactor).
		Where("last_check IS NULL OR last_check <= NOW() - (policy_check_interval_seconds * INTERVAL '1 second')").
		Find(&apps)
	if result.Error != nil {
		return nil, fmt.Errorf("AppRepository.GetAppsDueForCheck: %w", result.Error)
	}
	return apps, nil
}

func (r *appRepository) GetAppByID(ctx context.Context, appID string) (model.App, error) {
	var app model.App
	result := r.db.WithContext(ctx).First(&app, "id = ?", appID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return app, fmt.Errorf("AppRepository.GetAppByID: %w", apperrors.ErrAppNotFound)
		}
		return app, fmt.Errorf("AppRepository.GetAppByID: %w", result.Error)
	}
	return app, nil
}

func (r *appRepository) GetActiveApps(ctx context.Context) ([]model.App, error) {
	var apps []model.App
	result := r.db.WithContext(ctx).Where("monitoring_enabled = ?", true).Find(&apps)
	if result.Error != nil {
		return nil, fmt.Errorf("AppRepository.GetActiveApps: %w", result.Error)
	}
	return apps, nil
}

func (r *appRepository) UpdateAppMonitoring(ctx context.Context, app model.App) (model.App, error) {
	var updated model.App
	result := r.db.WithContext(ctx).Model(&updated).
		Clauses(clause.Returning{}).
		Select(monitoringColumns).
		Where("id = ?", app.ID).
		Updates(app)
	if result.Error != nil {
		return updated, fmt.Errorf("AppRepository.UpdateAppMonitoring: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return updated, fmt.Errorf("AppRepository.UpdateAppMonitoring: %w", apperrors.ErrAppNotFound)
	}
	return updated, nil
}

func (r *appRepository) UpdateAppPolicy(ctx context.Context, appID string, policy model.MonitoringPolicy, channels []model.AlertChannel) (model.App, error) {
	policy.ClampTimeout()
	var updated model.App
	result := r.db.WithContext(ctx).Model(&updated).
		Clauses(clause.Returning{}).
		Select("policy_health_check_path", "policy_timeout_seconds", "policy_check_interval_seconds",
			"policy_auto_restart_enabled", "policy_max_failures_before_restart", "alert_channels", "updated_at").
		Where("id = ?", appID).
		Updates(model.App{Policy: policy, AlertChannels: channels})
	if result.Error != nil {
		return updated, fmt.Errorf("AppRepository.UpdateAppPolicy: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return updated, fmt.Errorf("AppRepository.UpdateAppPolicy: %w", apperrors.ErrAppNotFound)
	}
	return updated, nil
}

func (r *appRepository) GetMonitoringOverview(ctx context.Context) (MonitoringOverview, error) {
	overview := MonitoringOverview{
		CountsByStatus: make(map[string]int64),
	}
	var statusCounts []struct {
		HealthStatus string
		Cnt          int64
	}
	result := r.db.WithContext(ctx).Model(&model.App{}).
		Select("health_status, COUNT(*) AS cnt").
		Where("monitoring_enabled = ?", true).
		Group("health_status").
		Scan(&statusCounts)
	if result.Error != nil {
		return overview, fmt.Errorf("AppRepository.GetMonitoringOverview: %w", result.Error)
	}
	for _, row := range statusCounts {
		overview.CountsByStatus[row.HealthStatus] = row.Cnt
		overview.TotalApps += row.Cnt
	}
	var averages struct {
		AvgResponseTimeMs   float64
		AvgUptimePercentage float64
	}
	result = r.db.WithContext(ctx).Model(&model.App{}).
		Select("COALESCE(AVG(avg_response_time_ms), 0) AS avg_response_time_ms, COALESCE(AVG(uptime_percentage), 0) AS avg_uptime_percentage").
		Where("monitoring_enabled = ?", true).
		Scan(&averages)
	if result.Error != nil {
		return overview, fmt.Errorf("AppRepository.GetMonitoringOverview: %w", result.Error)
	}
	overview.AvgResponseTimeMs = averages.AvgResponseTimeMs
	overview.AvgUptimePercentage = averages.AvgUptimePercentage
	return overview, nil
}

func NewAppRepository(db *gorm.DB) AppRepository {
	return &appRepository{
		db: db,
	}
}
