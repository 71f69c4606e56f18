package repository

import (
	apperrors "CloudDeck_Monitoring/internal/monitoring/errors"
	"CloudDeck_Monitoring/internal/monitoring/model"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IncidentFilter narrows incident history queries. Zero values mean "any";
// Resolved is a pointer so the open/closed filter can be left unset.
type IncidentFilter struct {
	AppID    string
	Severity string
	Resolved *bool
}

type IncidentRepository interface {
	CreateIncident(ctx context.Context, incident model.Incident) (model.Incident, error)
	GetOpenIncident(ctx context.Context, appID string, incidentType string) (model.Incident, error)
	ResolveIncident(ctx context.Context, incidentID string, endTime time.Time) (model.Incident, error)
	GetIncidents(ctx context.Context, filter IncidentFilter, limit int, offset int) ([]model.Incident, error)
	DeleteResolvedIncidentsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type incidentRepository struct {
	db *gorm.DB
}

// CreateIncident persists a new incident. The partial unique index on open
// downtime incidents backstops the manager when two checks race.
func (r *incidentRepository) CreateIncident(ctx context.Context, incident model.Incident) (model.Incident, error) {
	result := r.db.WithContext(ctx).Create(&incident)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return incident, fmt.Errorf("IncidentRepository.CreateIncident: %w", apperrors.ErrIncidentAlreadyOpen)
		}
		return incident, fmt.Errorf("IncidentRepository.CreateIncident: %w", result.Error)
	}
	return incident, nil
}

// GetOpenIncident returns the most recent unresolved incident of the given
// type, newest first, so the manager can extend it instead of opening a twin.
func (r *incidentRepository) GetOpenIncident(ctx context.Context, appID string, incidentType string) (model.Incident, error) {
	var incident model.Incident
	result := r.db.WithContext(ctx).
		Where("app_id = ? AND type = ? AND resolved = ?", appID, incidentType, false).
		Order("start_time DESC").
		First(&incident)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return incident, fmt.Errorf("IncidentRepository.GetOpenIncident: %w", apperrors.ErrIncidentNotFound)
		}
		return incident, fmt.Errorf("IncidentRepository.GetOpenIncident: %w", result.Error)
	}
	return incident, nil
}

func (r *incidentRepository) ResolveIncident(ctx context.Context, incidentID string, endTime time.Time) (model.Incident, error) {
	var incident model.Incident
	result := r.db.WithContext(ctx).Model(&incident).
		Clauses(clause.Returning{}).
		Where("id = ? AND resolved = ?", incidentID, false).
		Updates(map[string]interface{}{
			"resolved":         true,
			"end_time":         endTime,
			"duration_seconds": gorm.Expr("EXTRACT(EPOCH FROM (?::timestamptz - start_time))::bigint", endTime),
		})
	if result.Error != nil {
		return incident, fmt.Errorf("IncidentRepository.ResolveIncident: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return incident, fmt.Errorf("IncidentRepository.ResolveIncident: %w", apperrors.ErrIncidentNotFound)
	}
	return incident, nil
}

func (r *incidentRepository) GetIncidents(ctx context.Context, filter IncidentFilter, limit int, offset int) ([]model.Incident, error) {
	query := r.db.WithContext(ctx)
	if filter.AppID != "" {
		query = query.Where("app_id = ?", filter.AppID)
	}
	if filter.Severity != "" {
		query = query.Where("severity = ?", filter.Severity)
	}
	if filter.Resolved != nil {
		query = query.Where("resolved = ?", *filter.Resolved)
	}
	var incidents []model.Incident
	result := query.Order("start_time DESC").Limit(limit).Offset(offset).Find(&incidents)
	if result.Error != nil {
		return nil, fmt.Errorf("IncidentRepository.GetIncidents: %w", result.Error)
	}
	return incidents, nil
}

func (r *incidentRepository) DeleteResolvedIncidentsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("resolved = ? AND start_time < ?", true, cutoff).
		Delete(&model.Incident{})
	if result.Error != nil {
		return 0, fmt.Errorf("IncidentRepository.DeleteResolvedIncidentsBefore: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func NewIncidentRepository(db *gorm.DB) IncidentRepository {
	return &incidentRepository{
		db: db,
	}
}
