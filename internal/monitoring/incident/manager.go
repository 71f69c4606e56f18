package incident

import (
	apperrors "CloudDeck_Monitoring/internal/monitoring/errors"
	"CloudDeck_Monitoring/internal/monitoring/model"
	"CloudDeck_Monitoring/internal/monitoring/repository"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// criticalFailureThreshold is the failure streak at which a freshly opened
// downtime incident starts at critical instead of high.
const criticalFailureThreshold = 5

// Manager opens and resolves incidents on health transitions. Pruning of old
// resolved incidents is the aggregator's job, not the manager's.
type Manager interface {
	HandleTransition(ctx context.Context, previousStatus string, app model.App, now time.Time) (TransitionResult, error)
}

// TransitionResult reports what a transition did so the pipeline can log and
// publish it. Both pointers are nil when the transition was incident-neutral.
type TransitionResult struct {
	Opened   *model.Incident
	Resolved *model.Incident
}

type manager struct {
	incidentRepo repository.IncidentRepository
}

func (m *manager) HandleTransition(ctx context.Context, previousStatus string, app model.App, now time.Time) (TransitionResult, error) {
	switch {
	case app.HealthStatus == model.HealthStatusDown && previousStatus != model.HealthStatusDown:
		opened, err := m.openDowntimeIncident(ctx, app, now)
		if err != nil {
			return TransitionResult{}, fmt.Errorf("IncidentManager.HandleTransition: %w", err)
		}
		return TransitionResult{Opened: opened}, nil
	case app.HealthStatus == model.HealthStatusUp && previousStatus != model.HealthStatusUp:
		resolved, err := m.resolveDowntimeIncident(ctx, app.ID, now)
		if err != nil {
			return TransitionResult{}, fmt.Errorf("IncidentManager.HandleTransition: %w", err)
		}
		return TransitionResult{Resolved: resolved}, nil
	}
	return TransitionResult{}, nil
}

// openDowntimeIncident opens a new downtime incident unless one is already
// unresolved, in which case the ongoing incident is extended by doing nothing.
func (m *manager) openDowntimeIncident(ctx context.Context, app model.App, now time.Time) (*model.Incident, error) {
	_, err := m.incidentRepo.GetOpenIncident(ctx, app.ID, model.IncidentTypeDowntime)
	if err == nil {
		return nil, nil
	}
	if !errors.Is(err, apperrors.ErrIncidentNotFound) {
		return nil, err
	}
	severity := model.SeverityHigh
	if app.ConsecutiveFailures >= criticalFailureThreshold {
		severity = model.SeverityCritical
	}
	created, err := m.incidentRepo.CreateIncident(ctx, model.Incident{
		ID:          uuid.NewString(),
		AppID:       app.ID,
		Type:        model.IncidentTypeDowntime,
		Severity:    severity,
		Description: fmt.Sprintf("%s is unreachable after %d consecutive failed checks", app.AppName, app.ConsecutiveFailures),
		StartTime:   now,
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (m *manager) resolveDowntimeIncident(ctx context.Context, appID string, now time.Time) (*model.Incident, error) {
	open, err := m.incidentRepo.GetOpenIncident(ctx, appID, model.IncidentTypeDowntime)
	if err != nil {
		if errors.Is(err, apperrors.ErrIncidentNotFound) {
			return nil, nil
		}
		return nil, err
	}
	resolved, err := m.incidentRepo.ResolveIncident(ctx, open.ID, now)
	if err != nil {
		return nil, err
	}
	return &resolved, nil
}

func NewManager(incidentRepo repository.IncidentRepository) Manager {
	return &manager{
		incidentRepo: incidentRepo,
	}
}
