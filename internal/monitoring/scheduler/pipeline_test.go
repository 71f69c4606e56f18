package scheduler

import (
	apperrors "CloudDeck_Monitoring/internal/monitoring/errors"
	"CloudDeck_Monitoring/internal/monitoring/incident"
	mockalert "CloudDeck_Monitoring/internal/monitoring/mocks/alert"
	mockincident "CloudDeck_Monitoring/internal/monitoring/mocks/incident"
	mockprobe "CloudDeck_Monitoring/internal/monitoring/mocks/probe"
	mockpublisher "CloudDeck_Monitoring/internal/monitoring/mocks/publisher"
	mockremediate "CloudDeck_Monitoring/internal/monitoring/mocks/remediate"
	mockrepository "CloudDeck_Monitoring/internal/monitoring/mocks/repository"
	"CloudDeck_Monitoring/internal/monitoring/model"
	"CloudDeck_Monitoring/internal/monitoring/probe"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type pipelineMocks struct {
	prober          *mockprobe.MockProber
	appRepo         *mockrepository.MockAppRepository
	incidentManager *mockincident.MockManager
	notifier        *mockalert.MockNotifier
	remediator      *mockremediate.MockRemediator
	checkHistory    *mockrepository.MockCheckHistoryRepository
	pub             *mockpublisher.MockPublisher
}

func newPipelineForTest(t *testing.T) (Pipeline, pipelineMocks) {
	ctrl := gomock.NewController(t)
	m := pipelineMocks{
		prober:          mockprobe.NewMockProber(ctrl),
		appRepo:         mockrepository.NewMockAppRepository(ctrl),
		incidentManager: mockincident.NewMockManager(ctrl),
		notifier:        mockalert.NewMockNotifier(ctrl),
		remediator:      mockremediate.NewMockRemediator(ctrl),
		checkHistory:    mockrepository.NewMockCheckHistoryRepository(ctrl),
		pub:             mockpublisher.NewMockPublisher(ctrl),
	}
	p := NewPipeline(m.prober, m.appRepo, m.incidentManager, m.notifier, m.remediator, m.checkHistory, m.pub, zap.NewNop())
	return p, m
}

func healthyTestApp() model.App {
	return model.App{
		ID:                "app-1",
		AppName:           "orders-api",
		DeploymentURL:     "https://orders.example.com",
		HealthStatus:      model.HealthStatusUp,
		ChecksPerformed:   10,
		MonitoringEnabled: true,
		Policy: model.MonitoringPolicy{
			HealthCheckPath: "/health",
			TimeoutSeconds:  10,
		},
	}
}

func TestRunCheck_HealthyApp(t *testing.T) {
	ctx := context.Background()
	p, m := newPipelineForTest(t)
	app := healthyTestApp()

	m.prober.EXPECT().
		Check(ctx, app.DeploymentURL, "/health", 10*time.Second).
		Return(probe.Outcome{Status: model.HealthStatusUp, StatusCode: 200, ResponseTimeMs: 120}, nil)
	m.appRepo.EXPECT().
		UpdateAppMonitoring(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, a model.App) (model.App, error) {
			assert.Equal(t, model.HealthStatusUp, a.HealthStatus)
			assert.Equal(t, int64(11), a.ChecksPerformed)
			return a, nil
		})
	m.incidentManager.EXPECT().
		HandleTransition(ctx, model.HealthStatusUp, gomock.Any(), gomock.Any()).
		Return(incident.TransitionResult{}, nil)
	m.checkHistory.EXPECT().
		IndexCheckOutcome(ctx, gomock.Any()).
		Return(nil)
	m.pub.EXPECT().
		PublishHealthEvent(ctx, gomock.Any()).
		Return(nil)
	m.remediator.EXPECT().
		ShouldRemediate(gomock.Any()).
		Return(false)

	updated, err := p.RunCheck(ctx, app)

	require.NoError(t, err)
	assert.Equal(t, model.HealthStatusUp, updated.HealthStatus)
}

func TestRunCheck_DownAppAlertsAndRemediates(t *testing.T) {
	ctx := context.Background()
	p, m := newPipelineForTest(t)
	app := healthyTestApp()
	app.ConsecutiveFailures = 2
	app.Policy.AutoRestartEnabled = true
	app.Policy.MaxFailuresBeforeRestart = 3

	m.prober.EXPECT().
		Check(ctx, app.DeploymentURL, "/health", 10*time.Second).
		Return(probe.Outcome{Status: model.HealthStatusDown, StatusCode: 503, ResponseTimeMs: 40, Detail: "received server error status 503"}, nil)
	m.appRepo.EXPECT().
		UpdateAppMonitoring(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, a model.App) (model.App, error) {
			assert.Equal(t, model.HealthStatusDown, a.HealthStatus)
			assert.Equal(t, 3, a.ConsecutiveFailures)
			return a, nil
		})
	m.incidentManager.EXPECT().
		HandleTransition(ctx, model.HealthStatusUp, gomock.Any(), gomock.Any()).
		Return(incident.TransitionResult{Opened: &model.Incident{ID: "incident-1", Severity: model.SeverityHigh}}, nil)
	m.checkHistory.EXPECT().
		IndexCheckOutcome(ctx, gomock.Any()).
		Return(nil)
	m.pub.EXPECT().
		PublishHealthEvent(ctx, gomock.Any()).
		Return(nil)
	m.notifier.EXPECT().
		SendAlert(ctx, gomock.Any(), model.SeverityHigh, "received server error status 503")
	m.remediator.EXPECT().
		ShouldRemediate(gomock.Any()).
		Return(true)
	m.remediator.EXPECT().
		Remediate(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, a model.App) (model.App, error) {
			a.HealthStatus = model.HealthStatusUp
			a.ConsecutiveFailures = 0
			return a, nil
		})

	updated, err := p.RunCheck(ctx, app)

	require.NoError(t, err)
	assert.Equal(t, model.HealthStatusUp, updated.HealthStatus)
	assert.Equal(t, 0, updated.ConsecutiveFailures)
}

func TestRunCheck_MonitoringDisabled(t *testing.T) {
	ctx := context.Background()
	p, _ := newPipelineForTest(t)
	app := healthyTestApp()
	app.MonitoringEnabled = false

	_, err := p.RunCheck(ctx, app)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrMonitoringDisabled)
}

func TestRunCheck_ProbeConfigurationError(t *testing.T) {
	ctx := context.Background()
	p, m := newPipelineForTest(t)
	app := healthyTestApp()
	app.DeploymentURL = ""

	m.prober.EXPECT().
		Check(ctx, "", "/health", 10*time.Second).
		Return(probe.Outcome{}, apperrors.ErrMissingDeploymentURL)

	_, err := p.RunCheck(ctx, app)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrMissingDeploymentURL)
}

func TestRunCheck_RegistryUpdateFailureStopsTheSequence(t *testing.T) {
	ctx := context.Background()
	testErr := errors.New("test error")
	p, m := newPipelineForTest(t)
	app := healthyTestApp()

	m.prober.EXPECT().
		Check(ctx, app.DeploymentURL, "/health", 10*time.Second).
		Return(probe.Outcome{Status: model.HealthStatusUp, StatusCode: 200}, nil)
	m.appRepo.EXPECT().
		UpdateAppMonitoring(ctx, gomock.Any()).
		Return(model.App{}, testErr)

	_, err := p.RunCheck(ctx, app)

	require.Error(t, err)
	assert.ErrorIs(t, err, testErr)
}

func TestRunCheck_SideEffectFailuresAreTolerated(t *testing.T) {
	ctx := context.Background()
	testErr := errors.New("test error")
	p, m := newPipelineForTest(t)
	app := healthyTestApp()

	m.prober.EXPECT().
		Check(ctx, app.DeploymentURL, "/health", 10*time.Second).
		Return(probe.Outcome{Status: model.HealthStatusUp, StatusCode: 200, ResponseTimeMs: 90}, nil)
	m.appRepo.EXPECT().
		UpdateAppMonitoring(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, a model.App) (model.App, error) {
			return a, nil
		})
	m.incidentManager.EXPECT().
		HandleTransition(ctx, model.HealthStatusUp, gomock.Any(), gomock.Any()).
		Return(incident.TransitionResult{}, testErr)
	m.checkHistory.EXPECT().
		IndexCheckOutcome(ctx, gomock.Any()).
		Return(testErr)
	m.pub.EXPECT().
		PublishHealthEvent(ctx, gomock.Any()).
		Return(testErr)
	m.remediator.EXPECT().
		ShouldRemediate(gomock.Any()).
		Return(false)

	_, err := p.RunCheck(ctx, app)

	require.NoError(t, err)
}

func TestRunCheck_PanicIsContained(t *testing.T) {
	ctx := context.Background()
	p, m := newPipelineForTest(t)
	app := healthyTestApp()

	m.prober.EXPECT().
		Check(ctx, app.DeploymentURL, "/health", 10*time.Second).
		DoAndReturn(func(context.Context, string, string, time.Duration) (probe.Outcome, error) {
			panic("boom")
		})

	var updated model.App
	var err error
	assert.NotPanics(t, func() {
		updated, err = p.RunCheck(ctx, app)
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panic")
	assert.Equal(t, app, updated)
}

func TestRunCheck_ClampsProbeTimeout(t *testing.T) {
	ctx := context.Background()
	p, m := newPipelineForTest(t)
	app := healthyTestApp()
	app.Policy.TimeoutSeconds = 0

	m.prober.EXPECT().
		Check(ctx, app.DeploymentURL, "/health", time.Duration(model.MinProbeTimeoutSeconds)*time.Second).
		Return(probe.Outcome{Status: model.HealthStatusUp, StatusCode: 200}, nil)
	m.appRepo.EXPECT().
		UpdateAppMonitoring(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, a model.App) (model.App, error) {
			return a, nil
		})
	m.incidentManager.EXPECT().
		HandleTransition(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(incident.TransitionResult{}, nil)
	m.checkHistory.EXPECT().IndexCheckOutcome(ctx, gomock.Any()).Return(nil)
	m.pub.EXPECT().PublishHealthEvent(ctx, gomock.Any()).Return(nil)
	m.remediator.EXPECT().ShouldRemediate(gomock.Any()).Return(false)

	_, err := p.RunCheck(ctx, app)
	require.NoError(t, err)
}
