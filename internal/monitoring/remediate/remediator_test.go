package remediate

import (
	mockpublisher "CloudDeck_Monitoring/internal/monitoring/mocks/publisher"
	mockremediate "CloudDeck_Monitoring/internal/monitoring/mocks/remediate"
	mockrepository "CloudDeck_Monitoring/internal/monitoring/mocks/repository"
	"CloudDeck_Monitoring/internal/monitoring/model"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestShouldRemediate(t *testing.T) {
	testCases := []struct {
		name     string
		app      model.App
		expected bool
	}{
		{
			name: "Down app past the failure threshold",
			app: model.App{
				HealthStatus:        model.HealthStatusDown,
				ConsecutiveFailures: 3,
				Policy:              model.MonitoringPolicy{AutoRestartEnabled: true, MaxFailuresBeforeRestart: 3},
			},
			expected: true,
		},
		{
			name: "Auto restart disabled",
			app: model.App{
				HealthStatus:        model.HealthStatusDown,
				ConsecutiveFailures: 10,
				Policy:              model.MonitoringPolicy{AutoRestartEnabled: false},
			},
			expected: false,
		},
		{
			name: "Below the failure threshold",
			app: model.App{
				HealthStatus:        model.HealthStatusDown,
				ConsecutiveFailures: 2,
				Policy:              model.MonitoringPolicy{AutoRestartEnabled: true, MaxFailuresBeforeRestart: 3},
			},
			expected: false,
		},
		{
			name: "Warning never remediates",
			app: model.App{
				HealthStatus:        model.HealthStatusWarning,
				ConsecutiveFailures: 6,
				Policy:              model.MonitoringPolicy{AutoRestartEnabled: true, MaxFailuresBeforeRestart: 3},
			},
			expected: false,
		},
		{
			name: "Unset threshold falls back to the default",
			app: model.App{
				HealthStatus:        model.HealthStatusDown,
				ConsecutiveFailures: model.DefaultMaxFailuresBeforeRestart,
				Policy:              model.MonitoringPolicy{AutoRestartEnabled: true},
			},
			expected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRemediator(nil, nil, nil, zap.NewNop())
			assert.Equal(t, tc.expected, r.ShouldRemediate(tc.app))
		})
	}
}

func TestRemediate(t *testing.T) {
	ctx := context.Background()
	testErr := errors.New("test error")
	app := model.App{
		ID:                  "app-1",
		AppName:             "orders-api",
		HealthStatus:        model.HealthStatusDown,
		ConsecutiveFailures: 3,
		ChecksPerformed:     10,
		MonitoringEnabled:   true,
		Policy:              model.MonitoringPolicy{AutoRestartEnabled: true, MaxFailuresBeforeRestart: 3},
	}

	testCases := []struct {
		name           string
		setupMocks     func(backend *mockremediate.MockBackend, appRepo *mockrepository.MockAppRepository, pub *mockpublisher.MockPublisher)
		expectedStatus string
		expectedCF     int
		expectErr      bool
	}{
		{
			name: "Successful restart brings the app back up with a clean streak",
			setupMocks: func(backend *mockremediate.MockBackend, appRepo *mockrepository.MockAppRepository, pub *mockpublisher.MockPublisher) {
				gomock.InOrder(
					appRepo.EXPECT().
						UpdateAppMonitoring(ctx, gomock.Any()).
						DoAndReturn(func(_ context.Context, a model.App) (model.App, error) {
							assert.Equal(t, model.HealthStatusRestarting, a.HealthStatus)
							return a, nil
						}),
					backend.EXPECT().Restart(ctx, gomock.Any()).Return(nil),
					appRepo.EXPECT().
						UpdateAppMonitoring(ctx, gomock.Any()).
						DoAndReturn(func(_ context.Context, a model.App) (model.App, error) {
							assert.Equal(t, model.HealthStatusUp, a.HealthStatus)
							assert.Equal(t, 0, a.ConsecutiveFailures)
							assert.Equal(t, float64(100), a.UptimePercentage)
							assert.NotNil(t, a.LastCheck)
							return a, nil
						}),
				)
				pub.EXPECT().PublishHealthEvent(ctx, gomock.Any()).Return(nil).Times(2)
			},
			expectedStatus: model.HealthStatusUp,
			expectedCF:     0,
		},
		{
			name: "Failed restart puts the app back to down",
			setupMocks: func(backend *mockremediate.MockBackend, appRepo *mockrepository.MockAppRepository, pub *mockpublisher.MockPublisher) {
				gomock.InOrder(
					appRepo.EXPECT().
						UpdateAppMonitoring(ctx, gomock.Any()).
						DoAndReturn(func(_ context.Context, a model.App) (model.App, error) {
							return a, nil
						}),
					backend.EXPECT().Restart(ctx, gomock.Any()).Return(testErr),
					appRepo.EXPECT().
						UpdateAppMonitoring(ctx, gomock.Any()).
						DoAndReturn(func(_ context.Context, a model.App) (model.App, error) {
							assert.Equal(t, model.HealthStatusDown, a.HealthStatus)
							return a, nil
						}),
				)
				pub.EXPECT().PublishHealthEvent(ctx, gomock.Any()).Return(nil).Times(2)
			},
			expectedStatus: model.HealthStatusDown,
			expectedCF:     3,
		},
		{
			name: "Registry failure surfaces as an error",
			setupMocks: func(backend *mockremediate.MockBackend, appRepo *mockrepository.MockAppRepository, pub *mockpublisher.MockPublisher) {
				appRepo.EXPECT().
					UpdateAppMonitoring(ctx, gomock.Any()).
					Return(model.App{}, testErr)
			},
			expectErr: true,
		},
		{
			name: "Publish failure is tolerated",
			setupMocks: func(backend *mockremediate.MockBackend, appRepo *mockrepository.MockAppRepository, pub *mockpublisher.MockPublisher) {
				appRepo.EXPECT().
					UpdateAppMonitoring(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, a model.App) (model.App, error) {
						return a, nil
					}).Times(2)
				backend.EXPECT().Restart(ctx, gomock.Any()).Return(nil)
				pub.EXPECT().PublishHealthEvent(ctx, gomock.Any()).Return(testErr).Times(2)
			},
			expectedStatus: model.HealthStatusUp,
			expectedCF:     0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			backend := mockremediate.NewMockBackend(ctrl)
			appRepo := mockrepository.NewMockAppRepository(ctrl)
			pub := mockpublisher.NewMockPublisher(ctrl)
			tc.setupMocks(backend, appRepo, pub)

			r := NewRemediator(backend, appRepo, pub, zap.NewNop())
			updated, err := r.Remediate(ctx, app)

			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedStatus, updated.HealthStatus)
			assert.Equal(t, tc.expectedCF, updated.ConsecutiveFailures)
		})
	}
}
