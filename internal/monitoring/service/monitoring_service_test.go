package service

import (
	apperrors "CloudDeck_Monitoring/internal/monitoring/errors"
	mockrepository "CloudDeck_Monitoring/internal/monitoring/mocks/repository"
	mockscheduler "CloudDeck_Monitoring/internal/monitoring/mocks/scheduler"
	"CloudDeck_Monitoring/internal/monitoring/model"
	"CloudDeck_Monitoring/internal/monitoring/repository"
	mockmail "CloudDeck_Monitoring/pkg/mail"

	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestMonitoringService_TriggerCheck(t *testing.T) {
	ctx := context.Background()
	appID := "app-123"
	checkedApp := model.App{
		ID:           appID,
		AppName:      "orders-api",
		HealthStatus: model.HealthStatusUp,
	}

	testCases := []struct {
		name          string
		setupMocks    func(sched *mockscheduler.MockScheduler)
		output        model.App
		expectedError error
	}{
		{
			name: "Success Check runs immediately",
			setupMocks: func(sched *mockscheduler.MockScheduler) {
				sched.EXPECT().
					CheckApp(ctx, appID).
					Return(checkedApp, nil)
			},
			output: checkedApp,
		},
		{
			name: "Error App not found",
			setupMocks: func(sched *mockscheduler.MockScheduler) {
				sched.EXPECT().
					CheckApp(ctx, appID).
					Return(model.App{}, apperrors.ErrAppNotFound)
			},
			expectedError: apperrors.ErrAppNotFound,
		},
		{
			name: "Error Remediation in flight",
			setupMocks: func(sched *mockscheduler.MockScheduler) {
				sched.EXPECT().
					CheckApp(ctx, appID).
					Return(model.App{}, apperrors.ErrRemediationInFlight)
			},
			expectedError: apperrors.ErrRemediationInFlight,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockSched := mockscheduler.NewMockScheduler(ctrl)
			tc.setupMocks(mockSched)

			monitoringService := NewMonitoringService(mockSched, nil, nil, nil, nil)

			got, err := monitoringService.TriggerCheck(ctx, appID)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.output, got)
			}
		})
	}
}

func TestMonitoringService_UpdatePolicy(t *testing.T) {
	ctx := context.Background()
	appID := "app-123"
	policy := model.MonitoringPolicy{
		HealthCheckPath:          "/healthz",
		TimeoutSeconds:           10,
		CheckIntervalSeconds:     60,
		AutoRestartEnabled:       true,
		MaxFailuresBeforeRestart: 4,
	}
	channels := []model.AlertChannel{
		{Type: model.AlertChannelEmail, Destination: "ops@example.com", Enabled: true},
	}
	updatedApp := model.App{
		ID:            appID,
		Policy:        policy,
		AlertChannels: channels,
	}

	testCases := []struct {
		name          string
		setupMocks    func(appRepo *mockrepository.MockAppRepository)
		output        model.App
		expectedError error
	}{
		{
			name: "Success Policy replaced",
			setupMocks: func(appRepo *mockrepository.MockAppRepository) {
				appRepo.EXPECT().
					UpdateAppPolicy(ctx, appID, policy, channels).
					Return(updatedApp, nil)
			},
			output: updatedApp,
		},
		{
			name: "Error App not found",
			setupMocks: func(appRepo *mockrepository.MockAppRepository) {
				appRepo.EXPECT().
					UpdateAppPolicy(ctx, appID, policy, channels).
					Return(model.App{}, apperrors.ErrAppNotFound)
			},
			expectedError: apperrors.ErrAppNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockAppRepo := mockrepository.NewMockAppRepository(ctrl)
			tc.setupMocks(mockAppRepo)

			monitoringService := NewMonitoringService(nil, mockAppRepo, nil, nil, nil)

			got, err := monitoringService.UpdatePolicy(ctx, appID, policy, channels)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.output, got)
			}
		})
	}
}

func TestMonitoringService_GetMonitoringStats(t *testing.T) {
	ctx := context.Background()
	overview := repository.MonitoringOverview{
		TotalApps: 12,
		CountsByStatus: map[string]int64{
			model.HealthStatusUp:   10,
			model.HealthStatusDown: 2,
		},
		AvgResponseTimeMs:   230.5,
		AvgUptimePercentage: 97.1,
	}

	testCases := []struct {
		name       string
		setupMocks func(appRepo *mockrepository.MockAppRepository)
		output     repository.MonitoringOverview
		expectErr  bool
	}{
		{
			name: "Success Overview returned",
			setupMocks: func(appRepo *mockrepository.MockAppRepository) {
				appRepo.EXPECT().
					GetMonitoringOverview(ctx).
					Return(overview, nil)
			},
			output: overview,
		},
		{
			name: "Error Repository returns an error",
			setupMocks: func(appRepo *mockrepository.MockAppRepository) {
				appRepo.EXPECT().
					GetMonitoringOverview(ctx).
					Return(repository.MonitoringOverview{}, errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockAppRepo := mockrepository.NewMockAppRepository(ctrl)
			tc.setupMocks(mockAppRepo)

			monitoringService := NewMonitoringService(nil, mockAppRepo, nil, nil, nil)

			got, err := monitoringService.GetMonitoringStats(ctx)

			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.output, got)
			}
		})
	}
}

func TestMonitoringService_GetIncidents(t *testing.T) {
	ctx := context.Background()
	resolved := false
	filter := repository.IncidentFilter{
		AppID:    "app-123",
		Severity: model.SeverityHigh,
		Resolved: &resolved,
	}
	incidents := []model.Incident{
		{ID: "incident-2", AppID: "app-123", Severity: model.SeverityHigh},
		{ID: "incident-1", AppID: "app-123", Severity: model.SeverityHigh},
	}

	testCases := []struct {
		name       string
		setupMocks func(incidentRepo *mockrepository.MockIncidentRepository)
		output     []model.Incident
		expectErr  bool
	}{
		{
			name: "Success Incidents returned newest first",
			setupMocks: func(incidentRepo *mockrepository.MockIncidentRepository) {
				incidentRepo.EXPECT().
					GetIncidents(ctx, filter, 20, 40).
					Return(incidents, nil)
			},
			output: incidents,
		},
		{
			name: "Error Repository returns an error",
			setupMocks: func(incidentRepo *mockrepository.MockIncidentRepository) {
				incidentRepo.EXPECT().
					GetIncidents(ctx, filter, 20, 40).
					Return(nil, errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockIncidentRepo := mockrepository.NewMockIncidentRepository(ctrl)
			tc.setupMocks(mockIncidentRepo)

			monitoringService := NewMonitoringService(nil, nil, mockIncidentRepo, nil, nil)

			got, err := monitoringService.GetIncidents(ctx, filter, 20, 40)

			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.output, got)
			}
		})
	}
}

func TestMonitoringService_GetAppUptimePercentage(t *testing.T) {
	ctx := context.Background()
	appID := "app-123"
	startDate := time.Now().Add(-time.Hour)
	endDate := time.Now()

	testCases := []struct {
		name       string
		setupMocks func(checkHistory *mockrepository.MockCheckHistoryRepository)
		output     float64
		expectErr  bool
	}{
		{
			name: "Success Get uptime percentage",
			setupMocks: func(checkHistory *mockrepository.MockCheckHistoryRepository) {
				checkHistory.EXPECT().
					GetAppUptimePercentage(ctx, appID, startDate, endDate).
					Return(99.9, nil)
			},
			output: 99.9,
		},
		{
			name: "Error Repository returns an error",
			setupMocks: func(checkHistory *mockrepository.MockCheckHistoryRepository) {
				checkHistory.EXPECT().
					GetAppUptimePercentage(ctx, appID, startDate, endDate).
					Return(0.0, errors.New("search error"))
			},
			output:    0.0,
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockCheckHistory := mockrepository.NewMockCheckHistoryRepository(ctrl)
			tc.setupMocks(mockCheckHistory)

			monitoringService := NewMonitoringService(nil, nil, nil, mockCheckHistory, nil)

			got, err := monitoringService.GetAppUptimePercentage(ctx, appID, startDate, endDate)

			assert.Equal(t, tc.output, got)
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMonitoringService_ReportFleetHealth(t *testing.T) {
	ctx := context.Background()
	startDate := time.Now().Add(-24 * time.Hour)
	endDate := time.Now()
	recipient := "admin@example.com"

	report := repository.FleetHealthReport{
		TotalAppsCnt:            10,
		UpAppsCnt:               7,
		DownAppsCnt:             2,
		WarningAppsCnt:          1,
		OtherAppsCnt:            0,
		AverageUptimePercentage: 95.5,
	}

	testCases := []struct {
		name       string
		setupMocks func(checkHistory *mockrepository.MockCheckHistoryRepository, mailSender *mockmail.MockSender)
		expectErr  bool
	}{
		{
			name: "Success Report sent",
			setupMocks: func(checkHistory *mockrepository.MockCheckHistoryRepository, mailSender *mockmail.MockSender) {
				checkHistory.EXPECT().
					GetFleetHealthReport(ctx, startDate, endDate).
					Return(report, nil)

				mailSender.EXPECT().
					SendMail([]string{recipient}, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "Error Failed to build report",
			setupMocks: func(checkHistory *mockrepository.MockCheckHistoryRepository, mailSender *mockmail.MockSender) {
				checkHistory.EXPECT().
					GetFleetHealthReport(ctx, startDate, endDate).
					Return(repository.FleetHealthReport{}, errors.New("search error"))
			},
			expectErr: true,
		},
		{
			name: "Error Failed to send mail",
			setupMocks: func(checkHistory *mockrepository.MockCheckHistoryRepository, mailSender *mockmail.MockSender) {
				checkHistory.EXPECT().
					GetFleetHealthReport(ctx, startDate, endDate).
					Return(report, nil)

				mailSender.EXPECT().
					SendMail([]string{recipient}, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("smtp error"))
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockCheckHistory := mockrepository.NewMockCheckHistoryRepository(ctrl)
			mockMailSender := mockmail.NewMockSender(ctrl)
			tc.setupMocks(mockCheckHistory, mockMailSender)

			monitoringService := NewMonitoringService(nil, nil, nil, mockCheckHistory, mockMailSender)

			err := monitoringService.ReportFleetHealth(ctx, startDate, endDate, recipient)

			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
