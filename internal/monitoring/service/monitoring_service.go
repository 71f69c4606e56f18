package service

import (
	"CloudDeck_Monitoring/internal/monitoring/model"
	"CloudDeck_Monitoring/internal/monitoring/repository"
	"CloudDeck_Monitoring/internal/monitoring/scheduler"
	"CloudDeck_Monitoring/pkg/mail"
	"context"
	"fmt"
	"time"
)

type MonitoringService interface {
	TriggerCheck(ctx context.Context, appID string) (model.App, error)
	UpdatePolicy(ctx context.Context, appID string, policy model.MonitoringPolicy, channels []model.AlertChannel) (model.App, error)
	GetMonitoringStats(ctx context.Context) (repository.MonitoringOverview, error)
	GetIncidents(ctx context.Context, filter repository.IncidentFilter, limit int, offset int) ([]model.Incident, error)
	GetAppUptimePercentage(ctx context.Context, appID string, startDate time.Time, endDate time.Time) (float64, error)
	ReportFleetHealth(ctx context.Context, startDate time.Time, endDate time.Time, recipient string) error
}

type monitoringService struct {
	sched        scheduler.Scheduler
	appRepo      repository.AppRepository
	incidentRepo repository.IncidentRepository
	checkHistory repository.CheckHistoryRepository
	mailSender   mail.Sender
}

func (s *monitoringService) TriggerCheck(ctx context.Context, appID string) (model.App, error) {
	app, err := s.sched.CheckApp(ctx, appID)
	if err != nil {
		return app, fmt.Errorf("MonitoringService.TriggerCheck: %w", err)
	}
	return app, nil
}

func (s *monitoringService) UpdatePolicy(ctx context.Context, appID string, policy model.MonitoringPolicy, channels []model.AlertChannel) (model.App, error) {
	app, err := s.appRepo.UpdateAppPolicy(ctx, appID, policy, channels)
	if err != nil {
		return model.App{}, fmt.Errorf("MonitoringService.UpdatePolicy: %w", err)
	}
	return app, nil
}

func (s *monitoringService) GetMonitoringStats(ctx context.Context) (repository.MonitoringOverview, error) {
	overview, err := s.appRepo.GetMonitoringOverview(ctx)
	if err != nil {
		return overview, fmt.Errorf("MonitoringService.GetMonitoringStats: %w", err)
	}
	return overview, nil
}

func (s *monitoringService) GetIncidents(ctx context.Context, filter repository.IncidentFilter, limit int, offset int) ([]model.Incident, error) {
	incidents, err := s.incidentRepo.GetIncidents(ctx, filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("MonitoringService.GetIncidents: %w", err)
	}
	return incidents, nil
}

func (s *monitoringService) GetAppUptimePercentage(ctx context.Context, appID string, startDate time.Time, endDate time.Time) (float64, error) {
	uptime, err := s.checkHistory.GetAppUptimePercentage(ctx, appID, startDate, endDate)
	if err != nil {
		return 0, fmt.Errorf("MonitoringService.GetAppUptimePercentage: %w", err)
	}
	return uptime, nil
}

func (s *monitoringService) ReportFleetHealth(ctx context.Context, startDate time.Time, endDate time.Time, recipient string) error {
	report, err := s.checkHistory.GetFleetHealthReport(ctx, startDate, endDate)
	if err != nil {
		return fmt.Errorf("MonitoringService.ReportFleetHealth: %w", err)
	}
	subject := fmt.Sprintf("App Fleet Health Report From %s To %s", startDate.Format("2006-01-02"), endDate.Add(-1*time.Second).Format("2006-01-02"))
	err = s.mailSender.SendMail([]string{recipient}, subject, generateHTMLReportBody(report), generateTextReportBody(report), nil)
	if err != nil {
		return fmt.Errorf("MonitoringService.ReportFleetHealth: %w", err)
	}
	return nil
}

func generateTextReportBody(report repository.FleetHealthReport) string {
	return fmt.Sprintf(
		"--- SUMMARY ---\n"+
			"Total Apps: %d\n"+
			"Up: %d\n"+
			"Down: %d\n"+
			"Warning: %d\n"+
			"Other: %d\n\n"+
			"Average Uptime Across All Apps: %.2f%%",
		report.TotalAppsCnt,
		report.UpAppsCnt,
		report.DownAppsCnt,
		report.WarningAppsCnt,
		report.OtherAppsCnt,
		report.AverageUptimePercentage,
	)
}

func generateHTMLReportBody(report repository.FleetHealthReport) string {
	htmlFormat := `
<body>
    <table style="width:100%%; border-collapse: collapse;">
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Total Apps:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Up:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Down:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Warning:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Average Uptime Percentage:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%.2f%%</td>
        </tr>
    </table>
</body>`

	return fmt.Sprintf(htmlFormat,
		report.TotalAppsCnt,
		report.UpAppsCnt,
		report.DownAppsCnt,
		report.WarningAppsCnt,
		report.AverageUptimePercentage,
	)
}

func NewMonitoringService(
	sched scheduler.Scheduler,
	appRepo repository.AppRepository,
	incidentRepo repository.IncidentRepository,
	checkHistory repository.CheckHistoryRepository,
	mailSender mail.Sender,
) MonitoringService {
	return &monitoringService{
		sched:        sched,
		appRepo:      appRepo,
		incidentRepo: incidentRepo,
		checkHistory: checkHistory,
		mailSender:   mailSender,
	}
}
