package handler

import (
	"CloudDeck_Monitoring/internal/monitoring/api/dto/request"
	"CloudDeck_Monitoring/internal/monitoring/api/dto/response"
	apperrors "CloudDeck_Monitoring/internal/monitoring/errors"
	"CloudDeck_Monitoring/internal/monitoring/model"
	"CloudDeck_Monitoring/internal/monitoring/repository"
	"CloudDeck_Monitoring/internal/monitoring/service"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type MonitoringHandler interface {
	TriggerCheck() gin.HandlerFunc
	UpdatePolicy() gin.HandlerFunc
	GetMonitoringStats() gin.HandlerFunc
	GetIncidents() gin.HandlerFunc
	ExportIncidentsToExcelFile() gin.HandlerFunc
	GetAppUptimePercentage() gin.HandlerFunc
	ReportFleetHealth() gin.HandlerFunc
}

type monitoringHandler struct {
	Logger
	monitoringService service.MonitoringService
}

func (*monitoringHandler) formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "email":
		return fmt.Sprintf("The %s field is not a valid email", err.Field())
	case "datetime":
		return fmt.Sprintf("The %s field is not a valid datetime, use YYYY-MM-DD format", err.Field())
	case "gte":
		return fmt.Sprintf("The %s field must be greater than or equal to %s", err.Field(), err.Param())
	case "oneof":
		return fmt.Sprintf("The %s field must be one of [%s]", err.Field(), err.Param())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

func (h *monitoringHandler) TriggerCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		app, err := h.monitoringService.TriggerCheck(c, id)
		if err != nil {
			err = fmt.Errorf("MonitoringHandler.TriggerCheck: %w", err)
			switch {
			case errors.Is(err, apperrors.ErrAppNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "App not found",
				})
			case errors.Is(err, apperrors.ErrMonitoringDisabled):
				c.JSON(http.StatusConflict, response.Response{
					Message: "Monitoring is disabled for this app",
				})
			case errors.Is(err, apperrors.ErrRemediationInFlight):
				c.JSON(http.StatusConflict, response.Response{
					Message: "A check or remediation is already in flight for this app",
				})
			case errors.Is(err, apperrors.ErrMissingDeploymentURL):
				c.JSON(http.StatusUnprocessableEntity, response.Response{
					Message: "App has no deployment url configured",
				})
			default:
				h.LoggingError(c, err, fmt.Sprintf("failed to check app %s", id), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal Server Error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, response.NewAppMonitoringResponse(app))
	}
}

func (h *monitoringHandler) UpdatePolicy() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var req request.UpdatePolicyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var validatorError validator.ValidationErrors
			if errors.As(err, &validatorError) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: h.formatValidationError(validatorError[0]),
				})
			} else {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid request body",
				})
			}
			return
		}
		policy := model.MonitoringPolicy{
			HealthCheckPath:          req.HealthCheckPath,
			TimeoutSeconds:           req.TimeoutSeconds,
			CheckIntervalSeconds:     req.CheckIntervalSeconds,
			AutoRestartEnabled:       req.AutoRestartEnabled,
			MaxFailuresBeforeRestart: req.MaxFailuresBeforeRestart,
		}
		channels := make([]model.AlertChannel, 0, len(req.AlertChannels))
		for _, ch := range req.AlertChannels {
			channels = append(channels, model.AlertChannel{
				Type:        ch.Type,
				Destination: ch.Destination,
				Enabled:     ch.Enabled,
			})
		}
		app, err := h.monitoringService.UpdatePolicy(c, id, policy, channels)
		if err != nil {
			err = fmt.Errorf("MonitoringHandler.UpdatePolicy: %w", err)
			if errors.Is(err, apperrors.ErrAppNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "App not found",
				})
				return
			}
			h.LoggingError(c, err, fmt.Sprintf("failed to update policy of app %s", id), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal Server Error",
			})
			return
		}
		c.JSON(http.StatusOK, response.NewAppMonitoringResponse(app))
	}
}

func (h *monitoringHandler) GetMonitoringStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		overview, err := h.monitoringService.GetMonitoringStats(c)
		if err != nil {
			err = fmt.Errorf("MonitoringHandler.GetMonitoringStats: %w", err)
			h.LoggingError(c, err, "failed to get monitoring stats", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal Server Error",
			})
			return
		}
		c.JSON(http.StatusOK, response.StatsResponse{
			TotalApps:           overview.TotalApps,
			CountsByStatus:      overview.CountsByStatus,
			AvgResponseTimeMs:   overview.AvgResponseTimeMs,
			AvgUptimePercentage: overview.AvgUptimePercentage,
		})
	}
}

func (h *monitoringHandler) parseIncidentFilter(c *gin.Context) (repository.IncidentFilter, bool) {
	filter := repository.IncidentFilter{
		AppID: c.Query("app_id"),
	}
	severity := c.Query("severity")
	if severity != "" && severity != model.SeverityLow && severity != model.SeverityMedium && severity != model.SeverityHigh && severity != model.SeverityCritical {
		c.JSON(http.StatusBadRequest, response.Response{
			Message: "Invalid severity",
		})
		return filter, false
	}
	filter.Severity = severity
	if resolvedParam := c.Query("resolved"); resolvedParam != "" {
		resolved, err := strconv.ParseBool(resolvedParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Resolved must be a boolean",
			})
			return filter, false
		}
		filter.Resolved = &resolved
	}
	return filter, true
}

func (h *monitoringHandler) GetIncidents() gin.HandlerFunc {
	return func(c *gin.Context) {
		filter, ok := h.parseIncidentFilter(c)
		if !ok {
			return
		}
		offset := c.DefaultQuery("offset", "0")
		o, err := strconv.Atoi(offset)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Offset must be an integer",
			})
			return
		}
		limit := c.DefaultQuery("limit", "10")
		l, err := strconv.Atoi(limit)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Limit must be an integer",
			})
			return
		}
		if o < 0 {
			o = 0
		}
		if l <= 0 {
			l = 10
		}
		incidents, err := h.monitoringService.GetIncidents(c, filter, l, o)
		if err != nil {
			err = fmt.Errorf("MonitoringHandler.GetIncidents: %w", err)
			h.LoggingError(c, err, "failed to get incidents", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal Server Error",
			})
			return
		}
		incidentsRes := make([]response.IncidentResponse, 0)
		for _, incident := range incidents {
			incidentsRes = append(incidentsRes, response.NewIncidentResponse(incident))
		}
		c.JSON(http.StatusOK, incidentsRes)
	}
}

const incidentExportLimit = 10000

func (h *monitoringHandler) ExportIncidentsToExcelFile() gin.HandlerFunc {
	return func(c *gin.Context) {
		filter, ok := h.parseIncidentFilter(c)
		if !ok {
			return
		}
		incidents, err := h.monitoringService.GetIncidents(c, filter, incidentExportLimit, 0)
		if err != nil {
			err = fmt.Errorf("MonitoringHandler.ExportIncidentsToExcelFile: %w", err)
			h.LoggingError(c, err, "failed to export incidents", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		file, err := h.generateExcelFile(incidents)
		if err != nil {
			err = fmt.Errorf("MonitoringHandler.ExportIncidentsToExcelFile: %w", err)
			h.LoggingError(c, err, "failed to export incidents", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		defer file.Close()
		fileName := fmt.Sprintf("incidents-%s.xlsx", time.Now().Format("2006-01-02T15:04:05"))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", fileName))
		if err = file.Write(c.Writer); err != nil {
			err = fmt.Errorf("MonitoringHandler.ExportIncidentsToExcelFile: %w", err)
			h.LoggingError(c, err, "failed to export incidents", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.Status(http.StatusOK)
	}
}

func (h *monitoringHandler) generateExcelFile(incidents []model.Incident) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "Incidents"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	headers := []interface{}{"id", "app_id", "type", "severity", "description", "start_time", "end_time", "resolved", "duration_seconds"}
	err = f.SetSheetRow(sheetName, "A1", &headers)
	if err != nil {
		return nil, err
	}
	for i, incident := range incidents {
		endTime := ""
		if incident.EndTime != nil {
			endTime = incident.EndTime.Format("2006-01-02 15:04:05")
		}
		rowData := []interface{}{
			incident.ID,
			incident.AppID,
			incident.Type,
			incident.Severity,
			incident.Description,
			incident.StartTime.Format("2006-01-02 15:04:05"),
			endTime,
			incident.Resolved,
			incident.DurationSeconds,
		}
		startCell := fmt.Sprintf("A%d", i+2)
		err = f.SetSheetRow(sheetName, startCell, &rowData)
		if err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(index)
	return f, nil
}

func (h *monitoringHandler) GetAppUptimePercentage() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		startDate := c.Query("start_date")
		startTime, err := time.Parse("2006-01-02", startDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid start date",
			})
			return
		}
		endDate := c.Query("end_date")
		endTime, err := time.Parse("2006-01-02", endDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid end date",
			})
			return
		}
		if endTime.Before(startTime) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid end date",
			})
			return
		}
		endTimeFinal := endTime.AddDate(0, 0, 1)
		uptime, err := h.monitoringService.GetAppUptimePercentage(c, id, startTime, endTimeFinal)
		if err != nil {
			err = fmt.Errorf("MonitoringHandler.GetAppUptimePercentage: %w", err)
			h.LoggingError(c, err, fmt.Sprintf("failed to get uptime percentage of app %s from %s to %s", id, startTime, endTime), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal Server Error",
			})
			return
		}
		c.JSON(http.StatusOK, response.UptimeResponse{
			UptimePercentage: uptime,
		})
	}
}

func (h *monitoringHandler) ReportFleetHealth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.ReportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var validatorError validator.ValidationErrors
			if errors.As(err, &validatorError) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: h.formatValidationError(validatorError[0]),
				})
			} else {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid request body",
				})
			}
			return
		}
		startTime, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid start date",
			})
			return
		}
		endTime, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid end date",
			})
			return
		}
		if endTime.Before(startTime) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid end date",
			})
			return
		}
		endTimeFinal := endTime.AddDate(0, 0, 1)
		err = h.monitoringService.ReportFleetHealth(c, startTime, endTimeFinal, req.Email)
		if err != nil {
			err = fmt.Errorf("MonitoringHandler.ReportFleetHealth: %w", err)
			h.LoggingError(c, err, "failed to report fleet health", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Report sent successfully",
		})
	}
}

func NewMonitoringHandler(logger *zap.Logger, monitoringService service.MonitoringService) MonitoringHandler {
	return &monitoringHandler{
		Logger:            NewLogger(logger),
		monitoringService: monitoringService,
	}
}
