package routes

import (
	"CloudDeck_Monitoring/internal/monitoring/api/handler"
	"CloudDeck_Monitoring/pkg/hub"

	"github.com/gin-gonic/gin"
)

func AddMonitoringRoutes(r *gin.Engine, h handler.MonitoringHandler, eventHub *hub.Hub) {
	monitoringRoutes := r.Group("/monitoring")
	monitoringRoutes.POST("/apps/:id/check", h.TriggerCheck())
	monitoringRoutes.PATCH("/apps/:id/policy", h.UpdatePolicy())
	monitoringRoutes.GET("/apps/:id/uptime", h.GetAppUptimePercentage())
	monitoringRoutes.GET("/stats", h.GetMonitoringStats())
	monitoringRoutes.GET("/incidents", h.GetIncidents())
	monitoringRoutes.GET("/incidents/export", h.ExportIncidentsToExcelFile())
	monitoringRoutes.POST("/reports", h.ReportFleetHealth())
	monitoringRoutes.GET("/ws", gin.WrapF(eventHub.HandleWebSocket))
}
