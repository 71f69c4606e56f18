package routes

import (
	mockhandler "CloudDeck_Monitoring/internal/monitoring/mocks/api/handler"
	"CloudDeck_Monitoring/pkg/hub"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestAddMonitoringRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockHandler := mockhandler.NewMockMonitoringHandler(ctrl)

	gin.SetMode(gin.TestMode)
	r := gin.New()

	emptySuccessHandler := func(c *gin.Context) {
		c.Status(http.StatusOK)
	}

	mockHandler.EXPECT().TriggerCheck().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().UpdatePolicy().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().GetAppUptimePercentage().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().GetMonitoringStats().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().GetIncidents().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().ExportIncidentsToExcelFile().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().ReportFleetHealth().Return(emptySuccessHandler).AnyTimes()

	AddMonitoringRoutes(r, mockHandler, hub.NewHub(zap.NewNop()))

	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{
			name:           "Trigger Check Route",
			method:         http.MethodPost,
			path:           "/monitoring/apps/some-id/check",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Update Policy Route",
			method:         http.MethodPatch,
			path:           "/monitoring/apps/some-id/policy",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Get Uptime Route",
			method:         http.MethodGet,
			path:           "/monitoring/apps/some-id/uptime",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Get Stats Route",
			method:         http.MethodGet,
			path:           "/monitoring/stats",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Get Incidents Route",
			method:         http.MethodGet,
			path:           "/monitoring/incidents",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Export Incidents Route",
			method:         http.MethodGet,
			path:           "/monitoring/incidents/export",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Report Fleet Health Route",
			method:         http.MethodPost,
			path:           "/monitoring/reports",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Events Route Rejects Plain HTTP",
			method:         http.MethodGet,
			path:           "/monitoring/ws",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, _ := http.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}
