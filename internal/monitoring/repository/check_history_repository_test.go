package repository

import (
	apperrors "CloudDeck_Monitoring/internal/monitoring/errors"
	"CloudDeck_Monitoring/internal/monitoring/model"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRoundTripper struct {
	Response *http.Response
	Err      error
}

func (m *mockRoundTripper) RoundTrip(_ *http.Request) (*http.Response, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Response, nil
}

func newMockEsClient(statusCode int, body string, err error) (*elasticsearch.Client, error) {
	if err != nil {
		return elasticsearch.NewClient(elasticsearch.Config{
			Transport: &mockRoundTripper{Err: err},
		})
	}
	header := http.Header{}
	header.Set("Content-Type", "application/json")
	header.Set("X-Elastic-Product", "Elasticsearch")

	return elasticsearch.NewClient(elasticsearch.Config{
		Transport: &mockRoundTripper{
			Response: &http.Response{
				StatusCode: statusCode,
				Body:       io.NopCloser(strings.NewReader(body)),
				Header:     header,
			},
		},
	})
}

func TestNewCheckOutcome(t *testing.T) {
	now := time.Now()

	up := NewCheckOutcome("app-1", model.HealthStatusUp, 200, 120, "", now)
	assert.Equal(t, 1, up.StatusNumeric)

	down := NewCheckOutcome("app-1", model.HealthStatusDown, 503, 40, "received server error status 503", now)
	assert.Equal(t, 0, down.StatusNumeric)

	warning := NewCheckOutcome("app-1", model.HealthStatusWarning, 404, 60, "received client error status 404", now)
	assert.Equal(t, 0, warning.StatusNumeric)
}

func TestCheckHistoryRepository_IndexCheckOutcome(t *testing.T) {
	outcome := NewCheckOutcome("app-1", model.HealthStatusUp, 200, 120, "", time.Now())

	testCases := []struct {
		name           string
		mockStatusCode int
		mockBody       string
		mockErr        error
		expectErr      bool
	}{
		{
			name:           "Success Outcome indexed",
			mockStatusCode: http.StatusCreated,
			mockBody:       `{"result": "created"}`,
		},
		{
			name:           "Error Elasticsearch rejects the document",
			mockStatusCode: http.StatusBadRequest,
			mockBody:       `{"error": {"type": "mapper_parsing_exception", "reason": "failed to parse"}}`,
			expectErr:      true,
		},
		{
			name:      "Error Transport failure",
			mockErr:   errors.New("connection reset"),
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			esClient, err := newMockEsClient(tc.mockStatusCode, tc.mockBody, tc.mockErr)
			require.NoError(t, err)

			repo := NewCheckHistoryRepository(esClient)
			err = repo.IndexCheckOutcome(context.Background(), outcome)

			if tc.expectErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestCheckHistoryRepository_GetAppUptimePercentage(t *testing.T) {
	startTime := time.Now().Add(-24 * time.Hour)
	endTime := time.Now()

	testCases := []struct {
		name           string
		mockStatusCode int
		mockBody       string
		mockErr        error
		output         float64
		expectErr      bool
	}{
		{
			name:           "Success Uptime is the scaled status average",
			mockStatusCode: http.StatusOK,
			mockBody:       `{"aggregations": {"uptime_percentage": {"value": 0.97}}}`,
			output:         97,
		},
		{
			name:           "Error Elasticsearch query failure",
			mockStatusCode: http.StatusBadRequest,
			mockBody:       `{"error": {"type": "search_phase_exception", "reason": "bad query"}}`,
			expectErr:      true,
		},
		{
			name:      "Error Transport failure",
			mockErr:   errors.New("connection reset"),
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			esClient, err := newMockEsClient(tc.mockStatusCode, tc.mockBody, tc.mockErr)
			require.NoError(t, err)

			repo := NewCheckHistoryRepository(esClient)
			uptime, err := repo.GetAppUptimePercentage(context.Background(), "app-1", startTime, endTime)

			if tc.expectErr {
				require.Error(t, err)
				if tc.mockErr == nil {
					var esErr *apperrors.ElasticSearchError
					assert.ErrorAs(t, err, &esErr)
				}
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tc.output, uptime, 0.0001)
		})
	}
}

func TestCheckHistoryRepository_GetFleetHealthReport(t *testing.T) {
	startTime := time.Now().Add(-24 * time.Hour)
	endTime := time.Now()

	successBody := `{
		"aggregations": {
			"avg_uptime_percentage": {
				"value": 0.955
			},
			"apps": {
				"buckets": [
					{
						"key": "app-1",
						"latest_check": { "hits": { "hits": [ { "_source": { "status": "up" } } ] } }
					},
					{
						"key": "app-2",
						"latest_check": { "hits": { "hits": [ { "_source": { "status": "down" } } ] } }
					},
					{
						"key": "app-3",
						"latest_check": { "hits": { "hits": [ { "_source": { "status": "up" } } ] } }
					},
					{
						"key": "app-4",
						"latest_check": { "hits": { "hits": [ { "_source": { "status": "warning" } } ] } }
					},
					{
						"key": "app-5",
						"latest_check": { "hits": { "hits": [ { "_source": { "status": "restarting" } } ] } }
					}
				]
			}
		}
	}`

	testCases := []struct {
		name           string
		mockStatusCode int
		mockBody       string
		mockErr        error
		output         FleetHealthReport
		expectErr      bool
	}{
		{
			name:           "Success Aggregated fleet health",
			mockStatusCode: http.StatusOK,
			mockBody:       successBody,
			output: FleetHealthReport{
				TotalAppsCnt:            5,
				UpAppsCnt:               2,
				DownAppsCnt:             1,
				WarningAppsCnt:          1,
				OtherAppsCnt:            1,
				AverageUptimePercentage: 95.5,
			},
		},
		{
			name:           "Success Empty window",
			mockStatusCode: http.StatusOK,
			mockBody:       `{"aggregations": {"avg_uptime_percentage": {"value": 0}, "apps": {"buckets": []}}}`,
			output:         FleetHealthReport{},
		},
		{
			name:           "Error Elasticsearch query failure",
			mockStatusCode: http.StatusInternalServerError,
			mockBody:       `{"error": {"type": "search_phase_exception", "reason": "shard failure"}}`,
			expectErr:      true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			esClient, err := newMockEsClient(tc.mockStatusCode, tc.mockBody, tc.mockErr)
			require.NoError(t, err)

			repo := NewCheckHistoryRepository(esClient)
			report, err := repo.GetFleetHealthReport(context.Background(), startTime, endTime)

			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.output.TotalAppsCnt, report.TotalAppsCnt)
			assert.Equal(t, tc.output.UpAppsCnt, report.UpAppsCnt)
			assert.Equal(t, tc.output.DownAppsCnt, report.DownAppsCnt)
			assert.Equal(t, tc.output.WarningAppsCnt, report.WarningAppsCnt)
			assert.Equal(t, tc.output.OtherAppsCnt, report.OtherAppsCnt)
			assert.InDelta(t, tc.output.AverageUptimePercentage, report.AverageUptimePercentage, 0.0001)
		})
	}
}
