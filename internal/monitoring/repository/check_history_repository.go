package repository

import (
	apperrors "CloudDeck_Monitoring/internal/monitoring/errors"
	"CloudDeck_Monitoring/internal/monitoring/model"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
)

const esCheckHistoryIndexName = "app_health_checks"

// CheckOutcome is one probe result as indexed into the history store.
// StatusNumeric is 1 for up and 0 otherwise, so uptime over a window can be
// computed as a weighted average server-side.
type CheckOutcome struct {
	AppID          string    `json:"app_id"`
	Status         string    `json:"status"`
	StatusNumeric  int       `json:"status_numeric"`
	StatusCode     int       `json:"status_code"`
	ResponseTimeMs int64     `json:"response_time_ms"`
	Detail         string    `json:"detail,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

// FleetHealthReport is the aggregate behind the daily email report.
type FleetHealthReport struct {
	TotalAppsCnt            int
	UpAppsCnt               int
	DownAppsCnt             int
	WarningAppsCnt          int
	OtherAppsCnt            int
	AverageUptimePercentage float64
}

// CheckHistoryRepository is the time-windowed read side over raw probe
// outcomes. The per-record uptime approximation stays on the App row; this
// store answers the questions that approximation cannot.
type CheckHistoryRepository interface {
	IndexCheckOutcome(ctx context.Context, outcome CheckOutcome) error
	GetAppUptimePercentage(ctx context.Context, appID string, startTime time.Time, endTime time.Time) (float64, error)
	GetFleetHealthReport(ctx context.Context, startTime time.Time, endTime time.Time) (FleetHealthReport, error)
}

type checkHistoryRepository struct {
	es *elasticsearch.Client
}

type esErrorResponse struct {
	Error struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	}
}

func NewCheckOutcome(appID string, status string, statusCode int, responseTimeMs int64, detail string, at time.Time) CheckOutcome {
	outcome := CheckOutcome{
		AppID:          appID,
		Status:         status,
		StatusCode:     statusCode,
		ResponseTimeMs: responseTimeMs,
		Detail:         detail,
		Timestamp:      at,
	}
	if status == model.HealthStatusUp {
		outcome.StatusNumeric = 1
	}
	return outcome
}

func (r *checkHistoryRepository) IndexCheckOutcome(ctx context.Context, outcome CheckOutcome) error {
	b, err := json.Marshal(outcome)
	if err != nil {
		return fmt.Errorf("CheckHistoryRepository.IndexCheckOutcome marshal: %w", err)
	}
	res, err := r.es.Index(esCheckHistoryIndexName, bytes.NewReader(b), r.es.Index.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("CheckHistoryRepository.IndexCheckOutcome: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		var e esErrorResponse
		if err = json.NewDecoder(res.Body).Decode(&e); err != nil {
			return fmt.Errorf("CheckHistoryRepository.IndexCheckOutcome decode err response: %w", err)
		}
		return fmt.Errorf("CheckHistoryRepository.IndexCheckOutcome: %w", apperrors.NewElasticSearchError(res.StatusCode, e.Error.Type, e.Error.Reason))
	}
	return nil
}

type esUptimePercentageResponse struct {
	Aggregations struct {
		UptimePercentage struct {
			Value float64 `json:"value"`
		} `json:"uptime_percentage"`
	} `json:"aggregations"`
}

func (r *checkHistoryRepository) GetAppUptimePercentage(ctx context.Context, appID string, startTime time.Time, endTime time.Time) (float64, error) {
	query := map[string]interface{}{
		"size": 0,
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"filter": []map[string]interface{}{
					{
						"term": map[string]interface{}{
							"app_id": appID,
						},
					},
					{
						"range": map[string]interface{}{
							"timestamp": map[string]interface{}{
								"gte": startTime,
								"lt":  endTime,
							},
						},
					},
				},
			},
		},
		"aggs": map[string]interface{}{
			"uptime_percentage": map[string]interface{}{
				"avg": map[string]interface{}{
					"field": "status_numeric",
				},
			},
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return 0, fmt.Errorf("CheckHistoryRepository.GetAppUptimePercentage encode query: %w", err)
	}
	res, err := r.es.Search(
		r.es.Search.WithContext(ctx),
		r.es.Search.WithIndex(esCheckHistoryIndexName),
		r.es.Search.WithBody(&buf))
	if err != nil {
		return 0, fmt.Errorf("CheckHistoryRepository.GetAppUptimePercentage: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		var e esErrorResponse
		if err = json.NewDecoder(res.Body).Decode(&e); err != nil {
			return 0, fmt.Errorf("CheckHistoryRepository.GetAppUptimePercentage decode err response: %w", err)
		}
		return 0, fmt.Errorf("CheckHistoryRepository.GetAppUptimePercentage: %w", apperrors.NewElasticSearchError(res.StatusCode, e.Error.Type, e.Error.Reason))
	}

	var uptimeResponse esUptimePercentageResponse
	if err = json.NewDecoder(res.Body).Decode(&uptimeResponse); err != nil {
		return 0, fmt.Errorf("CheckHistoryRepository.GetAppUptimePercentage decode response: %w", err)
	}
	return uptimeResponse.Aggregations.UptimePercentage.Value * 100, nil
}

type esFleetHealthResponse struct {
	Aggregations struct {
		AvgUptimePercentage struct {
			Value float64 `json:"value"`
		} `json:"avg_uptime_percentage"`
		Apps struct {
			Buckets []struct {
				Key         string `json:"key"`
				LatestCheck struct {
					Hits struct {
						Hits []struct {
							Source struct {
								Status string `json:"status"`
							} `json:"_source"`
						} `json:"hits"`
					} `json:"hits"`
				} `json:"latest_check"`
			} `json:"buckets"`
		} `json:"apps"`
	} `json:"aggregations"`
}

func (r *checkHistoryRepository) GetFleetHealthReport(ctx context.Context, startTime time.Time, endTime time.Time) (FleetHealthReport, error) {
	query := map[string]interface{}{
		"size": 0,
		"query": map[string]interface{}{
			"range": map[string]interface{}{
				"timestamp": map[string]interface{}{
					"gte": startTime,
					"lt":  endTime,
				},
			},
		},
		"aggs": map[string]interface{}{
			"avg_uptime_percentage": map[string]interface{}{
				"avg": map[string]interface{}{
					"field": "status_numeric",
				},
			},
			"apps": map[string]interface{}{
				"terms": map[string]interface{}{
					"field": "app_id",
					"size":  20000,
				},
				"aggs": map[string]interface{}{
					"latest_check": map[string]interface{}{
						"top_hits": map[string]interface{}{
							"size": 1,
							"sort": []map[string]interface{}{
								{
									"timestamp": map[string]interface{}{
										"order": "desc",
									},
								},
							},
							"_source": map[string]interface{}{
								"includes": "status",
							},
						},
					},
				},
			},
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return FleetHealthReport{}, fmt.Errorf("CheckHistoryRepository.GetFleetHealthReport encode query: %w", err)
	}
	res, err := r.es.Search(
		r.es.Search.WithContext(ctx),
		r.es.Search.WithIndex(esCheckHistoryIndexName),
		r.es.Search.WithBody(&buf))
	if err != nil {
		return FleetHealthReport{}, fmt.Errorf("CheckHistoryRepository.GetFleetHealthReport: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		var e esErrorResponse
		if err = json.NewDecoder(res.Body).Decode(&e); err != nil {
			return FleetHealthReport{}, fmt.Errorf("CheckHistoryRepository.GetFleetHealthReport decode err response: %w", err)
		}
		return FleetHealthReport{}, fmt.Errorf("CheckHistoryRepository.GetFleetHealthReport: %w", apperrors.NewElasticSearchError(res.StatusCode, e.Error.Type, e.Error.Reason))
	}

	var fleetRes esFleetHealthResponse
	if err = json.NewDecoder(res.Body).Decode(&fleetRes); err != nil {
		return FleetHealthReport{}, fmt.Errorf("CheckHistoryRepository.GetFleetHealthReport decode response: %w", err)
	}
	report := FleetHealthReport{
		TotalAppsCnt:            len(fleetRes.Aggregations.Apps.Buckets),
		AverageUptimePercentage: fleetRes.Aggregations.AvgUptimePercentage.Value * 100,
	}
	for _, bucket := range fleetRes.Aggregations.Apps.Buckets {
		if len(bucket.LatestCheck.Hits.Hits) == 0 {
			continue
		}
		switch bucket.LatestCheck.Hits.Hits[0].Source.Status {
		case model.HealthStatusUp:
			report.UpAppsCnt++
		case model.HealthStatusDown:
			report.DownAppsCnt++
		case model.HealthStatusWarning:
			report.WarningAppsCnt++
		default:
			report.OtherAppsCnt++
		}
	}
	return report, nil
}

func NewCheckHistoryRepository(esClient *elasticsearch.Client) CheckHistoryRepository {
	return &checkHistoryRepository{
		es: esClient,
	}
}
