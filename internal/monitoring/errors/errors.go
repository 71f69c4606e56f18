package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrAppNotFound          = errors.New("app not found")
	ErrIncidentNotFound     = errors.New("incident not found")
	ErrIncidentAlreadyOpen  = errors.New("an unresolved incident of this type is already open")
	ErrMissingDeploymentURL = errors.New("app has no deployment url configured")
	ErrMonitoringDisabled   = errors.New("monitoring is disabled for this app")
	ErrRemediationInFlight  = errors.New("a remediation attempt is already in flight")
)

type ElasticSearchError struct {
	StatusCode int
	Type       string
	Reason     string
}

func (e *ElasticSearchError) Error() string {
	return fmt.Sprintf("[%d] %s: %s", e.StatusCode, e.Type, e.Reason)
}

func NewElasticSearchError(statusCode int, errType string, reason string) error {
	return &ElasticSearchError{
		StatusCode: statusCode,
		Type:       errType,
		Reason:     reason,
	}
}
