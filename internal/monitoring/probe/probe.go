package probe

import (
	apperrors "CloudDeck_Monitoring/internal/monitoring/errors"
	"CloudDeck_Monitoring/internal/monitoring/model"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"
	"syscall"
	"time"
)

// Outcome is the three-way classification of a single liveness probe plus its
// diagnostics. Probe failures never surface as errors; they are reduced to
// Status and Detail.
type Outcome struct {
	Status         string
	StatusCode     int
	ResponseTimeMs int64
	Detail         string
}

type Prober interface {
	Check(ctx context.Context, baseURL string, healthCheckPath string, timeout time.Duration) (Outcome, error)
}

type httpProber struct {
	client *http.Client
}

// Check performs one outbound request against baseURL+healthCheckPath and
// classifies the result. The only error it returns is a configuration error
// (missing base URL or an unbuildable request); everything else is an Outcome.
func (p *httpProber) Check(ctx context.Context, baseURL string, healthCheckPath string, timeout time.Duration) (Outcome, error) {
	if baseURL == "" {
		return Outcome{}, fmt.Errorf("Prober.Check: %w", apperrors.ErrMissingDeploymentURL)
	}
	if healthCheckPath == "" {
		healthCheckPath = "/"
	}
	if !strings.HasPrefix(healthCheckPath, "/") {
		healthCheckPath = "/" + healthCheckPath
	}
	requestURL := strings.TrimSuffix(baseURL, "/") + healthCheckPath

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return Outcome{}, fmt.Errorf("Prober.Check creating request: %w", err)
	}
	start := time.Now()
	resp, err := p.client.Do(req)
	elapsed := time.Since(start).Milliseconds()
	if err != nil {
		return classifyTransportError(err, elapsed), nil
	}
	defer resp.Body.Close()
	return classifyStatusCode(resp.StatusCode, elapsed), nil
}

func classifyStatusCode(statusCode int, elapsedMs int64) Outcome {
	outcome := Outcome{
		StatusCode:     statusCode,
		ResponseTimeMs: elapsedMs,
	}
	switch {
	case statusCode >= 200 && statusCode < 400:
		outcome.Status = model.HealthStatusUp
	case statusCode >= 400 && statusCode < 500:
		outcome.Status = model.HealthStatusWarning
		outcome.Detail = fmt.Sprintf("received client error status %d", statusCode)
	default:
		outcome.Status = model.HealthStatusDown
		outcome.Detail = fmt.Sprintf("received server error status %d", statusCode)
	}
	return outcome
}

// classifyTransportError maps hard reachability failures (refused connection,
// DNS resolution, timeout) to down. Any other transport-level error is
// ambiguous and defaults to warning.
func classifyTransportError(err error, elapsedMs int64) Outcome {
	outcome := Outcome{
		ResponseTimeMs: elapsedMs,
		Detail:         err.Error(),
	}
	var dnsErr *net.DNSError
	var netErr net.Error
	switch {
	case errors.Is(err, syscall.ECONNREFUSED):
		outcome.Status = model.HealthStatusDown
	case errors.As(err, &dnsErr):
		outcome.Status = model.HealthStatusDown
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, os.ErrDeadlineExceeded):
		outcome.Status = model.HealthStatusDown
	case errors.As(err, &netErr) && netErr.Timeout():
		outcome.Status = model.HealthStatusDown
	default:
		outcome.Status = model.HealthStatusWarning
	}
	return outcome
}

func NewHTTPProber() Prober {
	return &httpProber{
		// per-request deadlines come from the policy timeout via context
		client: &http.Client{},
	}
}
