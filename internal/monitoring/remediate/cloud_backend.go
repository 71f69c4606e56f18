package remediate

import (
	"CloudDeck_Monitoring/internal/monitoring/model"
	"context"
	"fmt"
	"net/http"
	"time"
)

// cloudBackend restarts apps through the provider's management API. The call
// blocks until the provider acknowledges, which can take multiple seconds.
type cloudBackend struct {
	client      *http.Client
	providerURL string
}

func (b *cloudBackend) Restart(ctx context.Context, app model.App) error {
	requestURL := fmt.Sprintf("%s/v1/apps/%s/restart", b.providerURL, app.ID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, nil)
	if err != nil {
		return fmt.Errorf("CloudBackend.Restart creating request: %w", err)
	}
	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("CloudBackend.Restart: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("CloudBackend.Restart: provider returned status %d", resp.StatusCode)
	}
	return nil
}

func NewCloudBackend(providerURL string, requestTimeout time.Duration) Backend {
	return &cloudBackend{
		client: &http.Client{
			Timeout: requestTimeout,
		},
		providerURL: providerURL,
	}
}
