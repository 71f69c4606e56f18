package repository

import (
	"CloudDeck_Monitoring/internal/monitoring/model"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// cachedAppRepository is a cache-aside decorator over AppRepository. Only
// single-app reads are cached; list queries always hit the database and every
// write invalidates the app's entry.
type cachedAppRepository struct {
	redis    *redis.Client
	repo     AppRepository
	cacheTTL time.Duration
}

func (*cachedAppRepository) appCacheKey(appID string) string {
	return fmt.Sprintf("monitoring:app:%s", appID)
}

func (c *cachedAppRepository) GetAppByID(ctx context.Context, appID string) (model.App, error) {
	cached, err := c.redis.Get(ctx, c.appCacheKey(appID)).Bytes()
	if err == nil {
		var app model.App
		if e := json.Unmarshal(cached, &app); e == nil {
			return app, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		return model.App{}, fmt.Errorf("cachedAppRepository.GetAppByID: %w", err)
	}
	app, err := c.repo.GetAppByID(ctx, appID)
	if err != nil {
		return model.App{}, fmt.Errorf("cachedAppRepository.GetAppByID: %w", err)
	}
	if b, e := json.Marshal(app); e == nil {
		c.redis.Set(ctx, c.appCacheKey(appID), b, c.cacheTTL)
	}
	return app, nil
}

func (c *cachedAppRepository) UpdateAppMonitoring(ctx context.Context, app model.App) (model.App, error) {
	if err := c.redis.Del(ctx, c.appCacheKey(app.ID)).Err(); err != nil {
		return model.App{}, fmt.Errorf("cachedAppRepository.UpdateAppMonitoring: %w", err)
	}
	return c.repo.UpdateAppMonitoring(ctx, app)
}

func (c *cachedAppRepository) UpdateAppPolicy(ctx context.Context, appID string, policy model.MonitoringPolicy, channels []model.AlertChannel) (model.App, error) {
	if err := c.redis.Del(ctx, c.appCacheKey(appID)).Err(); err != nil {
		return model.App{}, fmt.Errorf("cachedAppRepository.UpdateAppPolicy: %w", err)
	}
	return c.repo.UpdateAppPolicy(ctx, appID, policy, channels)
}

func (c *cachedAppRepository) GetAppsDueForCheck(ctx context.Context) ([]model.App, error) {
	return c.repo.GetAppsDueForCheck(ctx)
}

func (c *cachedAppRepository) GetActiveApps(ctx context.Context) ([]model.App, error) {
	return c.repo.GetActiveApps(ctx)
}

func (c *cachedAppRepository) GetMonitoringOverview(ctx context.Context) (MonitoringOverview, error) {
	return c.repo.GetMonitoringOverview(ctx)
}

func NewCachedAppRepository(redisClient *redis.Client, repo AppRepository, cacheTTL time.Duration) AppRepository {
	return &cachedAppRepository{
		redis:    redisClient,
		repo:     repo,
		cacheTTL: cacheTTL,
	}
}
