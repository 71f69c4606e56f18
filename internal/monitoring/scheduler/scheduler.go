package scheduler

import (
	apperrors "CloudDeck_Monitoring/internal/monitoring/errors"
	"CloudDeck_Monitoring/internal/monitoring/metrics"
	"CloudDeck_Monitoring/internal/monitoring/model"
	"CloudDeck_Monitoring/internal/monitoring/repository"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	stateStopped = iota
	stateRunning
)

// perAppCheckBudget bounds one app's whole pipeline, including a slow probe
// and a slow remediation call.
const perAppCheckBudget = 5 * time.Minute

type Config struct {
	CheckInterval  time.Duration
	RollupInterval time.Duration
	BatchSize      int
	WorkerCount    int
}

// Scheduler drives the whole engine: the fast check tick fans due apps out to
// a bounded worker pool, the slow cron entries run stat rollups and incident
// retention. Ticks are scheduled independently of batch completion, so
// overlapping ticks are tolerated; the in-flight set keeps a target from being
// probed twice concurrently.
type Scheduler interface {
	Start()
	Stop()
	CheckApp(ctx context.Context, appID string) (model.App, error)
}

type scheduler struct {
	cfg        Config
	appRepo    repository.AppRepository
	pipeline   Pipeline
	aggregator metrics.Aggregator
	logger     *zap.Logger

	mu       sync.Mutex
	state    int
	stopChan chan struct{}
	ticker   *time.Ticker
	cron     *cron.Cron
	jobQueue chan []model.App
	wg       sync.WaitGroup

	inFlightMu sync.Mutex
	inFlight   map[string]struct{}
}

// Start is idempotent: a second call while running warns and does nothing.
func (s *scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == stateRunning {
		s.logger.Warn("scheduler already running, ignoring start")
		return
	}
	s.state = stateRunning
	s.stopChan = make(chan struct{})
	s.jobQueue = make(chan []model.App, s.cfg.WorkerCount*2)
	s.startWorkerPool()

	s.cron = cron.New()
	if _, err := s.cron.AddFunc(fmt.Sprintf("@every %s", s.cfg.RollupInterval), s.runRollup); err != nil {
		s.logger.Error("failed to schedule stats rollup", zap.Error(fmt.Errorf("Scheduler.Start: %w", err)))
	}
	if _, err := s.cron.AddFunc("0 0 * * *", s.runRetention); err != nil {
		s.logger.Error("failed to schedule incident retention", zap.Error(fmt.Errorf("Scheduler.Start: %w", err)))
	}
	s.cron.Start()

	go func() {
		s.ticker = time.NewTicker(s.cfg.CheckInterval)
		defer s.ticker.Stop()
		for {
			select {
			case <-s.ticker.C:
				s.onTick()
			case <-s.stopChan:
				close(s.jobQueue)
				return
			}
		}
	}()
	s.logger.Info("scheduler started",
		zap.Duration("check_interval", s.cfg.CheckInterval),
		zap.Int("batch_size", s.cfg.BatchSize),
		zap.Int("worker_count", s.cfg.WorkerCount))
}

// Stop prevents new ticks and waits for queued batches to drain. In-flight
// pipelines complete; their probes are not cancelled.
func (s *scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == stateStopped {
		return
	}
	s.state = stateStopped
	close(s.stopChan)
	s.cron.Stop()
	s.wg.Wait()
	s.logger.Info("scheduler stopped")
}

// onTick selects the due targets once, partitions them into batches and hands
// the batches to the worker pool. A failed registry read aborts only this
// tick. The tick never blocks the driver: when the queue is full the leftover
// batches wait for the next tick.
func (s *scheduler) onTick() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	apps, err := s.appRepo.GetAppsDueForCheck(ctx)
	if err != nil {
		s.logger.Error("failed to fetch apps due for check", zap.Error(fmt.Errorf("Scheduler.onTick: %w", err)))
		return
	}
	due := s.claimApps(apps)
	for i := 0; i < len(due); i += s.cfg.BatchSize {
		j := i + s.cfg.BatchSize
		if j > len(due) {
			j = len(due)
		}
		batch := due[i:j]
		select {
		case s.jobQueue <- batch:
		default:
			s.releaseApps(batch)
			s.logger.Warn("job queue full, deferring batch to next tick", zap.Int("batch_size", len(batch)))
		}
	}
}

// claimApps filters out targets already being probed and marks the rest
// in-flight, so an overlapping tick can never double-select a target.
func (s *scheduler) claimApps(apps []model.App) []model.App {
	s.inFlightMu.Lock()
	defer s.inFlightMu.Unlock()
	var claimed []model.App
	for _, app := range apps {
		if _, busy := s.inFlight[app.ID]; busy {
			continue
		}
		s.inFlight[app.ID] = struct{}{}
		claimed = append(claimed, app)
	}
	return claimed
}

func (s *scheduler) releaseApps(apps []model.App) {
	s.inFlightMu.Lock()
	defer s.inFlightMu.Unlock()
	for _, app := range apps {
		delete(s.inFlight, app.ID)
	}
}

func (s *scheduler) startWorkerPool() {
	s.wg.Add(s.cfg.WorkerCount)
	for i := 0; i < s.cfg.WorkerCount; i++ {
		go s.worker()
	}
}

// worker runs every app of a batch concurrently and waits for the batch to
// settle. One app's failure, panics included, never aborts its batch.
func (s *scheduler) worker() {
	defer s.wg.Done()
	for batch := range s.jobQueue {
		var batchWG sync.WaitGroup
		batchWG.Add(len(batch))
		for _, app := range batch {
			go func() {
				defer batchWG.Done()
				defer s.releaseApps([]model.App{app})
				ctx, cancel := context.WithTimeout(context.Background(), perAppCheckBudget)
				defer cancel()
				if _, err := s.pipeline.RunCheck(ctx, app); err != nil {
					s.logger.Error("check pipeline failed",
						zap.Error(fmt.Errorf("Scheduler.worker: %w", err)),
						zap.String("app_id", app.ID))
				}
			}()
		}
		batchWG.Wait()
	}
}

// CheckApp forces an immediate check of one app outside the tick cadence and
// returns the resulting record synchronously.
func (s *scheduler) CheckApp(ctx context.Context, appID string) (model.App, error) {
	app, err := s.appRepo.GetAppByID(ctx, appID)
	if err != nil {
		return model.App{}, fmt.Errorf("Scheduler.CheckApp: %w", err)
	}
	if app.HealthStatus == model.HealthStatusRestarting {
		return app, fmt.Errorf("Scheduler.CheckApp: %w", apperrors.ErrRemediationInFlight)
	}
	s.inFlightMu.Lock()
	if _, busy := s.inFlight[app.ID]; busy {
		s.inFlightMu.Unlock()
		return app, fmt.Errorf("Scheduler.CheckApp: %w", apperrors.ErrRemediationInFlight)
	}
	s.inFlight[app.ID] = struct{}{}
	s.inFlightMu.Unlock()
	defer s.releaseApps([]model.App{app})

	updated, err := s.pipeline.RunCheck(ctx, app)
	if err != nil {
		return updated, fmt.Errorf("Scheduler.CheckApp: %w", err)
	}
	return updated, nil
}

func (s *scheduler) runRollup() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	if err := s.aggregator.RollupMonitoringStats(ctx); err != nil {
		s.logger.Error("stats rollup failed", zap.Error(fmt.Errorf("Scheduler.runRollup: %w", err)))
	}
}

func (s *scheduler) runRetention() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	if err := s.aggregator.PruneResolvedIncidents(ctx); err != nil {
		s.logger.Error("incident retention failed", zap.Error(fmt.Errorf("Scheduler.runRetention: %w", err)))
	}
}

func NewScheduler(cfg Config, appRepo repository.AppRepository, p Pipeline, aggregator metrics.Aggregator, logger *zap.Logger) Scheduler {
	if cfg.CheckInterval <= 0 {
		cfg.CheckInterval = model.DefaultCheckIntervalSeconds * time.Second
	}
	if cfg.RollupInterval <= 0 {
		cfg.RollupInterval = 5 * time.Minute
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 10
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 10
	}
	return &scheduler{
		cfg:        cfg,
		appRepo:    appRepo,
		pipeline:   p,
		aggregator: aggregator,
		logger:     logger,
		inFlight:   make(map[string]struct{}),
	}
}
