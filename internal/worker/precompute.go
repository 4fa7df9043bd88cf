// Package worker implements a buffered worker pool that precomputes
// performance metrics in the background. Scrape lookups enqueue the player
// here so their first metrics request is served from an already-warm
// aggregate instead of normalizing on the request path.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/futmetrics/stats-api/internal/logic"
)

var (
	precomputeJobs = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "futmetrics_precompute_jobs_total",
		Help: "Background metric precompute jobs, by outcome",
	}, []string{"outcome"})

	precomputeQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "futmetrics_precompute_queue_depth",
		Help: "Current depth of the precompute queue",
	})
)

// Job is one precompute request.
type Job struct {
	PlayerName string
	EnqueuedAt time.Time
}

// PoolConfig configures the precompute pool.
type PoolConfig struct {
	WorkerCount int
	QueueSize   int
	Integration logic.IntegrationService
	Metrics     logic.MetricsService
	Logger      *zap.Logger
}

// Pool fans precompute jobs out to a fixed set of workers. The queue sheds
// load when full; a dropped job only delays cache warming, it never loses
// data.
type Pool struct {
	config PoolConfig
	jobs   chan Job
	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
	logger *zap.SugaredLogger
}

func NewPool(cfg PoolConfig) *Pool {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 64
	}
	return &Pool{
		config: cfg,
		jobs:   make(chan Job, cfg.QueueSize),
		logger: cfg.Logger.Sugar(),
	}
}

// Start launches the worker goroutines.
func (p *Pool) Start(ctx context.Context) {
	p.ctx, p.cancel = context.WithCancel(ctx)

	for i := 0; i < p.config.WorkerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
	go p.reportQueueDepth()

	p.logger.Infow("Precompute pool started",
		"workers", p.config.WorkerCount, "queueSize", p.config.QueueSize)
}

// Stop drains the queue and waits for in-flight jobs to finish.
func (p *Pool) Stop() {
	p.logger.Info("Stopping precompute pool...")
	close(p.jobs)
	p.wg.Wait()
	p.cancel()
	p.logger.Info("Precompute pool stopped")
}

// Enqueue schedules a precompute for the player. Returns false when the
// queue is full and the job was shed.
func (p *Pool) Enqueue(playerName string) bool {
	defer func() {
		// Sending on the closed queue during shutdown is a shed, not a crash.
		if r := recover(); r != nil {
			p.logger.Warnw("Precompute enqueue after stop", "player", playerName)
		}
	}()

	select {
	case p.jobs <- Job{PlayerName: playerName, EnqueuedAt: time.Now()}:
		return true
	default:
		precomputeJobs.WithLabelValues("shed").Inc()
		p.logger.Warnw("Precompute queue full, shedding job", "player", playerName)
		return false
	}
}

// QueueDepth returns the current queue size.
func (p *Pool) QueueDepth() int {
	return len(p.jobs)
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	p.logger.Debugw("Precompute worker started", "worker", id)
	for job := range p.jobs {
		p.process(job)
	}
}

func (p *Pool) process(job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	records, err := p.config.Integration.ConvertToMatchRecords(ctx, job.PlayerName)
	if err != nil {
		precomputeJobs.WithLabelValues("error").Inc()
		p.logger.Warnw("Precompute normalization failed", "player", job.PlayerName, "error", err)
		return
	}
	if len(records) == 0 {
		precomputeJobs.WithLabelValues("ok").Inc()
		return
	}

	if _, err := p.config.Metrics.CalculateMetrics(ctx, records); err != nil {
		precomputeJobs.WithLabelValues("error").Inc()
		p.logger.Warnw("Precompute aggregation failed", "player", job.PlayerName, "error", err)
		return
	}

	precomputeJobs.WithLabelValues("ok").Inc()
	p.logger.Debugw("Metrics precomputed",
		"player", job.PlayerName, "records", len(records), "waited", time.Since(job.EnqueuedAt))
}

func (p *Pool) reportQueueDepth() {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			precomputeQueueDepth.Set(float64(len(p.jobs)))
		case <-p.ctx.Done():
			return
		}
	}
}
