package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/knowledgepipe/knowledgepipe/internal/entity"
)

// Pool claims runnable jobs on a fixed interval and runs each one on an
// ants worker. At most Workers jobs process concurrently.
type Pool struct {
	processor *Processor
	pool      *ants.Pool

	claimInterval  time.Duration
	staleAfter     time.Duration
	processTimeout time.Duration
	logger         *slog.Logger
}

type PoolConfig struct {
	Workers        int
	ClaimInterval  time.Duration
	StaleAfter     time.Duration
	ProcessTimeout time.Duration
}

func NewPool(processor *Processor, cfg PoolConfig, logger *slog.Logger) (*Pool, error) {
	p, err := ants.NewPool(cfg.Workers, ants.WithNonblocking(false))
	if err != nil {
		return nil, err
	}
	return &Pool{
		processor:      processor,
		pool:           p,
		claimInterval:  cfg.ClaimInterval,
		staleAfter:     cfg.StaleAfter,
		processTimeout: cfg.ProcessTimeout,
		logger:         logger,
	}, nil
}

// Run claims and dispatches jobs until ctx is cancelled, then drains the
// worker pool.
func (p *Pool) Run(ctx context.Context) {
	p.logger.Info("worker pool started", "workers", p.pool.Cap(), "claim_interval", p.claimInterval)
	ticker := time.NewTicker(p.claimInterval)
	defer ticker.Stop()

	p.drainQueue(ctx)
	for {
		select {
		case <-ctx.Done():
			p.logger.Info("worker pool stopping")
			p.pool.Release()
			return
		case <-ticker.C:
			p.drainQueue(ctx)
		}
	}
}

// drainQueue claims jobs until the queue is empty or the pool is full.
func (p *Pool) drainQueue(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		if p.pool.Free() == 0 {
			return
		}

		job, err := p.processor.Jobs.ClaimNext(ctx, p.staleAfter)
		if err != nil {
			p.logger.Error("claim failed", "error", err)
			return
		}
		if job == nil {
			return
		}

		if err := p.submit(job); err != nil {
			p.logger.Error("submit failed", "job_id", job.ID, "error", err)
			return
		}
	}
}

func (p *Pool) submit(job *entity.IngestJob) error {
	return p.pool.Submit(func() {
		// Detached from the claim loop's context so shutdown does not
		// abandon a job mid-stage; the timeout still bounds it.
		ctx, cancel := context.WithTimeout(context.Background(), p.processTimeout)
		defer cancel()
		p.processor.Process(ctx, job)
	})
}
