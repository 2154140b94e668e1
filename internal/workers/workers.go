package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-faved-comments/internal/logger"
	"github.com/MKhiriev/go-faved-comments/internal/service"
	"golang.org/x/sync/errgroup"
)

// Workers starts a set of workers together. A failing worker cancels the
// others.
type Workers struct {
	workers []Worker
	group   *errgroup.Group
	logger  *logger.Logger
}

// NewWorkers returns an aggregate of workers.
func NewWorkers(log *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: log}
}

// NewFavoritesWorkers returns the refresh loop of the synchronizer and the
// periodic refresh job.
func NewFavoritesWorkers(services *service.Services, refreshInterval time.Duration, log *logger.Logger) *Workers {
	return NewWorkers(log,
		WorkerFunc(services.FavedCommentService.Run),
		NewRefreshJobWorker(services.RefreshJob, refreshInterval),
	)
}

// Start launches every worker in its own goroutine. Call Wait to block until
// all of them return.
func (w *Workers) Start(ctx context.Context) {
	group, groupCtx := errgroup.WithContext(ctx)
	w.group = group

	for i, worker := range w.workers {
		group.Go(func() error {
			if err := worker.Run(groupCtx); err != nil {
				w.logger.Err(err).Int("worker", i).Msg("worker stopped with error")
				return fmt.Errorf("worker %d: %w", i, err)
			}
			return nil
		})
	}
}

// Wait blocks until every started worker has returned and reports the first
// error. Wait without Start returns nil.
func (w *Workers) Wait() error {
	if w.group == nil {
		return nil
	}
	return w.group.Wait()
}

// Run is Start followed by Wait.
func (w *Workers) Run(ctx context.Context) error {
	w.Start(ctx)
	return w.Wait()
}

type refreshJobWorker struct {
	job      service.RefreshJob
	interval time.Duration
}

// NewRefreshJobWorker runs job for the lifetime of the worker context.
func NewRefreshJobWorker(job service.RefreshJob, interval time.Duration) Worker {
	return &refreshJobWorker{job: job, interval: interval}
}

func (r *refreshJobWorker) Run(ctx context.Context) error {
	r.job.Start(ctx, r.interval)
	<-ctx.Done()
	r.job.Stop()
	return nil
}
