package service

import (
	"context"
	"sync"
	"time"
)

const defaultRefreshInterval = 5 * time.Minute

type refreshJob struct {
	favorites FavedCommentService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a refreshJob that calls favorites.ForceRefresh on a
// ticker. The job is idle until Start is called.
func NewRefreshJob(favorites FavedCommentService) RefreshJob {
	return &refreshJob{favorites: favorites}
}

// Start implements RefreshJob.
func (j *refreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.favorites.ForceRefresh()
			}
		}
	}()
}

// Stop implements RefreshJob. Safe to call when the job is not running.
func (j *refreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
