package service

import (
	"context"
	"sync"
	"time"

	"github.com/Hipolitoneto/receitas/internal/logger"
)

type feedJob struct {
	feed     FeedService
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewFeedJob creates a feedJob that fires a timer trigger on a ticker. The
// job is idle until Start is called. interval is the default used by Run;
// Start may override it.
func NewFeedJob(feed FeedService, interval time.Duration, logger *logger.Logger) FeedJob {
	return &feedJob{feed: feed, interval: interval, logger: logger}
}

// Start implements [FeedJob]. It stops any previously running job, then
// launches a background goroutine that triggers a timer-sourced sync every
// interval. If interval is zero or negative it defaults to 30 seconds. The
// ticker fires on schedule regardless of cycle duration; a tick landing while
// a cycle is in flight is coalesced away inside Trigger rather than queued.
// The goroutine exits when ctx is cancelled or Stop is called.
func (j *feedJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
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
				// transient failures retry on the next tick with the
				// same watermark; nothing to do here
				_, _ = j.feed.Trigger(jobCtx, TriggerTimer)
			}
		}
	}()
}

// Stop implements [FeedJob]. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is
// not running (no-op in that case).
func (j *feedJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// Run implements [workers.Worker]: it starts the poller with the configured
// default interval under a background context.
func (j *feedJob) Run() {
	j.Start(context.Background(), j.interval)
}
