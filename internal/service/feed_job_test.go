package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Hipolitoneto/receitas/internal/logger"
)

// countingFeed records timer triggers without running real cycles.
type countingFeed struct {
	mu      sync.Mutex
	sources []TriggerSource
}

func (c *countingFeed) Trigger(_ context.Context, source TriggerSource) (TriggerOutcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sources = append(c.sources, source)
	return TriggerOutcome{Ran: true}, nil
}

func (c *countingFeed) Acknowledge() {}

func (c *countingFeed) Snapshot() FeedSnapshot { return FeedSnapshot{} }

func (c *countingFeed) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sources)
}

func TestFeedJob_TicksWithTimerSource(t *testing.T) {
	feed := &countingFeed{}
	job := NewFeedJob(feed, time.Hour, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	defer job.Stop()

	assert.Eventually(t, func() bool {
		return feed.count() >= 2
	}, time.Second, 5*time.Millisecond)

	feed.mu.Lock()
	defer feed.mu.Unlock()
	for _, src := range feed.sources {
		assert.Equal(t, TriggerTimer, src)
	}
}

func TestFeedJob_StopTerminatesTicking(t *testing.T) {
	feed := &countingFeed{}
	job := NewFeedJob(feed, time.Hour, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)

	assert.Eventually(t, func() bool {
		return feed.count() >= 1
	}, time.Second, 5*time.Millisecond)

	job.Stop()
	stopped := feed.count()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, stopped, feed.count(), "no ticks after Stop returned")
}

func TestFeedJob_StartReplacesPreviousJob(t *testing.T) {
	feed := &countingFeed{}
	job := NewFeedJob(feed, time.Hour, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	job.Start(context.Background(), 10*time.Millisecond)
	defer job.Stop()

	assert.Eventually(t, func() bool {
		return feed.count() >= 2
	}, time.Second, 5*time.Millisecond)
}

func TestFeedJob_ContextCancelStopsJob(t *testing.T) {
	feed := &countingFeed{}
	job := NewFeedJob(feed, time.Hour, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx, 10*time.Millisecond)
	cancel()

	time.Sleep(30 * time.Millisecond)
	settled := feed.count()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, settled, feed.count())

	job.Stop()
}
