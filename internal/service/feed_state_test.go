// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hipolitoneto/receitas/internal/logger"
	"github.com/Hipolitoneto/receitas/models"
)

// stubSyncer lets tests script cycle outcomes without mockgen.
type stubSyncer struct {
	mu      sync.Mutex
	calls   int
	results []func(watermark time.Time) (CycleResult, error)

	// block, when non-nil, is closed by the test to release an in-flight
	// cycle; started is closed once the cycle has begun.
	block   chan struct{}
	started chan struct{}
}

func (s *stubSyncer) RunCycle(_ context.Context, watermark time.Time) (CycleResult, error) {
	s.mu.Lock()
	idx := s.calls
	s.calls++
	block, started := s.block, s.started
	s.mu.Unlock()

	if started != nil {
		close(started)
		s.mu.Lock()
		s.started = nil
		s.mu.Unlock()
	}
	if block != nil {
		<-block
	}

	if idx < len(s.results) {
		return s.results[idx](watermark)
	}
	return CycleResult{Watermark: watermark}, nil
}

func (s *stubSyncer) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func newRecipe(id string, at time.Time) models.Recipe {
	return models.Recipe{ID: id, Title: id, CreatedAt: at}
}

func TestTrigger_SuccessfulCycleSetsIndicator(t *testing.T) {
	start := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	syncer := &stubSyncer{results: []func(time.Time) (CycleResult, error){
		func(watermark time.Time) (CycleResult, error) {
			return CycleResult{
				Watermark: watermark.Add(time.Minute),
				NewItems:  []models.Recipe{newRecipe("r1", watermark.Add(time.Minute))},
			}, nil
		},
	}}

	feed := NewFeedService(syncer, nil, start, logger.Nop())

	outcome, err := feed.Trigger(context.Background(), TriggerTimer)
	require.NoError(t, err)
	assert.True(t, outcome.Ran)
	assert.Equal(t, 1, outcome.NewItems)

	snap := feed.Snapshot()
	assert.True(t, snap.Indicator)
	assert.Equal(t, []string{"r1"}, snap.UnseenIDs)
	assert.Equal(t, start.Add(time.Minute), snap.Watermark)
}

func TestTrigger_FailedCycleKeepsWatermarkAndIndicator(t *testing.T) {
	start := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	syncer := &stubSyncer{results: []func(time.Time) (CycleResult, error){
		func(watermark time.Time) (CycleResult, error) {
			return CycleResult{Watermark: watermark}, errors.New("backend down")
		},
		func(watermark time.Time) (CycleResult, error) {
			// retry sees the identical window
			assert.True(t, watermark.Equal(start))
			return CycleResult{Watermark: watermark}, nil
		},
	}}

	feed := NewFeedService(syncer, nil, start, logger.Nop())

	_, err := feed.Trigger(context.Background(), TriggerTimer)
	require.Error(t, err)
	assert.False(t, feed.Snapshot().Indicator)
	assert.Equal(t, start, feed.Snapshot().Watermark)

	_, err = feed.Trigger(context.Background(), TriggerTimer)
	require.NoError(t, err)
}

func TestTrigger_EmptyCycleDoesNotClearIndicator(t *testing.T) {
	start := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	syncer := &stubSyncer{results: []func(time.Time) (CycleResult, error){
		func(watermark time.Time) (CycleResult, error) {
			return CycleResult{
				Watermark: watermark.Add(time.Minute),
				NewItems:  []models.Recipe{newRecipe("r1", watermark.Add(time.Minute))},
			}, nil
		},
		func(watermark time.Time) (CycleResult, error) {
			return CycleResult{Watermark: watermark}, nil
		},
	}}

	feed := NewFeedService(syncer, nil, start, logger.Nop())

	_, err := feed.Trigger(context.Background(), TriggerTimer)
	require.NoError(t, err)
	require.True(t, feed.Snapshot().Indicator)

	// a later successful-but-empty cycle leaves the indicator lit
	_, err = feed.Trigger(context.Background(), TriggerTimer)
	require.NoError(t, err)
	assert.True(t, feed.Snapshot().Indicator)
}

func TestAcknowledge_ClearsIndicatorAndUnseen(t *testing.T) {
	start := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	syncer := &stubSyncer{results: []func(time.Time) (CycleResult, error){
		func(watermark time.Time) (CycleResult, error) {
			return CycleResult{
				Watermark: watermark.Add(time.Minute),
				NewItems:  []models.Recipe{newRecipe("r1", watermark.Add(time.Minute))},
			}, nil
		},
	}}

	feed := NewFeedService(syncer, nil, start, logger.Nop())

	_, err := feed.Trigger(context.Background(), TriggerManual)
	require.NoError(t, err)

	feed.Acknowledge()

	snap := feed.Snapshot()
	assert.False(t, snap.Indicator)
	assert.Empty(t, snap.UnseenIDs)
	// acknowledging never touches the watermark
	assert.Equal(t, start.Add(time.Minute), snap.Watermark)
}

func TestTrigger_TimerDroppedWhileInFlight(t *testing.T) {
	start := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	syncer := &stubSyncer{
		block:   make(chan struct{}),
		started: make(chan struct{}),
	}

	feed := NewFeedService(syncer, nil, start, logger.Nop())

	firstDone := make(chan struct{})
	go func() {
		defer close(firstDone)
		_, _ = feed.Trigger(context.Background(), TriggerManual)
	}()
	<-syncer.started

	outcome, err := feed.Trigger(context.Background(), TriggerTimer)
	require.NoError(t, err)
	assert.False(t, outcome.Ran)
	assert.True(t, outcome.Coalesced)

	close(syncer.block)
	<-firstDone

	assert.Equal(t, 1, syncer.callCount(), "dropped trigger must not queue a second cycle")
}

func TestTrigger_ManualWaitsForInFlightCycle(t *testing.T) {
	start := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	syncer := &stubSyncer{
		block:   make(chan struct{}),
		started: make(chan struct{}),
		results: []func(time.Time) (CycleResult, error){
			func(watermark time.Time) (CycleResult, error) {
				return CycleResult{
					Watermark: watermark.Add(time.Minute),
					NewItems:  []models.Recipe{newRecipe("r1", watermark.Add(time.Minute))},
				}, nil
			},
		},
	}

	feed := NewFeedService(syncer, nil, start, logger.Nop())

	go func() {
		_, _ = feed.Trigger(context.Background(), TriggerTimer)
	}()
	<-syncer.started

	manualDone := make(chan TriggerOutcome, 1)
	go func() {
		outcome, _ := feed.Trigger(context.Background(), TriggerManual)
		manualDone <- outcome
	}()

	// the manual trigger must be parked, not running a cycle of its own
	select {
	case <-manualDone:
		t.Fatal("manual trigger returned before the in-flight cycle finished")
	case <-time.After(50 * time.Millisecond):
	}

	close(syncer.block)

	select {
	case outcome := <-manualDone:
		assert.True(t, outcome.Coalesced)
		assert.Equal(t, 1, outcome.NewItems, "manual trigger adopts the observed cycle's outcome")
	case <-time.After(time.Second):
		t.Fatal("manual trigger never unparked")
	}

	assert.Equal(t, 1, syncer.callCount())
}

func TestTrigger_ManualWaitRespectsContext(t *testing.T) {
	start := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	syncer := &stubSyncer{
		block:   make(chan struct{}),
		started: make(chan struct{}),
	}

	feed := NewFeedService(syncer, nil, start, logger.Nop())

	go func() {
		_, _ = feed.Trigger(context.Background(), TriggerTimer)
	}()
	<-syncer.started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := feed.Trigger(ctx, TriggerManual)
	require.ErrorIs(t, err, context.Canceled)

	close(syncer.block)
}

func TestTrigger_ConcurrentTriggersRunExactlyOneCycle(t *testing.T) {
	start := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	syncer := &stubSyncer{}
	feed := NewFeedService(syncer, nil, start, logger.Nop())

	const goroutines = 32
	var ran atomic.Int32
	var wg sync.WaitGroup
	startGate := make(chan struct{})

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-startGate
			outcome, err := feed.Trigger(context.Background(), TriggerTimer)
			if err == nil && outcome.Ran {
				ran.Add(1)
			}
		}()
	}
	close(startGate)
	wg.Wait()

	assert.LessOrEqual(t, syncer.callCount(), goroutines)
	assert.Equal(t, int(ran.Load()), syncer.callCount(), "every executed cycle has exactly one owner")
}
