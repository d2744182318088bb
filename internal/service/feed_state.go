// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Hipolitoneto/receitas/internal/logger"
	"github.com/Hipolitoneto/receitas/internal/store"
)

type feedState struct {
	syncer Synchronizer
	cache  store.RecipeCacheRepository
	logger *logger.Logger

	// inFlight is the single-slot guard: a trigger owns the cycle only if
	// its compare-and-set wins.
	inFlight atomic.Bool

	mu          sync.Mutex
	watermark   time.Time
	indicator   bool
	unseen      map[string]struct{}
	done        chan struct{} // closed when the current cycle completes
	lastOutcome TriggerOutcome
	lastErr     error
}

// NewFeedService builds the [FeedService] owning the watermark, indicator,
// and single-flight guard. The watermark starts at start: items published
// before the client came up never notify. cache may be nil; when present,
// new items are upserted into it after every successful cycle.
func NewFeedService(syncer Synchronizer, cache store.RecipeCacheRepository, start time.Time, logger *logger.Logger) FeedService {
	return &feedState{
		syncer:    syncer,
		cache:     cache,
		logger:    logger,
		watermark: start,
		unseen:    make(map[string]struct{}),
	}
}

// Trigger implements [FeedService].
func (f *feedState) Trigger(ctx context.Context, source TriggerSource) (TriggerOutcome, error) {
	if !f.inFlight.CompareAndSwap(false, true) {
		return f.coalesce(ctx, source)
	}

	done := make(chan struct{})
	f.mu.Lock()
	f.done = done
	watermark := f.watermark
	f.mu.Unlock()

	// The cycle runs to completion — success or failure — before the guard
	// is released. No mid-cycle cancellation.
	result, err := f.syncer.RunCycle(ctx, watermark)

	f.mu.Lock()
	outcome := TriggerOutcome{Ran: true}
	if err == nil {
		if result.Watermark.After(f.watermark) {
			f.watermark = result.Watermark
		}
		if len(result.NewItems) > 0 {
			f.indicator = true
			for _, r := range result.NewItems {
				f.unseen[r.ID] = struct{}{}
			}
		}
		outcome.NewItems = len(result.NewItems)
	}
	f.lastOutcome = outcome
	f.lastErr = err
	f.done = nil
	f.mu.Unlock()

	if err == nil && f.cache != nil && len(result.NewItems) > 0 {
		if cacheErr := f.cache.UpsertRecipes(ctx, result.NewItems...); cacheErr != nil {
			f.logger.Warn().Err(cacheErr).Msg("feed cache upsert failed")
		}
	}

	f.inFlight.Store(false)
	close(done)

	if err != nil {
		f.logger.Debug().
			Err(err).
			Str("source", source.String()).
			Msg("sync cycle failed, will retry on next trigger")
	}
	return outcome, err
}

// coalesce handles a trigger that lost the guard race. Timer and search
// triggers are dropped; a manual trigger represents explicit user intent, so
// it waits for the in-flight cycle and adopts its outcome — state is current
// by then, running a second cycle would gain nothing.
func (f *feedState) coalesce(ctx context.Context, source TriggerSource) (TriggerOutcome, error) {
	if source != TriggerManual {
		return TriggerOutcome{Coalesced: true}, nil
	}

	f.mu.Lock()
	done := f.done
	f.mu.Unlock()
	if done == nil {
		// cycle finished between the CAS and the lock; state is current
		return TriggerOutcome{Coalesced: true}, nil
	}

	select {
	case <-done:
		f.mu.Lock()
		adopted, err := f.lastOutcome, f.lastErr
		f.mu.Unlock()
		return TriggerOutcome{Coalesced: true, NewItems: adopted.NewItems}, err
	case <-ctx.Done():
		return TriggerOutcome{Coalesced: true}, ctx.Err()
	}
}

// Acknowledge implements [FeedService].
func (f *feedState) Acknowledge() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.indicator = false
	f.unseen = make(map[string]struct{})
}

// Snapshot implements [FeedService].
func (f *feedState) Snapshot() FeedSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	ids := make([]string, 0, len(f.unseen))
	for id := range f.unseen {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return FeedSnapshot{
		Indicator: f.indicator,
		UnseenIDs: ids,
		Watermark: f.watermark,
	}
}
