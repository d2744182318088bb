// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Hipolitoneto/receitas/internal/adapter"
	"github.com/Hipolitoneto/receitas/internal/logger"
	"github.com/Hipolitoneto/receitas/internal/notify"
)

// notificationTitle is the banner title for a newly published public recipe.
const notificationTitle = "🍽️ Nova Receita Pública!"

type feedSynchronizer struct {
	remote   adapter.RemoteStore
	gateway  notify.Gateway
	pageSize int
	logger   *logger.Logger
}

// NewFeedSynchronizer builds the [Synchronizer] that queries the feed window
// and emits notifications through gateway.
func NewFeedSynchronizer(remote adapter.RemoteStore, gateway notify.Gateway, pageSize int, logger *logger.Logger) Synchronizer {
	if pageSize <= 0 {
		pageSize = 100
	}
	return &feedSynchronizer{remote: remote, gateway: gateway, pageSize: pageSize, logger: logger}
}

// RunCycle implements [Synchronizer].
func (s *feedSynchronizer) RunCycle(ctx context.Context, watermark time.Time) (CycleResult, error) {
	recipes, err := s.remote.QueryRecipes(ctx, adapter.RecipeQuery{
		OnlyPublic:     true,
		PublishedAfter: watermark,
		Ascending:      true,
		Limit:          s.pageSize,
	})
	if err != nil {
		// watermark untouched: the next trigger re-queries this same window
		return CycleResult{Watermark: watermark}, fmt.Errorf("query feed window: %w", err)
	}

	newWatermark := watermark
	for _, r := range recipes {
		if r.CreatedAt.After(newWatermark) {
			newWatermark = r.CreatedAt
		}
	}

	// Emission follows the query's ascending publish order so alerts arrive
	// oldest-new first. A gateway failure for one item is logged and skipped;
	// the data was observed, so the watermark still advances.
	for _, r := range recipes {
		body := fmt.Sprintf("%s adicionou %q", r.AuthorName(), r.Title)
		if err := s.gateway.Display(ctx, notificationTitle, body, notify.NewRecipePayload(r.ID)); err != nil {
			s.logger.Warn().
				Err(err).
				Str("recipe_id", r.ID).
				Msg("notification display failed, skipping")
		}
	}

	return CycleResult{Watermark: newWatermark, NewItems: recipes}, nil
}
