package service

import (
	"time"

	"github.com/Hipolitoneto/receitas/internal/adapter"
	"github.com/Hipolitoneto/receitas/internal/config"
	"github.com/Hipolitoneto/receitas/internal/logger"
	"github.com/Hipolitoneto/receitas/internal/notify"
	"github.com/Hipolitoneto/receitas/internal/store"
)

// ClientServices groups the client's business services into a single value
// wired once at startup.
type ClientServices struct {
	AuthService   AuthService
	RecipeService RecipeService
	FeedService   FeedService
	FeedJob       FeedJob
}

// NewClientServices wires the service layer from the transport adapter, the
// local storages, and the notification gateway. The feed watermark starts at
// process start: only recipes published after launch produce alerts.
func NewClientServices(remote adapter.RemoteStore, storages *store.ClientStorages, gateway notify.Gateway, cfg config.ClientFeed, logger *logger.Logger) *ClientServices {
	syncer := NewFeedSynchronizer(remote, gateway, cfg.PageSize, logger)
	feed := NewFeedService(syncer, storages.RecipeCacheRepository, time.Now().UTC(), logger)

	return &ClientServices{
		AuthService:   NewAuthService(remote, storages.SessionRepository, logger),
		RecipeService: NewRecipeService(remote, storages.RecipeCacheRepository, logger),
		FeedService:   feed,
		FeedJob:       NewFeedJob(feed, cfg.PollInterval, logger),
	}
}
