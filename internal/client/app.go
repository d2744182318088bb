// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/Hipolitoneto/receitas/internal/logger"
	"github.com/Hipolitoneto/receitas/internal/service"
	"github.com/Hipolitoneto/receitas/internal/store"
	"github.com/Hipolitoneto/receitas/internal/tui"
	"github.com/Hipolitoneto/receitas/internal/workers"
)

// App is the interactive client application: the terminal UI in the
// foreground, the feed poller in the background.
type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app requires services and ui")
	}
	return &App{services: services, ui: ui, logger: logger}, nil
}

// Run implements [Client]. It restores the persisted session, starts the
// background feed poller, and hands control to the terminal UI. When the user
// switches accounts the UI is restarted at the welcome screen; the poller
// keeps running across restarts.
func (a *App) Run() error {
	ctx := context.Background()

	signedIn := true
	_, err := a.services.AuthService.RestoreSession(ctx)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrLocalSessionNotFound), errors.Is(err, service.ErrSessionExpired):
		signedIn = false
	default:
		return fmt.Errorf("restore session: %w", err)
	}

	workers.NewWorkers(a.services.FeedJob).Run()
	defer a.services.FeedJob.Stop()

	for {
		logout, err := a.ui.Run(ctx, signedIn)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return fmt.Errorf("ui session: %w", err)
		}
		if !logout {
			return nil
		}
		signedIn = false
	}
}
