// Package tui implements the terminal user interface: authentication screens,
// the public feed list with its new-items indicator, recipe detail and form
// screens, the profile screen, and the notification banner fed by the
// in-process gateway.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Hipolitoneto/receitas/internal/logger"
	"github.com/Hipolitoneto/receitas/internal/notify"
	"github.com/Hipolitoneto/receitas/internal/service"
)

var ErrUserQuit = errors.New("saiu do programa")

type TUI struct {
	services *service.ClientServices
	gateway  *notify.LocalGateway
	appName  string
}

func New(services *service.ClientServices, gateway *notify.LocalGateway, appName string, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, gateway: gateway, appName: appName}, nil
}

// Run starts the interactive session. signedIn selects the start screen:
// the feed list when a session was restored, the welcome screen otherwise.
// It returns logout == true when the user asked to switch accounts, so the
// caller can restart the flow.
func (t *TUI) Run(ctx context.Context, signedIn bool) (logout bool, err error) {
	model := newAppModel(ctx, t.services, t.gateway, t.appName, signedIn)

	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.err != nil {
		return false, result.err
	}
	return result.logout, nil
}
