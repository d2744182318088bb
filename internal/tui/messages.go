package tui

import (
	"github.com/Hipolitoneto/receitas/internal/notify"
	"github.com/Hipolitoneto/receitas/internal/service"
	"github.com/Hipolitoneto/receitas/models"
)

type authDoneMsg struct {
	session models.Session
	err     error
}

type listLoadedMsg struct {
	recipes []models.Recipe
	mine    bool
	stale   bool
	err     error
}

type recipeLoadedMsg struct {
	recipe models.Recipe
	err    error
}

type recipeSavedMsg struct {
	err error
}

type deleteDecisionMsg struct {
	recipe   models.Recipe
	decision service.DeleteDecision
	err      error
}

type recipeDeletedMsg struct {
	decision service.DeleteDecision
	err      error
}

type refreshDoneMsg struct {
	outcome service.TriggerOutcome
	err     error
}

type notificationShownMsg struct {
	notification notify.Notification
}

type notificationTappedMsg struct {
	payload notify.Payload
}

type profileLoadedMsg struct {
	user models.User
	err  error
}

type profileSavedMsg struct {
	user models.User
	err  error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
