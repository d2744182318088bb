// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Hipolitoneto/receitas/internal/adapter"
	"github.com/Hipolitoneto/receitas/internal/notify"
	"github.com/Hipolitoneto/receitas/internal/service"
	"github.com/Hipolitoneto/receitas/models"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenList
	screenDetail
	screenForm
	screenProfile
)

type appModel struct {
	ctx      context.Context
	services *service.ClientServices
	gateway  *notify.LocalGateway

	currentScreen screen

	welcome welcomeModel
	login   loginModel
	reg     registerModel
	list    listModel
	detail  detailModel
	form    formRecipeModel
	profile profileModel

	// banner holds the most recent notification until dismissed or tapped.
	banner    *notify.Notification
	hasBanner bool

	err          error
	showError    bool
	errorOverlay errorOverlayModel

	showConfirm   bool
	confirm       confirmModel
	pendingDelete models.Recipe
	pendingAdmin  bool

	logout bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, gateway *notify.LocalGateway, appName string, signedIn bool) appModel {
	m := appModel{
		ctx:           ctx,
		services:      services,
		gateway:       gateway,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(appName),
		login:         newLoginModel(),
		reg:           newRegisterModel(),
		list:          newListModel(appName),
		profile:       newProfileModel(),
	}
	if signedIn {
		m.currentScreen = screenList
		m.list.loading = true
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.listenDisplays(), m.listenResponses()}
	if m.currentScreen == screenList {
		cmds = append(cmds, m.cmdLoadList("", false))
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				return m, m.cmdDelete(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = models.Recipe{}
			}
			return m, nil
		}

	case notificationShownMsg:
		n := msg.notification
		m.banner = &n
		m.hasBanner = true
		return m, m.listenDisplays()

	case notificationTappedMsg:
		target, ok := notify.Route(msg.payload)
		if !ok {
			return m, m.listenResponses()
		}
		if m.currentScreen == screenDetail && m.detail.recipe.ID == target.RecipeID {
			// already on that screen, no re-navigation
			return m, m.listenResponses()
		}
		return m, tea.Batch(m.cmdOpenRecipe(target.RecipeID), m.listenResponses())

	case authDoneMsg:
		m.setSubmitting(false)
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.currentScreen = screenList
		m.list.loading = true
		return m, m.cmdLoadList("", false)

	case listLoadedMsg:
		m.list.loading = false
		m.list.stale = msg.stale
		m.list.mine = msg.mine
		if msg.err != nil && !msg.stale {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.list.recipes = msg.recipes
		if m.list.idx >= len(m.list.recipes) {
			m.list.idx = len(m.list.recipes) - 1
		}
		if m.list.idx < 0 {
			m.list.idx = 0
		}
		// the refreshed list is now visibly presented
		if m.currentScreen == screenList && !msg.mine {
			m.services.FeedService.Acknowledge()
		}
		return m, nil

	case refreshDoneMsg:
		m.list.refreshing = false
		if msg.err != nil {
			m.list.status = "Sem conexão, tentaremos de novo em instantes"
			return m, tea.Batch(m.cmdLoadList(m.searchTerm(), m.list.mine), cmdClearStatus())
		}
		return m, m.cmdLoadList(m.searchTerm(), m.list.mine)

	case recipeLoadedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.detail = detailModel{recipe: msg.recipe}
		m.currentScreen = screenDetail
		return m, nil

	case recipeSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.currentScreen = screenList
		m.list.loading = true
		return m, m.cmdLoadList(m.searchTerm(), m.list.mine)

	case deleteDecisionMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		if !msg.decision.Allowed {
			m.showErrorf("Você não tem permissão para apagar esta receita")
			return m, nil
		}
		m.pendingDelete = msg.recipe
		m.pendingAdmin = msg.decision.AsAdmin
		m.showConfirm = true
		if msg.decision.AsAdmin {
			m.confirm.message = fmt.Sprintf("Apagar %q de outro usuário como administrador?", msg.recipe.Title)
		} else {
			m.confirm.message = fmt.Sprintf("Tem certeza que deseja apagar %q?", msg.recipe.Title)
		}
		return m, nil

	case recipeDeletedMsg:
		m.pendingDelete = models.Recipe{}
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		if msg.decision.AsAdmin {
			m.list.status = "Receita apagada (ação de administrador)"
		} else {
			m.list.status = "Receita apagada"
		}
		m.currentScreen = screenList
		m.list.loading = true
		return m, tea.Batch(m.cmdLoadList(m.searchTerm(), m.list.mine), cmdClearStatus())

	case profileLoadedMsg:
		m.profile.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			m.currentScreen = screenList
			return m, nil
		}
		m.profile.user = msg.user
		m.profile.inputs[profileFieldName].SetValue(msg.user.Name)
		return m, nil

	case profileSavedMsg:
		m.profile.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.profile.user = msg.user
		m.profile.inputs[profileFieldAvatarPath].SetValue("")
		m.profile.status = "Perfil atualizado"
		return m, cmdClearStatus()

	case copiedMsg:
		if m.currentScreen == screenDetail {
			m.detail.status = "Ingredientes copiados!"
		}
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.detail.status = ""
		m.list.status = ""
		m.profile.status = ""
		return m, nil

	case spinner.TickMsg:
		if m.list.refreshing {
			var cmd tea.Cmd
			m.list.spinner, cmd = m.list.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	case screenProfile:
		return m.updateProfile(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.reg.View()
	case screenList:
		body = m.list.view(m.services.FeedService.Snapshot().Indicator, m.bannerLine())
	case screenDetail:
		body = m.detail.View()
	case screenForm:
		body = m.form.View()
	case screenProfile:
		body = m.profile.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m appModel) bannerLine() string {
	if !m.hasBanner || m.banner == nil {
		return ""
	}
	return m.banner.Title + "  " + m.banner.Body
}

func (m appModel) searchTerm() string {
	if m.list.searching {
		return strings.TrimSpace(m.list.search.Value())
	}
	return ""
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) setSubmitting(v bool) {
	m.login.submitting = v
	m.reg.submitting = v
	m.form.submitting = v
	m.profile.submitting = v
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.currentScreen = screenLogin
		} else {
			m.currentScreen = screenRegister
		}
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.forceQuit):
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login = focusNextLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = focusPrevLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			email := strings.TrimSpace(m.login.inputs[0].Value())
			pass := m.login.inputs[1].Value()
			if email == "" || pass == "" {
				m.showErrorf("Email e senha são obrigatórios")
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(email, pass)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.forceQuit):
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.reg = focusNextRegister(m.reg)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.reg = focusPrevRegister(m.reg)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			name := strings.TrimSpace(m.reg.inputs[0].Value())
			email := strings.TrimSpace(m.reg.inputs[1].Value())
			pass := m.reg.inputs[2].Value()
			repeat := m.reg.inputs[3].Value()
			if name == "" || email == "" || pass == "" {
				m.showErrorf("Nome, email e senha são obrigatórios")
				return m, nil
			}
			if pass != repeat {
				m.showErrorf("As senhas não coincidem")
				return m, nil
			}
			m.reg.submitting = true
			return m, m.cmdRegister(name, email, pass)
		}
	}

	var cmd tea.Cmd
	m.reg.inputs[m.reg.focus], cmd = m.reg.inputs[m.reg.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.list.searching {
		switch {
		case key.Matches(keyMsg, keys.forceQuit):
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.list.searching = false
			m.list.search.SetValue("")
			m.list.search.Blur()
			m.list.loading = true
			return m, m.cmdLoadList("", m.list.mine)
		case key.Matches(keyMsg, keys.enter):
			m.list.search.Blur()
			m.list.loading = true
			term := strings.TrimSpace(m.list.search.Value())
			// a search submission also nudges the sync engine; if a cycle is
			// already in flight the nudge is dropped
			return m, tea.Batch(m.cmdRefresh(service.TriggerSearch), m.cmdLoadList(term, false))
		default:
			var cmd tea.Cmd
			m.list.search, cmd = m.list.search.Update(msg)
			return m, cmd
		}
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.recipes)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		recipe, ok := m.list.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdOpenRecipe(recipe.ID)
	case key.Matches(keyMsg, keys.newItem):
		m.form = newFormRecipeModel(nil)
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.refresh):
		if m.list.refreshing {
			return m, nil
		}
		m.list.refreshing = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdRefresh(service.TriggerManual))
	case key.Matches(keyMsg, keys.search):
		m.list.searching = true
		m.list.search.Focus()
		return m, nil
	case key.Matches(keyMsg, keys.mine):
		m.list.loading = true
		if m.list.mine {
			return m, m.cmdLoadList("", false)
		}
		return m, m.cmdLoadMyRecipes()
	case key.Matches(keyMsg, keys.profile):
		m.profile = newProfileModel()
		m.currentScreen = screenProfile
		return m, m.cmdLoadProfile()
	case key.Matches(keyMsg, keys.open):
		if m.hasBanner && m.banner != nil {
			payload := m.banner.Payload
			m.hasBanner = false
			m.banner = nil
			m.gateway.Tap(payload)
		}
		return m, nil
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
		return m, nil
	case key.Matches(keyMsg, keys.edit):
		recipe := m.detail.recipe
		m.form = newFormRecipeModel(&recipe)
		m.currentScreen = screenForm
		return m, nil
	case key.Matches(keyMsg, keys.delete):
		// ownership and admin rights are checked fresh on every attempt
		return m, m.cmdDeleteDecision(m.detail.recipe)
	case key.Matches(keyMsg, keys.copy):
		if m.detail.recipe.Ingredients == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.detail.recipe.Ingredients)
	}

	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.forceQuit):
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			if m.form.editing {
				m.currentScreen = screenDetail
			} else {
				m.currentScreen = screenList
			}
			return m, nil
		case keyMsg.String() == "ctrl+p":
			m.form.isPublic = !m.form.isPublic
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form = focusNextForm(m.form)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form = focusPrevForm(m.form)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			m.form.submitting = true
			return m, m.cmdSaveRecipe(m.form)
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.forceQuit):
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.profile = focusNextProfile(m.profile)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.profile = focusPrevProfile(m.profile)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			name := strings.TrimSpace(m.profile.inputs[profileFieldName].Value())
			if name == "" {
				m.showErrorf("O nome é obrigatório")
				return m, nil
			}
			m.profile.submitting = true
			return m, m.cmdSaveProfile(name, strings.TrimSpace(m.profile.inputs[profileFieldAvatarPath].Value()))
		}
	}

	var cmd tea.Cmd
	m.profile.inputs[m.profile.focus], cmd = m.profile.inputs[m.profile.focus].Update(msg)
	return m, cmd
}

// listenDisplays parks on the gateway's banner channel until the feed engine
// emits a notification.
func (m appModel) listenDisplays() tea.Cmd {
	displays := m.gateway.Displays()
	ctx := m.ctx
	return func() tea.Msg {
		select {
		case n := <-displays:
			return notificationShownMsg{notification: n}
		case <-ctx.Done():
			return nil
		}
	}
}

func (m appModel) listenResponses() tea.Cmd {
	responses := m.gateway.Responses()
	ctx := m.ctx
	return func() tea.Msg {
		select {
		case payload := <-responses:
			return notificationTappedMsg{payload: payload}
		case <-ctx.Done():
			return nil
		}
	}
}

func (m appModel) cmdLogin(email, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		session, err := auth.Login(ctx, email, password)
		return authDoneMsg{session: session, err: err}
	}
}

func (m appModel) cmdRegister(name, email, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		session, err := auth.Register(ctx, name, email, password)
		return authDoneMsg{session: session, err: err}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		_ = auth.Logout(ctx)
		return tea.Quit()
	}
}

func (m appModel) cmdLoadList(search string, mine bool) tea.Cmd {
	ctx := m.ctx
	svc := m.services.RecipeService
	return func() tea.Msg {
		recipes, err := svc.List(ctx, search)
		if err != nil && errors.Is(err, adapter.ErrTransient) && len(recipes) > 0 {
			return listLoadedMsg{recipes: recipes, mine: mine, stale: true}
		}
		return listLoadedMsg{recipes: recipes, mine: mine, err: err}
	}
}

func (m appModel) cmdLoadMyRecipes() tea.Cmd {
	ctx := m.ctx
	svc := m.services.RecipeService
	return func() tea.Msg {
		recipes, err := svc.MyRecipes(ctx)
		return listLoadedMsg{recipes: recipes, mine: true, err: err}
	}
}

func (m appModel) cmdRefresh(source service.TriggerSource) tea.Cmd {
	ctx := m.ctx
	feed := m.services.FeedService
	return func() tea.Msg {
		outcome, err := feed.Trigger(ctx, source)
		return refreshDoneMsg{outcome: outcome, err: err}
	}
}

func (m appModel) cmdOpenRecipe(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.RecipeService
	return func() tea.Msg {
		recipe, err := svc.Get(ctx, id)
		return recipeLoadedMsg{recipe: recipe, err: err}
	}
}

func (m appModel) cmdSaveRecipe(form formRecipeModel) tea.Cmd {
	ctx := m.ctx
	svc := m.services.RecipeService
	input := form.toInput()
	editing, id := form.editing, form.recipeID
	return func() tea.Msg {
		var err error
		if editing {
			_, err = svc.Update(ctx, id, input)
		} else {
			_, err = svc.Create(ctx, input)
		}
		return recipeSavedMsg{err: err}
	}
}

func (m appModel) cmdDeleteDecision(recipe models.Recipe) tea.Cmd {
	ctx := m.ctx
	svc := m.services.RecipeService
	return func() tea.Msg {
		decision, err := svc.DeleteDecision(ctx, recipe)
		return deleteDecisionMsg{recipe: recipe, decision: decision, err: err}
	}
}

func (m appModel) cmdDelete(recipe models.Recipe) tea.Cmd {
	ctx := m.ctx
	svc := m.services.RecipeService
	return func() tea.Msg {
		decision, err := svc.Delete(ctx, recipe)
		return recipeDeletedMsg{decision: decision, err: err}
	}
}

func (m appModel) cmdLoadProfile() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		user, err := auth.CurrentUser(ctx)
		return profileLoadedMsg{user: user, err: err}
	}
}

func (m appModel) cmdSaveProfile(name, avatarPath string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		var (
			avatar      []byte
			contentType string
		)
		if avatarPath != "" {
			data, err := os.ReadFile(avatarPath)
			if err != nil {
				return profileSavedMsg{err: fmt.Errorf("não foi possível ler a foto: %w", err)}
			}
			avatar = data
			contentType = mime.TypeByExtension(filepath.Ext(avatarPath))
			if contentType == "" {
				contentType = "application/octet-stream"
			}
		}
		user, err := auth.UpdateProfile(ctx, name, avatar, contentType)
		return profileSavedMsg{user: user, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return recipeSavedMsg{err: fmt.Errorf("copiar para área de transferência: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func focusNextLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextRegister(m registerModel) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevRegister(m registerModel) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextForm(m formRecipeModel) formRecipeModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevForm(m formRecipeModel) formRecipeModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextProfile(m profileModel) profileModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevProfile(m profileModel) profileModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
