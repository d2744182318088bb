package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/Hipolitoneto/receitas/models"
)

type listModel struct {
	appName string

	recipes    []models.Recipe
	idx        int
	loading    bool
	refreshing bool
	mine       bool
	stale      bool
	spinner    spinner.Model
	status     string

	searching bool
	search    textinput.Model
}

func newListModel(appName string) listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	search := textinput.New()
	search.Placeholder = "buscar por título"
	search.CharLimit = 120
	search.Width = 40

	return listModel{appName: appName, spinner: s, search: search, loading: true}
}

func (m listModel) current() (models.Recipe, bool) {
	if len(m.recipes) == 0 || m.idx < 0 || m.idx >= len(m.recipes) {
		return models.Recipe{}, false
	}
	return m.recipes[m.idx], true
}

func (m listModel) view(indicator bool, banner string) string {
	header := m.appName
	if m.mine {
		header += "  ·  minhas receitas"
	}
	if m.refreshing {
		header += "  " + m.spinner.View()
	}
	if indicator {
		header += "  " + indicatorStyle.Render("● novas receitas")
	}
	out := titleStyle.Render(header) + "\n"

	if banner != "" {
		out += bannerStyle.Render(banner) + "\n"
	}
	out += "\n"

	if m.searching {
		out += "Buscar: " + m.search.View() + "\n\n"
	}

	switch {
	case m.loading:
		out += "Carregando...\n"
	case len(m.recipes) == 0:
		out += "Nenhuma receita encontrada\n"
	default:
		for i, r := range m.recipes {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			visibility := ""
			if !r.IsPublic {
				visibility = " (privada)"
			}
			out += fmt.Sprintf("%s%s — %s%s\n", cursor, r.Title, r.AuthorName(), visibility)
		}
	}

	if m.stale {
		out += "\nSem conexão, exibindo dados locais\n"
	}
	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("n nova  r atualizar  / buscar  m minhas  p perfil  o abrir alerta  l trocar conta  q sair  enter abrir")
	return out
}
