package tui

type welcomeModel struct {
	appName string
	items   []string
	idx     int
}

func newWelcomeModel(appName string) welcomeModel {
	return welcomeModel{appName: appName, items: []string{"Entrar", "Criar conta"}}
}

func (m welcomeModel) View() string {
	out := m.appName + "\n\nEscolha uma opção:\n\n"
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + item + "\n"
	}
	out += "\nq sair"
	return out
}
