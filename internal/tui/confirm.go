package tui

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	content := m.message + "\n\n"
	content += "y sim    n não"
	return overlayBoxStyle.Render(content)
}
