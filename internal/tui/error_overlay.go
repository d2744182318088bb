package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := "Erro\n\n" + m.message + "\n\nenter / esc fechar"
	return overlayBoxStyle.Render(content)
}
