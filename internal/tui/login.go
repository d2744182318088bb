package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newLoginModel() loginModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 120
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "senha"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return loginModel{inputs: []textinput.Model{email, password}}
}

func (m loginModel) View() string {
	out := titleStyle.Render("Entrar") + "\n\n"
	out += "Email: " + m.inputs[0].View() + "\n"
	out += "Senha: " + m.inputs[1].View() + "\n\n"
	if m.submitting {
		out += "[Entrando...]\n"
	} else {
		out += "[Entrar]\n"
	}
	out += "\n" + helpStyle.Render("esc voltar  tab próximo campo  enter confirmar")
	return out
}
