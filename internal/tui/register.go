package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

type registerModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newRegisterModel() registerModel {
	name := textinput.New()
	name.Placeholder = "nome"
	name.CharLimit = 120
	name.Width = 40
	name.Focus()

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 120
	email.Width = 40

	password := textinput.New()
	password.Placeholder = "senha"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	repeat := textinput.New()
	repeat.Placeholder = "repita a senha"
	repeat.CharLimit = 256
	repeat.Width = 40
	repeat.EchoMode = textinput.EchoPassword
	repeat.EchoCharacter = '*'

	return registerModel{inputs: []textinput.Model{name, email, password, repeat}}
}

func (m registerModel) View() string {
	out := titleStyle.Render("Criar conta") + "\n\n"
	out += "Nome:         " + m.inputs[0].View() + "\n"
	out += "Email:        " + m.inputs[1].View() + "\n"
	out += "Senha:        " + m.inputs[2].View() + "\n"
	out += "Repita senha: " + m.inputs[3].View() + "\n\n"
	if m.submitting {
		out += "[Criando...]\n"
	} else {
		out += "[Criar conta]\n"
	}
	out += "\n" + helpStyle.Render("esc voltar  tab próximo campo  enter confirmar")
	return out
}
