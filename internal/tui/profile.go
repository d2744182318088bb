package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/Hipolitoneto/receitas/models"
)

type profileModel struct {
	user       models.User
	loading    bool
	submitting bool
	status     string

	// inputs: display name, avatar image file path
	inputs []textinput.Model
	focus  int
}

const (
	profileFieldName = iota
	profileFieldAvatarPath
)

func newProfileModel() profileModel {
	name := textinput.New()
	name.Placeholder = "nome"
	name.CharLimit = 120
	name.Width = 40
	name.Focus()

	avatar := textinput.New()
	avatar.Placeholder = "caminho da foto de perfil (opcional)"
	avatar.CharLimit = 500
	avatar.Width = 40

	return profileModel{inputs: []textinput.Model{name, avatar}, loading: true}
}

func (m profileModel) View() string {
	out := titleStyle.Render("Perfil") + "\n\n"

	if m.loading {
		out += "Carregando...\n"
		return out
	}

	out += "Email: " + m.user.Email + "\n"
	if m.user.IsAdmin {
		out += "Conta de administrador\n"
	}
	if m.user.AvatarURL != "" {
		out += "Foto:  " + m.user.AvatarURL + "\n"
	}
	out += "\n"
	out += "Nome:      " + m.inputs[profileFieldName].View() + "\n"
	out += "Nova foto: " + m.inputs[profileFieldAvatarPath].View() + "\n\n"

	if m.submitting {
		out += "[Salvando...]\n"
	} else {
		out += "[Salvar]\n"
	}
	if m.status != "" {
		out += "\n" + m.status + "\n"
	}
	out += "\n" + helpStyle.Render("esc voltar  tab próximo campo  enter salvar")
	return out
}
