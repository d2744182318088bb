package tui

import (
	"fmt"

	"github.com/Hipolitoneto/receitas/models"
)

type detailModel struct {
	recipe models.Recipe
	status string
}

func (m detailModel) View() string {
	visibility := "pública"
	if !m.recipe.IsPublic {
		visibility = "privada"
	}

	out := titleStyle.Render(m.recipe.Title) + "\n"
	out += fmt.Sprintf("por %s  ·  %s\n\n", m.recipe.AuthorName(), visibility)

	out += "Ingredientes:\n"
	out += m.recipe.Ingredients + "\n\n"
	out += "Modo de preparo:\n"
	out += m.recipe.Preparation + "\n"

	if m.recipe.ImageURL != "" {
		out += "\nFoto: " + m.recipe.ImageURL + "\n"
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("e editar  d apagar  c copiar ingredientes  esc voltar")
	return out
}
