package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/Hipolitoneto/receitas/internal/service"
	"github.com/Hipolitoneto/receitas/models"
)

// formRecipeModel is the create/edit form. The same screen serves both
// flows; editing is true when an existing recipe id is being patched.
type formRecipeModel struct {
	inputs     []textinput.Model
	focus      int
	isPublic   bool
	editing    bool
	recipeID   string
	submitting bool
}

const (
	formFieldTitle = iota
	formFieldIngredients
	formFieldPreparation
	formFieldImageURL
)

func newFormRecipeModel(recipe *models.Recipe) formRecipeModel {
	title := textinput.New()
	title.Placeholder = "título"
	title.CharLimit = 120
	title.Width = 50
	title.Focus()

	ingredients := textinput.New()
	ingredients.Placeholder = "ingredientes"
	ingredients.CharLimit = 5000
	ingredients.Width = 50

	preparation := textinput.New()
	preparation.Placeholder = "modo de preparo"
	preparation.CharLimit = 10000
	preparation.Width = 50

	imageURL := textinput.New()
	imageURL.Placeholder = "url da foto (opcional)"
	imageURL.CharLimit = 500
	imageURL.Width = 50

	m := formRecipeModel{
		inputs:   []textinput.Model{title, ingredients, preparation, imageURL},
		isPublic: true,
	}

	if recipe != nil {
		m.editing = true
		m.recipeID = recipe.ID
		m.isPublic = recipe.IsPublic
		m.inputs[formFieldTitle].SetValue(recipe.Title)
		m.inputs[formFieldIngredients].SetValue(recipe.Ingredients)
		m.inputs[formFieldPreparation].SetValue(recipe.Preparation)
		m.inputs[formFieldImageURL].SetValue(recipe.ImageURL)
	}

	return m
}

func (m formRecipeModel) toInput() service.RecipeInput {
	return service.RecipeInput{
		Title:       m.inputs[formFieldTitle].Value(),
		Ingredients: m.inputs[formFieldIngredients].Value(),
		Preparation: m.inputs[formFieldPreparation].Value(),
		ImageURL:    m.inputs[formFieldImageURL].Value(),
		IsPublic:    m.isPublic,
	}
}

func (m formRecipeModel) View() string {
	header := "Nova receita"
	if m.editing {
		header = "Editar receita"
	}

	visibility := "[x] pública"
	if !m.isPublic {
		visibility = "[ ] pública"
	}

	out := titleStyle.Render(header) + "\n\n"
	out += "Título:       " + m.inputs[formFieldTitle].View() + "\n"
	out += "Ingredientes: " + m.inputs[formFieldIngredients].View() + "\n"
	out += "Preparo:      " + m.inputs[formFieldPreparation].View() + "\n"
	out += "Foto:         " + m.inputs[formFieldImageURL].View() + "\n"
	out += visibility + "  (ctrl+p alterna)\n\n"

	if m.submitting {
		out += "[Salvando...]\n"
	} else {
		out += "[Salvar]\n"
	}
	out += "\n" + helpStyle.Render("esc cancelar  tab próximo campo  enter salvar")
	return out
}
