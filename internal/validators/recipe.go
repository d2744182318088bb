// SPDX-License-Identifier: Apache-2.0

// Package validators provides input validation for user-authored content
// before it is sent to the backend. Validation is decoupled from transport
// and storage so the same rules apply to the create and edit flows.
package validators

import (
	"strings"
	"unicode/utf8"
)

// Bounds for user-authored recipe fields.
const (
	MaxTitleLen       = 120
	MaxIngredientsLen = 5000
	MaxPreparationLen = 10000
)

// RecipeFields is the validatable subset of a recipe form.
type RecipeFields struct {
	Title       string
	Ingredients string
	Preparation string
}

// ValidateRecipe checks the user-authored recipe fields and returns the
// first violated rule, or nil when the form is acceptable.
func ValidateRecipe(fields RecipeFields) error {
	title := strings.TrimSpace(fields.Title)
	if title == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLen {
		return ErrTitleTooLong
	}

	if strings.TrimSpace(fields.Ingredients) == "" {
		return ErrEmptyIngredients
	}
	if utf8.RuneCountInString(fields.Ingredients) > MaxIngredientsLen {
		return ErrIngredientsTooLong
	}

	if strings.TrimSpace(fields.Preparation) == "" {
		return ErrEmptyPreparation
	}
	if utf8.RuneCountInString(fields.Preparation) > MaxPreparationLen {
		return ErrPreparationTooLong
	}

	return nil
}
