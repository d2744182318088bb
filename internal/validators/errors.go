package validators

import "errors"

var (
	ErrEmptyTitle         = errors.New("title is required")
	ErrTitleTooLong       = errors.New("title is too long")
	ErrEmptyIngredients   = errors.New("ingredients are required")
	ErrIngredientsTooLong = errors.New("ingredients are too long")
	ErrEmptyPreparation   = errors.New("preparation is required")
	ErrPreparationTooLong = errors.New("preparation is too long")
)
