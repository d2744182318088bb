package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoute_WellFormedPayload(t *testing.T) {
	target, ok := Route(NewRecipePayload("r42"))

	require.True(t, ok)
	assert.Equal(t, TargetRecipeDetail, target.Kind)
	assert.Equal(t, "r42", target.RecipeID)
}

func TestRoute_Idempotent(t *testing.T) {
	payload := NewRecipePayload("r42")

	first, ok1 := Route(payload)
	second, ok2 := Route(payload)

	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, first, second)
}

func TestRoute_MissingDiscriminator(t *testing.T) {
	_, ok := Route(Payload{"recipe_id": "r42"})
	assert.False(t, ok)
}

func TestRoute_EmptyRecipeID(t *testing.T) {
	_, ok := Route(Payload{"type": TypeNewRecipe})
	assert.False(t, ok)
}

func TestRoute_UnknownType(t *testing.T) {
	_, ok := Route(Payload{"type": "promo", "recipe_id": "r1"})
	assert.False(t, ok)
}

func TestRoute_NilPayload(t *testing.T) {
	assert.NotPanics(t, func() {
		_, ok := Route(nil)
		assert.False(t, ok)
	})
}
