package notify

import "errors"

// ErrGatewayBusy is returned by [LocalGateway.Display] when the banner buffer
// is full. Callers treat it as acceptable loss.
var ErrGatewayBusy = errors.New("notification gateway busy")

// Payload keys. The shape matches what the mobile platform round-trips
// through a notification: an opaque string map with a discriminator tag.
const (
	payloadKeyType     = "type"
	payloadKeyRecipeID = "recipe_id"

	// TypeNewRecipe tags payloads emitted for a newly published public
	// recipe.
	TypeNewRecipe = "new_recipe"
)

// Payload is the opaque mapping attached to a notification at emission time
// and handed back verbatim when the user taps it. It is consumed exactly once
// by the response router.
type Payload map[string]string

// NewRecipePayload builds the payload for a new-recipe notification.
func NewRecipePayload(recipeID string) Payload {
	return Payload{
		payloadKeyType:     TypeNewRecipe,
		payloadKeyRecipeID: recipeID,
	}
}

// Type returns the discriminator tag, or "" for a malformed payload.
func (p Payload) Type() string {
	if p == nil {
		return ""
	}
	return p[payloadKeyType]
}

// RecipeID returns the carried recipe identifier, or "" when absent.
func (p Payload) RecipeID() string {
	if p == nil {
		return ""
	}
	return p[payloadKeyRecipeID]
}
