package models

import "time"

// Recipe is the client-side projection of a row in the backend "recipes"
// collection. The sync engine treats it as read-only: recipes are created and
// mutated through explicit user actions, never by the feed poller.
type Recipe struct {
	// ID is the backend-assigned unique identifier (UUID string).
	ID string `json:"id"`

	// OwnerID references the publishing user's identity id. Used for the
	// ownership half of the deletion decision.
	OwnerID string `json:"user_id"`

	// Title is the display name of the recipe.
	Title string `json:"title"`

	// Ingredients and Preparation hold the user-authored recipe body.
	Ingredients string `json:"ingredients"`
	Preparation string `json:"preparation"`

	// ImageURL is the optional public URL of the recipe photo.
	ImageURL string `json:"image_url,omitempty"`

	// IsPublic controls feed visibility. Only public recipes participate in
	// feed synchronization.
	IsPublic bool `json:"is_public"`

	// CreatedAt is the publish timestamp. It orders the feed and drives the
	// sync watermark comparison.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the last modification timestamp.
	UpdatedAt time.Time `json:"updated_at,omitempty"`

	// Author is the embedded author projection joined from the users
	// collection. Nil when the query did not request the join.
	Author *RecipeAuthor `json:"author,omitempty"`
}

// RecipeAuthor is the subset of the author's profile embedded in recipe rows.
type RecipeAuthor struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// AuthorName returns the author display name or a generic fallback when the
// author projection is missing or empty.
func (r Recipe) AuthorName() string {
	if r.Author == nil || r.Author.Name == "" {
		return "Usuário"
	}
	return r.Author.Name
}

// TableName returns the name of the backend collection
// associated with the Recipe model.
func (r Recipe) TableName() string {
	return "recipes"
}
