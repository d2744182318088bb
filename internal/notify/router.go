package notify

// TargetKind discriminates navigation targets produced by [Route].
type TargetKind int

const (
	// TargetRecipeDetail navigates to a single recipe's detail view.
	TargetRecipeDetail TargetKind = iota
)

// NavigationTarget is the navigation intent produced from a tapped
// notification. It is decoupled from any concrete screen stack; the
// presentation layer decides how to honor it.
type NavigationTarget struct {
	Kind     TargetKind
	RecipeID string
}

// Route maps a tapped-notification payload to a navigation target.
//
// It validates the discriminator tag and requires a non-empty recipe id;
// anything unrecognized or malformed yields ok == false and no navigation —
// never a panic. Route is pure: calling it twice with the same payload
// produces the same target twice. The caller is responsible for not
// re-navigating when already on that screen.
func Route(payload Payload) (NavigationTarget, bool) {
	if payload.Type() != TypeNewRecipe {
		return NavigationTarget{}, false
	}
	id := payload.RecipeID()
	if id == "" {
		return NavigationTarget{}, false
	}
	return NavigationTarget{Kind: TargetRecipeDetail, RecipeID: id}, true
}
