package service

import "errors"

var (
	// ErrSessionExpired means the stored session can no longer be refreshed
	// and the user must authenticate again. Surfaced distinctly from generic
	// failures so the UI routes to the login screen instead of an error
	// toast.
	ErrSessionExpired = errors.New("session expired, sign in again")

	// ErrNotSignedIn means an operation requiring authentication was called
	// without a session.
	ErrNotSignedIn = errors.New("not signed in")

	// ErrNotAllowed means the deletion decision denied the action: the
	// requester neither owns the recipe nor is an administrator.
	ErrNotAllowed = errors.New("not allowed to delete this recipe")

	// ErrRecipeNotFound means the recipe does not exist or row-level
	// authorization hides it from the requester.
	ErrRecipeNotFound = errors.New("recipe not found or private")
)
