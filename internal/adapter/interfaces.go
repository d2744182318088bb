// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for communicating with
// the managed backend that hosts the recipes data API, the auth endpoints, and
// the avatar storage bucket.
//
// The primary abstraction is [RemoteStore], which decouples the service layer
// from the backend's REST dialect. The package ships an HTTP implementation
// ([NewHTTPRemoteStore]) speaking PostgREST-style filters against the data API
// and password/refresh grants against the auth API.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrForbidden] for 403, [ErrSessionExpired] for a rejected
// token).
package adapter

import (
	"context"
	"time"

	"github.com/Hipolitoneto/receitas/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_store_mock.go -package=mock

// RecipeQuery describes a filtered read against the recipes collection. The
// zero value selects everything; fields narrow the result set.
type RecipeQuery struct {
	// OnlyPublic restricts the result to rows with is_public = true.
	OnlyPublic bool

	// PublishedAfter, when non-zero, keeps only rows whose publish timestamp
	// is strictly greater than the given instant. This is the sync window
	// filter: the value is the caller's watermark.
	PublishedAfter time.Time

	// TitleILike, when non-empty, applies a case-insensitive substring match
	// on the title.
	TitleILike string

	// OwnerID, when non-empty, keeps only rows owned by the given user.
	OwnerID string

	// Ascending orders by publish timestamp ascending when true (sync cycles
	// need causal order), descending otherwise (list screens want newest
	// first).
	Ascending bool

	// Limit bounds the number of returned rows. Zero means backend default.
	Limit int
}

// RemoteStore defines transport-agnostic communication with the managed
// backend. Implementations are responsible for serialisation, auth header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type RemoteStore interface {
	// SetSession stores the session whose access token will be attached to
	// all subsequent authenticated requests. It should be called immediately
	// after a successful SignIn, SignUp, or RefreshSession.
	SetSession(session models.Session)

	// Session returns the session currently held by the adapter. The zero
	// value means no one is signed in.
	Session() models.Session

	// SignUp registers a new account with the backend's auth subsystem and
	// returns the issued session. The profile row in the users collection is
	// created separately via InsertProfile.
	SignUp(ctx context.Context, email, password string) (models.Session, error)

	// SignIn performs a password-grant login and returns the issued session.
	// Returns a wrapped [ErrUnauthorized] on bad credentials.
	SignIn(ctx context.Context, email, password string) (models.Session, error)

	// RefreshSession exchanges a refresh token for a fresh session. Returns a
	// wrapped [ErrSessionExpired] if the refresh token is no longer accepted.
	RefreshSession(ctx context.Context, refreshToken string) (models.Session, error)

	// CurrentIdentity asks the backend who the held token belongs to. Returns
	// a wrapped [ErrSessionExpired] when the token is rejected, so callers
	// can route the user to re-authentication instead of a generic failure.
	CurrentIdentity(ctx context.Context) (models.Identity, error)

	// QueryRecipes runs a filtered read against the recipes collection with
	// the author projection embedded on every row.
	QueryRecipes(ctx context.Context, query RecipeQuery) ([]models.Recipe, error)

	// GetRecipe fetches a single recipe by id, author embedded. Returns a
	// wrapped [ErrNotFound] when the row does not exist or row-level
	// authorization hides it.
	GetRecipe(ctx context.Context, id string) (models.Recipe, error)

	// InsertRecipe creates a new recipe row and returns the stored
	// representation.
	InsertRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error)

	// UpdateRecipe patches the recipe row identified by recipe.ID. Returns a
	// wrapped [ErrForbidden] when the backend's authorization rejects the
	// write.
	UpdateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error)

	// DeleteRecipe removes the recipe row by id. Returns a wrapped
	// [ErrForbidden] on an authorization rejection and a wrapped
	// [ErrNotFound] when the row is already gone.
	DeleteRecipe(ctx context.Context, id string) error

	// GetProfile fetches the profile row (including the administrator flag)
	// for the given identity id.
	GetProfile(ctx context.Context, userID string) (models.User, error)

	// InsertProfile creates the profile row for a freshly registered
	// identity.
	InsertProfile(ctx context.Context, user models.User) error

	// UpdateProfile patches the profile row identified by user.ID.
	UpdateProfile(ctx context.Context, user models.User) error

	// UploadAvatar stores the image bytes in the avatar bucket under a path
	// derived from userID and returns the public URL of the stored object.
	UploadAvatar(ctx context.Context, userID string, data []byte, contentType string) (string, error)
}
