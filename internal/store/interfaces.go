// SPDX-License-Identifier: Apache-2.0

// Package store implements the client's local SQLite persistence: a cache of
// fetched recipes so the list can render offline, and the persisted session
// so the user survives a restart without signing in again.
//
// The schema is managed with goose migrations (see the migrations package);
// queries are built with squirrel against the sqlite3 driver.
package store

import (
	"context"

	"github.com/Hipolitoneto/receitas/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RecipeCacheRepository persists a local, read-only copy of recipes fetched
// from the backend. The cache is a projection: the backend is always
// authoritative and the cache is refreshed on every successful fetch.
type RecipeCacheRepository interface {
	// UpsertRecipes inserts or replaces the given recipes in the cache.
	UpsertRecipes(ctx context.Context, recipes ...models.Recipe) error

	// ListCached returns cached recipes newest first, filtered by a
	// case-insensitive title substring when search is non-empty.
	ListCached(ctx context.Context, search string) ([]models.Recipe, error)

	// DeleteCached removes one recipe from the cache (after a remote delete).
	DeleteCached(ctx context.Context, id string) error
}

// SessionRepository persists the single local auth session.
type SessionRepository interface {
	// SaveSession stores the session, replacing any previous one.
	SaveSession(ctx context.Context, session models.Session) error

	// LoadSession returns the stored session, or [ErrLocalSessionNotFound]
	// when none exists.
	LoadSession(ctx context.Context) (models.Session, error)

	// ClearSession removes the stored session. Clearing an absent session is
	// a no-op.
	ClearSession(ctx context.Context) error
}
