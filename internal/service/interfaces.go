// SPDX-License-Identifier: Apache-2.0

// Package service holds the application's business layer: the feed
// synchronization engine (synchronizer, trigger coalescing, poll job), the
// recipe CRUD service with the ownership/admin deletion decision, and the
// auth/session flows. Everything talks to the managed backend through
// [adapter.RemoteStore] and to the host notification surface through
// [notify.Gateway].
package service

import (
	"context"
	"time"

	"github.com/Hipolitoneto/receitas/models"
)

// TriggerSource identifies what caused a sync trigger.
type TriggerSource int

const (
	// TriggerTimer is the periodic poll tick.
	TriggerTimer TriggerSource = iota
	// TriggerManual is an explicit user refresh (pull-to-refresh analog).
	TriggerManual
	// TriggerSearch is a search submission.
	TriggerSearch
)

func (s TriggerSource) String() string {
	switch s {
	case TriggerTimer:
		return "timer"
	case TriggerManual:
		return "manual"
	case TriggerSearch:
		return "search"
	default:
		return "unknown"
	}
}

// CycleResult is the outcome of one successful sync cycle.
type CycleResult struct {
	// Watermark is the new "newest item confirmed seen" timestamp: the
	// maximum publish timestamp observed, or the input watermark when the
	// window came back empty. It never regresses.
	Watermark time.Time

	// NewItems are the newly published public recipes, in ascending publish
	// order — the same order their notifications were emitted in.
	NewItems []models.Recipe
}

// Synchronizer runs one feed sync cycle: query the window above the given
// watermark, emit one notification per new item, and report the advanced
// watermark.
type Synchronizer interface {
	// RunCycle queries all public recipes published strictly after watermark,
	// ordered ascending, and asks the notification gateway to display one
	// alert per item (best effort — a gateway failure on one item neither
	// blocks later items nor holds back the watermark, since the data was
	// observed). On any store failure it returns an error and a result whose
	// watermark equals the input, so a retry re-queries the identical window.
	RunCycle(ctx context.Context, watermark time.Time) (CycleResult, error)
}

// TriggerOutcome reports how a trigger was handled.
type TriggerOutcome struct {
	// Ran is true when this call executed a sync cycle itself.
	Ran bool
	// Coalesced is true when another cycle was already in flight: timer and
	// search triggers are dropped, a manual trigger waits for the running
	// cycle and adopts its outcome.
	Coalesced bool
	// NewItems is the number of new recipes the observed cycle found.
	NewItems int
}

// FeedSnapshot is the read-only view handed to the presentation layer.
type FeedSnapshot struct {
	// Indicator is true iff at least one new item has been detected since
	// the last explicit acknowledgment.
	Indicator bool
	// UnseenIDs are the recipe ids behind the indicator.
	UnseenIDs []string
	// Watermark is the current "newest confirmed seen" publish timestamp.
	Watermark time.Time
}

// FeedService owns the sync watermark, the unseen-items indicator, and the
// single-flight guard serializing all trigger sources.
type FeedService interface {
	// Trigger funnels a sync request from any source into the single-flight
	// execution path. At most one cycle is ever in flight: concurrent timer
	// and search triggers are dropped, a concurrent manual trigger waits for
	// the in-flight cycle to finish and is then treated as a no-op refresh.
	// A cycle runs to completion before the guard is released; there is no
	// mid-cycle cancellation.
	Trigger(ctx context.Context, source TriggerSource) (TriggerOutcome, error)

	// Acknowledge clears the indicator and the unseen id set. It must be
	// called by the consuming view when it visibly presents the refreshed
	// list — a successful-but-empty poll never clears the indicator on its
	// own.
	Acknowledge()

	// Snapshot returns the current indicator state for rendering.
	Snapshot() FeedSnapshot
}

// FeedJob is the background poller that fires timer triggers on a fixed
// interval.
type FeedJob interface {
	// Start launches the background polling goroutine. The ticker fires
	// every interval regardless of cycle duration; a tick that lands while a
	// cycle is in flight is dropped, never queued. Any previously running
	// job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()

	// Run starts the poller with its configured default interval under a
	// background context. It satisfies [workers.Worker].
	Run()
}

// RecipeInput carries the user-editable recipe fields from the form screens.
type RecipeInput struct {
	Title       string
	Ingredients string
	Preparation string
	ImageURL    string
	IsPublic    bool
}

// DeleteDecision is the authorization decision for one deletion attempt,
// computed from fresh ownership and admin facts each time.
type DeleteDecision struct {
	// Allowed is (requester owns the recipe) OR (requester is an
	// administrator).
	Allowed bool
	// AsAdmin is true when the action is an administrator deleting another
	// user's content. It drives the distinct confirmation and success
	// wording — an audit signal, not cosmetics.
	AsAdmin bool
}

// RecipeService is the pass-through CRUD surface over the recipes collection,
// with the local cache kept warm for offline rendering.
type RecipeService interface {
	// List fetches public recipes, newest first, filtered by a
	// case-insensitive title substring when search is non-empty. Fetched
	// rows refresh the local cache; on a transient backend failure the
	// cached rows are returned alongside the error so the view can render
	// stale data with a warning.
	List(ctx context.Context, search string) ([]models.Recipe, error)

	// Get fetches a single recipe with its author projection.
	Get(ctx context.Context, id string) (models.Recipe, error)

	// MyRecipes lists the authenticated user's own recipes, newest first.
	MyRecipes(ctx context.Context) ([]models.Recipe, error)

	// Create validates input, assigns a new id, and inserts the recipe.
	Create(ctx context.Context, input RecipeInput) (models.Recipe, error)

	// Update validates input and patches the given recipe.
	Update(ctx context.Context, id string, input RecipeInput) (models.Recipe, error)

	// DeleteDecision computes the deletion authorization for recipe from
	// fresh identity and admin facts. Never cached across attempts.
	DeleteDecision(ctx context.Context, recipe models.Recipe) (DeleteDecision, error)

	// Delete evaluates the decision and, when allowed, deletes the recipe
	// remotely and from the cache. The returned decision lets the view word
	// its success message correctly.
	Delete(ctx context.Context, recipe models.Recipe) (DeleteDecision, error)
}

// AuthService handles registration, login, and session lifecycle against the
// backend's auth subsystem.
type AuthService interface {
	// Register creates the auth identity and its profile row, then persists
	// the issued session locally.
	Register(ctx context.Context, name, email, password string) (models.Session, error)

	// Login performs a password-grant sign-in and persists the session.
	Login(ctx context.Context, email, password string) (models.Session, error)

	// RestoreSession loads the persisted session, refreshing it when
	// expired. Returns [ErrSessionExpired] when re-authentication is
	// required and [store.ErrLocalSessionNotFound] when no session exists.
	RestoreSession(ctx context.Context) (models.Session, error)

	// CurrentUser returns the authenticated user's profile.
	CurrentUser(ctx context.Context) (models.User, error)

	// UpdateProfile patches the profile's display fields.
	UpdateProfile(ctx context.Context, name string, avatar []byte, avatarContentType string) (models.User, error)

	// Logout clears the persisted session and the adapter's credentials.
	Logout(ctx context.Context) error
}
