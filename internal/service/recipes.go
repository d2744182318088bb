// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Hipolitoneto/receitas/internal/adapter"
	"github.com/Hipolitoneto/receitas/internal/logger"
	"github.com/Hipolitoneto/receitas/internal/store"
	"github.com/Hipolitoneto/receitas/internal/validators"
	"github.com/Hipolitoneto/receitas/models"
)

type recipeService struct {
	remote adapter.RemoteStore
	cache  store.RecipeCacheRepository
	logger *logger.Logger
}

// NewRecipeService returns the recipe CRUD service backed by the remote store,
// with the local cache used as a fallback when the backend is unreachable.
func NewRecipeService(remote adapter.RemoteStore, cache store.RecipeCacheRepository, logger *logger.Logger) RecipeService {
	return &recipeService{
		remote: remote,
		cache:  cache,
		logger: logger,
	}
}

func (r *recipeService) List(ctx context.Context, search string) ([]models.Recipe, error) {
	log := logger.FromContext(ctx)

	recipes, err := r.remote.QueryRecipes(ctx, adapter.RecipeQuery{
		OnlyPublic: true,
		TitleILike: search,
	})
	if err != nil {
		if errors.Is(err, adapter.ErrTransient) {
			cached, cacheErr := r.cache.ListCached(ctx, search)
			if cacheErr != nil {
				log.Err(cacheErr).
					Str("func", "recipeService.List").
					Msg("cache fallback failed after transient backend error")
				return nil, fmt.Errorf("failed to list recipes: %w", err)
			}
			log.Warn().
				Str("func", "recipeService.List").
				Int("cached", len(cached)).
				Msg("backend unreachable, serving cached recipes")
			return cached, mapRemoteError(err)
		}
		return nil, mapRemoteError(err)
	}

	if cacheErr := r.cache.UpsertRecipes(ctx, recipes...); cacheErr != nil {
		log.Err(cacheErr).
			Str("func", "recipeService.List").
			Msg("failed to refresh recipe cache")
	}

	return recipes, nil
}

func (r *recipeService) Get(ctx context.Context, id string) (models.Recipe, error) {
	recipe, err := r.remote.GetRecipe(ctx, id)
	if err != nil {
		return models.Recipe{}, mapRemoteError(err)
	}
	return recipe, nil
}

func (r *recipeService) MyRecipes(ctx context.Context) ([]models.Recipe, error) {
	identity, err := r.remote.CurrentIdentity(ctx)
	if err != nil {
		return nil, mapRemoteError(err)
	}

	recipes, err := r.remote.QueryRecipes(ctx, adapter.RecipeQuery{OwnerID: identity.ID})
	if err != nil {
		return nil, mapRemoteError(err)
	}

	return recipes, nil
}

func (r *recipeService) Create(ctx context.Context, input RecipeInput) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateRecipe(validators.RecipeFields{
		Title:       input.Title,
		Ingredients: input.Ingredients,
		Preparation: input.Preparation,
	}); err != nil {
		return models.Recipe{}, err
	}

	identity, err := r.remote.CurrentIdentity(ctx)
	if err != nil {
		return models.Recipe{}, mapRemoteError(err)
	}

	now := time.Now().UTC()
	recipe := models.Recipe{
		ID:          uuid.NewString(),
		OwnerID:     identity.ID,
		Title:       input.Title,
		Ingredients: input.Ingredients,
		Preparation: input.Preparation,
		ImageURL:    input.ImageURL,
		IsPublic:    input.IsPublic,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := r.remote.InsertRecipe(ctx, recipe)
	if err != nil {
		return models.Recipe{}, mapRemoteError(err)
	}

	if cacheErr := r.cache.UpsertRecipes(ctx, created); cacheErr != nil {
		log.Err(cacheErr).
			Str("func", "recipeService.Create").
			Str("recipe_id", created.ID).
			Msg("failed to cache created recipe")
	}

	return created, nil
}

func (r *recipeService) Update(ctx context.Context, id string, input RecipeInput) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateRecipe(validators.RecipeFields{
		Title:       input.Title,
		Ingredients: input.Ingredients,
		Preparation: input.Preparation,
	}); err != nil {
		return models.Recipe{}, err
	}

	recipe := models.Recipe{
		ID:          id,
		Title:       input.Title,
		Ingredients: input.Ingredients,
		Preparation: input.Preparation,
		ImageURL:    input.ImageURL,
		IsPublic:    input.IsPublic,
		UpdatedAt:   time.Now().UTC(),
	}

	updated, err := r.remote.UpdateRecipe(ctx, recipe)
	if err != nil {
		return models.Recipe{}, mapRemoteError(err)
	}

	if cacheErr := r.cache.UpsertRecipes(ctx, updated); cacheErr != nil {
		log.Err(cacheErr).
			Str("func", "recipeService.Update").
			Str("recipe_id", updated.ID).
			Msg("failed to cache updated recipe")
	}

	return updated, nil
}

// DeleteDecision asks the backend for the requester's identity and profile on
// every call: ownership and the administrator flag are re-read per attempt,
// never remembered from a previous one.
func (r *recipeService) DeleteDecision(ctx context.Context, recipe models.Recipe) (DeleteDecision, error) {
	identity, err := r.remote.CurrentIdentity(ctx)
	if err != nil {
		return DeleteDecision{}, mapRemoteError(err)
	}

	isOwner := identity.ID != "" && identity.ID == recipe.OwnerID

	profile, err := r.remote.GetProfile(ctx, identity.ID)
	if err != nil {
		// The profile row may be missing for a fresh account; ownership alone
		// still authorizes the delete.
		if errors.Is(err, adapter.ErrNotFound) {
			return DeleteDecision{Allowed: isOwner}, nil
		}
		return DeleteDecision{}, mapRemoteError(err)
	}

	return DeleteDecision{
		Allowed: isOwner || profile.IsAdmin,
		AsAdmin: profile.IsAdmin && !isOwner,
	}, nil
}

func (r *recipeService) Delete(ctx context.Context, recipe models.Recipe) (DeleteDecision, error) {
	log := logger.FromContext(ctx)

	decision, err := r.DeleteDecision(ctx, recipe)
	if err != nil {
		return DeleteDecision{}, err
	}
	if !decision.Allowed {
		return decision, ErrNotAllowed
	}

	if err := r.remote.DeleteRecipe(ctx, recipe.ID); err != nil {
		return decision, mapRemoteError(err)
	}

	if cacheErr := r.cache.DeleteCached(ctx, recipe.ID); cacheErr != nil {
		log.Err(cacheErr).
			Str("func", "recipeService.Delete").
			Str("recipe_id", recipe.ID).
			Msg("failed to evict deleted recipe from cache")
	}

	log.Info().
		Str("func", "recipeService.Delete").
		Str("recipe_id", recipe.ID).
		Bool("as_admin", decision.AsAdmin).
		Msg("recipe deleted")

	return decision, nil
}
