// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Hipolitoneto/receitas/internal/adapter"
	"github.com/Hipolitoneto/receitas/internal/logger"
	"github.com/Hipolitoneto/receitas/internal/mock"
	"github.com/Hipolitoneto/receitas/internal/validators"
	"github.com/Hipolitoneto/receitas/models"
)

func newTestRecipeService(t *testing.T, ctrl *gomock.Controller) (RecipeService, *mock.MockRemoteStore, *mock.MockRecipeCacheRepository) {
	t.Helper()
	remote := mock.NewMockRemoteStore(ctrl)
	cache := mock.NewMockRecipeCacheRepository(ctrl)
	svc := NewRecipeService(remote, cache, logger.Nop())
	return svc, remote, cache
}

func TestList_RefreshesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, remote, cache := newTestRecipeService(t, ctrl)

	recipes := []models.Recipe{{ID: "r1", Title: "Feijoada"}}
	remote.EXPECT().
		QueryRecipes(gomock.Any(), adapter.RecipeQuery{OnlyPublic: true, TitleILike: "feij"}).
		Return(recipes, nil)
	cache.EXPECT().UpsertRecipes(gomock.Any(), recipes[0]).Return(nil)

	got, err := svc.List(context.Background(), "feij")
	require.NoError(t, err)
	assert.Equal(t, recipes, got)
}

func TestList_TransientErrorFallsBackToCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, remote, cache := newTestRecipeService(t, ctrl)

	transient := fmt.Errorf("GET /recipes: %w", adapter.ErrTransient)
	cached := []models.Recipe{{ID: "r1", Title: "Feijoada"}}

	remote.EXPECT().QueryRecipes(gomock.Any(), gomock.Any()).Return(nil, transient)
	cache.EXPECT().ListCached(gomock.Any(), "").Return(cached, nil)

	got, err := svc.List(context.Background(), "")
	require.ErrorIs(t, err, adapter.ErrTransient)
	assert.Equal(t, cached, got, "stale rows returned alongside the error")
}

func TestList_NonTransientErrorHasNoFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, remote, _ := newTestRecipeService(t, ctrl)

	remote.EXPECT().
		QueryRecipes(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("GET /recipes: %w", adapter.ErrUnauthorized))

	got, err := svc.List(context.Background(), "")
	require.ErrorIs(t, err, ErrNotSignedIn)
	assert.Nil(t, got)
}

func TestCreate_ValidatesBeforeTouchingBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestRecipeService(t, ctrl)

	_, err := svc.Create(context.Background(), RecipeInput{Title: "   "})
	require.ErrorIs(t, err, validators.ErrEmptyTitle)
}

func TestCreate_AssignsIDAndOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, remote, cache := newTestRecipeService(t, ctrl)

	remote.EXPECT().CurrentIdentity(gomock.Any()).Return(models.Identity{ID: "u1"}, nil)
	remote.EXPECT().
		InsertRecipe(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r models.Recipe) (models.Recipe, error) {
			assert.NotEmpty(t, r.ID)
			assert.Equal(t, "u1", r.OwnerID)
			assert.False(t, r.CreatedAt.IsZero())
			return r, nil
		})
	cache.EXPECT().UpsertRecipes(gomock.Any(), gomock.Any()).Return(nil)

	created, err := svc.Create(context.Background(), RecipeInput{
		Title:       "Feijoada",
		Ingredients: "feijão, carne",
		Preparation: "cozinhe por horas",
		IsPublic:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Feijoada", created.Title)
}

func TestDeleteDecision_Owner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, remote, _ := newTestRecipeService(t, ctrl)

	remote.EXPECT().CurrentIdentity(gomock.Any()).Return(models.Identity{ID: "u1"}, nil)
	remote.EXPECT().GetProfile(gomock.Any(), "u1").Return(models.User{ID: "u1"}, nil)

	decision, err := svc.DeleteDecision(context.Background(), models.Recipe{ID: "r1", OwnerID: "u1"})
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.False(t, decision.AsAdmin, "owner deleting own content is never the admin path")
}

func TestDeleteDecision_AdminOnForeignRecipe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, remote, _ := newTestRecipeService(t, ctrl)

	remote.EXPECT().CurrentIdentity(gomock.Any()).Return(models.Identity{ID: "admin"}, nil)
	remote.EXPECT().GetProfile(gomock.Any(), "admin").Return(models.User{ID: "admin", IsAdmin: true}, nil)

	decision, err := svc.DeleteDecision(context.Background(), models.Recipe{ID: "r1", OwnerID: "u1"})
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.True(t, decision.AsAdmin)
}

func TestDeleteDecision_AdminOnOwnRecipe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, remote, _ := newTestRecipeService(t, ctrl)

	remote.EXPECT().CurrentIdentity(gomock.Any()).Return(models.Identity{ID: "admin"}, nil)
	remote.EXPECT().GetProfile(gomock.Any(), "admin").Return(models.User{ID: "admin", IsAdmin: true}, nil)

	decision, err := svc.DeleteDecision(context.Background(), models.Recipe{ID: "r1", OwnerID: "admin"})
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.False(t, decision.AsAdmin, "deleting own content is the owner path even for admins")
}

func TestDeleteDecision_NeitherOwnerNorAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, remote, _ := newTestRecipeService(t, ctrl)

	remote.EXPECT().CurrentIdentity(gomock.Any()).Return(models.Identity{ID: "u2"}, nil)
	remote.EXPECT().GetProfile(gomock.Any(), "u2").Return(models.User{ID: "u2"}, nil)

	decision, err := svc.DeleteDecision(context.Background(), models.Recipe{ID: "r1", OwnerID: "u1"})
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
}

func TestDeleteDecision_RecomputedPerAttempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, remote, _ := newTestRecipeService(t, ctrl)
	recipe := models.Recipe{ID: "r1", OwnerID: "u1"}

	// admin rights revoked between two attempts
	gomock.InOrder(
		remote.EXPECT().CurrentIdentity(gomock.Any()).Return(models.Identity{ID: "u2"}, nil),
		remote.EXPECT().GetProfile(gomock.Any(), "u2").Return(models.User{ID: "u2", IsAdmin: true}, nil),
		remote.EXPECT().CurrentIdentity(gomock.Any()).Return(models.Identity{ID: "u2"}, nil),
		remote.EXPECT().GetProfile(gomock.Any(), "u2").Return(models.User{ID: "u2", IsAdmin: false}, nil),
	)

	first, err := svc.DeleteDecision(context.Background(), recipe)
	require.NoError(t, err)
	assert.True(t, first.Allowed)

	second, err := svc.DeleteDecision(context.Background(), recipe)
	require.NoError(t, err)
	assert.False(t, second.Allowed, "stale admin facts must not authorize a later attempt")
}

func TestDelete_DeniedWithoutRights(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, remote, _ := newTestRecipeService(t, ctrl)

	remote.EXPECT().CurrentIdentity(gomock.Any()).Return(models.Identity{ID: "u2"}, nil)
	remote.EXPECT().GetProfile(gomock.Any(), "u2").Return(models.User{ID: "u2"}, nil)

	_, err := svc.Delete(context.Background(), models.Recipe{ID: "r1", OwnerID: "u1"})
	require.ErrorIs(t, err, ErrNotAllowed)
}

func TestDelete_AllowedRemovesRemoteAndCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, remote, cache := newTestRecipeService(t, ctrl)

	remote.EXPECT().CurrentIdentity(gomock.Any()).Return(models.Identity{ID: "u1"}, nil)
	remote.EXPECT().GetProfile(gomock.Any(), "u1").Return(models.User{ID: "u1"}, nil)
	remote.EXPECT().DeleteRecipe(gomock.Any(), "r1").Return(nil)
	cache.EXPECT().DeleteCached(gomock.Any(), "r1").Return(nil)

	decision, err := svc.Delete(context.Background(), models.Recipe{ID: "r1", OwnerID: "u1"})
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
}

func TestDelete_RemoteErrorMapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, remote, _ := newTestRecipeService(t, ctrl)

	remote.EXPECT().CurrentIdentity(gomock.Any()).Return(models.Identity{ID: "u1"}, nil)
	remote.EXPECT().GetProfile(gomock.Any(), "u1").Return(models.User{ID: "u1"}, nil)
	remote.EXPECT().
		DeleteRecipe(gomock.Any(), "r1").
		Return(fmt.Errorf("DELETE /recipes: %w", adapter.ErrForbidden))

	_, err := svc.Delete(context.Background(), models.Recipe{ID: "r1", OwnerID: "u1"})
	require.ErrorIs(t, err, ErrNotAllowed)
}

func TestMyRecipes_FiltersByOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, remote, _ := newTestRecipeService(t, ctrl)

	mine := []models.Recipe{{ID: "r1", OwnerID: "u1", CreatedAt: time.Now()}}
	remote.EXPECT().CurrentIdentity(gomock.Any()).Return(models.Identity{ID: "u1"}, nil)
	remote.EXPECT().
		QueryRecipes(gomock.Any(), adapter.RecipeQuery{OwnerID: "u1"}).
		Return(mine, nil)

	got, err := svc.MyRecipes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, mine, got)
}

func TestGet_NotFoundMapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, remote, _ := newTestRecipeService(t, ctrl)

	remote.EXPECT().
		GetRecipe(gomock.Any(), "missing").
		Return(models.Recipe{}, fmt.Errorf("GET /recipes: %w", adapter.ErrNotFound))

	_, err := svc.Get(context.Background(), "missing")
	require.ErrorIs(t, err, ErrRecipeNotFound)
	assert.False(t, errors.Is(err, adapter.ErrNotFound))
}
