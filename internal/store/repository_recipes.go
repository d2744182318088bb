package store

import (
	"context"
	"fmt"

	"github.com/Hipolitoneto/receitas/internal/logger"
	"github.com/Hipolitoneto/receitas/models"
)

type recipeCacheRepository struct {
	*DB
	logger *logger.Logger
}

// NewRecipeCacheRepository returns a repository over the local recipes cache table.
func NewRecipeCacheRepository(db *DB, logger *logger.Logger) RecipeCacheRepository {
	return &recipeCacheRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *recipeCacheRepository) UpsertRecipes(ctx context.Context, recipes ...models.Recipe) error {
	log := logger.FromContext(ctx)

	for _, recipe := range recipes {
		query, args, err := buildUpsertRecipeQuery(recipe)
		if err != nil {
			log.Err(err).
				Str("func", "recipeCacheRepository.UpsertRecipes").
				Str("recipe_id", recipe.ID).
				Msg("failed to build upsert query for cached recipe")
			return fmt.Errorf("failed to build upsert query (recipe_id=%s): %w", recipe.ID, err)
		}

		if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "recipeCacheRepository.UpsertRecipes").
				Str("recipe_id", recipe.ID).
				Msg("failed to execute upsert for cached recipe")
			return fmt.Errorf("failed to upsert cached recipe (recipe_id=%s): %w", recipe.ID, err)
		}
	}

	return nil
}

func (r *recipeCacheRepository) ListCached(ctx context.Context, search string) ([]models.Recipe, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCachedRecipesQuery(search)
	if err != nil {
		log.Err(err).
			Str("func", "recipeCacheRepository.ListCached").
			Msg("failed to build query for listing cached recipes")
		return nil, fmt.Errorf("failed to build cached recipes query: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recipeCacheRepository.ListCached").
			Msg("failed to execute query for listing cached recipes")
		return nil, fmt.Errorf("failed to query cached recipes: %w", err)
	}
	defer rows.Close()

	var recipes []models.Recipe

	for rows.Next() {
		var (
			recipe       models.Recipe
			authorName   string
			authorAvatar string
		)

		scanErr := rows.Scan(
			&recipe.ID,
			&recipe.OwnerID,
			&recipe.Title,
			&recipe.Ingredients,
			&recipe.Preparation,
			&recipe.ImageURL,
			&recipe.IsPublic,
			&authorName,
			&authorAvatar,
			&recipe.CreatedAt,
			&recipe.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "recipeCacheRepository.ListCached").
				Msg("failed to scan cached recipe row")
			return nil, fmt.Errorf("failed to scan cached recipe row: %w", scanErr)
		}

		if authorName != "" || authorAvatar != "" {
			recipe.Author = &models.RecipeAuthor{Name: authorName, AvatarURL: authorAvatar}
		}

		recipes = append(recipes, recipe)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "recipeCacheRepository.ListCached").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating cached recipe rows: %w", rowsErr)
	}

	return recipes, nil
}

func (r *recipeCacheRepository) DeleteCached(ctx context.Context, recipeID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCachedRecipeQuery(recipeID)
	if err != nil {
		log.Err(err).
			Str("func", "recipeCacheRepository.DeleteCached").
			Str("recipe_id", recipeID).
			Msg("failed to build delete query for cached recipe")
		return fmt.Errorf("failed to build delete query (recipe_id=%s): %w", recipeID, err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "recipeCacheRepository.DeleteCached").
			Str("recipe_id", recipeID).
			Msg("failed to execute delete for cached recipe")
		return fmt.Errorf("failed to delete cached recipe (recipe_id=%s): %w", recipeID, err)
	}

	return nil
}
