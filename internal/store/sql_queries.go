// SPDX-License-Identifier: Apache-2.0

package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/Hipolitoneto/receitas/models"
)

var recipeCacheColumns = []string{
	"id",
	"user_id",
	"title",
	"ingredients",
	"preparation",
	"image_url",
	"is_public",
	"author_name",
	"author_avatar_url",
	"created_at",
	"updated_at",
}

func buildUpsertRecipeQuery(r models.Recipe) (string, []any, error) {
	var authorName, authorAvatar string
	if r.Author != nil {
		authorName = r.Author.Name
		authorAvatar = r.Author.AvatarURL
	}

	return sq.Insert("recipes_cache").
		Options("OR REPLACE").
		Columns(recipeCacheColumns...).
		Values(
			r.ID,
			r.OwnerID,
			r.Title,
			r.Ingredients,
			r.Preparation,
			r.ImageURL,
			r.IsPublic,
			authorName,
			authorAvatar,
			r.CreatedAt,
			r.UpdatedAt,
		).
		ToSql()
}

func buildListCachedRecipesQuery(search string) (string, []any, error) {
	q := sq.Select(recipeCacheColumns...).
		From("recipes_cache").
		OrderBy("created_at DESC")

	if term := strings.TrimSpace(search); term != "" {
		q = q.Where(sq.Like{"LOWER(title)": "%" + strings.ToLower(term) + "%"})
	}

	return q.ToSql()
}

func buildDeleteCachedRecipeQuery(id string) (string, []any, error) {
	return sq.Delete("recipes_cache").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildSaveSessionQuery(s models.Session, savedAt time.Time) (string, []any, error) {
	return sq.Insert("session").
		Options("OR REPLACE").
		Columns("id", "access_token", "refresh_token", "expires_at", "user_id", "email", "saved_at").
		Values(1, s.AccessToken, s.RefreshToken, s.ExpiresAt, s.UserID, s.Email, savedAt).
		ToSql()
}

func buildLoadSessionQuery() (string, []any, error) {
	return sq.Select("access_token", "refresh_token", "expires_at", "user_id", "email").
		From("session").
		Where(sq.Eq{"id": 1}).
		ToSql()
}

func buildClearSessionQuery() (string, []any, error) {
	return sq.Delete("session").
		Where(sq.Eq{"id": 1}).
		ToSql()
}
