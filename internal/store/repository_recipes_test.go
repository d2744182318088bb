package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/Hipolitoneto/receitas/internal/logger"
	"github.com/Hipolitoneto/receitas/models"
)

func newTestRecipeRepo(t *testing.T) (*recipeCacheRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &recipeCacheRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestUpsertRecipes_Success(t *testing.T) {
	repo, mock, db := newTestRecipeRepo(t)
	defer db.Close()

	recipes := []models.Recipe{
		{ID: "r1", OwnerID: "u1", Title: "Feijoada"},
		{ID: "r2", OwnerID: "u2", Title: "Moqueca"},
	}

	for range recipes {
		mock.ExpectExec("INSERT OR REPLACE INTO recipes_cache").
			WillReturnResult(sqlmock.NewResult(0, 1))
	}

	if err := repo.UpsertRecipes(context.Background(), recipes...); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpsertRecipes_ExecError(t *testing.T) {
	repo, mock, db := newTestRecipeRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT OR REPLACE INTO recipes_cache").
		WillReturnError(errors.New("disk I/O error"))

	err := repo.UpsertRecipes(context.Background(), models.Recipe{ID: "r1"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestListCached_Success(t *testing.T) {
	repo, mock, db := newTestRecipeRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(recipeCacheColumns).
		AddRow("r2", "u2", "Moqueca", "peixe", "cozinhe", "", true, "Ana", "", now, now).
		AddRow("r1", "u1", "Feijoada", "feijão", "cozinhe", "", true, "", "", now.Add(-time.Hour), now)

	mock.ExpectQuery("SELECT .+ FROM recipes_cache").
		WillReturnRows(rows)

	recipes, err := repo.ListCached(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recipes) != 2 {
		t.Fatalf("expected 2 recipes, got %d", len(recipes))
	}
	if recipes[0].Author == nil || recipes[0].Author.Name != "Ana" {
		t.Errorf("expected author Ana on first row, got %+v", recipes[0].Author)
	}
	if recipes[1].Author != nil {
		t.Errorf("expected no author on second row, got %+v", recipes[1].Author)
	}
}

func TestListCached_SearchPassesArg(t *testing.T) {
	repo, mock, db := newTestRecipeRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM recipes_cache WHERE LOWER\\(title\\) LIKE").
		WithArgs("%bolo%").
		WillReturnRows(sqlmock.NewRows(recipeCacheColumns))

	if _, err := repo.ListCached(context.Background(), "Bolo"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestListCached_QueryError(t *testing.T) {
	repo, mock, db := newTestRecipeRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM recipes_cache").
		WillReturnError(errors.New("database is locked"))

	if _, err := repo.ListCached(context.Background(), ""); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestDeleteCached_Success(t *testing.T) {
	repo, mock, db := newTestRecipeRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM recipes_cache").
		WithArgs("r1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteCached(context.Background(), "r1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
