package kv_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/pokecard/internal/adapter/sqlite"
	"github.com/heartmarshall/pokecard/internal/adapter/sqlite/kv"
	"github.com/heartmarshall/pokecard/internal/domain"
)

func openRepo(t *testing.T, path string) *kv.Repo {
	t.Helper()

	db, err := sqlite.Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return kv.New(db)
}

func TestRepo_GetMissing(t *testing.T) {
	t.Parallel()
	repo := openRepo(t, filepath.Join(t.TempDir(), "cache.db"))

	_, err := repo.Get(context.Background(), "pokeflex_missingno")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_SetGetOverwrite(t *testing.T) {
	t.Parallel()
	repo := openRepo(t, filepath.Join(t.TempDir(), "cache.db"))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "pokeflex_pikachu", `{"name":"Pikachu"}`))
	got, err := repo.Get(ctx, "pokeflex_pikachu")
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Pikachu"}`, got)

	require.NoError(t, repo.Set(ctx, "pokeflex_pikachu", `{"name":"Raichu"}`))
	got, err = repo.Get(ctx, "pokeflex_pikachu")
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Raichu"}`, got)
}

func TestRepo_SurvivesReopen(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "cache.db")
	ctx := context.Background()

	db, err := sqlite.Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, kv.New(db).Set(ctx, "pokeflex_gruikui", `{"name":"Gruikui"}`))
	require.NoError(t, db.Close())

	got, err := openRepo(t, path).Get(ctx, "pokeflex_gruikui")
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Gruikui"}`, got)
}

func TestRepo_EmptyKeyRejected(t *testing.T) {
	t.Parallel()
	repo := openRepo(t, filepath.Join(t.TempDir(), "cache.db"))

	err := repo.Set(context.Background(), "", `{}`)
	assert.True(t, errors.Is(err, domain.ErrValidation), "got %v", err)
}

func TestRepo_Ping(t *testing.T) {
	t.Parallel()
	repo := openRepo(t, filepath.Join(t.TempDir(), "cache.db"))

	assert.NoError(t, repo.Ping(context.Background()))
}

func TestRepo_ClosedDatabase(t *testing.T) {
	t.Parallel()

	db, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	repo := kv.New(db)
	require.NoError(t, db.Close())

	_, err = repo.Get(context.Background(), "pokeflex_pikachu")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.Error(t, repo.Set(context.Background(), "pokeflex_pikachu", `{}`))
}
