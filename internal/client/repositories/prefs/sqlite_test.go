package prefs

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE preferences (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestSQLiteRepository_RoundTrip(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "access_token", "abc"))

	got, err := repo.Get(ctx, "access_token")
	require.NoError(t, err)
	require.Equal(t, "abc", got)

	// overwrite keeps a single row
	require.NoError(t, repo.Set(ctx, "access_token", "def"))
	got, err = repo.Get(ctx, "access_token")
	require.NoError(t, err)
	require.Equal(t, "def", got)
}

func TestSQLiteRepository_MissingKeyIsEmpty(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))

	got, err := repo.Get(context.Background(), "nope")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSQLiteRepository_DeleteAndClear(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "a", "1"))
	require.NoError(t, repo.Set(ctx, "b", "2"))

	require.NoError(t, repo.Delete(ctx, "a"))
	got, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	require.Empty(t, got)

	require.NoError(t, repo.Clear(ctx))
	got, err = repo.Get(ctx, "b")
	require.NoError(t, err)
	require.Empty(t, got)
}
