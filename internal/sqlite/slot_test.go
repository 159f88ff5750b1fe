package sqlite

import (
	"context"
	"testing"

	"github.com/rpggio/proyek-akademik/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestSlotRepository_SetGet(t *testing.T) {
	db := NewTestDB(t)
	repo := NewSlotRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "academicProject", `{"title":"A"}`))

	value, err := repo.Get(ctx, "academicProject")
	require.NoError(t, err)
	require.Equal(t, `{"title":"A"}`, value)

	// Last write wins
	require.NoError(t, repo.Set(ctx, "academicProject", `{"title":"B"}`))
	value, err = repo.Get(ctx, "academicProject")
	require.NoError(t, err)
	require.Equal(t, `{"title":"B"}`, value)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM slots`).Scan(&count))
	require.Equal(t, 1, count)
}

func TestSlotRepository_GetMissing(t *testing.T) {
	db := NewTestDB(t)
	repo := NewSlotRepository(db)

	_, err := repo.Get(context.Background(), "nothing-here")
	require.Equal(t, repository.ErrNotFound, err)
}

func TestSlotRepository_Remove(t *testing.T) {
	db := NewTestDB(t)
	repo := NewSlotRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "academicProject", "x"))
	require.NoError(t, repo.Set(ctx, "other", "y"))
	require.NoError(t, repo.Remove(ctx, "academicProject"))

	_, err := repo.Get(ctx, "academicProject")
	require.Equal(t, repository.ErrNotFound, err)

	value, err := repo.Get(ctx, "other")
	require.NoError(t, err)
	require.Equal(t, "y", value)

	// Removing again is harmless
	require.NoError(t, repo.Remove(ctx, "academicProject"))
}

func TestSlotRepository_EmptyKey(t *testing.T) {
	db := NewTestDB(t)
	repo := NewSlotRepository(db)
	ctx := context.Background()

	_, err := repo.Get(ctx, "")
	require.ErrorIs(t, err, errEmptyKey)
	require.ErrorIs(t, err, repository.ErrInvalidInput)
	require.ErrorIs(t, repo.Set(ctx, "", "x"), errEmptyKey)
	require.ErrorIs(t, repo.Remove(ctx, ""), errEmptyKey)
}
