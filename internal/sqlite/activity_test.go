package sqlite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rpggio/proyek-akademik/internal/domain/activity"
	"github.com/stretchr/testify/require"
)

func TestActivityRepository_LogList(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewActivityRepository(db)
	entry1 := &activity.ActivityEntry{
		SlotKey:      "academicProject",
		ActivityType: activity.TypeProjectCreated,
		Title:        "Analisis Data",
		Summary:      "Project created",
		Details:      `{"request_id":"r1"}`,
	}
	entry2 := &activity.ActivityEntry{
		SlotKey:      "academicProject",
		ActivityType: activity.TypeProjectExported,
		Title:        "Analisis Data",
		Summary:      "Project exported",
		Details:      "proyek-akademik-analisis-data.json",
	}

	require.NoError(t, repo.Log(ctx, entry1))
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, repo.Log(ctx, entry2))
	require.NotZero(t, entry1.ID)
	require.NotZero(t, entry2.ID)

	entries, err := repo.List(ctx, activity.ListActivityOptions{SlotKey: "academicProject"})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, entry2.ActivityType, entries[0].ActivityType)
	require.Equal(t, entry1.ActivityType, entries[1].ActivityType)
	require.Equal(t, "Analisis Data", entries[1].Title)
	require.Equal(t, `{"request_id":"r1"}`, entries[1].Details)
}

func TestActivityRepository_Filters(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewActivityRepository(db)

	require.NoError(t, repo.Log(ctx, &activity.ActivityEntry{SlotKey: "a", ActivityType: activity.TypeProjectUpdated, Summary: "u1"}))
	require.NoError(t, repo.Log(ctx, &activity.ActivityEntry{SlotKey: "a", ActivityType: activity.TypeProjectReset, Summary: "r1"}))
	require.NoError(t, repo.Log(ctx, &activity.ActivityEntry{SlotKey: "b", ActivityType: activity.TypeProjectUpdated, Summary: "u2"}))

	entries, err := repo.List(ctx, activity.ListActivityOptions{SlotKey: "b"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "u2", entries[0].Summary)

	resetType := activity.TypeProjectReset
	entries, err = repo.List(ctx, activity.ListActivityOptions{ActivityType: &resetType})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "r1", entries[0].Summary)

	entries, err = repo.List(ctx, activity.ListActivityOptions{Limit: 2})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	entries, err = repo.List(ctx, activity.ListActivityOptions{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestActivityRepository_Prune(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewActivityRepository(db)

	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Log(ctx, &activity.ActivityEntry{
			SlotKey:      "a",
			ActivityType: activity.TypeProjectUpdated,
			Summary:      fmt.Sprintf("u%d", i),
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, repo.Log(ctx, &activity.ActivityEntry{SlotKey: "b", ActivityType: activity.TypeProjectUpdated, Summary: "other"}))

	removed, err := repo.Prune(ctx, "a", 2)
	require.NoError(t, err)
	require.EqualValues(t, 3, removed)

	entries, err := repo.List(ctx, activity.ListActivityOptions{SlotKey: "a"})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "u4", entries[0].Summary)
	require.Equal(t, "u3", entries[1].Summary)

	entries, err = repo.List(ctx, activity.ListActivityOptions{SlotKey: "b"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
