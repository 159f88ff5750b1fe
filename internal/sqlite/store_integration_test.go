package sqlite

import (
	"context"
	"testing"

	"github.com/rpggio/proyek-akademik/internal/domain/activity"
	"github.com/rpggio/proyek-akademik/internal/domain/project"
	"github.com/rpggio/proyek-akademik/internal/repository"
	"github.com/stretchr/testify/require"
)

type confirmAll struct{}

func (confirmAll) Confirm(context.Context, string) bool { return true }
func (confirmAll) Notify(context.Context, string) {}

func TestProjectStore_SurvivesRestart(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	slots := NewSlotRepository(db)
	history := activity.NewService(NewActivityRepository(db), nil)

	first := project.NewStore(project.Config{Storage: slots, Recorder: history, Prompter: confirmAll{}})
	require.NoError(t, first.Load(ctx))

	doc := project.DefaultDocument()
	doc.Title = "Sistem Pakar Diagnosa"
	doc.ApprovalData = project.Record{"supervisor": "Dr. Budi"}
	require.NoError(t, first.Update(ctx, doc))

	second := project.NewStore(project.Config{Storage: slots, Prompter: confirmAll{}})
	require.NoError(t, second.Load(ctx))
	require.Equal(t, doc, second.Current())

	done, err := second.Reset(ctx)
	require.NoError(t, err)
	require.True(t, done)

	_, err = slots.Get(ctx, project.DefaultSlotKey)
	require.ErrorIs(t, err, repository.ErrNotFound)

	entries, err := history.GetRecentActivity(ctx, activity.ListActivityOptions{SlotKey: project.DefaultSlotKey})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, activity.TypeProjectUpdated, entries[0].ActivityType)
}
