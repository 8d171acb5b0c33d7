package storage_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neurofocus/internal/engine"
	"neurofocus/internal/storage"
)

// The engine writes through the store; keep the port satisfied.
var _ engine.Persister = (*storage.Store)(nil)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	ctx := context.Background()

	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "nf.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return storage.NewStore(db)
}

func TestProfileGetOrCreateDefaults(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	p, err := store.Profiles().GetOrCreate(ctx, "u1", "ana@example.com", "ana")
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Equal(t, "u1", p.ID)
	assert.Equal(t, "ana", p.Username)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 0, p.CurrentXP)
	assert.Equal(t, 100, p.XPToNext)
	assert.Equal(t, 0, p.StreakDays)
	assert.Nil(t, p.Chronotype)

	// Second call returns the existing row, not a fresh default.
	require.NoError(t, store.Profiles().UpdateProgress(ctx, "u1", storage.ProfileProgressPatch{
		Level: 3, CurrentXP: 40, XPToNext: 300, StreakDays: 5,
	}))
	again, err := store.Profiles().GetOrCreate(ctx, "u1", "ana@example.com", "ana")
	require.NoError(t, err)
	assert.Equal(t, 3, again.Level)
	assert.Equal(t, 5, again.StreakDays)
}

func TestProfileSettingsPatchLeavesUnsetFields(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.Profiles().GetOrCreate(ctx, "u1", "ana@example.com", "ana")
	require.NoError(t, err)

	bio := "Deep work or nothing"
	require.NoError(t, store.Profiles().UpdateSettings(ctx, "u1", storage.ProfileSettingsPatch{Bio: &bio}))

	chrono := "wolf"
	require.NoError(t, store.Profiles().UpdateSettings(ctx, "u1", storage.ProfileSettingsPatch{Chronotype: &chrono}))

	p, err := store.Profiles().Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "ana", p.Username)
	assert.Equal(t, bio, p.Bio)
	require.NotNil(t, p.Chronotype)
	assert.Equal(t, "wolf", *p.Chronotype)
}

func TestTaskCompletionPatchKeepsStoredDate(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	task := storage.Task{
		ID: "t1", UserID: "u1", Title: "Read a chapter", Type: "todo",
		Points: 20, CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, store.Tasks().Insert(ctx, task))

	day := "2026-03-14"
	require.NoError(t, store.Tasks().UpdateCompletion(ctx, "t1", storage.TaskCompletionPatch{
		IsCompleted: true, Points: 40, LastCompletedDate: &day,
	}))

	// Uncheck patch carries no date; the stored one must survive.
	require.NoError(t, store.Tasks().UpdateCompletion(ctx, "t1", storage.TaskCompletionPatch{
		IsCompleted: false, Points: 40,
	}))

	got, err := store.Tasks().Get(ctx, "t1")
	require.NoError(t, err)
	assert.False(t, got.IsCompleted)
	assert.Equal(t, 40, got.Points)
	require.NotNil(t, got.LastCompletedDate)
	assert.Equal(t, day, *got.LastCompletedDate)
}

func TestResetBatchTouchesOnlyGivenIDs(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	day := "2026-03-13"
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, store.Tasks().Insert(ctx, storage.Task{
			ID: id, UserID: "u1", Title: id, Type: "daily",
			IsCompleted: true, Points: 40, LastCompletedDate: &day,
			CreatedAt: time.Now().UTC(),
		}))
	}

	require.NoError(t, store.Tasks().ResetBatch(ctx, []string{"a", "b"}, storage.TaskResetPatch{Points: 20}))

	a, err := store.Tasks().Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, a.IsCompleted)
	assert.Equal(t, 20, a.Points)

	c, err := store.Tasks().Get(ctx, "c")
	require.NoError(t, err)
	assert.True(t, c.IsCompleted)
	assert.Equal(t, 40, c.Points)

	// Empty batch is a no-op, not an error.
	assert.NoError(t, store.Tasks().ResetBatch(ctx, nil, storage.TaskResetPatch{Points: 20}))
}

func TestActivityUpsertOverwritesDay(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	e := storage.ActivityEntry{UserID: "u1", Date: "2026-03-14", Count: 1, TotalXP: 20}
	require.NoError(t, store.Activity().Upsert(ctx, e))

	e.Count, e.TotalXP = 2, 60
	require.NoError(t, store.Activity().Upsert(ctx, e))

	got, err := store.Activity().Get(ctx, "u1", "2026-03-14")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Count)
	assert.Equal(t, 60, got.TotalXP)
}

func TestActivityListSinceOrdersAndFilters(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	for _, e := range []storage.ActivityEntry{
		{UserID: "u1", Date: "2026-03-14", Count: 3, TotalXP: 70},
		{UserID: "u1", Date: "2026-03-10", Count: 1, TotalXP: 20},
		{UserID: "u1", Date: "2026-03-12", Count: 2, TotalXP: 30},
		{UserID: "someone-else", Date: "2026-03-12", Count: 9, TotalXP: 90},
	} {
		require.NoError(t, store.Activity().Upsert(ctx, e))
	}

	got, err := store.Activity().ListSince(ctx, "u1", "2026-03-12")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2026-03-12", got[0].Date)
	assert.Equal(t, "2026-03-14", got[1].Date)
}

func TestReplaceSubtasksAndToggle(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Tasks().Insert(ctx, storage.Task{
		ID: "t1", UserID: "u1", Title: "Write report", Type: "todo",
		Points: 20, CreatedAt: time.Now().UTC(),
	}))

	subs := []storage.Subtask{
		{ID: "s1", TaskID: "t1", Position: 0, Title: "Outline sections"},
		{ID: "s2", TaskID: "t1", Position: 1, Title: "Draft intro"},
	}
	require.NoError(t, store.Tasks().ReplaceSubtasks(ctx, "t1", subs))
	require.NoError(t, store.Tasks().UpdateSubtaskCompletion(ctx, "s1", true))

	got, err := store.Tasks().Get(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, got.Subtasks, 2)
	assert.Equal(t, "Outline sections", got.Subtasks[0].Title)
	assert.True(t, got.Subtasks[0].IsCompleted)
	assert.False(t, got.Subtasks[1].IsCompleted)

	// A second replace swaps the list wholesale.
	require.NoError(t, store.Tasks().ReplaceSubtasks(ctx, "t1", []storage.Subtask{
		{ID: "s3", TaskID: "t1", Position: 0, Title: "Start over"},
	}))
	got, err = store.Tasks().Get(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, got.Subtasks, 1)
	assert.Equal(t, "Start over", got.Subtasks[0].Title)
}

func TestDeleteTaskRemovesSubtasks(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Tasks().Insert(ctx, storage.Task{
		ID: "t1", UserID: "u1", Title: "Doomed", Type: "todo",
		Points: 20, CreatedAt: time.Now().UTC(),
	}))
	require.NoError(t, store.Tasks().ReplaceSubtasks(ctx, "t1", []storage.Subtask{
		{ID: "s1", TaskID: "t1", Position: 0, Title: "step"},
	}))

	require.NoError(t, store.Tasks().Delete(ctx, "t1"))

	got, err := store.Tasks().Get(ctx, "t1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFocusMinutesSince(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	now := time.Now().UTC()
	sessions := []storage.FocusSession{
		{ID: "f1", UserID: "u1", DurationMinutes: 25, Mode: "focus", CompletedAt: now},
		{ID: "f2", UserID: "u1", DurationMinutes: 50, Mode: "focus", CompletedAt: now.Add(-time.Hour)},
		{ID: "f3", UserID: "u1", DurationMinutes: 5, Mode: "break", CompletedAt: now},
		{ID: "f4", UserID: "u1", DurationMinutes: 25, Mode: "focus", CompletedAt: now.Add(-48 * time.Hour)},
	}
	for _, s := range sessions {
		require.NoError(t, store.Focus().Insert(ctx, s))
	}

	got, err := store.Focus().MinutesSince(ctx, "u1", now.Add(-2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 75, got)
}
