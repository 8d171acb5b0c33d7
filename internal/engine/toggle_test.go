package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"neurofocus/internal/storage"
)

const (
	testToday     = "2026-03-14"
	testYesterday = "2026-03-13"
)

// fakeStore records writes and optionally fails them all, to verify the
// optimistic fire-and-forget contract.
type fakeStore struct {
	failing bool

	completionWrites map[string][]storage.TaskCompletionPatch
	resetWrites      map[int][]string
	activityWrites   []storage.ActivityEntry
	progressWrites   []storage.ProfileProgressPatch
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		completionWrites: map[string][]storage.TaskCompletionPatch{},
		resetWrites:      map[int][]string{},
	}
}

func (f *fakeStore) err() error {
	if f.failing {
		return errors.New("store unavailable")
	}
	return nil
}

func (f *fakeStore) SaveProfileProgress(_ context.Context, _ string, p storage.ProfileProgressPatch) error {
	f.progressWrites = append(f.progressWrites, p)
	return f.err()
}

func (f *fakeStore) SaveProfileSettings(context.Context, string, storage.ProfileSettingsPatch) error {
	return f.err()
}

func (f *fakeStore) SaveTaskCompletion(_ context.Context, id string, p storage.TaskCompletionPatch) error {
	f.completionWrites[id] = append(f.completionWrites[id], p)
	return f.err()
}

func (f *fakeStore) ResetTasks(_ context.Context, ids []string, p storage.TaskResetPatch) error {
	f.resetWrites[p.Points] = append(f.resetWrites[p.Points], ids...)
	return f.err()
}

func (f *fakeStore) InsertTask(context.Context, storage.Task) error { return f.err() }
func (f *fakeStore) DeleteTask(context.Context, string) error       { return f.err() }

func (f *fakeStore) UpsertActivity(_ context.Context, e storage.ActivityEntry) error {
	f.activityWrites = append(f.activityWrites, e)
	return f.err()
}

func (f *fakeStore) ReplaceSubtasks(context.Context, string, []storage.Subtask) error {
	return f.err()
}

func (f *fakeStore) SaveSubtaskCompletion(context.Context, string, bool) error { return f.err() }

func testProfile() *storage.Profile {
	return &storage.Profile{
		ID: "user-1", Email: "neo@example.com", Username: "neo",
		Level: 1, CurrentXP: 0, XPToNext: 100, StreakDays: 0,
	}
}

func testTask(id string, taskType TaskType) storage.Task {
	return storage.Task{
		ID:        id,
		UserID:    "user-1",
		Title:     "Task " + id,
		Type:      string(taskType),
		Points:    BasePoints(taskType),
		CreatedAt: time.Now().UTC(),
	}
}

func newTestSession(t *testing.T, store Persister, tasks []storage.Task, activity []storage.ActivityEntry) *Session {
	t.Helper()
	return NewSession(testProfile(), tasks, activity, store,
		WithRoller(NewRollerFrom(rand.New(rand.NewSource(42)))),
		WithToday(func() string { return testToday }),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
}

func TestToggleAntiFarmIdempotence(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	sess := newTestSession(t, store, []storage.Task{testTask("t1", TaskDaily)}, nil)

	first, err := sess.Toggle(ctx, "t1")
	if err != nil {
		t.Fatalf("first check: %v", err)
	}
	if !first.Completed {
		t.Fatal("first toggle should complete")
	}

	undo, err := sess.Toggle(ctx, "t1")
	if err != nil {
		t.Fatalf("uncheck: %v", err)
	}
	if undo.Completed || undo.Points != first.Points {
		t.Fatalf("undo points=%d, want the frozen %d", undo.Points, first.Points)
	}

	// Uncheck must keep last_completed_date, so the re-check reuses the
	// stored reward instead of rolling again.
	task := sess.Tasks()[0]
	if task.LastCompletedDate == nil || *task.LastCompletedDate != testToday {
		t.Fatal("uncheck cleared last_completed_date")
	}

	second, err := sess.Toggle(ctx, "t1")
	if err != nil {
		t.Fatalf("re-check: %v", err)
	}
	if second.Points != first.Points {
		t.Fatalf("re-check rolled new points %d, want %d", second.Points, first.Points)
	}
	if second.Tier != TierForPoints(TaskDaily, first.Points) {
		t.Fatalf("re-check tier %s not derived from stored points", second.Tier)
	}

	// Net effect of check, uncheck, check equals a single check. A daily
	// can roll at most 70 points, so the profile stays on level 1.
	p := sess.Profile()
	if p.Level != 1 || p.CurrentXP != first.Points {
		t.Fatalf("profile after cycle: level=%d xp=%d, want (1, %d)", p.Level, p.CurrentXP, first.Points)
	}
	if e := sess.Entry(testToday); e.Count != 1 || e.TotalXP != first.Points {
		t.Fatalf("ledger after cycle: count=%d xp=%d, want 1/%d", e.Count, e.TotalXP, first.Points)
	}
}

func TestToggleSharesOneResolvedPointsValue(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	sess := newTestSession(t, store, []storage.Task{testTask("t1", TaskHabit)}, nil)

	res, err := sess.Toggle(ctx, "t1")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}

	p := sess.Profile()
	if p.CurrentXP != res.Points {
		t.Fatalf("profile got %d XP, toggle resolved %d", p.CurrentXP, res.Points)
	}
	if e := sess.Entry(testToday); e.TotalXP != res.Points {
		t.Fatalf("ledger got %d XP, toggle resolved %d", e.TotalXP, res.Points)
	}
	// The stored task points must equal what was applied.
	if got := sess.Tasks()[0].Points; got != res.Points {
		t.Fatalf("stored points %d, applied %d", got, res.Points)
	}
}

func TestToggleStoreFailureKeepsInMemoryState(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.failing = true
	sess := newTestSession(t, store, []storage.Task{testTask("t1", TaskTodo)}, nil)

	res, err := sess.Toggle(ctx, "t1")
	if err != nil {
		t.Fatalf("toggle must not surface store errors: %v", err)
	}
	if !sess.Tasks()[0].IsCompleted {
		t.Fatal("optimistic completion rolled back on store failure")
	}
	if sess.Profile().CurrentXP == 0 && sess.Profile().Level == 1 && res.Points > 0 {
		t.Fatal("XP not applied despite optimistic contract")
	}
}

func TestToggleUnknownTask(t *testing.T) {
	sess := newTestSession(t, newFakeStore(), nil, nil)
	if _, err := sess.Toggle(context.Background(), "nope"); err == nil {
		t.Fatal("expected not-found error")
	}
}

func TestSweepResetsStaleRecurringTasks(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()

	yesterday := testYesterday
	today := testToday

	staleDaily := testTask("daily-stale", TaskDaily)
	staleDaily.IsCompleted = true
	staleDaily.Points = 40 // rolled critical yesterday
	staleDaily.LastCompletedDate = &yesterday

	staleHabit := testTask("habit-stale", TaskHabit)
	staleHabit.IsCompleted = true
	staleHabit.Points = 60
	staleHabit.LastCompletedDate = &yesterday

	freshHabit := testTask("habit-today", TaskHabit)
	freshHabit.IsCompleted = true
	freshHabit.Points = 20
	freshHabit.LastCompletedDate = &today

	doneTodo := testTask("todo-done", TaskTodo)
	doneTodo.IsCompleted = true
	doneTodo.LastCompletedDate = &yesterday

	sess := newTestSession(t, store, []storage.Task{staleDaily, staleHabit, freshHabit, doneTodo}, nil)
	reset := sess.SweepDailyReset(ctx)

	if len(reset) != 2 {
		t.Fatalf("reset %d tasks, want 2: %v", len(reset), reset)
	}
	for _, task := range sess.Tasks() {
		switch task.ID {
		case "daily-stale":
			if task.IsCompleted || task.Points != 20 {
				t.Fatalf("stale daily not reset to base: done=%v points=%d", task.IsCompleted, task.Points)
			}
		case "habit-stale":
			if task.IsCompleted || task.Points != 10 {
				t.Fatalf("stale habit not reset to its own base: done=%v points=%d", task.IsCompleted, task.Points)
			}
		case "habit-today":
			if !task.IsCompleted || task.Points != 20 {
				t.Fatal("habit completed today must be left untouched")
			}
		case "todo-done":
			if !task.IsCompleted {
				t.Fatal("one-off tasks are never swept")
			}
		}
	}

	// Batched writes grouped per base value.
	if got := store.resetWrites[20]; len(got) != 1 || got[0] != "daily-stale" {
		t.Fatalf("base-20 batch %v", got)
	}
	if got := store.resetWrites[10]; len(got) != 1 || got[0] != "habit-stale" {
		t.Fatalf("base-10 batch %v", got)
	}
}

func TestSweepResetsNeverCompletedDateAbsent(t *testing.T) {
	// A completed recurring task with no recorded date counts as stale.
	store := newFakeStore()
	task := testTask("d1", TaskDaily)
	task.IsCompleted = true

	sess := newTestSession(t, store, []storage.Task{task}, nil)
	reset := sess.SweepDailyReset(context.Background())
	if len(reset) != 1 || reset[0] != "d1" {
		t.Fatalf("reset=%v, want [d1]", reset)
	}
}
