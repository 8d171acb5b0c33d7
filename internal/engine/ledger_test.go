package engine

import (
	"context"
	"testing"

	"neurofocus/internal/storage"
)

func TestLedgerFloors(t *testing.T) {
	e := storage.ActivityEntry{UserID: "user-1", Date: testToday, Count: 1, TotalXP: 20}

	e = applyActivity(e, -1, -20)
	if e.Count != 0 || e.TotalXP != 0 {
		t.Fatalf("after full undo: count=%d xp=%d, want 0/0", e.Count, e.TotalXP)
	}

	// Undoing more than was recorded never goes negative.
	e = applyActivity(e, -1, -50)
	if e.Count != 0 || e.TotalXP != 0 {
		t.Fatalf("after over-undo: count=%d xp=%d, want 0/0", e.Count, e.TotalXP)
	}
}

func TestStreakIncrementsOnFirstCompletionOfDay(t *testing.T) {
	ctx := context.Background()
	sess := newTestSession(t, newFakeStore(), []storage.Task{
		testTask("a", TaskDaily),
		testTask("b", TaskDaily),
	}, nil)

	if _, err := sess.Toggle(ctx, "a"); err != nil {
		t.Fatalf("toggle a: %v", err)
	}
	if got := sess.Profile().StreakDays; got != 1 {
		t.Fatalf("streak after first completion=%d, want 1", got)
	}

	// Second completion the same day does not move the streak again.
	if _, err := sess.Toggle(ctx, "b"); err != nil {
		t.Fatalf("toggle b: %v", err)
	}
	if got := sess.Profile().StreakDays; got != 1 {
		t.Fatalf("streak after second completion=%d, want 1", got)
	}
}

func TestStreakDecrementsWhenLastCompletionUndone(t *testing.T) {
	ctx := context.Background()
	sess := newTestSession(t, newFakeStore(), []storage.Task{testTask("a", TaskDaily)}, nil)

	if _, err := sess.Toggle(ctx, "a"); err != nil {
		t.Fatalf("check: %v", err)
	}
	if _, err := sess.Toggle(ctx, "a"); err != nil {
		t.Fatalf("uncheck: %v", err)
	}
	if got := sess.Profile().StreakDays; got != 0 {
		t.Fatalf("streak after undoing the day's only completion=%d, want 0", got)
	}
}

func TestReconcileStreakResetsAfterAFullIdleDay(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()

	// Last activity two days ago: streak is stale and must reset.
	profile := testProfile()
	profile.StreakDays = 6
	sess := NewSession(profile, nil, []storage.ActivityEntry{
		{UserID: "user-1", Date: "2026-03-12", Count: 3, TotalXP: 60},
	}, store, WithToday(func() string { return testToday }))

	sess.ReconcileStreak(ctx)
	if got := sess.Profile().StreakDays; got != 0 {
		t.Fatalf("stale streak=%d, want 0", got)
	}
}

func TestReconcileStreakLeavesPendingStreak(t *testing.T) {
	ctx := context.Background()

	// Activity yesterday, none yet today: streak is pending, not broken.
	profile := testProfile()
	profile.StreakDays = 4
	sess := NewSession(profile, nil, []storage.ActivityEntry{
		{UserID: "user-1", Date: testYesterday, Count: 2, TotalXP: 40},
	}, newFakeStore(), WithToday(func() string { return testToday }))

	sess.ReconcileStreak(ctx)
	if got := sess.Profile().StreakDays; got != 4 {
		t.Fatalf("pending streak=%d, want 4 untouched", got)
	}
}

func TestHeatLevelBuckets(t *testing.T) {
	cases := map[int]int{0: 0, 1: 1, 2: 1, 3: 2, 4: 2, 5: 3, 6: 3, 7: 4, 20: 4}
	for count, want := range cases {
		if got := HeatLevel(count); got != want {
			t.Fatalf("HeatLevel(%d)=%d, want %d", count, got, want)
		}
	}
}

func TestChallengesDeriveFromLedger(t *testing.T) {
	ctx := context.Background()
	sess := newTestSession(t, newFakeStore(), []storage.Task{testTask("a", TaskDaily)}, nil)

	if _, err := sess.Toggle(ctx, "a"); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	var firstCheck *Challenge
	for _, c := range sess.Challenges() {
		if c.ID == "first_check" {
			cc := c
			firstCheck = &cc
			break
		}
	}
	if firstCheck == nil {
		t.Fatal("first_check challenge missing")
	}
	if !firstCheck.Done || firstCheck.Current != 1 {
		t.Fatalf("first_check done=%v current=%d, want done at 1", firstCheck.Done, firstCheck.Current)
	}
}
