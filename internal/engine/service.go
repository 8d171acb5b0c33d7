package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"neurofocus/internal/clock"
	"neurofocus/internal/storage"
)

// How far back the session keeps ledger entries in memory. Twelve weeks
// covers the heatmap plus the streak reconcile window.
const activityWindowDays = 84

type Identity struct {
	UserID string
	Email  string
}

// Load builds the user's session from the store: profile (created with
// defaults on first run), task list and recent ledger, then runs the daily
// reset sweep and the streak reconcile. Row-level read failures degrade to
// an empty list with a warning; only an unusable profile is fatal.
func Load(ctx context.Context, store *storage.Store, id Identity, opts ...Option) (*Session, error) {
	username := id.Email
	if at := strings.IndexByte(username, '@'); at > 0 {
		username = username[:at]
	}

	profile, err := store.Profiles().GetOrCreate(ctx, id.UserID, id.Email, username)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	tasks, err := store.Tasks().ListByUser(ctx, id.UserID)
	if err != nil {
		slog.Warn("task load failed, starting with empty list", "err", err)
		tasks = nil
	}

	since := clock.Day(time.Now().AddDate(0, 0, -activityWindowDays))
	activity, err := store.Activity().ListSince(ctx, id.UserID, since)
	if err != nil {
		slog.Warn("activity load failed, starting with empty ledger", "err", err)
		activity = nil
	}

	sess := NewSession(profile, tasks, activity, store, opts...)
	sess.SweepDailyReset(ctx)
	sess.ReconcileStreak(ctx)
	return sess, nil
}
