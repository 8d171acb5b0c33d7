package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type FocusRepo struct {
	db *sql.DB
}

func NewFocusRepo(db *sql.DB) *FocusRepo {
	return &FocusRepo{db: db}
}

func (r *FocusRepo) Insert(ctx context.Context, s FocusSession) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO focus_sessions (id, user_id, duration_minutes, mode, completed_at)
		VALUES (?, ?, ?, ?, ?)
	`, s.ID, s.UserID, s.DurationMinutes, s.Mode, s.CompletedAt)
	if err != nil {
		return fmt.Errorf("focus insert: %w", err)
	}
	return nil
}

// MinutesSince sums focused minutes (mode = focus) completed at or after t.
func (r *FocusRepo) MinutesSince(ctx context.Context, userID string, t time.Time) (int, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(duration_minutes), 0)
		FROM focus_sessions
		WHERE user_id = ? AND mode = 'focus' AND completed_at >= ?
	`, userID, t)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("focus minutes: %w", err)
	}
	return n, nil
}
