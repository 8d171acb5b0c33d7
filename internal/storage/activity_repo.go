package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type ActivityRepo struct {
	db *sql.DB
}

func NewActivityRepo(db *sql.DB) *ActivityRepo {
	return &ActivityRepo{db: db}
}

// Upsert writes the day's running totals. Entries are created on the first
// completion of a day and never deleted; undone days just sit at zero.
func (r *ActivityRepo) Upsert(ctx context.Context, e ActivityEntry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO activity (user_id, date, count, total_xp) VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id, date) DO UPDATE SET count = excluded.count, total_xp = excluded.total_xp
	`, e.UserID, e.Date, e.Count, e.TotalXP)
	if err != nil {
		return fmt.Errorf("activity upsert: %w", err)
	}
	return nil
}

func (r *ActivityRepo) Get(ctx context.Context, userID, date string) (*ActivityEntry, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT user_id, date, count, total_xp FROM activity WHERE user_id = ? AND date = ?
	`, userID, date)
	var e ActivityEntry
	if err := row.Scan(&e.UserID, &e.Date, &e.Count, &e.TotalXP); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("activity get: %w", err)
	}
	return &e, nil
}

// ListSince returns entries on or after the given day, oldest first.
func (r *ActivityRepo) ListSince(ctx context.Context, userID, sinceDate string) ([]ActivityEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT user_id, date, count, total_xp
		FROM activity
		WHERE user_id = ? AND date >= ?
		ORDER BY date ASC
	`, userID, sinceDate)
	if err != nil {
		return nil, fmt.Errorf("activity list: %w", err)
	}
	defer rows.Close()

	var out []ActivityEntry
	for rows.Next() {
		var e ActivityEntry
		if err := rows.Scan(&e.UserID, &e.Date, &e.Count, &e.TotalXP); err != nil {
			return nil, fmt.Errorf("activity scan: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("activity rows: %w", err)
	}
	return out, nil
}
