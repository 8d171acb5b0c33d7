package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS profiles (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL,
			username TEXT NOT NULL DEFAULT '',
			bio TEXT NOT NULL DEFAULT '',
			level INTEGER NOT NULL DEFAULT 1,
			current_xp INTEGER NOT NULL DEFAULT 0,
			xp_to_next_level INTEGER NOT NULL DEFAULT 100,
			streak_days INTEGER NOT NULL DEFAULT 0,
			chronotype TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			title TEXT NOT NULL,
			type TEXT NOT NULL,
			is_completed INTEGER NOT NULL DEFAULT 0,
			points INTEGER NOT NULL,
			last_completed_date TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,

			FOREIGN KEY(user_id) REFERENCES profiles(id)
		);`,
		`CREATE TABLE IF NOT EXISTS subtasks (
			id TEXT PRIMARY KEY,
			task_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			title TEXT NOT NULL,
			is_completed INTEGER NOT NULL DEFAULT 0,

			FOREIGN KEY(task_id) REFERENCES tasks(id)
		);`,
		// One row per (user, local calendar day); feeds the heatmap and
		// the streak counter.
		`CREATE TABLE IF NOT EXISTS activity (
			user_id TEXT NOT NULL,
			date TEXT NOT NULL,
			count INTEGER NOT NULL DEFAULT 0,
			total_xp INTEGER NOT NULL DEFAULT 0,

			PRIMARY KEY(user_id, date)
		);`,
		`CREATE TABLE IF NOT EXISTS focus_sessions (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			duration_minutes INTEGER NOT NULL,
			mode TEXT NOT NULL,
			completed_at DATETIME NOT NULL,

			FOREIGN KEY(user_id) REFERENCES profiles(id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_user_id ON tasks(user_id);`,
		`CREATE INDEX IF NOT EXISTS idx_subtasks_task_id ON subtasks(task_id);`,
		`CREATE INDEX IF NOT EXISTS idx_focus_sessions_user_id_completed_at ON focus_sessions(user_id, completed_at);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
