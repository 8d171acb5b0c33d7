package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

type TaskRepo struct {
	db *sql.DB
}

func NewTaskRepo(db *sql.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

func (r *TaskRepo) Insert(ctx context.Context, t Task) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (id, user_id, title, type, is_completed, points, last_completed_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, t.ID, t.UserID, t.Title, t.Type, boolToInt(t.IsCompleted), t.Points, t.LastCompletedDate, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("task insert: %w", err)
	}
	return nil
}

func (r *TaskRepo) Get(ctx context.Context, id string) (*Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, title, type, is_completed, points, last_completed_date, created_at
		FROM tasks
		WHERE id = ?
	`, id)
	t, err := scanTask(row)
	if err != nil || t == nil {
		return t, err
	}
	if err := r.attachSubtasks(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// ListByUser returns the user's tasks with subtasks attached, newest first.
func (r *TaskRepo) ListByUser(ctx context.Context, userID string) ([]Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, title, type, is_completed, points, last_completed_date, created_at
		FROM tasks
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("task list: %w", err)
	}
	defer rows.Close()

	var out []Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("task list rows: %w", err)
	}

	for i := range out {
		if err := r.attachSubtasks(ctx, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// UpdateCompletion writes a toggle's outcome. A nil LastCompletedDate in the
// patch leaves the stored date untouched.
func (r *TaskRepo) UpdateCompletion(ctx context.Context, id string, patch TaskCompletionPatch) error {
	var err error
	if patch.LastCompletedDate != nil {
		_, err = r.db.ExecContext(ctx, `
			UPDATE tasks SET is_completed = ?, points = ?, last_completed_date = ? WHERE id = ?
		`, boolToInt(patch.IsCompleted), patch.Points, *patch.LastCompletedDate, id)
	} else {
		_, err = r.db.ExecContext(ctx, `
			UPDATE tasks SET is_completed = ?, points = ? WHERE id = ?
		`, boolToInt(patch.IsCompleted), patch.Points, id)
	}
	if err != nil {
		return fmt.Errorf("task update completion: %w", err)
	}
	return nil
}

// ResetBatch is the daily sweep's batched write: one statement per group of
// same-base tasks, back to incomplete at base points.
func (r *TaskRepo) ResetBatch(ctx context.Context, ids []string, patch TaskResetPatch) error {
	if len(ids) == 0 {
		return nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", ")
	args := make([]any, 0, len(ids)+1)
	args = append(args, patch.Points)
	for _, id := range ids {
		args = append(args, id)
	}

	_, err := r.db.ExecContext(ctx, `
		UPDATE tasks SET is_completed = 0, points = ? WHERE id IN (`+placeholders+`)
	`, args...)
	if err != nil {
		return fmt.Errorf("task reset batch: %w", err)
	}
	return nil
}

func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM subtasks WHERE task_id = ?`, id); err != nil {
		return fmt.Errorf("subtask delete: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("task delete: %w", err)
	}
	return nil
}

// ReplaceSubtasks swaps a task's step list wholesale (AI breakdown output).
func (r *TaskRepo) ReplaceSubtasks(ctx context.Context, taskID string, subs []Subtask) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM subtasks WHERE task_id = ?`, taskID); err != nil {
		return fmt.Errorf("subtask clear: %w", err)
	}
	for _, s := range subs {
		if _, err := r.db.ExecContext(ctx, `
			INSERT INTO subtasks (id, task_id, position, title, is_completed)
			VALUES (?, ?, ?, ?, ?)
		`, s.ID, taskID, s.Position, s.Title, boolToInt(s.IsCompleted)); err != nil {
			return fmt.Errorf("subtask insert: %w", err)
		}
	}
	return nil
}

func (r *TaskRepo) UpdateSubtaskCompletion(ctx context.Context, subtaskID string, done bool) error {
	_, err := r.db.ExecContext(ctx, `UPDATE subtasks SET is_completed = ? WHERE id = ?`, boolToInt(done), subtaskID)
	if err != nil {
		return fmt.Errorf("subtask update: %w", err)
	}
	return nil
}

func (r *TaskRepo) attachSubtasks(ctx context.Context, t *Task) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, task_id, position, title, is_completed
		FROM subtasks
		WHERE task_id = ?
		ORDER BY position ASC
	`, t.ID)
	if err != nil {
		return fmt.Errorf("subtask list: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s Subtask
		var done int
		if err := rows.Scan(&s.ID, &s.TaskID, &s.Position, &s.Title, &done); err != nil {
			return fmt.Errorf("subtask scan: %w", err)
		}
		s.IsCompleted = done != 0
		t.Subtasks = append(t.Subtasks, s)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("subtask rows: %w", err)
	}
	return nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (*Task, error) {
	var t Task
	var done int
	var lastDate sql.NullString

	if err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Type, &done, &t.Points, &lastDate, &t.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("task scan: %w", err)
	}
	t.IsCompleted = done != 0
	if lastDate.Valid {
		v := lastDate.String
		t.LastCompletedDate = &v
	}
	return &t, nil
}
