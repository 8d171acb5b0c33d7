package storage

import (
	"context"
	"database/sql"
)

// Store bundles the per-table repos behind one handle. It satisfies the
// engine's Persister port.
type Store struct {
	db       *sql.DB
	profiles *ProfileRepo
	tasks    *TaskRepo
	activity *ActivityRepo
	focus    *FocusRepo
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:       db,
		profiles: NewProfileRepo(db),
		tasks:    NewTaskRepo(db),
		activity: NewActivityRepo(db),
		focus:    NewFocusRepo(db),
	}
}

func (s *Store) Profiles() *ProfileRepo { return s.profiles }
func (s *Store) Tasks() *TaskRepo       { return s.tasks }
func (s *Store) Activity() *ActivityRepo { return s.activity }
func (s *Store) Focus() *FocusRepo      { return s.focus }

func (s *Store) SaveProfileProgress(ctx context.Context, id string, patch ProfileProgressPatch) error {
	return s.profiles.UpdateProgress(ctx, id, patch)
}

func (s *Store) SaveProfileSettings(ctx context.Context, id string, patch ProfileSettingsPatch) error {
	return s.profiles.UpdateSettings(ctx, id, patch)
}

func (s *Store) SaveTaskCompletion(ctx context.Context, id string, patch TaskCompletionPatch) error {
	return s.tasks.UpdateCompletion(ctx, id, patch)
}

func (s *Store) ResetTasks(ctx context.Context, ids []string, patch TaskResetPatch) error {
	return s.tasks.ResetBatch(ctx, ids, patch)
}

func (s *Store) InsertTask(ctx context.Context, t Task) error {
	return s.tasks.Insert(ctx, t)
}

func (s *Store) DeleteTask(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}

func (s *Store) UpsertActivity(ctx context.Context, e ActivityEntry) error {
	return s.activity.Upsert(ctx, e)
}

func (s *Store) ReplaceSubtasks(ctx context.Context, taskID string, subs []Subtask) error {
	return s.tasks.ReplaceSubtasks(ctx, taskID, subs)
}

func (s *Store) SaveSubtaskCompletion(ctx context.Context, subtaskID string, done bool) error {
	return s.tasks.UpdateSubtaskCompletion(ctx, subtaskID, done)
}
