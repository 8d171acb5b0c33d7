package engine

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"neurofocus/internal/clock"
	"neurofocus/internal/storage"
)

// Persister is the port the session writes through. Writes are optimistic
// fire-and-forget: the in-memory state is the source of truth for the
// process lifetime, and a failed write is logged and ignored, never rolled
// back.
type Persister interface {
	SaveProfileProgress(ctx context.Context, id string, patch storage.ProfileProgressPatch) error
	SaveProfileSettings(ctx context.Context, id string, patch storage.ProfileSettingsPatch) error
	SaveTaskCompletion(ctx context.Context, id string, patch storage.TaskCompletionPatch) error
	ResetTasks(ctx context.Context, ids []string, patch storage.TaskResetPatch) error
	InsertTask(ctx context.Context, t storage.Task) error
	DeleteTask(ctx context.Context, id string) error
	UpsertActivity(ctx context.Context, e storage.ActivityEntry) error
	ReplaceSubtasks(ctx context.Context, taskID string, subs []storage.Subtask) error
	SaveSubtaskCompletion(ctx context.Context, subtaskID string, done bool) error
}

// Notifier plays a sound/notification for an event name. Fire-and-forget.
type Notifier interface {
	Emit(event string)
}

type nopNotifier struct{}

func (nopNotifier) Emit(string) {}

// Session holds one user's profile, tasks and activity ledger in memory and
// runs every state transition to completion before the next event can
// observe it.
type Session struct {
	profile  *storage.Profile
	tasks    []storage.Task
	activity map[string]storage.ActivityEntry

	store  Persister
	roller *Roller
	notify Notifier
	log    *slog.Logger
	today  func() string
}

type Option func(*Session)

func WithRoller(r *Roller) Option          { return func(s *Session) { s.roller = r } }
func WithNotifier(n Notifier) Option       { return func(s *Session) { s.notify = n } }
func WithLogger(l *slog.Logger) Option     { return func(s *Session) { s.log = l } }
func WithToday(today func() string) Option { return func(s *Session) { s.today = today } }

func NewSession(profile *storage.Profile, tasks []storage.Task, activity []storage.ActivityEntry, store Persister, opts ...Option) *Session {
	byDay := make(map[string]storage.ActivityEntry, len(activity))
	for _, e := range activity {
		byDay[e.Date] = e
	}
	s := &Session{
		profile:  profile,
		tasks:    tasks,
		activity: byDay,
		store:    store,
		roller:   NewRoller(),
		notify:   nopNotifier{},
		log:      slog.Default(),
		today:    clock.Today,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Profile returns a copy of the current profile state.
func (s *Session) Profile() storage.Profile { return *s.profile }

// Tasks returns the in-memory task list, newest first.
func (s *Session) Tasks() []storage.Task { return s.tasks }

// Entry returns the ledger entry for a day (zero entry if none).
func (s *Session) Entry(day string) storage.ActivityEntry {
	if e, ok := s.activity[day]; ok {
		return e
	}
	return storage.ActivityEntry{UserID: s.profile.ID, Date: day}
}

// ActivityWindow returns all held entries sorted by date ascending.
func (s *Session) ActivityWindow() []storage.ActivityEntry {
	out := make([]storage.ActivityEntry, 0, len(s.activity))
	for _, e := range s.activity {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// ReconcileStreak runs at session start. A streak only breaks once a full
// calendar day passes with zero activity: no activity yesterday and none
// yet today resets it; activity yesterday leaves it pending.
func (s *Session) ReconcileStreak(ctx context.Context) {
	today := s.today()
	yesterday := clock.DayBefore(today)
	if s.Entry(today).Count > 0 || s.Entry(yesterday).Count > 0 {
		return
	}
	if s.profile.StreakDays == 0 {
		return
	}
	s.profile.StreakDays = 0
	s.persistProgress(ctx)
}

func (s *Session) AddTask(ctx context.Context, title string, taskType TaskType) (*storage.Task, error) {
	title, err := normalizeTitle(title)
	if err != nil {
		return nil, err
	}
	if !taskType.IsValid() {
		taskType = TaskTodo
	}

	t := storage.Task{
		ID:        uuid.NewString(),
		UserID:    s.profile.ID,
		Title:     title,
		Type:      string(taskType),
		Points:    BasePoints(taskType),
		CreatedAt: time.Now().UTC(),
	}
	s.tasks = append([]storage.Task{t}, s.tasks...)
	s.try("task insert", s.store.InsertTask(ctx, t))
	return &s.tasks[0], nil
}

// DeleteTask removes a task immediately; there is no undo.
func (s *Session) DeleteTask(ctx context.Context, taskID string) error {
	idx := -1
	for i := range s.tasks {
		if s.tasks[i].ID == taskID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return taskNotFound(taskID)
	}
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	s.try("task delete", s.store.DeleteTask(ctx, taskID))
	return nil
}

func (s *Session) UpdateProfileSettings(ctx context.Context, patch storage.ProfileSettingsPatch) error {
	if patch.Chronotype != nil {
		if _, err := ParseChronotype(*patch.Chronotype); err != nil {
			return err
		}
	}
	if patch.Username != nil {
		s.profile.Username = *patch.Username
	}
	if patch.Bio != nil {
		s.profile.Bio = *patch.Bio
	}
	if patch.Chronotype != nil {
		s.profile.Chronotype = patch.Chronotype
	}
	s.try("profile settings", s.store.SaveProfileSettings(ctx, s.profile.ID, patch))
	return nil
}

// AttachSteps replaces a task's subtasks with the given ordered step titles
// (typically an AI breakdown). Steps carry no XP.
func (s *Session) AttachSteps(ctx context.Context, taskID string, steps []string) error {
	t := s.taskByID(taskID)
	if t == nil {
		return taskNotFound(taskID)
	}

	subs := make([]storage.Subtask, 0, len(steps))
	for i, title := range steps {
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}
		subs = append(subs, storage.Subtask{
			ID:       uuid.NewString(),
			TaskID:   taskID,
			Position: i,
			Title:    title,
		})
	}
	t.Subtasks = subs
	s.try("subtask replace", s.store.ReplaceSubtasks(ctx, taskID, subs))
	return nil
}

// ToggleSubtask flips one step by its 1-based position. No XP effect.
func (s *Session) ToggleSubtask(ctx context.Context, taskID string, position int) (*storage.Subtask, error) {
	t := s.taskByID(taskID)
	if t == nil {
		return nil, taskNotFound(taskID)
	}
	idx := position - 1
	if idx < 0 || idx >= len(t.Subtasks) {
		return nil, subtaskNotFound(taskID)
	}
	sub := &t.Subtasks[idx]
	sub.IsCompleted = !sub.IsCompleted
	s.try("subtask toggle", s.store.SaveSubtaskCompletion(ctx, sub.ID, sub.IsCompleted))
	return sub, nil
}

func (s *Session) taskByID(id string) *storage.Task {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return &s.tasks[i]
		}
	}
	return nil
}

// applyXP runs the leveling ladder and refreshes the cached threshold.
func (s *Session) applyXP(delta int) {
	p := ApplyDelta(Progress{Level: s.profile.Level, CurrentXP: s.profile.CurrentXP}, delta)
	s.profile.Level = p.Level
	s.profile.CurrentXP = p.CurrentXP
	s.profile.XPToNext = Threshold(p.Level)
}

// recordActivity folds a completion event into the day's ledger entry and
// moves the streak on the 0→1 / 1→0 count transitions.
func (s *Session) recordActivity(ctx context.Context, day string, completionDelta, xpDelta int) storage.ActivityEntry {
	prev := s.Entry(day)
	next := applyActivity(prev, completionDelta, xpDelta)
	s.activity[day] = next

	if prev.Count == 0 && next.Count == 1 {
		s.profile.StreakDays++
	}
	if prev.Count == 1 && next.Count == 0 && s.profile.StreakDays > 0 {
		s.profile.StreakDays--
	}

	s.try("activity upsert", s.store.UpsertActivity(ctx, next))
	return next
}

func (s *Session) persistProgress(ctx context.Context) {
	s.try("profile progress", s.store.SaveProfileProgress(ctx, s.profile.ID, storage.ProfileProgressPatch{
		Level:      s.profile.Level,
		CurrentXP:  s.profile.CurrentXP,
		XPToNext:   s.profile.XPToNext,
		StreakDays: s.profile.StreakDays,
	}))
}

// try logs a failed fire-and-forget write and moves on.
func (s *Session) try(op string, err error) {
	if err != nil {
		s.log.Warn("persist failed, keeping in-memory state", "op", op, "err", err)
	}
}

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", errEmptyTitle
	}
	return t, nil
}
