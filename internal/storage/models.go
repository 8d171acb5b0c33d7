package storage

import "time"

// Profile is one row in profiles, one per authenticated user.
type Profile struct {
	ID         string
	Email      string
	Username   string
	Bio        string
	Level      int
	CurrentXP  int
	XPToNext   int
	StreakDays int
	Chronotype *string
}

type Task struct {
	ID                string
	UserID            string
	Title             string
	Type              string
	IsCompleted       bool
	Points            int
	LastCompletedDate *string
	CreatedAt         time.Time
	Subtasks          []Subtask
}

type Subtask struct {
	ID          string
	TaskID      string
	Position    int
	Title       string
	IsCompleted bool
}

// ActivityEntry is one row per (user, calendar day) with at least one event.
type ActivityEntry struct {
	UserID  string
	Date    string
	Count   int
	TotalXP int
}

type FocusSession struct {
	ID              string
	UserID          string
	DurationMinutes int
	Mode            string
	CompletedAt     time.Time
}

// Typed patch structs. Each lists exactly the fields its operation may
// mutate, so a write can never clobber a column it has no business with.

// ProfileProgressPatch covers everything a toggle reconciliation touches.
type ProfileProgressPatch struct {
	Level      int
	CurrentXP  int
	XPToNext   int
	StreakDays int
}

// ProfileSettingsPatch covers the user-editable fields. Nil means "leave".
type ProfileSettingsPatch struct {
	Username   *string
	Bio        *string
	Chronotype *string
}

// TaskCompletionPatch is written on check/uncheck. A nil LastCompletedDate
// keeps the stored date; that is the anti-farm memo on uncheck.
type TaskCompletionPatch struct {
	IsCompleted       bool
	Points            int
	LastCompletedDate *string
}

// TaskResetPatch is the batched daily-reset write; is_completed always
// flips to false alongside it.
type TaskResetPatch struct {
	Points int
}
