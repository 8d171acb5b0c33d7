package engine

import (
	"context"

	"neurofocus/internal/clock"
	"neurofocus/internal/storage"
)

// Sound event names understood by the notifier.
const (
	EventCheck    = "check"
	EventCritical = "critical"
	EventJackpot  = "jackpot"
	EventLevelUp  = "levelUp"
)

type ToggleResult struct {
	TaskID      string
	Completed   bool
	Points      int
	Tier        RewardTier
	Message     string
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
	LevelDown   bool
	StreakDays  int
}

// Toggle flips one task between complete and incomplete and reconciles the
// profile and the activity ledger from a single resolved points value.
//
// Anti-farm rule: the reward is rolled at most once per task per calendar
// day. Unchecking keeps both the rolled points and last_completed_date, so
// a same-day re-check reuses the frozen reward instead of rolling again:
// check, uncheck, re-check nets the same XP as a single check.
func (s *Session) Toggle(ctx context.Context, taskID string) (*ToggleResult, error) {
	t := s.taskByID(taskID)
	if t == nil {
		return nil, taskNotFound(taskID)
	}

	today := s.today()
	taskType := TaskType(t.Type)
	levelBefore := s.profile.Level

	if !t.IsCompleted {
		var points int
		var tier RewardTier

		if t.LastCompletedDate != nil && clock.SameDay(*t.LastCompletedDate, today) {
			// Re-check after a same-day undo: reuse the frozen
			// points; the tier is re-derived for display only.
			points = t.Points
			tier = TierForPoints(taskType, points)
		} else {
			reward := s.roller.Roll(taskType)
			points = reward.Points
			tier = reward.Tier
			day := today
			t.LastCompletedDate = &day
		}

		// Store the resolved reward before applying it anywhere.
		t.Points = points
		t.IsCompleted = true
		s.try("task completion", s.store.SaveTaskCompletion(ctx, t.ID, storage.TaskCompletionPatch{
			IsCompleted:       true,
			Points:            points,
			LastCompletedDate: t.LastCompletedDate,
		}))

		s.applyXP(points)
		s.recordActivity(ctx, today, +1, points)
		s.persistProgress(ctx)

		levelUp := s.profile.Level > levelBefore
		switch {
		case levelUp:
			s.notify.Emit(EventLevelUp)
		case tier == TierJackpot:
			s.notify.Emit(EventJackpot)
		case tier == TierCritical:
			s.notify.Emit(EventCritical)
		default:
			s.notify.Emit(EventCheck)
		}

		return &ToggleResult{
			TaskID:      t.ID,
			Completed:   true,
			Points:      points,
			Tier:        tier,
			Message:     s.roller.RewardMessage(tier),
			LevelBefore: levelBefore,
			LevelAfter:  s.profile.Level,
			LevelUp:     levelUp,
			StreakDays:  s.profile.StreakDays,
		}, nil
	}

	// Uncheck: points and last_completed_date survive as the historical
	// record; only the completion flag flips.
	points := t.Points
	t.IsCompleted = false
	s.try("task completion", s.store.SaveTaskCompletion(ctx, t.ID, storage.TaskCompletionPatch{
		IsCompleted: false,
		Points:      points,
	}))

	s.applyXP(-points)
	s.recordActivity(ctx, today, -1, -points)
	s.persistProgress(ctx)

	return &ToggleResult{
		TaskID:      t.ID,
		Completed:   false,
		Points:      points,
		Tier:        TierForPoints(taskType, points),
		LevelBefore: levelBefore,
		LevelAfter:  s.profile.Level,
		LevelDown:   s.profile.Level < levelBefore,
		StreakDays:  s.profile.StreakDays,
	}, nil
}
