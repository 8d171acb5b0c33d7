package engine

import (
	"context"

	"neurofocus/internal/clock"
	"neurofocus/internal/storage"
)

// SweepDailyReset turns recurring tasks completed on an earlier calendar
// day back to incomplete at their base value, and returns the reset ids.
// One batched persistence write goes out per base value, so habits land on
// 10 and dailies on 20. One-off tasks are never swept.
func (s *Session) SweepDailyReset(ctx context.Context) []string {
	today := s.today()
	byBase := map[int][]string{}

	for i := range s.tasks {
		t := &s.tasks[i]
		taskType := TaskType(t.Type)
		if !taskType.IsRecurring() || !t.IsCompleted {
			continue
		}
		if t.LastCompletedDate != nil && clock.SameDay(*t.LastCompletedDate, today) {
			continue
		}

		base := BasePoints(taskType)
		t.IsCompleted = false
		t.Points = base
		byBase[base] = append(byBase[base], t.ID)
	}

	var reset []string
	for base, ids := range byBase {
		s.try("daily reset", s.store.ResetTasks(ctx, ids, storage.TaskResetPatch{Points: base}))
		reset = append(reset, ids...)
	}
	return reset
}
