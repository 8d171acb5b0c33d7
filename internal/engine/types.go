package engine

import (
	"fmt"
	"strings"
)

// TaskType is the closed set of task kinds. Only the two recurring kinds
// participate in the daily reset sweep.
type TaskType string

const (
	TaskDaily TaskType = "daily"
	TaskHabit TaskType = "habit"
	TaskTodo  TaskType = "todo"
)

func (t TaskType) IsValid() bool {
	switch t {
	case TaskDaily, TaskHabit, TaskTodo:
		return true
	default:
		return false
	}
}

// IsRecurring reports whether the type resets to incomplete each calendar day.
func (t TaskType) IsRecurring() bool {
	return t == TaskDaily || t == TaskHabit
}

func ParseTaskType(input string) (TaskType, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "", "todo", "task":
		return TaskTodo, nil
	case "daily", "routine":
		return TaskDaily, nil
	case "habit":
		return TaskHabit, nil
	default:
		return "", fmt.Errorf("invalid task type: %q", input)
	}
}

// RewardTier classifies a reward roll outcome.
type RewardTier string

const (
	TierNormal   RewardTier = "normal"
	TierCritical RewardTier = "critical"
	TierJackpot  RewardTier = "jackpot"
)

func (r RewardTier) IsValid() bool {
	switch r {
	case TierNormal, TierCritical, TierJackpot:
		return true
	default:
		return false
	}
}

// Chronotype is the optional sleep/energy profile collected at onboarding.
// It feeds coaching suggestions only; the reward engine ignores it.
type Chronotype string

const (
	ChronoLion    Chronotype = "lion"
	ChronoBear    Chronotype = "bear"
	ChronoWolf    Chronotype = "wolf"
	ChronoDolphin Chronotype = "dolphin"
)

func (c Chronotype) IsValid() bool {
	switch c {
	case ChronoLion, ChronoBear, ChronoWolf, ChronoDolphin:
		return true
	default:
		return false
	}
}

func ParseChronotype(input string) (Chronotype, error) {
	c := Chronotype(strings.TrimSpace(strings.ToLower(input)))
	if !c.IsValid() {
		return "", fmt.Errorf("invalid chronotype: %q (lion|bear|wolf|dolphin)", input)
	}
	return c, nil
}
