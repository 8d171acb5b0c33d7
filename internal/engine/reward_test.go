package engine

import (
	"math/rand"
	"testing"
)

func TestBasePoints(t *testing.T) {
	if got := BasePoints(TaskHabit); got != 10 {
		t.Fatalf("habit base=%d, want 10", got)
	}
	if got := BasePoints(TaskDaily); got != 20 {
		t.Fatalf("daily base=%d, want 20", got)
	}
	if got := BasePoints(TaskTodo); got != 20 {
		t.Fatalf("todo base=%d, want 20", got)
	}
}

func TestRollRangeAndDistribution(t *testing.T) {
	r := NewRollerFrom(rand.New(rand.NewSource(1)))

	const n = 100_000
	counts := map[RewardTier]int{}
	for i := 0; i < n; i++ {
		reward := r.Roll(TaskHabit)
		switch reward.Points {
		case 10, 20, 60:
		default:
			t.Fatalf("habit roll produced %d points, want one of 10/20/60", reward.Points)
		}
		if reward.Tier != TierForPoints(TaskHabit, reward.Points) {
			t.Fatalf("tier %s inconsistent with %d points", reward.Tier, reward.Points)
		}
		counts[reward.Tier]++
	}

	// 60/20/20 split, generous tolerance for sampling noise.
	within := func(tier RewardTier, want float64) {
		t.Helper()
		got := float64(counts[tier]) / n
		if got < want-0.02 || got > want+0.02 {
			t.Fatalf("%s frequency %.3f, want %.2f±0.02", tier, got, want)
		}
	}
	within(TierNormal, 0.60)
	within(TierCritical, 0.20)
	within(TierJackpot, 0.20)
}

func TestTierForPointsDoesNotRoll(t *testing.T) {
	cases := []struct {
		taskType TaskType
		points   int
		want     RewardTier
	}{
		{TaskHabit, 10, TierNormal},
		{TaskHabit, 20, TierCritical},
		{TaskHabit, 60, TierJackpot},
		{TaskDaily, 20, TierNormal},
		{TaskDaily, 40, TierCritical},
		{TaskDaily, 70, TierJackpot},
	}
	for _, c := range cases {
		if got := TierForPoints(c.taskType, c.points); got != c.want {
			t.Fatalf("TierForPoints(%s, %d)=%s, want %s", c.taskType, c.points, got, c.want)
		}
	}
}

func TestRewardMessage(t *testing.T) {
	r := NewRollerFrom(rand.New(rand.NewSource(1)))

	if got := r.RewardMessage(TierJackpot); got != jackpotMessage {
		t.Fatalf("jackpot message %q", got)
	}
	if got := r.RewardMessage(TierCritical); got != criticalMessage {
		t.Fatalf("critical message %q", got)
	}

	normal := r.RewardMessage(TierNormal)
	found := false
	for _, q := range motivationalQuotes {
		if q == normal {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("normal message %q not from the quote pool", normal)
	}
}
