package engine

import (
	"math/rand"
	"time"
)

const (
	habitBasePoints = 10
	otherBasePoints = 20

	jackpotBonus = 50
)

// BasePoints returns the XP value a fresh, unrolled task of the given type
// is worth. Habits are cheap on purpose; they recur every day.
func BasePoints(t TaskType) int {
	if t == TaskHabit {
		return habitBasePoints
	}
	return otherBasePoints
}

// Reward is the frozen outcome of one roll.
type Reward struct {
	Points int
	Tier   RewardTier
}

// Roller draws reward tiers from a uniform [0,100) distribution:
// [90,100) jackpot, [70,90) critical, [0,70) normal.
//
// Roll must run at most once per genuine new completion. Re-checks of a
// task already rewarded today classify the stored points with TierForPoints
// instead of rolling again.
type Roller struct {
	rng *rand.Rand
}

// NewRoller seeds from the wall clock.
func NewRoller() *Roller {
	return NewRollerFrom(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewRollerFrom accepts an explicit source so tests can pin the sequence.
func NewRollerFrom(rng *rand.Rand) *Roller {
	return &Roller{rng: rng}
}

func (r *Roller) Roll(t TaskType) Reward {
	base := BasePoints(t)
	draw := r.rng.Float64() * 100

	switch {
	case draw >= 90:
		return Reward{Points: base + jackpotBonus, Tier: TierJackpot}
	case draw >= 70:
		return Reward{Points: base * 2, Tier: TierCritical}
	default:
		return Reward{Points: base, Tier: TierNormal}
	}
}

// TierForPoints rebuilds the tier label from already-rolled points without
// touching the RNG. Used when a same-day re-check needs cosmetic feedback.
func TierForPoints(t TaskType, points int) RewardTier {
	base := BasePoints(t)
	switch {
	case points >= base+jackpotBonus:
		return TierJackpot
	case points >= base*2:
		return TierCritical
	default:
		return TierNormal
	}
}

var motivationalQuotes = []string{
	"Dopamine delivered. Your brain says thanks.",
	"One more step toward your best self.",
	"Locked in. You are in control.",
	"Neuroplasticity at work: habit reinforced.",
	"Small wins build big empires.",
	"Your discipline is your freedom.",
	"Neural flow optimized.",
	"Consistency beats intensity.",
	"Every check is a vote for the person you want to be.",
}

const (
	criticalMessage = "Neural sync! Double focus!"
	jackpotMessage  = "PERFECT FLOW! Maximum reward!"
)

// RewardMessage picks the celebratory line for a completion. Critical and
// jackpot tiers have fixed lines; normal draws from the quote pool.
func (r *Roller) RewardMessage(tier RewardTier) string {
	switch tier {
	case TierJackpot:
		return jackpotMessage
	case TierCritical:
		return criticalMessage
	default:
		return motivationalQuotes[r.rng.Intn(len(motivationalQuotes))]
	}
}
