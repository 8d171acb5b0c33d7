package engine

// Progress is the (level, current_xp) pair the leveling ladder walks.
type Progress struct {
	Level     int
	CurrentXP int
}

// Threshold returns the XP needed to leave the given level.
// The threshold is a pure function of level and is never stored on its own.
func Threshold(level int) int {
	if level < 1 {
		level = 1
	}
	return level * 100
}

// ApplyDelta walks the threshold ladder for an XP gain or loss and returns
// the new progress. Level 1 with 0 XP is the floor; a loss can never push a
// profile below it. The result always satisfies 0 <= CurrentXP < Level*100.
func ApplyDelta(p Progress, delta int) Progress {
	if p.Level < 1 {
		p.Level = 1
	}
	if p.CurrentXP < 0 {
		p.CurrentXP = 0
	}

	p.CurrentXP += delta

	// Gain path: a large award can consume several thresholds in a row.
	for p.CurrentXP >= Threshold(p.Level) {
		p.CurrentXP -= Threshold(p.Level)
		p.Level++
	}

	// Loss path: borrow the lower level's threshold until XP is
	// non-negative, clamping at the level-1 floor.
	for p.CurrentXP < 0 {
		if p.Level > 1 {
			p.Level--
			p.CurrentXP += Threshold(p.Level)
		} else {
			p.CurrentXP = 0
		}
	}

	return p
}
