package engine

import "neurofocus/internal/storage"

// applyActivity folds one completion event (or its undo) into a day's
// entry. Both fields floor at zero: undoing more than was recorded can
// never drive a day negative.
func applyActivity(e storage.ActivityEntry, completionDelta, xpDelta int) storage.ActivityEntry {
	e.Count += completionDelta
	if e.Count < 0 {
		e.Count = 0
	}
	e.TotalXP += xpDelta
	if e.TotalXP < 0 {
		e.TotalXP = 0
	}
	return e
}

// HeatLevel buckets a day's completion count into heatmap intensity 0-4.
func HeatLevel(count int) int {
	switch {
	case count <= 0:
		return 0
	case count <= 2:
		return 1
	case count <= 4:
		return 2
	case count <= 6:
		return 3
	default:
		return 4
	}
}
