package engine

// Challenge is a derived milestone shown on the status screen. Nothing is
// stored; progress is recomputed from the profile and the ledger.
type Challenge struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Target      int
	Current     int
	Done        bool
}

// Challenges builds the milestone list for the current session state.
func (s *Session) Challenges() []Challenge {
	totalCompletions := 0
	for _, e := range s.activity {
		totalCompletions += e.Count
	}
	todayCount := s.Entry(s.today()).Count

	return []Challenge{
		levelChallenge("apprentice", "Apprentice", "Reach level 2", "🌱", s.profile.Level, 2),
		levelChallenge("operator", "Operator", "Reach level 5", "🌿", s.profile.Level, 5),
		levelChallenge("overclocked", "Overclocked", "Reach level 10", "⚡", s.profile.Level, 10),

		countChallenge("ignition", "Ignition", "Keep a 3-day streak", "🔥", s.profile.StreakDays, 3),
		countChallenge("momentum", "Momentum", "Keep a 7-day streak", "🚀", s.profile.StreakDays, 7),
		countChallenge("iron_month", "Iron Month", "Keep a 30-day streak", "🏔️", s.profile.StreakDays, 30),

		countChallenge("first_check", "First Check", "Complete 1 task", "✓", totalCompletions, 1),
		countChallenge("collector", "Collector", "Complete 50 tasks", "🏅", totalCompletions, 50),
		countChallenge("centurion", "Centurion", "Complete 100 tasks", "🏆", totalCompletions, 100),

		countChallenge("power_day", "Power Day", "Complete 5 tasks in one day", "💥", todayCount, 5),
	}
}

func levelChallenge(id, name, desc, icon string, level, target int) Challenge {
	return Challenge{
		ID: id, Name: name, Description: desc, Icon: icon,
		Target: target, Current: min(level, target), Done: level >= target,
	}
}

func countChallenge(id, name, desc, icon string, current, target int) Challenge {
	return Challenge{
		ID: id, Name: name, Description: desc, Icon: icon,
		Target: target, Current: min(current, target), Done: current >= target,
	}
}
