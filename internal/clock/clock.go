// Package clock produces the canonical local calendar-day strings used for
// daily resets and streak accounting.
package clock

import "time"

// DayLayout is the calendar-day format shared with the database.
const DayLayout = "2006-01-02"

// Day returns the YYYY-MM-DD identifier for t's local calendar day.
// The construction is explicit local Y-M-D; splitting an RFC3339/UTC string
// gives a different day near midnight in non-UTC timezones.
func Day(t time.Time) string {
	return t.In(time.Local).Format(DayLayout)
}

// Today returns the current local calendar day.
func Today() string {
	return Day(time.Now())
}

// Yesterday returns the local calendar day before today.
func Yesterday() string {
	return Day(time.Now().AddDate(0, 0, -1))
}

// DayBefore returns the calendar day preceding the given day string.
// Unparsable input is returned unchanged.
func DayBefore(day string) string {
	t, err := time.ParseInLocation(DayLayout, day, time.Local)
	if err != nil {
		return day
	}
	return Day(t.AddDate(0, 0, -1))
}

// SameDay reports whether two day identifiers name the same calendar day.
func SameDay(a, b string) bool {
	return a != "" && a == b
}
