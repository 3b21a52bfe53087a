package entity

import (
	"time"
	_ "time/tzdata"
)

// Days roll over at midnight US Eastern time.
var eastern = mustLoadLocation("America/New_York")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic("loading location " + name + ": " + err.Error())
	}
	return loc
}

// Eastern returns the location calendar days are measured in.
func Eastern() *time.Location {
	return eastern
}

// CalendarDay truncates t to midnight of its US Eastern calendar date.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.In(eastern).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, eastern)
}

// DailyDeadline is the most recent midnight (US Eastern) at or before now.
func DailyDeadline(now time.Time) time.Time {
	return CalendarDay(now)
}

// DaysBetween counts calendar days from a to b, negative when b is earlier.
func DaysBetween(a, b time.Time) int {
	da, db := CalendarDay(a), CalendarDay(b)
	days := 0
	for da.Before(db) {
		da = da.AddDate(0, 0, 1)
		days++
	}
	for db.Before(da) {
		db = db.AddDate(0, 0, 1)
		days--
	}
	return days
}
