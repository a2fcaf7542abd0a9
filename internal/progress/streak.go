package progress

import "time"

// DateLayout is the calendar-date format stored in LastPlayDate.
const DateLayout = "2006-01-02"

// DateKey formats t as a calendar date in t's own location.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// NextStreak returns the streak after playing on today.
// Playing again on the same day leaves it unchanged, playing the day after
// lastPlayDate extends it, and any other gap restarts it at 1.
func NextStreak(streak int, lastPlayDate string, today time.Time) int {
	todayKey := DateKey(today)
	if lastPlayDate == todayKey {
		return streak
	}
	if lastPlayDate == DateKey(today.AddDate(0, 0, -1)) {
		return streak + 1
	}
	return 1
}
