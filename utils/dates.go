package utils

import "time"

// DateLayout is the canonical calendar-date format used everywhere a date
// identifies a daily record or a histogram entry.
const DateLayout = "2006-01-02"

// DateStringAt renders t as a calendar date in the server's local timezone
// (explicitly not UTC, so dates line up with the user's wall clock).
func DateStringAt(t time.Time) string {
	return t.In(time.Local).Format(DateLayout)
}

// TodayString returns today's local calendar date as YYYY-MM-DD.
func TodayString() string {
	return DateStringAt(time.Now())
}

// YesterdayString returns yesterday's local calendar date. AddDate does
// wall-clock calendar math, so this stays correct across DST transitions
// where a fixed -24h offset would not.
func YesterdayString() string {
	return DateStringAt(time.Now().AddDate(0, 0, -1))
}

// TomorrowString returns tomorrow's local calendar date.
func TomorrowString() string {
	return DateStringAt(time.Now().AddDate(0, 0, 1))
}

// HeatmapKey converts a YYYY-MM-DD string to Unix seconds at local midnight.
// Parsing the string as UTC would shift the rendered date by a day for
// viewers west of Greenwich, so the date is constructed in the local zone
// instead.
func HeatmapKey(dateStr string) (int64, error) {
	t, err := time.ParseInLocation(DateLayout, dateStr, time.Local)
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}
