// Package calendar holds the date-window and duration-formatting helpers
// shared by the attendance and leave services.
package calendar

import (
	"fmt"
	"time"
)

// FormatSeconds renders a duration stored as whole seconds in the
// "H hours, M minutes, S seconds" form used across attendance responses.
// Values truncate; nothing is carried beyond hours.
func FormatSeconds(totalSeconds int64) string {
	hours := totalSeconds / 3600
	minutes := (totalSeconds / 60) % 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%d hours, %d minutes, %d seconds", hours, minutes, seconds)
}

// FormatDuration is FormatSeconds for a time.Duration.
func FormatDuration(d time.Duration) string {
	return FormatSeconds(int64(d.Seconds()))
}

// WeekStart returns midnight of the Monday starting ISO week weekOfYear of
// year. The anchor is the Monday on or before January 4, which by the ISO 8601
// convention always falls in week 1.
func WeekStart(year, weekOfYear int) time.Time {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	offset := (int(jan4.Weekday()) + 6) % 7 // days since Monday
	anchor := jan4.AddDate(0, 0, -offset)
	return anchor.AddDate(0, 0, (weekOfYear-1)*7)
}

// WeekEnd returns the last instant of the week starting at WeekStart.
func WeekEnd(year, weekOfYear int) time.Time {
	return WeekStart(year, weekOfYear).AddDate(0, 0, 7).Add(-time.Nanosecond)
}

// MonthStart returns the first instant of the given month.
func MonthStart(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// MonthEnd returns the last instant of the given month.
func MonthEnd(year int, month time.Month) time.Time {
	return MonthStart(year, month).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// MonthWindow returns the first and last calendar day of the month containing
// date. Used for the monthly leave quota lookup, which works on whole dates
// rather than instants.
func MonthWindow(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	end := start.AddDate(0, 1, -1)
	return start, end
}

// DaysInclusive counts whole days from start to end, both ends included.
// Equal dates count as one day.
func DaysInclusive(start, end time.Time) int {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(endDay.Sub(startDay).Hours()/24) + 1
}

// DateKey formats the calendar-date portion of a timestamp for daily grouping.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
