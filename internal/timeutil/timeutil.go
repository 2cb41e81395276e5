package timeutil

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// FormatDuration renders a second count using the two largest non-zero
// units. Hours suppress seconds, and once hours or minutes appear the next
// unit down is always shown even when zero ("2h 0m", not "2h").
func FormatDuration(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, secs)
	}
	return fmt.Sprintf("%ds", secs)
}

// StartOfDay returns midnight on t's calendar date, local wall clock.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59 on t's calendar date, local wall clock.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// SameDay reports whether a and b fall on the same local calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// DateRange resolves a report period into an inclusive [start, end] range
// plus a display label. Supported periods: today, yesterday, week (Monday
// through Sunday of the current week), month, or an explicit YYYY-MM-DD
// date. Anything else falls back to today.
func DateRange(period string, now time.Time) (start, end time.Time, label string) {
	if isoDateRe.MatchString(period) {
		day, err := time.ParseInLocation("2006-01-02", period, now.Location())
		if err == nil {
			return StartOfDay(day), EndOfDay(day), day.Format("Monday, January 2, 2006")
		}
	}

	switch strings.ToLower(period) {
	case "yesterday":
		day := now.AddDate(0, 0, -1)
		return StartOfDay(day), EndOfDay(day), "Yesterday"

	case "week":
		// Monday is the first day of the week.
		offset := int(now.Weekday()) - 1
		if now.Weekday() == time.Sunday {
			offset = 6
		}
		monday := now.AddDate(0, 0, -offset)
		sunday := monday.AddDate(0, 0, 6)
		return StartOfDay(monday), EndOfDay(sunday), "This Week"

	case "month":
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		last := first.AddDate(0, 1, -1)
		return first, EndOfDay(last), now.Format("January 2006")

	default:
		return StartOfDay(now), EndOfDay(now), "Today"
	}
}
