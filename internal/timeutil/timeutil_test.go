package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name    string
		seconds int64
		want    string
	}{
		{name: "zero", seconds: 0, want: "0s"},
		{name: "seconds only", seconds: 45, want: "45s"},
		{name: "minutes and seconds", seconds: 125, want: "2m 5s"},
		{name: "hours suppress seconds", seconds: 3665, want: "1h 1m"},
		{name: "exact hours keep zero minutes", seconds: 7200, want: "2h 0m"},
		{name: "exact minute keeps zero seconds", seconds: 60, want: "1m 0s"},
		{name: "negative clamps to zero", seconds: -10, want: "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.seconds))
		})
	}
}

func TestDateRangeWeekStartsMonday(t *testing.T) {
	// 2024-01-15 is a Monday.
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.Local)

	start, end, label := DateRange("week", now)

	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2024, 1, 21, 23, 59, 59, 0, time.Local), end)
	assert.Equal(t, "This Week", label)
}

func TestDateRangeWeekOnSunday(t *testing.T) {
	// 2024-01-14 is a Sunday: the week began the previous Monday.
	now := time.Date(2024, 1, 14, 22, 0, 0, 0, time.Local)

	start, end, _ := DateRange("week", now)

	assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2024, 1, 14, 23, 59, 59, 0, time.Local), end)
}

func TestDateRangeToday(t *testing.T) {
	now := time.Date(2024, 3, 7, 14, 0, 0, 0, time.Local)

	start, end, label := DateRange("today", now)

	assert.Equal(t, time.Date(2024, 3, 7, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2024, 3, 7, 23, 59, 59, 0, time.Local), end)
	assert.Equal(t, "Today", label)
}

func TestDateRangeYesterday(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)

	start, end, label := DateRange("yesterday", now)

	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2024, 2, 29, 23, 59, 59, 0, time.Local), end)
	assert.Equal(t, "Yesterday", label)
}

func TestDateRangeMonth(t *testing.T) {
	now := time.Date(2024, 2, 10, 12, 0, 0, 0, time.Local)

	start, end, label := DateRange("month", now)

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2024, 2, 29, 23, 59, 59, 0, time.Local), end)
	assert.Equal(t, "February 2024", label)
}

func TestDateRangeExplicitDate(t *testing.T) {
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, time.Local)

	start, end, label := DateRange("2024-01-15", now)

	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2024, 1, 15, 23, 59, 59, 0, time.Local), end)
	assert.Equal(t, "Monday, January 15, 2024", label)
}

func TestDateRangeUnknownPeriodFallsBackToToday(t *testing.T) {
	now := time.Date(2024, 3, 7, 14, 0, 0, 0, time.Local)

	start, end, label := DateRange("fortnight", now)

	assert.Equal(t, StartOfDay(now), start)
	assert.Equal(t, EndOfDay(now), end)
	assert.Equal(t, "Today", label)
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 3, 7, 0, 0, 1, 0, time.Local)
	b := time.Date(2024, 3, 7, 23, 59, 59, 0, time.Local)
	c := time.Date(2024, 3, 8, 0, 0, 0, 0, time.Local)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(b, c))
}
