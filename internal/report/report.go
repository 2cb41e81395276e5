package report

import (
	"time"

	"github.com/parththirwani/tally/internal/models"
	"github.com/parththirwani/tally/internal/timeutil"
)

// Report is a set of completed sessions for one period, ordered by start
// time ascending, with their summed work time.
type Report struct {
	Label        string
	Sessions     []models.Session
	TotalSeconds int64
}

// Build assembles a report from completed sessions. The sessions are
// expected in start-time order, which is how the store returns them.
func Build(sessions []models.Session, label string) *Report {
	r := &Report{Label: label, Sessions: sessions}
	for _, s := range sessions {
		if s.TotalSeconds != nil {
			r.TotalSeconds += *s.TotalSeconds
		}
	}
	return r
}

// DayGroup is one calendar day's worth of sessions.
type DayGroup struct {
	Date         time.Time
	Sessions     []models.Session
	TotalSeconds int64
}

// GroupByDay buckets sessions by local calendar date, preserving order.
// Used for week and month report rendering.
func GroupByDay(sessions []models.Session) []DayGroup {
	var groups []DayGroup

	for _, s := range sessions {
		day := timeutil.StartOfDay(s.StartedAt)

		if len(groups) == 0 || !groups[len(groups)-1].Date.Equal(day) {
			groups = append(groups, DayGroup{Date: day})
		}

		g := &groups[len(groups)-1]
		g.Sessions = append(g.Sessions, s)
		if s.TotalSeconds != nil {
			g.TotalSeconds += *s.TotalSeconds
		}
	}

	return groups
}
