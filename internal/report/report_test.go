package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parththirwani/tally/internal/models"
)

func completedSession(start time.Time, totalSeconds int64, project string) models.Session {
	end := start.Add(time.Duration(totalSeconds) * time.Second)
	return models.Session{
		StartedAt:    start,
		EndedAt:      &end,
		TotalSeconds: &totalSeconds,
		Project:      project,
		Status:       models.StatusCompleted,
	}
}

func TestBuildSumsTotals(t *testing.T) {
	base := time.Date(2024, 1, 15, 9, 0, 0, 0, time.Local)
	sessions := []models.Session{
		completedSession(base, 3600, "alpha"),
		completedSession(base.Add(2*time.Hour), 1800, "beta"),
	}

	rep := Build(sessions, "Today")

	assert.Equal(t, "Today", rep.Label)
	assert.Equal(t, int64(5400), rep.TotalSeconds)
	assert.Len(t, rep.Sessions, 2)
}

func TestBuildTreatsMissingTotalAsZero(t *testing.T) {
	base := time.Date(2024, 1, 15, 9, 0, 0, 0, time.Local)
	sessions := []models.Session{
		completedSession(base, 600, ""),
		{StartedAt: base.Add(time.Hour), Status: models.StatusCompleted},
	}

	rep := Build(sessions, "Today")

	assert.Equal(t, int64(600), rep.TotalSeconds)
}

func TestGroupByDay(t *testing.T) {
	monday := time.Date(2024, 1, 15, 9, 0, 0, 0, time.Local)
	wednesday := time.Date(2024, 1, 17, 14, 0, 0, 0, time.Local)

	sessions := []models.Session{
		completedSession(monday, 3600, ""),
		completedSession(monday.Add(3*time.Hour), 1200, ""),
		completedSession(wednesday, 900, ""),
	}

	groups := GroupByDay(sessions)
	require.Len(t, groups, 2)

	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local), groups[0].Date)
	assert.Len(t, groups[0].Sessions, 2)
	assert.Equal(t, int64(4800), groups[0].TotalSeconds)

	assert.Equal(t, time.Date(2024, 1, 17, 0, 0, 0, 0, time.Local), groups[1].Date)
	assert.Len(t, groups[1].Sessions, 1)
	assert.Equal(t, int64(900), groups[1].TotalSeconds)
}

func TestGroupByDayEmpty(t *testing.T) {
	assert.Empty(t, GroupByDay(nil))
}
