package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parththirwani/tally/internal/db"
	"github.com/parththirwani/tally/internal/models"
)

type scriptedPrompter struct {
	disposition Disposition
	asked       bool
	gotElapsed  int64
}

func (p *scriptedPrompter) AskDisposition(orphan *models.Session, elapsedSeconds int64) (Disposition, error) {
	p.asked = true
	p.gotElapsed = elapsedSeconds
	return p.disposition, nil
}

func newTestReconciler(t *testing.T, disposition Disposition) (*Reconciler, *db.Store, *fakeClock, *scriptedPrompter) {
	t.Helper()

	store := openTestStore(t)
	clock := &fakeClock{now: time.Date(2024, 3, 7, 10, 0, 0, 0, time.Local)}
	prompter := &scriptedPrompter{disposition: disposition}

	return NewReconciler(store, clock, prompter), store, clock, prompter
}

func yesterdayAt(clock *fakeClock, hour int) time.Time {
	y := clock.now.AddDate(0, 0, -1)
	return time.Date(y.Year(), y.Month(), y.Day(), hour, 0, 0, 0, y.Location())
}

func TestReconcileNoOrphanIsNoOp(t *testing.T) {
	reconciler, store, clock, prompter := newTestReconciler(t, DispositionDiscard)

	// A session started today is not an orphan.
	require.NoError(t, store.CreateSession(&models.Session{
		StartedAt: clock.now.Add(-time.Hour),
		Status:    models.StatusRunning,
	}))

	result, err := reconciler.Reconcile()
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.False(t, prompter.asked)

	active, err := store.ActiveSession()
	require.NoError(t, err)
	require.NotNil(t, active)
}

func TestReconcileKeepLeavesOrphanActive(t *testing.T) {
	reconciler, store, clock, prompter := newTestReconciler(t, DispositionKeep)

	orphan := &models.Session{StartedAt: yesterdayAt(clock, 18), Status: models.StatusRunning}
	require.NoError(t, store.CreateSession(orphan))

	result, err := reconciler.Reconcile()
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, DispositionKeep, result.Disposition)
	assert.True(t, prompter.asked)

	active, err := store.ActiveSession()
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, orphan.ID, active.ID)
	assert.Equal(t, models.StatusRunning, active.Status)

	// Still offered for reconciliation next time.
	again, err := reconciler.Reconcile()
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.Equal(t, orphan.ID, again.Orphan.ID)
}

func TestReconcileDiscardDeletesRecord(t *testing.T) {
	reconciler, store, clock, _ := newTestReconciler(t, DispositionDiscard)

	orphan := &models.Session{StartedAt: yesterdayAt(clock, 18), Status: models.StatusRunning}
	require.NoError(t, store.CreateSession(orphan))

	result, err := reconciler.Reconcile()
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, DispositionDiscard, result.Disposition)

	active, err := store.ActiveSession()
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestReconcileCloseAtEndOfStartDay(t *testing.T) {
	reconciler, store, clock, _ := newTestReconciler(t, DispositionClose)

	started := yesterdayAt(clock, 18) // 18:00 the day before
	orphan := &models.Session{StartedAt: started, Status: models.StatusRunning}
	require.NoError(t, store.CreateSession(orphan))

	result, err := reconciler.Reconcile()
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, DispositionClose, result.Disposition)

	// 18:00:00 → 23:59:59 is 5h 59m 59s.
	wantTotal := int64(5*3600 + 59*60 + 59)
	assert.Equal(t, wantTotal, result.TotalSeconds)

	closed := result.Orphan
	assert.Equal(t, models.StatusCompleted, closed.Status)
	require.NotNil(t, closed.TotalSeconds)
	assert.Equal(t, wantTotal, *closed.TotalSeconds)
	require.NotNil(t, closed.EndedAt)
	wantEnd := time.Date(started.Year(), started.Month(), started.Day(), 23, 59, 59, 0, started.Location())
	assert.True(t, closed.EndedAt.Equal(wantEnd), "ended at %s, want %s", closed.EndedAt, wantEnd)

	active, err := store.ActiveSession()
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestReconcileCloseChargesOnlyAccountedPauses(t *testing.T) {
	reconciler, store, clock, prompter := newTestReconciler(t, DispositionClose)

	started := yesterdayAt(clock, 20)
	pausedAt := started.Add(2 * time.Hour)
	orphan := &models.Session{
		StartedAt:     started,
		Status:        models.StatusPaused,
		PausedAt:      &pausedAt,
		PausedSeconds: 300,
	}
	require.NoError(t, store.CreateSession(orphan))

	result, err := reconciler.Reconcile()
	require.NoError(t, err)
	require.NotNil(t, result)

	// 20:00:00 → 23:59:59 minus the 300 accounted seconds; the still-open
	// pause is not charged beyond day end.
	wantTotal := int64(3*3600+59*60+59) - 300
	assert.Equal(t, wantTotal, result.TotalSeconds)
	assert.Nil(t, result.Orphan.PausedAt)

	// The elapsed time shown to the user does subtract the open pause.
	assert.Less(t, prompter.gotElapsed, int64(clock.now.Sub(started).Seconds()))
}

func TestParseDisposition(t *testing.T) {
	tests := []struct {
		input string
		want  Disposition
		ok    bool
	}{
		{input: "k", want: DispositionKeep, ok: true},
		{input: "keep", want: DispositionKeep, ok: true},
		{input: "d", want: DispositionDiscard, ok: true},
		{input: "Discard", want: DispositionDiscard, ok: true},
		{input: "s", want: DispositionClose, ok: true},
		{input: "stop", want: DispositionClose, ok: true},
		{input: "c", want: DispositionClose, ok: true},
		{input: "close", want: DispositionClose, ok: true},
		{input: "  K \n", want: DispositionKeep, ok: true},
		{input: "whatever", want: DispositionKeep, ok: false},
		{input: "", want: DispositionKeep, ok: false},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			got, ok := ParseDisposition(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}
