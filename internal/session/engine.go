package session

import (
	"fmt"

	"github.com/parththirwani/tally/internal/db"
	"github.com/parththirwani/tally/internal/models"
	"github.com/parththirwani/tally/internal/timeutil"
)

// Engine owns the session lifecycle: running → paused → running → completed.
// All state transitions and their time accounting go through it.
type Engine struct {
	store *db.Store
	clock Clock
}

// NewEngine creates a lifecycle engine. A nil clock falls back to the
// system clock.
func NewEngine(store *db.Store, clock Clock) *Engine {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Engine{store: store, clock: clock}
}

// PauseResult reports the pause transition and the work time accumulated up
// to the moment of pausing.
type PauseResult struct {
	Session        *models.Session
	ElapsedSeconds int64
}

// ResumeResult reports the resume transition and how long the session had
// been paused this time.
type ResumeResult struct {
	Session     *models.Session
	PausedFor   int64
	TotalPaused int64
}

// StatusResult describes the current tracking state for display: the active
// session (nil when none), its elapsed work time, and today's completed
// totals.
type StatusResult struct {
	Session        *models.Session
	ElapsedSeconds int64
	TodaySeconds   int64
	TodaySessions  int
}

// Start begins a new session. It fails with ErrSessionActive if a running
// or paused session already exists; nothing is written in that case.
func (e *Engine) Start(project, tag, note string) (*models.Session, error) {
	existing, err := e.store.ActiveSession()
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w (%s since %s)",
			ErrSessionActive, existing.Status, existing.StartedAt.Format("15:04"))
	}

	session := &models.Session{
		StartedAt: e.clock.Now(),
		Project:   project,
		Tag:       tag,
		Note:      note,
		Status:    models.StatusRunning,
	}

	if err := e.store.CreateSession(session); err != nil {
		return nil, err
	}

	return session, nil
}

// Pause suspends the running session. Paused time is not charged to
// PausedSeconds yet; that happens on resume, when the pause interval is
// known.
func (e *Engine) Pause() (*PauseResult, error) {
	session, err := e.store.ActiveSession()
	if err != nil {
		return nil, err
	}
	if session == nil || session.Status != models.StatusRunning {
		return nil, ErrNoRunningSession
	}

	now := e.clock.Now()
	elapsed := session.ElapsedSeconds(now)

	session.Status = models.StatusPaused
	session.PausedAt = &now

	if err := e.store.SaveSession(session); err != nil {
		return nil, err
	}

	return &PauseResult{Session: session, ElapsedSeconds: elapsed}, nil
}

// Resume reactivates the paused session, folding the just-finished pause
// interval into PausedSeconds and clearing the pause timestamp.
func (e *Engine) Resume() (*ResumeResult, error) {
	session, err := e.store.ActiveSession()
	if err != nil {
		return nil, err
	}
	if session == nil || session.Status != models.StatusPaused || session.PausedAt == nil {
		return nil, ErrNoPausedSession
	}

	now := e.clock.Now()
	pausedFor := int64(now.Sub(*session.PausedAt).Seconds())

	session.PausedSeconds += pausedFor
	session.Status = models.StatusRunning
	session.PausedAt = nil

	if err := e.store.SaveSession(session); err != nil {
		return nil, err
	}

	return &ResumeResult{
		Session:     session,
		PausedFor:   pausedFor,
		TotalPaused: session.PausedSeconds,
	}, nil
}

// Stop completes the active session, freezing its total work time. A
// session stopped while paused is not charged for the open pause interval.
// additionalNote, when present, is joined to any existing note with " | ".
func (e *Engine) Stop(additionalNote string) (*models.Session, error) {
	session, err := e.store.ActiveSession()
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNoActiveSession
	}

	now := e.clock.Now()
	total := session.ElapsedSeconds(now)

	session.EndedAt = &now
	session.Status = models.StatusCompleted
	session.TotalSeconds = &total
	session.PausedAt = nil

	if additionalNote != "" {
		if session.Note != "" {
			session.Note = session.Note + " | " + additionalNote
		} else {
			session.Note = additionalNote
		}
	}

	if err := e.store.SaveSession(session); err != nil {
		return nil, err
	}

	return session, nil
}

// Status reports the active session, if any, together with today's
// completed totals. It never mutates anything.
func (e *Engine) Status() (*StatusResult, error) {
	session, err := e.store.ActiveSession()
	if err != nil {
		return nil, err
	}

	now := e.clock.Now()
	completed, err := e.store.CompletedInRange(timeutil.StartOfDay(now), timeutil.EndOfDay(now))
	if err != nil {
		return nil, err
	}

	result := &StatusResult{
		Session:       session,
		TodaySessions: len(completed),
	}
	for _, s := range completed {
		if s.TotalSeconds != nil {
			result.TodaySeconds += *s.TotalSeconds
		}
	}
	if session != nil {
		result.ElapsedSeconds = session.ElapsedSeconds(now)
	}

	return result, nil
}
