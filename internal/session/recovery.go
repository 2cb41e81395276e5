package session

import (
	"strings"

	"github.com/parththirwani/tally/internal/db"
	"github.com/parththirwani/tally/internal/models"
	"github.com/parththirwani/tally/internal/timeutil"
)

// Disposition is the user's chosen resolution for an orphaned session.
type Disposition string

const (
	// DispositionKeep leaves the orphan untouched.
	DispositionKeep Disposition = "keep"
	// DispositionDiscard deletes the orphan record entirely.
	DispositionDiscard Disposition = "discard"
	// DispositionClose completes the orphan at the end of its start day.
	DispositionClose Disposition = "close"
)

// ParseDisposition maps user input to a disposition. Unrecognized input
// resolves to keep with ok=false so the caller can print a notice.
func ParseDisposition(input string) (Disposition, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "k", "keep":
		return DispositionKeep, true
	case "d", "discard":
		return DispositionDiscard, true
	case "s", "stop", "c", "close":
		return DispositionClose, true
	default:
		return DispositionKeep, false
	}
}

// Prompter asks the user how to resolve an orphaned session. The console
// implementation lives with the commands; tests inject a scripted one.
type Prompter interface {
	AskDisposition(orphan *models.Session, elapsedSeconds int64) (Disposition, error)
}

// ReconcileResult describes what the reconciler found and did. It is nil
// when there was no orphan.
type ReconcileResult struct {
	Orphan      *models.Session
	Disposition Disposition
	// TotalSeconds is the frozen work time when the disposition was close.
	TotalSeconds int64
}

// Reconciler repairs sessions left running or paused by a previous day's
// interrupted run. It is invoked before start and resume, the operations a
// stale session would silently corrupt.
type Reconciler struct {
	store    *db.Store
	clock    Clock
	prompter Prompter
}

// NewReconciler creates a reconciler. A nil clock falls back to the system
// clock.
func NewReconciler(store *db.Store, clock Clock, prompter Prompter) *Reconciler {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Reconciler{store: store, clock: clock, prompter: prompter}
}

// Reconcile looks for an active session whose start date precedes today and
// resolves it via the prompter. With no orphan it is a read-only no-op.
// Store failures abort the surrounding command; a stale session must never
// silently persist past this check.
func (r *Reconciler) Reconcile() (*ReconcileResult, error) {
	now := r.clock.Now()

	orphan, err := r.store.OrphanSession(timeutil.StartOfDay(now))
	if err != nil {
		return nil, err
	}
	if orphan == nil {
		return nil, nil
	}

	disposition, err := r.prompter.AskDisposition(orphan, orphan.ElapsedSeconds(now))
	if err != nil {
		return nil, err
	}

	switch disposition {
	case DispositionDiscard:
		if err := r.store.DeleteSession(orphan.ID); err != nil {
			return nil, err
		}
		return &ReconcileResult{Orphan: orphan, Disposition: DispositionDiscard}, nil

	case DispositionClose:
		// Close at 23:59:59 of the start date. The open pause interval is
		// deliberately not charged: a stale PausedAt reflects an arbitrarily
		// long-past pause, so only the accumulated PausedSeconds count.
		dayEnd := timeutil.EndOfDay(orphan.StartedAt)
		total := int64(dayEnd.Sub(orphan.StartedAt).Seconds()) - orphan.PausedSeconds

		orphan.EndedAt = &dayEnd
		orphan.Status = models.StatusCompleted
		orphan.TotalSeconds = &total
		orphan.PausedAt = nil

		if err := r.store.SaveSession(orphan); err != nil {
			return nil, err
		}
		return &ReconcileResult{Orphan: orphan, Disposition: DispositionClose, TotalSeconds: total}, nil

	default:
		return &ReconcileResult{Orphan: orphan, Disposition: DispositionKeep}, nil
	}
}
