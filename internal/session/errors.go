package session

import "errors"

// Expected, user-correctable lifecycle errors. Commands render these as a
// plain message and exit non-zero; anything else coming out of the engine
// is a store failure and treated as fatal.
var (
	ErrSessionActive    = errors.New("a session is already active")
	ErrNoRunningSession = errors.New("no running session")
	ErrNoPausedSession  = errors.New("no paused session")
	ErrNoActiveSession  = errors.New("no active session")
)

// IsUserError reports whether err is one of the expected lifecycle errors.
func IsUserError(err error) bool {
	return errors.Is(err, ErrSessionActive) ||
		errors.Is(err, ErrNoRunningSession) ||
		errors.Is(err, ErrNoPausedSession) ||
		errors.Is(err, ErrNoActiveSession)
}
