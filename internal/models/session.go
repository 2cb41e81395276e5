package models

import (
	"time"
)

// Session status values.
const (
	StatusRunning   = "running"
	StatusPaused    = "paused"
	StatusCompleted = "completed"
)

// Session represents a single tracked block of work time
type Session struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	StartedAt     time.Time  `gorm:"not null;index" json:"started_at"`
	EndedAt       *time.Time `json:"ended_at"`
	PausedAt      *time.Time `json:"paused_at"`
	PausedSeconds int64      `gorm:"default:0" json:"paused_seconds"`
	TotalSeconds  *int64     `json:"total_seconds"`

	Project string `gorm:"index" json:"project"`
	Tag     string `json:"tag"`
	Note    string `json:"note"`

	Status string `gorm:"not null;index" json:"status"` // running, paused, completed
}

// IsActive reports whether the session is still running or paused.
func (s *Session) IsActive() bool {
	return s.Status == StatusRunning || s.Status == StatusPaused
}

// ElapsedSeconds returns the work time accumulated so far, truncated to
// whole seconds: wall clock since start, minus accounted pause time, minus
// the open pause interval while the session is paused. Live status, pause,
// stop, and recovery all compute elapsed time through this one function.
func (s *Session) ElapsedSeconds(now time.Time) int64 {
	elapsed := int64(now.Sub(s.StartedAt).Seconds())
	elapsed -= s.PausedSeconds
	if s.Status == StatusPaused && s.PausedAt != nil {
		elapsed -= int64(now.Sub(*s.PausedAt).Seconds())
	}
	return elapsed
}
