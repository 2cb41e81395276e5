package db

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/parththirwani/tally/internal/models"
)

var activeStatuses = []string{models.StatusRunning, models.StatusPaused}

// ActiveSession returns the running or paused session, if any. At most one
// is expected; the most recent wins if the invariant has been violated.
// Returns (nil, nil) when there is no active session.
func (s *Store) ActiveSession() (*models.Session, error) {
	var session models.Session

	err := s.db.Where("status IN ?", activeStatuses).
		Order("id DESC").
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &session, nil
}

// OrphanSession returns an active session that started strictly before the
// given cutoff (local midnight of the current day), or (nil, nil).
func (s *Store) OrphanSession(before time.Time) (*models.Session, error) {
	var session models.Session

	err := s.db.Where("status IN ? AND started_at < ?", activeStatuses, before).
		Order("started_at DESC").
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &session, nil
}

// CreateSession inserts a new session and fills in its assigned ID.
func (s *Store) CreateSession(session *models.Session) error {
	return s.db.Create(session).Error
}

// SaveSession persists all fields of an existing session in one write.
func (s *Store) SaveSession(session *models.Session) error {
	return s.db.Save(session).Error
}

// DeleteSession removes a session record entirely.
func (s *Store) DeleteSession(id uint) error {
	return s.db.Delete(&models.Session{}, id).Error
}

// CompletedInRange returns completed sessions whose start time falls within
// [start, end], ordered by start time ascending.
func (s *Store) CompletedInRange(start, end time.Time) ([]models.Session, error) {
	var sessions []models.Session

	err := s.db.Where("status = ? AND started_at >= ? AND started_at <= ?",
		models.StatusCompleted, start, end).
		Order("started_at ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}

	return sessions, nil
}
