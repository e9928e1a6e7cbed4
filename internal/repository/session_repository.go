package repository

import (
	"errors"

	"github.com/skillforge-dev/skillforge/internal/model"
	"gorm.io/gorm"
)

// ErrVersionConflict is returned by SaveWithVersion when another writer
// updated the session since it was loaded.
var ErrVersionConflict = errors.New("session was modified by another request")

type SessionRepository interface {
	Create(session *model.InterviewSession) error
	FindByID(id string) (*model.InterviewSession, error)
	FindAllByUser(userID uint) ([]model.InterviewSession, error)
	// SaveWithVersion persists the session only if its Version column still
	// matches the value the session was loaded with, then bumps it.
	SaveWithVersion(session *model.InterviewSession) error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(session *model.InterviewSession) error {
	return r.db.Create(session).Error
}

func (r *sessionRepository) FindByID(id string) (*model.InterviewSession, error) {
	var session model.InterviewSession
	err := r.db.First(&session, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) FindAllByUser(userID uint) ([]model.InterviewSession, error) {
	var sessions []model.InterviewSession
	err := r.db.Where("user_id = ?", userID).Order("start_time DESC").Find(&sessions).Error
	return sessions, err
}

func (r *sessionRepository) SaveWithVersion(session *model.InterviewSession) error {
	loadedVersion := session.Version
	session.Version = loadedVersion + 1

	result := r.db.Model(&model.InterviewSession{}).
		Where("id = ? AND version = ?", session.ID, loadedVersion).
		Select("Transcript", "Scores", "AverageScore", "Status", "EndTime", "Version", "UpdatedAt").
		Updates(session)
	if result.Error != nil {
		session.Version = loadedVersion
		return result.Error
	}
	if result.RowsAffected == 0 {
		session.Version = loadedVersion
		return ErrVersionConflict
	}
	return nil
}
