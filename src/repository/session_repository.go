package repository

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"project/models"
)

// SessionRepository is the persistence boundary for assessment sessions.
// Only primitive session state crosses it; derived data is reconstructed by
// the service layer on read.
type SessionRepository interface {
	CreateSession(session *models.AssessmentSession) (*models.AssessmentSession, error)
	GetSessionByUserID(userID string) (*models.AssessmentSession, error)
	GetSessionByKey(sessionKey string) (*models.AssessmentSession, error)
	UpdateSession(session *models.AssessmentSession) (*models.AssessmentSession, error)
	// DeleteSessionByUserID removes the user's session rows permanently and
	// atomically; a partial reset must be impossible.
	DeleteSessionByUserID(userID string) error
}

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a gorm-backed SessionRepository.
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) CreateSession(session *models.AssessmentSession) (*models.AssessmentSession, error) {
	if session == nil {
		return nil, errors.New("session cannot be nil")
	}
	if session.UserID == "" {
		return nil, errors.New("session must carry a userID")
	}
	if session.StartTime.IsZero() {
		session.StartTime = time.Now()
	}
	if err := r.db.Create(session).Error; err != nil {
		log.Printf("ERROR: [SessionRepository] Failed to create session for userID %s: %v", session.UserID, err)
		return nil, fmt.Errorf("failed to create session for userID %s: %w", session.UserID, err)
	}
	log.Printf("INFO: [SessionRepository] Created session %s (ID %d) for userID %s.", session.SessionKey, session.ID, session.UserID)
	return session, nil
}

// GetSessionByUserID returns the user's most recent session, or nil when the
// user has none. Not-found is not an error; the service layer interprets it.
func (r *sessionRepository) GetSessionByUserID(userID string) (*models.AssessmentSession, error) {
	var session models.AssessmentSession
	err := r.db.Where("user_id = ?", userID).Order("updated_at desc").First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("ERROR: [SessionRepository] Failed to retrieve session for userID %s: %v", userID, err)
		return nil, fmt.Errorf("failed to retrieve session for userID %s: %w", userID, err)
	}
	return &session, nil
}

func (r *sessionRepository) GetSessionByKey(sessionKey string) (*models.AssessmentSession, error) {
	var session models.AssessmentSession
	err := r.db.Where("session_key = ?", sessionKey).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("ERROR: [SessionRepository] Failed to retrieve session %s: %v", sessionKey, err)
		return nil, fmt.Errorf("failed to retrieve session %s: %w", sessionKey, err)
	}
	return &session, nil
}

func (r *sessionRepository) UpdateSession(session *models.AssessmentSession) (*models.AssessmentSession, error) {
	if session == nil {
		return nil, errors.New("session cannot be nil")
	}
	if session.ID == 0 {
		return nil, errors.New("session ID must be set for update")
	}
	if err := r.db.Save(session).Error; err != nil {
		log.Printf("ERROR: [SessionRepository] Failed to update session %s (ID %d): %v", session.SessionKey, session.ID, err)
		return nil, fmt.Errorf("failed to update session %s: %w", session.SessionKey, err)
	}
	return session, nil
}

func (r *sessionRepository) DeleteSessionByUserID(userID string) error {
	if userID == "" {
		return errors.New("userID cannot be empty")
	}
	// Unscoped: a reset is a hard delete, not a tombstone.
	err := r.db.Unscoped().Where("user_id = ?", userID).Delete(&models.AssessmentSession{}).Error
	if err != nil {
		log.Printf("ERROR: [SessionRepository] Failed to delete sessions for userID %s: %v", userID, err)
		return fmt.Errorf("failed to delete sessions for userID %s: %w", userID, err)
	}
	log.Printf("INFO: [SessionRepository] Deleted session state for userID %s.", userID)
	return nil
}
