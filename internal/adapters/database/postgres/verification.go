package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/stayvia/stayvia-server/internal/domain/entity"
)

type VerificationStorage struct {
	db *gorm.DB
}

func NewVerificationStorage(db *gorm.DB) *VerificationStorage {
	return &VerificationStorage{
		db: db,
	}
}

// Create is a function that creates a new verification event in the database.
func (s *VerificationStorage) Create(ctx context.Context, event *entity.VerificationEvent) (*entity.VerificationEvent, error) {
	err := s.db.WithContext(ctx).Create(&event).Error
	return event, err
}

// GetByUserID gets a user's rejection history, newest first.
func (s *VerificationStorage) GetByUserID(ctx context.Context, userID string) ([]entity.VerificationEvent, error) {
	var events []entity.VerificationEvent
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&events).Error
	return events, err
}
