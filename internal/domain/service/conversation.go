package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/stayvia/stayvia-server/internal/domain/entity"
)

type ConversationStorage interface {
	GetBetween(ctx context.Context, userID, otherID string) (*entity.Conversation, error)
	Create(ctx context.Context, userID, otherID string) (*entity.Conversation, error)
	CreateMessage(ctx context.Context, message *entity.Message) (*entity.Message, error)
	GetMessages(ctx context.Context, conversationID string) ([]entity.Message, error)
}

type ConversationService struct {
	storage ConversationStorage
}

func NewConversationService(storage ConversationStorage) *ConversationService {
	return &ConversationService{
		storage: storage,
	}
}

// GetOrCreate returns the conversation between two users, creating it with
// both participants when none exists yet.
func (s *ConversationService) GetOrCreate(ctx context.Context, userID, otherID string) (*entity.Conversation, error) {
	conversation, err := s.storage.GetBetween(ctx, userID, otherID)
	if err == nil {
		return conversation, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return s.storage.Create(ctx, userID, otherID)
}

func (s *ConversationService) SendMessage(ctx context.Context, message *entity.Message) (*entity.Message, error) {
	return s.storage.CreateMessage(ctx, message)
}

func (s *ConversationService) Messages(ctx context.Context, conversationID string) ([]entity.Message, error) {
	return s.storage.GetMessages(ctx, conversationID)
}
