package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/stayvia/stayvia-server/internal/domain/entity"
)

type ConversationStorage struct {
	db *gorm.DB
}

func NewConversationStorage(db *gorm.DB) *ConversationStorage {
	return &ConversationStorage{
		db: db,
	}
}

// GetBetween finds the conversation both users participate in, if one exists.
func (s *ConversationStorage) GetBetween(ctx context.Context, userID, otherID string) (*entity.Conversation, error) {
	var conversation entity.Conversation

	err := s.db.WithContext(ctx).Model(&entity.Conversation{}).
		Joins("JOIN conversation_participants a ON a.conversation_id = conversations.id AND a.user_id = ?", userID).
		Joins("JOIN conversation_participants b ON b.conversation_id = conversations.id AND b.user_id = ?", otherID).
		First(&conversation).Error

	return &conversation, err
}

// Create creates a conversation with both participants in one transaction.
func (s *ConversationStorage) Create(ctx context.Context, userID, otherID string) (*entity.Conversation, error) {
	var conversation entity.Conversation

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&conversation).Error; err != nil {
			return err
		}
		participants := []entity.ConversationParticipant{
			{ConversationID: conversation.ID, UserID: userID},
			{ConversationID: conversation.ID, UserID: otherID},
		}
		return tx.Create(&participants).Error
	})

	return &conversation, err
}

// CreateMessage is a function that appends a message to a conversation.
func (s *ConversationStorage) CreateMessage(ctx context.Context, message *entity.Message) (*entity.Message, error) {
	err := s.db.WithContext(ctx).Create(&message).Error
	return message, err
}

// GetMessages gets a conversation's messages, oldest first.
func (s *ConversationStorage) GetMessages(ctx context.Context, conversationID string) ([]entity.Message, error) {
	var messages []entity.Message
	err := s.db.WithContext(ctx).Where("conversation_id = ?", conversationID).Order("created_at ASC").Find(&messages).Error
	return messages, err
}
