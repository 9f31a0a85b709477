package entity

import "time"

type Conversation struct {
	ID        string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt *time.Time
}

type ConversationParticipant struct {
	ID             string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt      *time.Time
	ConversationID string `gorm:"not null"`
	UserID         string `gorm:"not null"`
}

type Message struct {
	ID             string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt      *time.Time
	ConversationID string `gorm:"not null"`
	SenderID       string `gorm:"not null"`
	Content        string
	ImagePath      string
}
