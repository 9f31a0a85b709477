package postgres

import "github.com/stayvia/stayvia-server/internal/domain/entity"

// Migrations is a list of all gorm migrations for the database.
var Migrations = []interface{}{
	&entity.User{},
	&entity.Post{},
	&entity.RentalRequest{},
	&entity.VerificationEvent{},
	&entity.Conversation{},
	&entity.ConversationParticipant{},
	&entity.Message{},
}
