package entity

import "time"

// VerificationEvent is a historical rejection record for a landlord-proof
// submission. Rows are written by the review flow and never updated.
type VerificationEvent struct {
	ID        string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt *time.Time
	UserID    string `gorm:"not null"`
	User      User
	RejectMsg string
}

func (e *VerificationEvent) TableName() string {
	return "verify_account"
}
