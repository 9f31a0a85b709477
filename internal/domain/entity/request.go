package entity

import "time"

// RentalRequest is a single ask by a user to rent a post.
//
// The two flags encode a two-stage approval: the owner first acknowledges
// (Requested), then approves (Confirmed). Confirmed implies Requested and is
// terminal for the row.
type RentalRequest struct {
	ID        string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt *time.Time
	UpdatedAt *time.Time
	UserID    string `gorm:"not null;uniqueIndex:idx_requests_user_post"`
	User      User
	PostID    string `gorm:"not null;uniqueIndex:idx_requests_user_post"`
	Post      Post
	Requested bool `gorm:"default:false"`
	Confirmed bool `gorm:"default:false"`
}
