package entity

import "time"

type AccountType string

const (
	AccountTypeStudent            AccountType = "student"
	AccountTypeLandlord           AccountType = "landlord"
	AccountTypeLandlordUnverified AccountType = "landlord_unverified"
)

// User mirrors a profile row. The ID comes from the identity provider and is
// never generated locally.
type User struct {
	ID              string `gorm:"primaryKey"`
	CreatedAt       *time.Time
	Email           string `gorm:"not null"`
	Username        string
	FirstName       string
	LastName        string
	Avatar          string
	Contact         string
	School          string
	AccountType     AccountType
	StudentID       int64
	StudentProofID  string
	LandlordProofID string
	VerifiedAt      *time.Time
	Online          bool
	Suspended       string
}

// IsVerifiedLandlord reports whether the account has passed landlord review.
func (u *User) IsVerifiedLandlord() bool {
	return u.AccountType == AccountTypeLandlord && u.VerifiedAt != nil
}

// IsPendingVerification reports whether a landlord proof is awaiting review.
func (u *User) IsPendingVerification() bool {
	return u.AccountType == AccountTypeLandlordUnverified
}
