package dto

import (
	"time"

	"github.com/stayvia/stayvia-server/internal/domain/entity"
)

type NotificationKind string

const (
	NotificationKindRequest              NotificationKind = "request"
	NotificationKindVerificationSuccess  NotificationKind = "verification_success"
	NotificationKindVerificationPending  NotificationKind = "pending_verification"
	NotificationKindVerificationRejected NotificationKind = "verification"
)

// SystemAvatar marks feed items that come from the platform rather than a user.
const SystemAvatar = "system"

// Notification is one item of the merged feed. Exactly four implementations
// exist; the feed never carries an untyped payload.
type Notification interface {
	NotificationID() string
	Kind() NotificationKind
	// EventTime is the sole sort key of the feed. Implementations fall back
	// to entity.TimeUnset when nothing resolvable is present.
	EventTime() time.Time
}

// RequestNotification wraps a rental request in its presentation-ready shape.
type RequestNotification struct {
	Type      NotificationKind `json:"type"`
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Avatar    string           `json:"avatar"`
	Time      string           `json:"time"`
	PostID    string           `json:"post_id"`
	Post      entity.Post      `json:"post"`
	User      entity.User      `json:"user"`
	Requested bool             `json:"requested"`
	Confirmed bool             `json:"confirmed"`
	CreatedAt *time.Time       `json:"created_at"`
}

func (n RequestNotification) NotificationID() string { return n.ID }
func (n RequestNotification) Kind() NotificationKind { return NotificationKindRequest }

func (n RequestNotification) EventTime() time.Time {
	if n.CreatedAt != nil {
		return *n.CreatedAt
	}
	if n.Post.CreatedAt != nil {
		return *n.Post.CreatedAt
	}
	return entity.TimeUnset
}

// VerificationSuccess is synthesized from the account state, at most once per
// feed, when a landlord has been approved.
type VerificationSuccess struct {
	Type      NotificationKind `json:"type"`
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Message   string           `json:"reject_msg"`
	Avatar    string           `json:"avatar"`
	Time      string           `json:"time"`
	CreatedAt *time.Time       `json:"created_at"`
}

func (n VerificationSuccess) NotificationID() string { return n.ID }
func (n VerificationSuccess) Kind() NotificationKind { return NotificationKindVerificationSuccess }

func (n VerificationSuccess) EventTime() time.Time {
	if n.CreatedAt != nil {
		return *n.CreatedAt
	}
	return entity.TimeUnset
}

// VerificationPending is synthesized while a landlord proof awaits review.
type VerificationPending struct {
	Type      NotificationKind `json:"type"`
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Message   string           `json:"reject_msg"`
	Avatar    string           `json:"avatar"`
	Time      string           `json:"time"`
	CreatedAt *time.Time       `json:"created_at"`
}

func (n VerificationPending) NotificationID() string { return n.ID }
func (n VerificationPending) Kind() NotificationKind { return NotificationKindVerificationPending }

func (n VerificationPending) EventTime() time.Time {
	if n.CreatedAt != nil {
		return *n.CreatedAt
	}
	return entity.TimeUnset
}

// VerificationRejected wraps one historical rejection row.
type VerificationRejected struct {
	Type      NotificationKind `json:"type"`
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	RejectMsg string           `json:"reject_msg"`
	Avatar    string           `json:"avatar"`
	Time      string           `json:"time"`
	CreatedAt *time.Time       `json:"created_at"`
}

func (n VerificationRejected) NotificationID() string { return n.ID }
func (n VerificationRejected) Kind() NotificationKind { return NotificationKindVerificationRejected }

func (n VerificationRejected) EventTime() time.Time {
	if n.CreatedAt != nil {
		return *n.CreatedAt
	}
	return entity.TimeUnset
}
