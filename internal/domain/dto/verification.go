package dto

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/stayvia/stayvia-server/internal/domain/entity"
)

// VerificationMessage is one rejection-history row annotated with its
// relative time.
type VerificationMessage struct {
	RejectMsg string     `json:"reject_msg"`
	CreatedAt *time.Time `json:"created_at"`
	Time      string     `json:"time"`
}

func NewVerificationMessageFromEntity(e entity.VerificationEvent) VerificationMessage {
	at := time.Now()
	if e.CreatedAt != nil {
		at = *e.CreatedAt
	}
	return VerificationMessage{
		RejectMsg: e.RejectMsg,
		CreatedAt: e.CreatedAt,
		Time:      humanize.Time(at),
	}
}
