package dto

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/stayvia/stayvia-server/internal/domain/entity"
)

// DefaultAvatar is shown for requesters without an uploaded avatar.
const DefaultAvatar = "https://i.pravatar.cc/150"

// NewRequestNotificationFromEntity maps a preloaded request row into its
// presentation-ready shape.
func NewRequestNotificationFromEntity(r entity.RentalRequest) RequestNotification {
	avatar := r.User.Avatar
	if avatar == "" {
		avatar = DefaultAvatar
	}

	var relTime string
	if r.CreatedAt != nil {
		relTime = humanize.Time(*r.CreatedAt)
	} else {
		relTime = humanize.Time(time.Now())
	}

	return RequestNotification{
		Type:      NotificationKindRequest,
		ID:        r.ID,
		Title:     fmt.Sprintf("%s requested your post %q", r.User.FirstName, r.Post.Title),
		Avatar:    avatar,
		Time:      relTime,
		PostID:    r.PostID,
		Post:      r.Post,
		User:      r.User,
		Requested: r.Requested,
		Confirmed: r.Confirmed,
		CreatedAt: r.CreatedAt,
	}
}
