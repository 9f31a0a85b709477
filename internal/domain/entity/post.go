package entity

import (
	"fmt"
	"time"

	"github.com/lib/pq"
)

type Post struct {
	ID            string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt     *time.Time
	UserID        string `gorm:"not null"`
	User          User
	Title         string `gorm:"not null"`
	Description   string
	Location      string
	Latitude      float64
	Longitude     float64
	PricePerNight float64
	Beds          string
	Image         string
	Availability  bool           `gorm:"default:true"`
	Filters       pq.StringArray `gorm:"type:text[]"`
}

// ShareLink generates a deep link to the post inside the mobile app.
func (p *Post) ShareLink(scheme string) string {
	return fmt.Sprintf("%s://post/%s", scheme, p.ID)
}
