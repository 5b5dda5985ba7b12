package webinar

import (
	"time"

	"gorm.io/gorm"
)

// Webinar represents a scheduled live session
type Webinar struct {
	gorm.Model
	Title        string    `json:"title"`
	Slug         string    `json:"slug" gorm:"uniqueIndex;not null"`
	Description  string    `json:"description" gorm:"type:text"`
	Speaker      string    `json:"speaker"`
	StartsAt     time.Time `json:"starts_at" gorm:"index"`
	DurationMins int       `json:"duration_mins" gorm:"default:60"`
	MeetingURL   string    `json:"meeting_url"`
	Price        uint      `json:"price" gorm:"default:0"` // in paise
	IsFree       bool      `json:"is_free" gorm:"default:true"`
	Attendees    uint      `json:"attendees" gorm:"default:0"` // aggregate registration counter
	ThumbnailURL string    `json:"thumbnail_url"`
	IsPublished  bool      `json:"is_published" gorm:"default:false"`
	IsDeleted    bool      `gorm:"default:false"`
}

// RequiresPayment reports whether registration needs a payment order first.
func (w *Webinar) RequiresPayment() bool {
	return !w.IsFree && w.Price > 0
}
