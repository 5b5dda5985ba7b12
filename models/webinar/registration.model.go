package webinar

import (
	"time"

	"gorm.io/gorm"
)

// Registration statuses
const (
	StatusRegistered = "REGISTERED"
	StatusCancelled  = "CANCELLED"
)

// Registration records a user's membership in a webinar. At most one
// active (REGISTERED) record exists per (user, webinar) pair.
type Registration struct {
	gorm.Model
	UserID       uint      `json:"user_id" gorm:"index:idx_user_webinar;not null"`
	WebinarID    uint      `json:"webinar_id" gorm:"index:idx_user_webinar;not null"`
	Webinar      Webinar   `json:"webinar,omitempty" gorm:"foreignKey:WebinarID"`
	Status       string    `json:"status" gorm:"default:'REGISTERED'"`
	RegisteredAt time.Time `json:"registered_at"`
	ReminderSent bool      `json:"reminder_sent" gorm:"default:false"`
	IsDeleted    bool      `gorm:"default:false"`
}
