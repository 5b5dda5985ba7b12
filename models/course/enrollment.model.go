package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment records a user's membership in a course. At most one
// record exists per (user, course) pair; enrollment has no unenroll
// transition, so presence of a row is terminal.
type Enrollment struct {
	gorm.Model
	UserID     uint      `json:"user_id" gorm:"uniqueIndex:idx_user_course;not null"`
	CourseID   uint      `json:"course_id" gorm:"uniqueIndex:idx_user_course;not null"`
	Course     Course    `json:"course,omitempty" gorm:"foreignKey:CourseID"`
	EnrolledAt time.Time `json:"enrolled_at"`
	IsDeleted  bool      `gorm:"default:false"`
}
