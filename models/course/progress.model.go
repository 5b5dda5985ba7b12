package course

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Progress tracks which lessons a user has completed in a course.
// PercentComplete is a cache derived from CompletedLessonIDs and the
// course's current lesson list; it is recomputed on every write, never
// treated as a source of truth.
type Progress struct {
	gorm.Model
	UserID             uint           `json:"user_id" gorm:"uniqueIndex:idx_user_course_progress;not null"`
	CourseID           uint           `json:"course_id" gorm:"uniqueIndex:idx_user_course_progress;not null"`
	CompletedLessonIDs datatypes.JSON `json:"completed_lesson_ids"` // JSON array of lesson IDs, set semantics
	LastAccessedLesson uint           `json:"last_accessed_lesson"`
	LastAccessedAt     time.Time      `json:"last_accessed_at"`
	PercentComplete    int            `json:"percent_complete" gorm:"default:0"`
	IsCompleted        bool           `json:"is_completed" gorm:"default:false"`
	CompletedAt        *time.Time     `json:"completed_at"`
	IsDeleted          bool           `gorm:"default:false"`
}

// CompletedSet decodes the stored JSON array into a lesson ID slice.
// A missing or empty column decodes to an empty slice.
func (p *Progress) CompletedSet() ([]uint, error) {
	if len(p.CompletedLessonIDs) == 0 {
		return []uint{}, nil
	}
	var ids []uint
	if err := json.Unmarshal(p.CompletedLessonIDs, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// SetCompleted encodes the lesson ID slice back into the JSON column.
func (p *Progress) SetCompleted(ids []uint) error {
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	p.CompletedLessonIDs = datatypes.JSON(raw)
	return nil
}
