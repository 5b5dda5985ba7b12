package course

import (
	"errors"
	"math"
)

// ErrNoLessons is returned when progress is requested for a course
// whose lesson list is empty. A course with zero lessons has no
// meaningful percentage, so callers must guard before computing.
var ErrNoLessons = errors.New("course has no lessons")

// ComputeProgress derives a completion percentage from the set of
// completed lesson IDs and the course's current lesson list.
//
// Only lesson IDs present in the current list are counted, so stale
// IDs left behind by deleted lessons are silently ignored. The
// percentage is rounded to the nearest integer, half away from zero
// (1 of 3 lessons -> 33, 2 of 3 -> 67). The boolean reports full
// completion and is true exactly when percent == 100.
func ComputeProgress(completed []uint, lessons []uint) (int, bool, error) {
	if len(lessons) == 0 {
		return 0, false, ErrNoLessons
	}

	lessonSet := make(map[uint]bool, len(lessons))
	for _, id := range lessons {
		lessonSet[id] = true
	}

	seen := make(map[uint]bool, len(completed))
	done := 0
	for _, id := range completed {
		if lessonSet[id] && !seen[id] {
			seen[id] = true
			done++
		}
	}

	percent := int(math.Round(float64(done) / float64(len(lessons)) * 100))
	return percent, percent == 100, nil
}

// AddCompleted inserts a lesson ID into the completed set, preserving
// insertion order. Adding an ID that is already present is a no-op.
func AddCompleted(completed []uint, lessonID uint) []uint {
	for _, id := range completed {
		if id == lessonID {
			return completed
		}
	}
	return append(completed, lessonID)
}
