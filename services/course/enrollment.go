package course

import (
	"errors"
	"fmt"
	"time"

	"lms/models"
	courseModels "lms/models/course"
	"lms/services/payment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrAlreadyEnrolled is returned when an enrollment record already
	// exists for the (user, course) pair. Enrollment is terminal, so
	// the duplicate attempt performs no mutation.
	ErrAlreadyEnrolled = errors.New("user already enrolled in this course")

	// ErrCourseNotFound is returned when the course does not resolve
	// or is not published.
	ErrCourseNotFound = errors.New("course not found")
)

// EnrollResult is the outcome of an enrollment attempt. Exactly one of
// Enrollment and Order is set: Enrollment for a free course that was
// enrolled immediately, Order for a priced course awaiting payment.
type EnrollResult struct {
	Enrollment *courseModels.Enrollment
	Order      *payment.Order
}

// Enroll enrolls a user in a free course, or creates a payment order
// for a priced one.
//
// Free course: the enrollment record, the student-counter increment and
// the initial zero-percent progress record are written in one database
// transaction. Priced course: no ledger write happens here; a gateway
// order is created and recorded as a CREATED PaymentOrder, and the
// enrollment only materializes when the payment is confirmed (see
// FinalizeCoursePayment).
func Enroll(db *gorm.DB, gw payment.Gateway, userID, courseID uint) (*EnrollResult, error) {
	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return nil, ErrCourseNotFound
	}

	var existing courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&existing).Error; err == nil {
		return nil, ErrAlreadyEnrolled
	}

	if !course.IsFree() {
		receipt := "course_" + uuid.NewString()
		order, err := gw.CreateOrder(course.EffectivePrice(), "INR", receipt, map[string]string{
			"user_id":   fmt.Sprint(userID),
			"course_id": fmt.Sprint(courseID),
		})
		if err != nil {
			return nil, err
		}

		record := models.PaymentOrder{
			UserID:         userID,
			ItemType:       models.OrderItemCourse,
			ItemID:         courseID,
			GatewayOrderID: order.ID,
			Receipt:        receipt,
			Amount:         order.Amount,
			Currency:       order.Currency,
			Status:         models.OrderStatusCreated,
		}
		if err := db.Create(&record).Error; err != nil {
			return nil, fmt.Errorf("failed to record payment order: %v", err)
		}

		return &EnrollResult{Order: order}, nil
	}

	enrollment, err := writeEnrollment(db, userID, courseID)
	if err != nil {
		return nil, err
	}
	return &EnrollResult{Enrollment: enrollment}, nil
}

// writeEnrollment performs the ledger writes for a confirmed (free or
// paid) enrollment: the enrollment row, the atomic student-counter
// increment and the initial progress record.
func writeEnrollment(db *gorm.DB, userID, courseID uint) (*courseModels.Enrollment, error) {
	enrollment := courseModels.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		EnrolledAt: time.Now(),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&enrollment).Error; err != nil {
			return err
		}

		if err := tx.Model(&courseModels.Course{}).Where("id = ?", courseID).
			UpdateColumn("students", gorm.Expr("students + ?", 1)).Error; err != nil {
			return err
		}

		progress := courseModels.Progress{
			UserID:   userID,
			CourseID: courseID,
		}
		if err := progress.SetCompleted([]uint{}); err != nil {
			return err
		}
		return tx.Create(&progress).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enroll: %v", err)
	}

	return &enrollment, nil
}

// FinalizeCoursePayment turns a paid order into an enrollment. Safe to
// call again on webhook replay: if the user is already enrolled only
// the order status is updated and the student counter is untouched.
func FinalizeCoursePayment(db *gorm.DB, order *models.PaymentOrder) error {
	var existing courseModels.Enrollment
	alreadyEnrolled := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", order.UserID, order.ItemID, false).
		First(&existing).Error == nil

	if !alreadyEnrolled {
		if _, err := writeEnrollment(db, order.UserID, order.ItemID); err != nil {
			return err
		}
	}

	order.Status = models.OrderStatusPaid
	return db.Save(order).Error
}

// LessonIDs returns the course's published lesson IDs in course order.
func LessonIDs(db *gorm.DB, courseID uint) ([]uint, error) {
	var ids []uint
	err := db.Model(&courseModels.Lesson{}).
		Where("course_id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).
		Order("order_index asc").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lessons: %v", err)
	}
	return ids, nil
}

// RecordLessonCompletion marks a lesson as completed for the user and
// recomputes the cached percentage against the course's current lesson
// list. Completing the same lesson twice is a no-op for the completed
// set; the last-accessed fields are updated on every call.
func RecordLessonCompletion(db *gorm.DB, userID, courseID, lessonID uint) (*courseModels.Progress, error) {
	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return nil, ErrCourseNotFound
	}

	lessonIDs, err := LessonIDs(db, courseID)
	if err != nil {
		return nil, err
	}
	if len(lessonIDs) == 0 {
		return nil, ErrNoLessons
	}

	var progress courseModels.Progress
	err = db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
			First(&progress).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			progress = courseModels.Progress{UserID: userID, CourseID: courseID}
		}

		completed, err := progress.CompletedSet()
		if err != nil {
			return err
		}
		completed = AddCompleted(completed, lessonID)
		if err := progress.SetCompleted(completed); err != nil {
			return err
		}

		percent, complete, err := ComputeProgress(completed, lessonIDs)
		if err != nil {
			return err
		}
		progress.PercentComplete = percent
		if complete && !progress.IsCompleted {
			now := time.Now()
			progress.CompletedAt = &now
		}
		progress.IsCompleted = complete
		progress.LastAccessedLesson = lessonID
		progress.LastAccessedAt = time.Now()

		return tx.Save(&progress).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record completion: %v", err)
	}

	return &progress, nil
}

// GetProgress fetches the user's progress record with the percentage
// recomputed on the fly against the current lesson list, so a stale
// cache (lessons added or removed since the last write) is corrected
// in the response without a ledger write.
func GetProgress(db *gorm.DB, userID, courseID uint) (*courseModels.Progress, error) {
	var progress courseModels.Progress
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&progress).Error; err != nil {
		return nil, err
	}

	lessonIDs, err := LessonIDs(db, courseID)
	if err != nil {
		return nil, err
	}
	if len(lessonIDs) > 0 {
		completed, err := progress.CompletedSet()
		if err != nil {
			return nil, err
		}
		if percent, complete, err := ComputeProgress(completed, lessonIDs); err == nil {
			progress.PercentComplete = percent
			progress.IsCompleted = complete
		}
	}

	return &progress, nil
}
