package course

import (
	"fmt"
	"testing"

	"lms/database"
	"lms/models"
	courseModels "lms/models/course"
	"lms/services/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// stubGateway stands in for the Razorpay client so enrollment tests
// never touch the network.
type stubGateway struct {
	calls      int
	lastAmount uint
	err        error
}

func (s *stubGateway) CreateOrder(amount uint, currency, receipt string, notes map[string]string) (*payment.Order, error) {
	s.calls++
	s.lastAmount = amount
	if s.err != nil {
		return nil, s.err
	}
	return &payment.Order{
		ID:       fmt.Sprintf("order_stub_%d", s.calls),
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
		Status:   "created",
	}, nil
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // in-memory sqlite is per-connection

	database.RunMigrations(db)
	return db
}

func seedCourse(t *testing.T, db *gorm.DB, price uint, lessonCount int) *courseModels.Course {
	t.Helper()

	course := courseModels.Course{
		Title:       "Options Basics",
		Slug:        fmt.Sprintf("options-basics-%d", price),
		Price:       price,
		IsPublished: true,
	}
	require.NoError(t, db.Create(&course).Error)

	for i := 0; i < lessonCount; i++ {
		lesson := courseModels.Lesson{
			CourseID:    course.ID,
			Title:       fmt.Sprintf("Lesson %d", i+1),
			OrderIndex:  i,
			IsPublished: true,
		}
		require.NoError(t, db.Create(&lesson).Error)
	}
	return &course
}

func courseLessonIDs(t *testing.T, db *gorm.DB, courseID uint) []uint {
	t.Helper()
	ids, err := LessonIDs(db, courseID)
	require.NoError(t, err)
	return ids
}

func TestEnrollFreeCourse(t *testing.T) {
	db := setupTestDB(t)
	gw := &stubGateway{}
	course := seedCourse(t, db, 0, 3)

	result, err := Enroll(db, gw, 1, course.ID)
	require.NoError(t, err)
	require.NotNil(t, result.Enrollment)
	assert.Nil(t, result.Order)
	assert.Zero(t, gw.calls)

	// counter incremented
	var updated courseModels.Course
	require.NoError(t, db.First(&updated, course.ID).Error)
	assert.Equal(t, uint(1), updated.Students)

	// zero-percent progress record created alongside
	var progress courseModels.Progress
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", 1, course.ID).First(&progress).Error)
	assert.Equal(t, 0, progress.PercentComplete)
	assert.False(t, progress.IsCompleted)

	completed, err := progress.CompletedSet()
	require.NoError(t, err)
	assert.Empty(t, completed)
}

func TestEnrollDuplicate(t *testing.T) {
	db := setupTestDB(t)
	gw := &stubGateway{}
	course := seedCourse(t, db, 0, 2)

	_, err := Enroll(db, gw, 1, course.ID)
	require.NoError(t, err)

	_, err = Enroll(db, gw, 1, course.ID)
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)

	// the failed attempt must not touch the counter
	var updated courseModels.Course
	require.NoError(t, db.First(&updated, course.ID).Error)
	assert.Equal(t, uint(1), updated.Students)

	// a different user can still enroll
	_, err = Enroll(db, gw, 2, course.ID)
	require.NoError(t, err)
}

func TestEnrollCourseNotFound(t *testing.T) {
	db := setupTestDB(t)
	gw := &stubGateway{}

	_, err := Enroll(db, gw, 1, 9999)
	assert.ErrorIs(t, err, ErrCourseNotFound)

	// unpublished courses resolve the same way
	course := courseModels.Course{Title: "Draft", Slug: "draft", IsPublished: false}
	require.NoError(t, db.Create(&course).Error)

	_, err = Enroll(db, gw, 1, course.ID)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestEnrollPricedCourseCreatesOrderOnly(t *testing.T) {
	db := setupTestDB(t)
	gw := &stubGateway{}
	course := seedCourse(t, db, 49900, 3)

	result, err := Enroll(db, gw, 1, course.ID)
	require.NoError(t, err)
	require.NotNil(t, result.Order)
	assert.Nil(t, result.Enrollment)
	assert.Equal(t, uint(49900), gw.lastAmount)

	// no enrollment ledger write until payment confirms
	var count int64
	db.Model(&courseModels.Enrollment{}).Where("user_id = ? AND course_id = ?", 1, course.ID).Count(&count)
	assert.Zero(t, count)

	var updated courseModels.Course
	require.NoError(t, db.First(&updated, course.ID).Error)
	assert.Zero(t, updated.Students)

	// pending order recorded as CREATED
	var order models.PaymentOrder
	require.NoError(t, db.Where("gateway_order_id = ?", result.Order.ID).First(&order).Error)
	assert.Equal(t, models.OrderStatusCreated, order.Status)
	assert.Equal(t, models.OrderItemCourse, order.ItemType)
	assert.Equal(t, course.ID, order.ItemID)
}

func TestEnrollDiscountedPrice(t *testing.T) {
	db := setupTestDB(t)
	gw := &stubGateway{}

	discount := uint(29900)
	course := courseModels.Course{
		Title:         "Advanced Charting",
		Slug:          "advanced-charting",
		Price:         49900,
		DiscountPrice: &discount,
		IsPublished:   true,
	}
	require.NoError(t, db.Create(&course).Error)

	result, err := Enroll(db, gw, 1, course.ID)
	require.NoError(t, err)
	require.NotNil(t, result.Order)
	assert.Equal(t, discount, gw.lastAmount)
}

func TestFinalizeCoursePayment(t *testing.T) {
	db := setupTestDB(t)
	gw := &stubGateway{}
	course := seedCourse(t, db, 49900, 2)

	result, err := Enroll(db, gw, 1, course.ID)
	require.NoError(t, err)

	var order models.PaymentOrder
	require.NoError(t, db.Where("gateway_order_id = ?", result.Order.ID).First(&order).Error)

	require.NoError(t, FinalizeCoursePayment(db, &order))
	assert.Equal(t, models.OrderStatusPaid, order.Status)

	var enrollment courseModels.Enrollment
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", 1, course.ID).First(&enrollment).Error)

	var updated courseModels.Course
	require.NoError(t, db.First(&updated, course.ID).Error)
	assert.Equal(t, uint(1), updated.Students)

	// webhook replay must not double-enroll or double-count
	require.NoError(t, FinalizeCoursePayment(db, &order))

	var count int64
	db.Model(&courseModels.Enrollment{}).Where("user_id = ? AND course_id = ?", 1, course.ID).Count(&count)
	assert.Equal(t, int64(1), count)

	require.NoError(t, db.First(&updated, course.ID).Error)
	assert.Equal(t, uint(1), updated.Students)
}

func TestRecordLessonCompletion(t *testing.T) {
	db := setupTestDB(t)
	gw := &stubGateway{}
	course := seedCourse(t, db, 0, 3)
	lessons := courseLessonIDs(t, db, course.ID)
	require.Len(t, lessons, 3)

	_, err := Enroll(db, gw, 1, course.ID)
	require.NoError(t, err)

	progress, err := RecordLessonCompletion(db, 1, course.ID, lessons[0])
	require.NoError(t, err)
	assert.Equal(t, 33, progress.PercentComplete)
	assert.False(t, progress.IsCompleted)
	assert.Equal(t, lessons[0], progress.LastAccessedLesson)

	progress, err = RecordLessonCompletion(db, 1, course.ID, lessons[1])
	require.NoError(t, err)
	assert.Equal(t, 67, progress.PercentComplete)
	assert.False(t, progress.IsCompleted)

	progress, err = RecordLessonCompletion(db, 1, course.ID, lessons[2])
	require.NoError(t, err)
	assert.Equal(t, 100, progress.PercentComplete)
	assert.True(t, progress.IsCompleted)
	require.NotNil(t, progress.CompletedAt)
}

func TestRecordLessonCompletionIdempotent(t *testing.T) {
	db := setupTestDB(t)
	gw := &stubGateway{}
	course := seedCourse(t, db, 0, 3)
	lessons := courseLessonIDs(t, db, course.ID)

	_, err := Enroll(db, gw, 1, course.ID)
	require.NoError(t, err)

	progress, err := RecordLessonCompletion(db, 1, course.ID, lessons[0])
	require.NoError(t, err)
	assert.Equal(t, 33, progress.PercentComplete)

	// same lesson again: set and percentage unchanged
	progress, err = RecordLessonCompletion(db, 1, course.ID, lessons[0])
	require.NoError(t, err)
	assert.Equal(t, 33, progress.PercentComplete)

	completed, err := progress.CompletedSet()
	require.NoError(t, err)
	assert.Equal(t, []uint{lessons[0]}, completed)
}

func TestRecordLessonCompletionNoLessons(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db, 0, 0)

	_, err := RecordLessonCompletion(db, 1, course.ID, 42)
	assert.ErrorIs(t, err, ErrNoLessons)
}

func TestGetProgressRecomputesAgainstCurrentLessons(t *testing.T) {
	db := setupTestDB(t)
	gw := &stubGateway{}
	course := seedCourse(t, db, 0, 2)
	lessons := courseLessonIDs(t, db, course.ID)

	_, err := Enroll(db, gw, 1, course.ID)
	require.NoError(t, err)

	_, err = RecordLessonCompletion(db, 1, course.ID, lessons[0])
	require.NoError(t, err)
	_, err = RecordLessonCompletion(db, 1, course.ID, lessons[1])
	require.NoError(t, err)

	progress, err := GetProgress(db, 1, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, progress.PercentComplete)
	assert.True(t, progress.IsCompleted)

	// a lesson published afterwards dilutes the cached percentage
	extra := courseModels.Lesson{CourseID: course.ID, Title: "Lesson 3", OrderIndex: 2, IsPublished: true}
	require.NoError(t, db.Create(&extra).Error)

	progress, err = GetProgress(db, 1, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 67, progress.PercentComplete)
	assert.False(t, progress.IsCompleted)
}

func TestLessonIDsSkipsUnpublishedAndDeleted(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db, 0, 2)

	draft := courseModels.Lesson{CourseID: course.ID, Title: "Draft", OrderIndex: 5, IsPublished: false}
	require.NoError(t, db.Create(&draft).Error)
	removed := courseModels.Lesson{CourseID: course.ID, Title: "Removed", OrderIndex: 6, IsPublished: true, IsDeleted: true}
	require.NoError(t, db.Create(&removed).Error)

	ids := courseLessonIDs(t, db, course.ID)
	assert.Len(t, ids, 2)
	assert.NotContains(t, ids, draft.ID)
	assert.NotContains(t, ids, removed.ID)
}
