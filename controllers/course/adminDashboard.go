package controllers

import (
	"time"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	webinarModels "lms/models/webinar"

	"github.com/gofiber/fiber/v2"
)

// AdminGetDashboard returns platform-wide analytics totals
func AdminGetDashboard(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalStudents int64
	db.Model(&models.User{}).Where("role = ? AND is_deleted = ?", "STUDENT", false).Count(&totalStudents)

	var totalCourses int64
	db.Model(&courseModels.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)

	var publishedCourses int64
	db.Model(&courseModels.Course{}).Where("is_deleted = ? AND is_published = ?", false, true).Count(&publishedCourses)

	var totalEnrollments int64
	db.Model(&courseModels.Enrollment{}).Where("is_deleted = ?", false).Count(&totalEnrollments)

	var completedCourses int64
	db.Model(&courseModels.Progress{}).Where("is_completed = ? AND is_deleted = ?", true, false).Count(&completedCourses)

	var totalWebinars int64
	db.Model(&webinarModels.Webinar{}).Where("is_deleted = ?", false).Count(&totalWebinars)

	var totalRegistrations int64
	db.Model(&webinarModels.Registration{}).Where("status = ? AND is_deleted = ?", webinarModels.StatusRegistered, false).Count(&totalRegistrations)

	// Revenue from paid orders, in paise
	var revenue int64
	db.Model(&models.PaymentOrder{}).Where("status = ? AND is_deleted = ?", models.OrderStatusPaid, false).
		Select("COALESCE(SUM(amount), 0)").Scan(&revenue)

	// Signups in the last 30 days
	var recentSignups int64
	db.Model(&models.User{}).Where("created_at >= ? AND is_deleted = ?", time.Now().AddDate(0, 0, -30), false).Count(&recentSignups)

	completionRate := float64(0)
	if totalEnrollments > 0 {
		completionRate = float64(completedCourses) / float64(totalEnrollments) * 100
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"total_students":      totalStudents,
		"total_courses":       totalCourses,
		"published_courses":   publishedCourses,
		"total_enrollments":   totalEnrollments,
		"completed_courses":   completedCourses,
		"completion_rate":     completionRate,
		"total_webinars":      totalWebinars,
		"total_registrations": totalRegistrations,
		"revenue":             revenue,
		"recent_signups":      recentSignups,
	})
}

// AdminGetCourseEnrollments gets all enrolled students for a course
func AdminGetCourseEnrollments(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&courseModels.Enrollment{}).Where("course_id = ? AND is_deleted = ?", courseID, false)

	var total int64
	db.Count(&total)

	var enrollments []courseModels.Enrollment
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	type EnrollmentWithUser struct {
		courseModels.Enrollment
		UserName  string `json:"user_name"`
		UserEmail string `json:"user_email"`
		Progress  int    `json:"progress"`
	}

	// Fetch user and progress details for each enrollment
	result := make([]EnrollmentWithUser, len(enrollments))
	for i, e := range enrollments {
		var enrolledUser models.User
		database.Database.Db.Where("id = ?", e.UserID).First(&enrolledUser)

		var progress courseModels.Progress
		percent := 0
		if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", e.UserID, e.CourseID, false).First(&progress).Error; err == nil {
			percent = progress.PercentComplete
		}

		result[i] = EnrollmentWithUser{
			Enrollment: e,
			UserName:   enrolledUser.Name,
			UserEmail:  enrolledUser.Email,
			Progress:   percent,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": result,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AdminGetCompletedStudents gets students who completed a course
func AdminGetCompletedStudents(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var progresses []courseModels.Progress
	if err := database.Database.Db.Where("course_id = ? AND is_completed = ? AND is_deleted = ?", courseID, true, false).
		Order("completed_at desc").Find(&progresses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch completed students!", nil)
	}

	type CompletedStudent struct {
		UserID      uint       `json:"user_id"`
		UserName    string     `json:"user_name"`
		UserEmail   string     `json:"user_email"`
		CompletedAt *time.Time `json:"completed_at"`
	}

	result := make([]CompletedStudent, len(progresses))
	for i, p := range progresses {
		var completedUser models.User
		database.Database.Db.Where("id = ?", p.UserID).First(&completedUser)
		result[i] = CompletedStudent{
			UserID:      p.UserID,
			UserName:    completedUser.Name,
			UserEmail:   completedUser.Email,
			CompletedAt: p.CompletedAt,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Completed students fetched successfully!", fiber.Map{
		"students": result,
	})
}
