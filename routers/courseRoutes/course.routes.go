package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all user-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Catalog
	courseGroup.Get("/list", middleware.JWTMiddleware, controllers.GetAllCourses)
	courseGroup.Get("/slug/:slug", middleware.JWTMiddleware, controllers.GetCourseBySlug)
	courseGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)

	// Enrollment
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.CourseID(), controllers.EnrollInCourse)

	// Lessons (for enrolled users)
	courseGroup.Get("/:course_id/lesson/:lesson_id", middleware.JWTMiddleware, validators.CourseAndLessonID(), controllers.GetLesson)
	courseGroup.Post("/:course_id/lesson/:lesson_id/complete", middleware.JWTMiddleware, validators.CourseAndLessonID(), controllers.MarkLessonComplete)

	// Progress tracking
	courseGroup.Get("/:course_id/progress", middleware.JWTMiddleware, validators.CourseProgress(), controllers.GetUserProgress)

	// Quizzes
	courseGroup.Get("/:course_id/quiz/:quiz_id", middleware.JWTMiddleware, validators.CourseAndQuizID(), controllers.GetQuiz)
	courseGroup.Post("/:course_id/quiz/:quiz_id/submit", middleware.JWTMiddleware, validators.CourseAndQuizID(), controllers.SubmitQuiz)

	// User enrollments
	userGroup := app.Group("/user")
	userGroup.Get("/enrollments", middleware.JWTMiddleware, controllers.GetEnrollments)
}
