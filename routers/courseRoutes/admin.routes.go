package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up admin course management routes
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireRole("ADMIN", "INSTRUCTOR"))

	// Course management
	adminGroup.Get("/course/list", controllers.AdminGetAllCourses)
	adminGroup.Post("/course", validators.CreateCourse(), controllers.AdminCreateCourse)
	adminGroup.Put("/course/:id", validators.UpdateCourse(), controllers.AdminUpdateCourse)
	adminGroup.Patch("/course/:id/publish", validators.CourseID(), controllers.AdminPublishCourse)
	adminGroup.Delete("/course/:id", validators.CourseID(), controllers.AdminDeleteCourse)

	// Lesson management
	adminGroup.Get("/course/:id/lessons", validators.CourseID(), controllers.AdminGetLessons)
	adminGroup.Post("/course/:id/lesson", validators.CreateLesson(), controllers.AdminCreateLesson)
	adminGroup.Put("/course/:course_id/lesson/:lesson_id", validators.UpdateLesson(), controllers.AdminUpdateLesson)
	adminGroup.Delete("/course/:course_id/lesson/:lesson_id", validators.CourseAndLessonID(), controllers.AdminDeleteLesson)

	// Quiz management
	adminGroup.Post("/course/:id/quiz", validators.CreateQuiz(), controllers.AdminCreateQuiz)
	adminGroup.Patch("/course/:course_id/quiz/:quiz_id/publish", validators.CourseAndQuizID(), controllers.AdminPublishQuiz)
	adminGroup.Delete("/course/:course_id/quiz/:quiz_id", validators.CourseAndQuizID(), controllers.AdminDeleteQuiz)

	// Analytics (dashboard is admin only)
	dashGroup := app.Group("/admin/analytics", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))
	dashGroup.Get("/dashboard", controllers.AdminGetDashboard)
	dashGroup.Get("/course/:id/enrollments", validators.CourseID(), controllers.AdminGetCourseEnrollments)
	dashGroup.Get("/course/:id/completed", validators.CourseID(), controllers.AdminGetCompletedStudents)
}
