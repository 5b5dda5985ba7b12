package webinarRoutes

import (
	controllers "lms/controllers/webinar"
	"lms/middleware"
	validators "lms/validators/webinar"

	"github.com/gofiber/fiber/v2"
)

// SetupWebinarRoutes sets up webinar listing and registration routes
func SetupWebinarRoutes(app *fiber.App) {
	webinarGroup := app.Group("/webinar")

	webinarGroup.Get("/list", middleware.JWTMiddleware, controllers.GetAllWebinars)
	webinarGroup.Get("/:id", middleware.JWTMiddleware, validators.WebinarID(), controllers.GetWebinarDetails)
	webinarGroup.Post("/:id/register", middleware.JWTMiddleware, validators.WebinarID(), controllers.RegisterForWebinar)

	userGroup := app.Group("/user")
	userGroup.Get("/registrations", middleware.JWTMiddleware, controllers.GetMyRegistrations)

	// Admin webinar management
	adminGroup := app.Group("/admin/webinar", middleware.JWTMiddleware, middleware.RequireRole("ADMIN", "INSTRUCTOR"))
	adminGroup.Post("/", validators.CreateWebinar(), controllers.AdminCreateWebinar)
	adminGroup.Put("/:id", validators.UpdateWebinar(), controllers.AdminUpdateWebinar)
	adminGroup.Get("/:id/registrations", validators.WebinarID(), controllers.AdminGetWebinarRegistrations)
	adminGroup.Post("/:id/cancel-registration", validators.WebinarID(), controllers.AdminCancelRegistration)
}
