package blogRoutes

import (
	controllers "lms/controllers/blog"
	"lms/middleware"
	validators "lms/validators/blog"

	"github.com/gofiber/fiber/v2"
)

// SetupBlogRoutes sets up blog listing and admin content routes
func SetupBlogRoutes(app *fiber.App) {
	blogGroup := app.Group("/blog")

	// Public reads
	blogGroup.Get("/list", controllers.GetAllPosts)
	blogGroup.Get("/:slug", controllers.GetPostBySlug)

	// Admin content management
	adminGroup := app.Group("/admin/blog", middleware.JWTMiddleware, middleware.RequireRole("ADMIN", "INSTRUCTOR"))
	adminGroup.Post("/", validators.CreatePost(), controllers.AdminCreatePost)
	adminGroup.Put("/:id", validators.UpdatePost(), controllers.AdminUpdatePost)
	adminGroup.Delete("/:id", validators.PostID(), controllers.AdminDeletePost)
}
