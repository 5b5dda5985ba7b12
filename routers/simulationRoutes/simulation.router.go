package simulationRoutes

import (
	controllers "lms/controllers/simulation"
	"lms/middleware"
	validators "lms/validators/simulation"

	"github.com/gofiber/fiber/v2"
)

// SetupSimulationRoutes sets up market simulation routes
func SetupSimulationRoutes(app *fiber.App) {
	simGroup := app.Group("/simulation")

	simGroup.Get("/instruments", middleware.JWTMiddleware, controllers.GetInstruments)
	simGroup.Get("/portfolio", middleware.JWTMiddleware, controllers.GetPortfolio)
	simGroup.Post("/trade", middleware.JWTMiddleware, validators.PlaceTrade(), controllers.PlaceTrade)

	adminGroup := app.Group("/admin/simulation", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))
	adminGroup.Post("/instrument", validators.UpsertInstrument(), controllers.AdminUpsertInstrument)
}
