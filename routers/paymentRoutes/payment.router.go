package paymentRoutes

import (
	controllers "lms/controllers/payment"
	"lms/middleware"
	validators "lms/validators/payment"

	"github.com/gofiber/fiber/v2"
)

// SetupPaymentRoutes sets up payment confirmation routes
func SetupPaymentRoutes(app *fiber.App) {
	paymentGroup := app.Group("/payment")

	paymentGroup.Post("/confirm", middleware.JWTMiddleware, validators.ConfirmPayment(), controllers.ConfirmPayment)
	paymentGroup.Get("/orders", middleware.JWTMiddleware, controllers.GetMyOrders)
}
