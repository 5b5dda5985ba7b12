package simulationValidator

import (
	"strings"

	"lms/middleware"
	simModels "lms/models/simulation"

	"github.com/gofiber/fiber/v2"
)

func PlaceTrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Symbol   string `json:"symbol"`
			Side     string `json:"side"`
			Quantity int64  `json:"quantity"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Symbol = strings.ToUpper(strings.TrimSpace(reqData.Symbol))
		if reqData.Symbol == "" {
			errors["symbol"] = "Symbol is required!"
		}
		if reqData.Side != simModels.SideBuy && reqData.Side != simModels.SideSell {
			errors["side"] = "Side must be BUY or SELL!"
		}
		if reqData.Quantity <= 0 {
			errors["quantity"] = "Quantity must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTrade", reqData)
		return c.Next()
	}
}

func UpsertInstrument() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Symbol    string  `json:"symbol"`
			Name      string  `json:"name"`
			LastPrice float64 `json:"last_price"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Symbol = strings.ToUpper(strings.TrimSpace(reqData.Symbol))
		if reqData.Symbol == "" {
			errors["symbol"] = "Symbol is required!"
		}
		if reqData.LastPrice < 0 {
			errors["last_price"] = "Price cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedInstrument", reqData)
		return c.Next()
	}
}
