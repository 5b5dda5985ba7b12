package simulationController

import (
	"errors"
	"time"

	"lms/database"
	"lms/middleware"
	"lms/models"
	simModels "lms/models/simulation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Virtual cash every new portfolio starts with, in rupees
const startingCash = 1000000

// getOrCreatePortfolio fetches the user's simulated account, seeding a
// new one with the starting cash on first use
func getOrCreatePortfolio(db *gorm.DB, userID uint) (*simModels.Portfolio, error) {
	var portfolio simModels.Portfolio
	err := db.Where("user_id = ? AND is_deleted = ?", userID, false).First(&portfolio).Error
	if err == nil {
		return &portfolio, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	portfolio = simModels.Portfolio{UserID: userID, CashBalance: startingCash}
	if err := db.Create(&portfolio).Error; err != nil {
		return nil, err
	}
	return &portfolio, nil
}

// GetInstruments lists active tradable instruments
func GetInstruments(c *fiber.Ctx) error {
	var instruments []simModels.Instrument
	if err := database.Database.Db.Where("is_active = ? AND is_deleted = ?", true, false).
		Order("symbol asc").Find(&instruments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch instruments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instruments fetched successfully!", fiber.Map{
		"instruments": instruments,
	})
}

// GetPortfolio returns the user's simulated account with holdings and P&L
func GetPortfolio(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	portfolio, err := getOrCreatePortfolio(database.Database.Db, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch portfolio!", nil)
	}

	var holdings []simModels.Holding
	database.Database.Db.Where("portfolio_id = ? AND quantity > 0 AND is_deleted = ?", portfolio.ID, false).Find(&holdings)

	type HoldingWithPnL struct {
		simModels.Holding
		Symbol       string  `json:"symbol"`
		LastPrice    float64 `json:"last_price"`
		MarketValue  float64 `json:"market_value"`
		UnrealizedPL float64 `json:"unrealized_pl"`
	}

	totalValue := portfolio.CashBalance
	result := make([]HoldingWithPnL, len(holdings))
	for i, h := range holdings {
		var instrument simModels.Instrument
		database.Database.Db.Where("id = ?", h.InstrumentID).First(&instrument)

		marketValue := float64(h.Quantity) * instrument.LastPrice
		totalValue += marketValue

		result[i] = HoldingWithPnL{
			Holding:      h,
			Symbol:       instrument.Symbol,
			LastPrice:    instrument.LastPrice,
			MarketValue:  marketValue,
			UnrealizedPL: marketValue - float64(h.Quantity)*h.AvgPrice,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Portfolio fetched successfully!", fiber.Map{
		"portfolio":   portfolio,
		"holdings":    result,
		"total_value": totalValue,
	})
}

// PlaceTrade executes a simulated buy or sell at the instrument's
// reference price
func PlaceTrade(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedTrade").(*struct {
		Symbol   string `json:"symbol"`
		Side     string `json:"side"`
		Quantity int64  `json:"quantity"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var instrument simModels.Instrument
	if err := database.Database.Db.Where("symbol = ? AND is_active = ? AND is_deleted = ?", reqData.Symbol, true, false).First(&instrument).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Instrument not found!", nil)
	}
	if instrument.LastPrice <= 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Instrument has no price yet!", nil)
	}

	portfolio, err := getOrCreatePortfolio(database.Database.Db, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch portfolio!", nil)
	}

	cost := float64(reqData.Quantity) * instrument.LastPrice

	var holding simModels.Holding
	hasHolding := database.Database.Db.Where("portfolio_id = ? AND instrument_id = ? AND is_deleted = ?",
		portfolio.ID, instrument.ID, false).First(&holding).Error == nil

	switch reqData.Side {
	case simModels.SideBuy:
		if portfolio.CashBalance < cost {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Insufficient virtual cash!", nil)
		}
	case simModels.SideSell:
		if !hasHolding || holding.Quantity < reqData.Quantity {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Insufficient holdings to sell!", nil)
		}
	default:
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Side must be BUY or SELL!", nil)
	}

	trade := simModels.Trade{
		PortfolioID:  portfolio.ID,
		InstrumentID: instrument.ID,
		Side:         reqData.Side,
		Quantity:     reqData.Quantity,
		Price:        instrument.LastPrice,
		ExecutedAt:   time.Now(),
	}

	err = database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&trade).Error; err != nil {
			return err
		}

		if reqData.Side == simModels.SideBuy {
			portfolio.CashBalance -= cost
			if !hasHolding {
				holding = simModels.Holding{
					PortfolioID:  portfolio.ID,
					InstrumentID: instrument.ID,
					Quantity:     reqData.Quantity,
					AvgPrice:     instrument.LastPrice,
				}
				if err := tx.Create(&holding).Error; err != nil {
					return err
				}
				return tx.Save(portfolio).Error
			}
			// Weighted average entry price across buys
			totalCost := float64(holding.Quantity)*holding.AvgPrice + cost
			holding.Quantity += reqData.Quantity
			holding.AvgPrice = totalCost / float64(holding.Quantity)
		} else {
			portfolio.CashBalance += cost
			holding.Quantity -= reqData.Quantity
		}

		if err := tx.Save(&holding).Error; err != nil {
			return err
		}
		return tx.Save(portfolio).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to execute trade!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trade executed successfully!", fiber.Map{
		"trade":        trade,
		"cash_balance": portfolio.CashBalance,
	})
}

// AdminUpsertInstrument creates an instrument or updates its reference
// price
func AdminUpsertInstrument(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedInstrument").(*struct {
		Symbol    string  `json:"symbol"`
		Name      string  `json:"name"`
		LastPrice float64 `json:"last_price"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var instrument simModels.Instrument
	err := database.Database.Db.Where("symbol = ? AND is_deleted = ?", reqData.Symbol, false).First(&instrument).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		instrument = simModels.Instrument{
			Symbol:    reqData.Symbol,
			Name:      reqData.Name,
			LastPrice: reqData.LastPrice,
		}
		if err := database.Database.Db.Create(&instrument).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create instrument!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Instrument created successfully!", instrument)
	}

	if reqData.Name != "" {
		instrument.Name = reqData.Name
	}
	instrument.LastPrice = reqData.LastPrice
	if err := database.Database.Db.Save(&instrument).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update instrument!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instrument updated successfully!", instrument)
}
