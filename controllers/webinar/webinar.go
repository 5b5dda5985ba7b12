package webinarController

import (
	"errors"

	"lms/database"
	"lms/middleware"
	"lms/models"
	webinarModels "lms/models/webinar"
	"lms/services/payment"
	webinarService "lms/services/webinar"

	"github.com/gofiber/fiber/v2"
)

// GetAllWebinars lists published webinars with pagination
func GetAllWebinars(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	upcoming := c.QueryBool("upcoming", false)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&webinarModels.Webinar{}).Where("is_deleted = ? AND is_published = ?", false, true)

	if upcoming {
		db = db.Where("starts_at > NOW()")
	}

	var total int64
	db.Count(&total)

	var webinars []webinarModels.Webinar
	if err := db.Offset(offset).Limit(limit).Order("starts_at asc").Find(&webinars).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch webinars!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Webinars fetched successfully!", fiber.Map{
		"webinars": webinars,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetWebinarDetails gets webinar details with registration status
func GetWebinarDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	webinarID := c.Locals("webinarID").(int)

	var wb webinarModels.Webinar
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", webinarID, false, true).First(&wb).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Webinar not found!", nil)
	}

	var registration webinarModels.Registration
	isRegistered := database.Database.Db.Where("user_id = ? AND webinar_id = ? AND status = ? AND is_deleted = ?",
		userID, webinarID, webinarModels.StatusRegistered, false).First(&registration).Error == nil

	// The meeting link is only shared with registered attendees
	if !isRegistered {
		wb.MeetingURL = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Webinar details fetched successfully!", fiber.Map{
		"webinar":       wb,
		"is_registered": isRegistered,
	})
}

// RegisterForWebinar registers the user for a free webinar or returns
// a payment order for a priced one
func RegisterForWebinar(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	webinarID := c.Locals("webinarID").(int)

	result, err := webinarService.Register(database.Database.Db, payment.NewRazorpayClient(), userID, uint(webinarID))
	if err != nil {
		switch {
		case errors.Is(err, webinarService.ErrWebinarNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Webinar not found or not published!", nil)
		case errors.Is(err, webinarService.ErrAlreadyRegistered):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already registered for this webinar!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register for webinar!", nil)
		}
	}

	if result.Order != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment required to complete registration.", fiber.Map{
			"orderId":  result.Order.ID,
			"amount":   result.Order.Amount,
			"currency": result.Order.Currency,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Registered for webinar successfully!", result.Registration)
}

// GetMyRegistrations lists the user's webinar registrations
func GetMyRegistrations(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var registrations []webinarModels.Registration
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Preload("Webinar").Order("created_at desc").Find(&registrations).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch registrations!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Registrations fetched successfully!", fiber.Map{
		"registrations": registrations,
	})
}
