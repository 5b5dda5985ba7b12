package webinarController

import (
	"time"

	"lms/database"
	"lms/middleware"
	"lms/models"
	webinarModels "lms/models/webinar"
	webinarService "lms/services/webinar"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateWebinar creates a new webinar
func AdminCreateWebinar(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedWebinar").(*struct {
		Title        string    `json:"title"`
		Description  string    `json:"description"`
		Speaker      string    `json:"speaker"`
		StartsAt     time.Time `json:"starts_at"`
		DurationMins int       `json:"duration_mins"`
		MeetingURL   string    `json:"meeting_url"`
		Price        uint      `json:"price"`
		IsFree       bool      `json:"is_free"`
		ThumbnailURL string    `json:"thumbnail_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	slug := utils.Slugify(reqData.Title)

	var count int64
	database.Database.Db.Model(&webinarModels.Webinar{}).Where("slug LIKE ?", slug+"%").Count(&count)
	if count > 0 {
		slug = utils.SlugWithSuffix(slug, count)
	}

	wb := webinarModels.Webinar{
		Title:        reqData.Title,
		Slug:         slug,
		Description:  reqData.Description,
		Speaker:      reqData.Speaker,
		StartsAt:     reqData.StartsAt,
		DurationMins: reqData.DurationMins,
		MeetingURL:   reqData.MeetingURL,
		Price:        reqData.Price,
		IsFree:       reqData.IsFree || reqData.Price == 0,
		ThumbnailURL: reqData.ThumbnailURL,
	}

	if err := database.Database.Db.Create(&wb).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create webinar!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Webinar created successfully!", wb)
}

// AdminUpdateWebinar updates a webinar
func AdminUpdateWebinar(c *fiber.Ctx) error {
	webinarID := c.Locals("webinarID").(int)

	var wb webinarModels.Webinar
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", webinarID, false).First(&wb).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Webinar not found!", nil)
	}

	reqData, ok := c.Locals("validatedWebinarUpdate").(*struct {
		Title        string     `json:"title"`
		Description  string     `json:"description"`
		Speaker      string     `json:"speaker"`
		StartsAt     *time.Time `json:"starts_at"`
		DurationMins *int       `json:"duration_mins"`
		MeetingURL   string     `json:"meeting_url"`
		Price        *uint      `json:"price"`
		IsFree       *bool      `json:"is_free"`
		ThumbnailURL string     `json:"thumbnail_url"`
		IsPublished  *bool      `json:"is_published"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		wb.Title = reqData.Title
	}
	if reqData.Description != "" {
		wb.Description = reqData.Description
	}
	if reqData.Speaker != "" {
		wb.Speaker = reqData.Speaker
	}
	if reqData.StartsAt != nil {
		wb.StartsAt = *reqData.StartsAt
	}
	if reqData.DurationMins != nil {
		wb.DurationMins = *reqData.DurationMins
	}
	if reqData.MeetingURL != "" {
		wb.MeetingURL = reqData.MeetingURL
	}
	if reqData.Price != nil {
		wb.Price = *reqData.Price
	}
	if reqData.IsFree != nil {
		wb.IsFree = *reqData.IsFree
	}
	if reqData.ThumbnailURL != "" {
		wb.ThumbnailURL = reqData.ThumbnailURL
	}
	if reqData.IsPublished != nil {
		wb.IsPublished = *reqData.IsPublished
	}

	if err := database.Database.Db.Save(&wb).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update webinar!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Webinar updated successfully!", wb)
}

// AdminCancelRegistration cancels a user's webinar registration
func AdminCancelRegistration(c *fiber.Ctx) error {
	webinarID := c.Locals("webinarID").(int)

	reqData := new(struct {
		UserID uint `json:"user_id"`
	})
	if err := c.BodyParser(reqData); err != nil || reqData.UserID == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "A valid user_id is required!", nil)
	}

	if err := webinarService.Cancel(database.Database.Db, reqData.UserID, uint(webinarID)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Active registration not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Registration cancelled successfully!", nil)
}

// AdminGetWebinarRegistrations lists registrations for a webinar
func AdminGetWebinarRegistrations(c *fiber.Ctx) error {
	webinarID := c.Locals("webinarID").(int)

	var wb webinarModels.Webinar
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", webinarID, false).First(&wb).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Webinar not found!", nil)
	}

	var registrations []webinarModels.Registration
	if err := database.Database.Db.Where("webinar_id = ? AND is_deleted = ?", webinarID, false).
		Order("created_at desc").Find(&registrations).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch registrations!", nil)
	}

	type RegistrationWithUser struct {
		webinarModels.Registration
		UserName  string `json:"user_name"`
		UserEmail string `json:"user_email"`
	}

	result := make([]RegistrationWithUser, len(registrations))
	for i, r := range registrations {
		var registeredUser models.User
		database.Database.Db.Where("id = ?", r.UserID).First(&registeredUser)
		result[i] = RegistrationWithUser{
			Registration: r,
			UserName:     registeredUser.Name,
			UserEmail:    registeredUser.Email,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Registrations fetched successfully!", fiber.Map{
		"registrations": result,
		"attendees":     wb.Attendees,
	})
}
