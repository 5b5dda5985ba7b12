package webinarValidator

import (
	"strconv"
	"strings"
	"time"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

func WebinarID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Webinar ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Webinar ID!", nil)
		}

		c.Locals("webinarID", id)
		return c.Next()
	}
}

func CreateWebinar() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
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

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Speaker) == "" {
			errors["speaker"] = "Speaker is required!"
		}
		if reqData.StartsAt.IsZero() || reqData.StartsAt.Before(time.Now()) {
			errors["starts_at"] = "Start time must be in the future!"
		}
		if reqData.DurationMins <= 0 {
			reqData.DurationMins = 60
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedWebinar", reqData)
		return c.Next()
	}
}

func UpdateWebinar() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Webinar ID!", nil)
		}
		c.Locals("webinarID", id)

		reqData := new(struct {
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

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.StartsAt != nil && reqData.StartsAt.Before(time.Now()) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"starts_at": "Start time must be in the future!",
			})
		}

		c.Locals("validatedWebinarUpdate", reqData)
		return c.Next()
	}
}
