package courseValidator

import (
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

var validLevels = map[string]bool{"BEGINNER": true, "INTERMEDIATE": true, "ADVANCED": true}
var validContentTypes = map[string]bool{"TEXT": true, "VIDEO": true, "IMAGE": true}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title         string `json:"title"`
			Description   string `json:"description"`
			Instructor    string `json:"instructor"`
			Category      string `json:"category"`
			Level         string `json:"level"`
			Duration      int64  `json:"duration"`
			Price         uint   `json:"price"`
			DiscountPrice *uint  `json:"discount_price"`
			ThumbnailURL  string `json:"thumbnail_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Instructor) == "" {
			errors["instructor"] = "Instructor is required!"
		}
		if reqData.Level == "" {
			reqData.Level = "BEGINNER"
		} else if !validLevels[reqData.Level] {
			errors["level"] = "Level must be BEGINNER, INTERMEDIATE or ADVANCED!"
		}
		if reqData.DiscountPrice != nil && *reqData.DiscountPrice >= reqData.Price {
			errors["discount_price"] = "Discount price must be less than the list price!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := parseIDParam(c, "id", "courseID", "Course ID"); !ok {
			return err
		}

		reqData := new(struct {
			Title         string `json:"title"`
			Description   string `json:"description"`
			Instructor    string `json:"instructor"`
			Category      string `json:"category"`
			Level         string `json:"level"`
			Duration      int64  `json:"duration"`
			Price         *uint  `json:"price"`
			DiscountPrice *uint  `json:"discount_price"`
			ThumbnailURL  string `json:"thumbnail_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Level != "" && !validLevels[reqData.Level] {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"level": "Level must be BEGINNER, INTERMEDIATE or ADVANCED!",
			})
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := parseIDParam(c, "id", "courseID", "Course ID"); !ok {
			return err
		}

		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			ContentType string `json:"content_type"`
			TextContent string `json:"text_content"`
			VideoURL    string `json:"video_url"`
			ImageURL    string `json:"image_url"`
			OrderIndex  int    `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.ContentType == "" {
			reqData.ContentType = "TEXT"
		} else if !validContentTypes[reqData.ContentType] {
			errors["content_type"] = "Content type must be TEXT, VIDEO or IMAGE!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

func UpdateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := parseIDParam(c, "course_id", "courseID", "Course ID"); !ok {
			return err
		}
		if ok, err := parseIDParam(c, "lesson_id", "lessonID", "Lesson ID"); !ok {
			return err
		}

		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			ContentType string `json:"content_type"`
			TextContent string `json:"text_content"`
			VideoURL    string `json:"video_url"`
			ImageURL    string `json:"image_url"`
			OrderIndex  *int   `json:"order_index"`
			IsPublished *bool  `json:"is_published"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.ContentType != "" && !validContentTypes[reqData.ContentType] {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"content_type": "Content type must be TEXT, VIDEO or IMAGE!",
			})
		}

		c.Locals("validatedLessonUpdate", reqData)
		return c.Next()
	}
}

func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := parseIDParam(c, "id", "courseID", "Course ID"); !ok {
			return err
		}

		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Questions   []struct {
				Text    string `json:"text"`
				Options []struct {
					Text      string `json:"text"`
					IsCorrect bool   `json:"is_correct"`
				} `json:"options"`
			} `json:"questions"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if len(reqData.Questions) == 0 {
			errors["questions"] = "At least one question is required!"
		}
		for _, q := range reqData.Questions {
			if len(q.Options) < 2 {
				errors["options"] = "Every question needs at least two options!"
				break
			}
			hasCorrect := false
			for _, o := range q.Options {
				if o.IsCorrect {
					hasCorrect = true
					break
				}
			}
			if !hasCorrect {
				errors["options"] = "Every question needs a correct option!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}
