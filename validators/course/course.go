package courseValidator

import (
	"strconv"
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// parseIDParam validates a positive integer route parameter and stores
// it in Locals under the given key
func parseIDParam(c *fiber.Ctx, param, localKey, label string) (bool, error) {
	idStr := strings.TrimSpace(c.Params(param))
	if idStr == "" {
		return false, middleware.JsonResponse(c, fiber.StatusBadRequest, false, label+" is required!", nil)
	}

	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return false, middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid "+label+"!", nil)
	}

	c.Locals(localKey, id)
	return true, nil
}

func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := parseIDParam(c, "id", "courseID", "Course ID"); !ok {
			return err
		}
		return c.Next()
	}
}

func CourseAndLessonID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := parseIDParam(c, "course_id", "courseID", "Course ID"); !ok {
			return err
		}
		if ok, err := parseIDParam(c, "lesson_id", "lessonID", "Lesson ID"); !ok {
			return err
		}
		return c.Next()
	}
}

func CourseAndQuizID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := parseIDParam(c, "course_id", "courseID", "Course ID"); !ok {
			return err
		}
		if ok, err := parseIDParam(c, "quiz_id", "quizID", "Quiz ID"); !ok {
			return err
		}
		return c.Next()
	}
}

func CourseProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := parseIDParam(c, "course_id", "courseID", "Course ID"); !ok {
			return err
		}
		return c.Next()
	}
}
