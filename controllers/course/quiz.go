package controllers

import (
	"encoding/json"
	"math"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

// GetQuiz returns a course quiz with questions and options. The
// correct-answer flags are stripped before sending to users.
func GetQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)
	quizID := c.Locals("quizID").(int)

	// Check enrollment
	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	var quiz courseModels.Quiz
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ? AND is_published = ?", quizID, courseID, false, true).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	var questions []courseModels.QuizQuestion
	database.Database.Db.Where("quiz_id = ? AND is_deleted = ?", quiz.ID, false).Order("order_index asc").Find(&questions)

	type QuestionWithOptions struct {
		courseModels.QuizQuestion
		Options []courseModels.QuizOption `json:"options"`
	}

	result := make([]QuestionWithOptions, len(questions))
	for i, q := range questions {
		var options []courseModels.QuizOption
		database.Database.Db.Where("question_id = ? AND is_deleted = ?", q.ID, false).Order("order_index asc").Find(&options)
		// Hide answers from users
		for j := range options {
			options[j].IsCorrect = false
		}
		result[i] = QuestionWithOptions{QuizQuestion: q, Options: options}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", fiber.Map{
		"quiz":      quiz,
		"questions": result,
	})
}

// SubmitQuiz scores a quiz submission and records the attempt
func SubmitQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)
	quizID := c.Locals("quizID").(int)

	// Check enrollment
	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	var quiz courseModels.Quiz
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ? AND is_published = ?", quizID, courseID, false, true).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	reqData := new(struct {
		SelectedOptionIDs []uint `json:"selected_option_ids"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if len(reqData.SelectedOptionIDs) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please select at least one option!", nil)
	}

	// Correct options across the quiz's questions
	var correctOptions []courseModels.QuizOption
	database.Database.Db.
		Joins("JOIN quiz_questions ON quiz_options.question_id = quiz_questions.id").
		Where("quiz_questions.quiz_id = ? AND quiz_options.is_correct = ? AND quiz_options.is_deleted = ?", quiz.ID, true, false).
		Find(&correctOptions)

	correctIDs := make(map[uint]bool, len(correctOptions))
	for _, opt := range correctOptions {
		correctIDs[opt.ID] = true
	}

	score := 0
	for _, selectedID := range reqData.SelectedOptionIDs {
		if correctIDs[selectedID] {
			score++
		}
	}

	maxScore := len(correctOptions)
	percent := 0
	if maxScore > 0 {
		percent = int(math.Round(float64(score) / float64(maxScore) * 100))
	}

	// Attempt number
	var attemptCount int64
	database.Database.Db.Model(&courseModels.QuizAttempt{}).
		Where("user_id = ? AND quiz_id = ? AND is_deleted = ?", userID, quiz.ID, false).Count(&attemptCount)

	selectedJSON, _ := json.Marshal(reqData.SelectedOptionIDs)

	attempt := courseModels.QuizAttempt{
		UserID:          userID,
		QuizID:          quiz.ID,
		SelectedOptions: string(selectedJSON),
		Score:           score,
		MaxScore:        maxScore,
		Percent:         percent,
		AttemptNumber:   int(attemptCount) + 1,
	}

	if err := database.Database.Db.Create(&attempt).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted!", fiber.Map{
		"attempt":   attempt,
		"score":     score,
		"max_score": maxScore,
		"percent":   percent,
	})
}
