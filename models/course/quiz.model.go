package course

import "gorm.io/gorm"

// Quiz is a set of questions attached to a course
type Quiz struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsPublished bool   `json:"is_published" gorm:"default:false"`
	IsDeleted   bool   `gorm:"default:false"`
}

// QuizQuestion is a single multiple-choice question within a quiz
type QuizQuestion struct {
	gorm.Model
	QuizID     uint   `json:"quiz_id" gorm:"index;not null"`
	Text       string `json:"text" gorm:"type:text"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	IsDeleted  bool   `gorm:"default:false"`
}

// QuizOption is an answer choice for a question
type QuizOption struct {
	gorm.Model
	QuestionID uint   `json:"question_id" gorm:"index;not null"`
	Text       string `json:"text"`
	IsCorrect  bool   `json:"is_correct"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	IsDeleted  bool   `gorm:"default:false"`
}

// QuizAttempt records a user's submission and score for a quiz
type QuizAttempt struct {
	gorm.Model
	UserID          uint   `json:"user_id" gorm:"index;not null"`
	QuizID          uint   `json:"quiz_id" gorm:"index;not null"`
	SelectedOptions string `json:"selected_options" gorm:"type:text"` // JSON array of option IDs
	Score           int    `json:"score"`
	MaxScore        int    `json:"max_score"`
	Percent         int    `json:"percent"`
	AttemptNumber   int    `json:"attempt_number"`
	IsDeleted       bool   `gorm:"default:false"`
}
