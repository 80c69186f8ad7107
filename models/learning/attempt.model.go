package learning

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuizAttempt is one scored submission of quiz answers by a user. Rows are
// append-only: an attempt is never edited or deleted, only superseded by a
// later attempt for the same (user, lesson).
type QuizAttempt struct {
	gorm.Model
	UserID        uint           `json:"user_id" gorm:"index:idx_user_lesson_attempt;not null"`
	LessonID      uint           `json:"lesson_id" gorm:"index:idx_user_lesson_attempt;not null"`
	QuizID        uint           `json:"quiz_id" gorm:"index;not null"`
	Answers       datatypes.JSON `json:"answers"`       // array of {question_id, selected_option}
	QuizSnapshot  datatypes.JSON `json:"quiz_snapshot"` // quiz + questions as scored, so later edits cannot invalidate history
	Score         int            `json:"score"`
	TotalPoints   int            `json:"total_points"`
	Percentage    float64        `json:"percentage"`
	Passed        bool           `json:"passed" gorm:"default:false"`
	TimeSpent     int            `json:"time_spent"` // seconds
	AttemptNumber int            `json:"attempt_number" gorm:"default:1"`
	IsDeleted     bool           `gorm:"default:false"`
}
