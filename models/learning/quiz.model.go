package learning

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Question types
const (
	QuestionTypeMultipleChoice = "multiple-choice"
	QuestionTypeTrueFalse      = "true-false"
)

// Quiz represents the quiz attached to a lesson. A lesson has at most one quiz.
type Quiz struct {
	gorm.Model
	LessonID     uint   `json:"lesson_id" gorm:"uniqueIndex;not null"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	PassingScore int    `json:"passing_score" gorm:"default:70"` // percentage required to pass (0-100)
	TimeLimit    int    `json:"time_limit" gorm:"default:0"`     // minutes, 0 = unlimited
	IsDeleted    bool   `gorm:"default:false"`
}

// Question represents a single question within a quiz
type Question struct {
	gorm.Model
	QuizID        uint           `json:"quiz_id" gorm:"index;not null"`
	Text          string         `json:"text"`
	Type          string         `json:"type" gorm:"default:'multiple-choice'"`
	Options       datatypes.JSON `json:"options"`        // JSON array of option strings
	CorrectOption int            `json:"correct_option"` // index into Options
	Points        int            `json:"points" gorm:"default:1"`
	Explanation   string         `json:"explanation"`
	OrderIndex    int            `json:"order_index" gorm:"default:0"`
	IsDeleted     bool           `gorm:"default:false"`
}
