package learning

import "gorm.io/gorm"

// Lesson represents a video lesson within a course, optionally followed by a quiz
type Lesson struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description"`
	VideoURL    string `json:"video_url"`
	Duration    int    `json:"duration" gorm:"default:0"`    // video duration in seconds
	OrderIndex  int    `json:"order_index" gorm:"default:0"` // lesson order in course
	IsPublished bool   `json:"is_published" gorm:"default:false"`
	IsDeleted   bool   `gorm:"default:false"`
}

// LessonProgress tracks the furthest watch position a user has reached in a lesson.
// One row per (user, lesson); the stored percent never decreases.
type LessonProgress struct {
	gorm.Model
	UserID    uint    `json:"user_id" gorm:"uniqueIndex:idx_user_lesson_progress;not null"`
	LessonID  uint    `json:"lesson_id" gorm:"uniqueIndex:idx_user_lesson_progress;not null"`
	Progress  float64 `json:"progress" gorm:"default:0"` // watch progress percent (0-100)
	IsDeleted bool    `gorm:"default:false"`
}
