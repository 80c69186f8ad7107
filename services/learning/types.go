package learning

// Engine thresholds. The attempt cap is a hard ceiling per (user, lesson);
// there is no timed reset.
const (
	WatchedThreshold = 90.0
	MaxAttempts      = 3
)

// Lesson status values as seen by a user
const (
	StatusNoQuiz      = "no-quiz"
	StatusLocked      = "locked"
	StatusAvailable   = "available"
	StatusPassed      = "passed"
	StatusFailed      = "failed"
	StatusMaxAttempts = "max-attempts"
)

// Answer is one submitted answer. SelectedOption -1 means the question was
// left unanswered.
type Answer struct {
	QuestionID     uint `json:"question_id"`
	SelectedOption int  `json:"selected_option"`
}

// ScoreResult is the outcome of scoring one answer set against a quiz
type ScoreResult struct {
	Score       int     `json:"score"`
	TotalPoints int     `json:"total_points"`
	Percentage  float64 `json:"percentage"`
	Passed      bool    `json:"passed"`
}

// LessonState describes a lesson's quiz standing for one user
type LessonState struct {
	LessonID       uint    `json:"lesson_id"`
	Status         string  `json:"status"`
	CanTake        bool    `json:"can_take"`
	VideoWatched   bool    `json:"video_watched"`
	Completed      bool    `json:"completed"`
	AttemptsUsed   int     `json:"attempts_used"`
	AttemptsLeft   int     `json:"attempts_left"`
	BestPercentage float64 `json:"best_percentage"`
}

// CourseCompletion is the derived completion standing of one user in a course
type CourseCompletion struct {
	CourseID                 uint     `json:"course_id"`
	TotalLessons             int      `json:"total_lessons"`
	CompletedLessons         int      `json:"completed_lessons"`
	TotalQuizzes             int      `json:"total_quizzes"`
	PassedQuizzes            int      `json:"passed_quizzes"`
	CompletionPercentage     int      `json:"completion_percentage"`
	FullyCompleted           bool     `json:"fully_completed"`
	LessonsNeedingCompletion []string `json:"lessons_needing_completion"`
}
