package learningControllers

import (
	"errors"

	"worksuite/database"
	"worksuite/middleware"
	"worksuite/models"
	learningModels "worksuite/models/learning"
	learningService "worksuite/services/learning"
	"worksuite/utils"

	"github.com/gofiber/fiber/v2"
)

// GetLessonQuiz returns the quiz for a lesson as a user sees it: questions
// and options only, no correct answers or explanations.
func GetLessonQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	lessonID := c.Locals("lessonID").(uint)

	var quiz learningModels.Quiz
	if err := database.Database.Db.Where("lesson_id = ? AND is_deleted = ?", lessonID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No quiz for this lesson!", nil)
	}

	state, err := Engine().LessonState(userID, lessonID, middleware.BypassRestrictions(c))
	if err != nil {
		return engineErrorResponse(c, err)
	}
	if state.Status == learningService.StatusLocked {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Watch the lesson video before taking the quiz!", state)
	}

	var questions []learningModels.Question
	database.Database.Db.Where("quiz_id = ? AND is_deleted = ?", quiz.ID, false).
		Order("order_index asc, id asc").Find(&questions)

	type QuestionView struct {
		ID      uint     `json:"id"`
		Text    string   `json:"text"`
		Type    string   `json:"type"`
		Options []string `json:"options"`
		Points  int      `json:"points"`
	}

	views := make([]QuestionView, 0, len(questions))
	for _, q := range questions {
		options, err := learningService.QuestionOptions(q)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load quiz questions!", nil)
		}
		if q.Type == learningModels.QuestionTypeTrueFalse {
			options = learningService.TrueFalseOptions()
		}
		views = append(views, QuestionView{
			ID:      q.ID,
			Text:    q.Text,
			Type:    q.Type,
			Options: options,
			Points:  q.Points,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", fiber.Map{
		"quiz": fiber.Map{
			"id":            quiz.ID,
			"title":         quiz.Title,
			"description":   quiz.Description,
			"passing_score": quiz.PassingScore,
			"time_limit":    quiz.TimeLimit,
		},
		"questions": views,
		"state":     state,
	})
}

// SubmitQuizAttempt scores and records one quiz submission for the caller
func SubmitQuizAttempt(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	lessonID := c.Locals("lessonID").(uint)
	reqData, ok := c.Locals("validatedAttempt").(*struct {
		Answers   []learningService.Answer `json:"answers"`
		TimeSpent int                      `json:"time_spent"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Submission requires course membership
	var lesson learningModels.Lesson
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}
	bypass := middleware.BypassRestrictions(c)
	if !bypass {
		var enrollment learningModels.Enrollment
		if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND status = ? AND is_deleted = ?",
			userID, lesson.CourseID, "ENROLLED", false).First(&enrollment).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
		}
	}

	attempt, err := Engine().SubmitAttempt(userID, lessonID, reqData.Answers, reqData.TimeSpent, bypass)
	if err != nil {
		if errors.Is(err, learningService.ErrAttemptLimitExceeded) {
			go utils.SendMaxAttemptsEmail(user.Name, user.Email, lesson.Title)
		}
		return engineErrorResponse(c, err)
	}

	attemptsLeft := learningService.MaxAttempts - attempt.AttemptNumber
	if attemptsLeft < 0 {
		attemptsLeft = 0
	}
	go utils.SendQuizResultEmail(user.Name, user.Email, lesson.Title, attempt.Percentage, attempt.Passed, attemptsLeft)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answers submitted!", fiber.Map{
		"attempt_number": attempt.AttemptNumber,
		"score":          attempt.Score,
		"total_points":   attempt.TotalPoints,
		"percentage":     attempt.Percentage,
		"passed":         attempt.Passed,
		"attempts_left":  attemptsLeft,
	})
}
