package learningControllers

import (
	"encoding/json"

	"worksuite/database"
	"worksuite/middleware"
	learningModels "worksuite/models/learning"
	learningService "worksuite/services/learning"
	learningValidator "worksuite/validators/learning"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UpsertLessonQuiz creates or replaces the quiz attached to a lesson.
// Editing stays allowed after attempts exist; historical attempts keep their
// own snapshot of the definition they were scored against.
func UpsertLessonQuiz(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(uint)

	var lesson learningModels.Lesson
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	reqData, ok := c.Locals("validatedQuiz").(*learningValidator.QuizPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	quiz := learningModels.Quiz{
		LessonID:     lessonID,
		Title:        reqData.Title,
		Description:  reqData.Description,
		PassingScore: reqData.PassingScore,
		TimeLimit:    reqData.TimeLimit,
	}

	questions := make([]learningModels.Question, len(reqData.Questions))
	for i, q := range reqData.Questions {
		points := q.Points
		if points == 0 {
			points = 1
		}
		options := q.Options
		if q.Type == learningModels.QuestionTypeTrueFalse {
			options = learningService.TrueFalseOptions()
		}
		optionsJSON, err := json.Marshal(options)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid question options!", nil)
		}
		questions[i] = learningModels.Question{
			Text:          q.Text,
			Type:          q.Type,
			Options:       optionsJSON,
			CorrectOption: q.CorrectOption,
			Points:        points,
			Explanation:   q.Explanation,
			OrderIndex:    i,
		}
	}

	// Reject malformed definitions before anything is persisted
	if err := learningService.ValidateQuiz(quiz, questions); err != nil {
		return engineErrorResponse(c, err)
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		var existing learningModels.Quiz
		findErr := tx.Where("lesson_id = ? AND is_deleted = ?", lessonID, false).First(&existing).Error
		if findErr == nil {
			// replace in place: keep the quiz id, soft-delete old questions
			existing.Title = quiz.Title
			existing.Description = quiz.Description
			existing.PassingScore = quiz.PassingScore
			existing.TimeLimit = quiz.TimeLimit
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			if err := tx.Model(&learningModels.Question{}).
				Where("quiz_id = ? AND is_deleted = ?", existing.ID, false).
				Update("is_deleted", true).Error; err != nil {
				return err
			}
			quiz = existing
		} else if findErr == gorm.ErrRecordNotFound {
			if err := tx.Create(&quiz).Error; err != nil {
				return err
			}
		} else {
			return findErr
		}

		for i := range questions {
			questions[i].QuizID = quiz.ID
			if err := tx.Create(&questions[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save quiz!", nil)
	}

	var attemptCount int64
	database.Database.Db.Model(&learningModels.QuizAttempt{}).
		Where("quiz_id = ? AND is_deleted = ?", quiz.ID, false).Count(&attemptCount)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz saved successfully!", fiber.Map{
		"quiz":              quiz,
		"question_count":    len(questions),
		"existing_attempts": attemptCount,
	})
}

// GetLessonQuizAdmin returns the full quiz definition including answers
func GetLessonQuizAdmin(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(uint)

	var quiz learningModels.Quiz
	if err := database.Database.Db.Where("lesson_id = ? AND is_deleted = ?", lessonID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No quiz for this lesson!", nil)
	}

	var questions []learningModels.Question
	database.Database.Db.Where("quiz_id = ? AND is_deleted = ?", quiz.ID, false).
		Order("order_index asc, id asc").Find(&questions)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", fiber.Map{
		"quiz":      quiz,
		"questions": questions,
	})
}

// DeleteLessonQuiz soft-deletes a lesson's quiz and its questions
func DeleteLessonQuiz(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(uint)

	var quiz learningModels.Quiz
	if err := database.Database.Db.Where("lesson_id = ? AND is_deleted = ?", lessonID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No quiz for this lesson!", nil)
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&quiz).Update("is_deleted", true).Error; err != nil {
			return err
		}
		return tx.Model(&learningModels.Question{}).
			Where("quiz_id = ? AND is_deleted = ?", quiz.ID, false).
			Update("is_deleted", true).Error
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz deleted successfully!", nil)
}
