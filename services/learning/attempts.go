package learning

import (
	"encoding/json"
	"errors"

	learningModels "worksuite/models/learning"

	"gorm.io/gorm"
)

type quizSnapshot struct {
	Quiz      learningModels.Quiz       `json:"quiz"`
	Questions []learningModels.Question `json:"questions"`
}

// CountAttempts returns the number of recorded attempts for a (user, lesson) pair
func (s *Service) CountAttempts(userID, lessonID uint) (int, error) {
	var count int64
	err := s.db.Model(&learningModels.QuizAttempt{}).
		Where("user_id = ? AND lesson_id = ? AND is_deleted = ?", userID, lessonID, false).
		Count(&count).Error
	return int(count), err
}

// CanAttempt reports whether the attempt cap still allows a submission
func (s *Service) CanAttempt(userID, lessonID uint) (bool, error) {
	count, err := s.CountAttempts(userID, lessonID)
	if err != nil {
		return false, err
	}
	return count < MaxAttempts, nil
}

// LatestAttempt returns the most recent attempt, or nil when there is none.
// Ordering follows creation time, with the row id as tie-breaker so "latest"
// always agrees with the attempt count.
func (s *Service) LatestAttempt(userID, lessonID uint) (*learningModels.QuizAttempt, error) {
	var attempt learningModels.QuizAttempt
	err := s.db.Where("user_id = ? AND lesson_id = ? AND is_deleted = ?", userID, lessonID, false).
		Order("created_at desc, id desc").First(&attempt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

// BestAttempt returns the highest-scoring attempt, or nil when there is none
func (s *Service) BestAttempt(userID, lessonID uint) (*learningModels.QuizAttempt, error) {
	var attempt learningModels.QuizAttempt
	err := s.db.Where("user_id = ? AND lesson_id = ? AND is_deleted = ?", userID, lessonID, false).
		Order("percentage desc, id asc").First(&attempt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

// HasPassedAttempt reports whether any recorded attempt passed the quiz
func (s *Service) HasPassedAttempt(userID, lessonID uint) (bool, error) {
	var count int64
	err := s.db.Model(&learningModels.QuizAttempt{}).
		Where("user_id = ? AND lesson_id = ? AND passed = ? AND is_deleted = ?", userID, lessonID, true, false).
		Count(&count).Error
	return count > 0, err
}

// SubmitAttempt validates, scores and records one quiz submission. The cap
// check and the insert run under the per-(user, lesson) lock inside a single
// transaction, so concurrent submissions can never admit a fourth attempt.
// bypass skips the watch gate and the cap for instructor/admin callers.
func (s *Service) SubmitAttempt(userID, lessonID uint, answers []Answer, timeSpent int, bypass bool) (*learningModels.QuizAttempt, error) {
	if answers == nil {
		return nil, newValidationError("answers", "Answers array is required!")
	}

	var lesson learningModels.Lesson
	if err := s.db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var quiz learningModels.Quiz
	if err := s.db.Where("lesson_id = ? AND is_deleted = ?", lessonID, false).First(&quiz).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var questions []learningModels.Question
	if err := s.db.Where("quiz_id = ? AND is_deleted = ?", quiz.ID, false).
		Order("order_index asc, id asc").Find(&questions).Error; err != nil {
		return nil, err
	}

	if err := ValidateQuiz(quiz, questions); err != nil {
		return nil, err
	}

	if !bypass {
		watched, err := s.IsVideoWatched(userID, lessonID)
		if err != nil {
			return nil, err
		}
		if !watched {
			return nil, ErrLessonLocked
		}
	}

	result := ScoreQuiz(quiz, questions, answers)

	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return nil, err
	}
	snapshotJSON, err := json.Marshal(quizSnapshot{Quiz: quiz, Questions: questions})
	if err != nil {
		return nil, err
	}

	if timeSpent < 0 {
		timeSpent = 0
	}

	lock := s.userLessonLock(userID, lessonID)
	lock.Lock()
	defer lock.Unlock()

	attempt := learningModels.QuizAttempt{
		UserID:       userID,
		LessonID:     lessonID,
		QuizID:       quiz.ID,
		Answers:      answersJSON,
		QuizSnapshot: snapshotJSON,
		Score:        result.Score,
		TotalPoints:  result.TotalPoints,
		Percentage:   result.Percentage,
		Passed:       result.Passed,
		TimeSpent:    timeSpent,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&learningModels.QuizAttempt{}).
			Where("user_id = ? AND lesson_id = ? AND is_deleted = ?", userID, lessonID, false).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= MaxAttempts && !bypass {
			return ErrAttemptLimitExceeded
		}
		attempt.AttemptNumber = int(count) + 1
		return tx.Create(&attempt).Error
	})
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}
