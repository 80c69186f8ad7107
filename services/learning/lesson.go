package learning

import (
	"errors"

	learningModels "worksuite/models/learning"

	"gorm.io/gorm"
)

// lessonQuiz returns the quiz attached to a lesson, or nil when it has none
func (s *Service) lessonQuiz(lessonID uint) (*learningModels.Quiz, error) {
	var quiz learningModels.Quiz
	err := s.db.Where("lesson_id = ? AND is_deleted = ?", lessonID, false).First(&quiz).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// IsLessonCompleted applies the completion predicate for one lesson: the
// video is watched AND the lesson either has no quiz or has a passed attempt.
func (s *Service) IsLessonCompleted(userID uint, lesson learningModels.Lesson) (bool, error) {
	watched, err := s.IsVideoWatched(userID, lesson.ID)
	if err != nil {
		return false, err
	}
	if !watched {
		return false, nil
	}

	quiz, err := s.lessonQuiz(lesson.ID)
	if err != nil {
		return false, err
	}
	if quiz == nil {
		return true, nil
	}
	return s.HasPassedAttempt(userID, lesson.ID)
}

// LessonState classifies a lesson's quiz standing for one user. bypass is
// the instructor/admin policy switch: it unlocks the quiz regardless of
// watch progress and ignores the attempt cap.
func (s *Service) LessonState(userID, lessonID uint, bypass bool) (*LessonState, error) {
	var lesson learningModels.Lesson
	if err := s.db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	watched, err := s.IsVideoWatched(userID, lessonID)
	if err != nil {
		return nil, err
	}

	state := &LessonState{LessonID: lessonID, VideoWatched: watched}

	quiz, err := s.lessonQuiz(lessonID)
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		state.Status = StatusNoQuiz
		state.Completed = watched
		return state, nil
	}

	count, err := s.CountAttempts(userID, lessonID)
	if err != nil {
		return nil, err
	}
	state.AttemptsUsed = count
	state.AttemptsLeft = MaxAttempts - count
	if state.AttemptsLeft < 0 {
		state.AttemptsLeft = 0
	}

	if best, err := s.BestAttempt(userID, lessonID); err != nil {
		return nil, err
	} else if best != nil {
		state.BestPercentage = best.Percentage
	}

	hasPassed, err := s.HasPassedAttempt(userID, lessonID)
	if err != nil {
		return nil, err
	}
	state.Completed = watched && hasPassed

	if !watched && !bypass {
		// quiz access denied until the video is watched, whatever the attempt count
		state.Status = StatusLocked
		state.CanTake = false
		return state, nil
	}

	latest, err := s.LatestAttempt(userID, lessonID)
	if err != nil {
		return nil, err
	}

	canTake := count < MaxAttempts || bypass

	switch {
	case latest == nil:
		state.Status = StatusAvailable
	case count >= MaxAttempts && !hasPassed:
		// hard ceiling, no timed reset
		state.Status = StatusMaxAttempts
	case latest.Passed:
		// retakes to improve the score stay open while attempts remain
		state.Status = StatusPassed
	default:
		state.Status = StatusFailed
	}
	state.CanTake = canTake

	return state, nil
}
