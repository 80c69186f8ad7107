package learning

import (
	"errors"

	learningModels "worksuite/models/learning"

	"gorm.io/gorm"
)

// RecordProgress stores the furthest watch position for a (user, lesson)
// pair. The stored value is monotonic: a later, lower report never regresses
// it. Returns the stored row after the update.
func (s *Service) RecordProgress(userID, lessonID uint, percent float64) (*learningModels.LessonProgress, error) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	var lesson learningModels.Lesson
	if err := s.db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	lock := s.userLessonLock(userID, lessonID)
	lock.Lock()
	defer lock.Unlock()

	var row learningModels.LessonProgress
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND lesson_id = ? AND is_deleted = ?", userID, lessonID, false).First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			row = learningModels.LessonProgress{UserID: userID, LessonID: lessonID, Progress: percent}
			return tx.Create(&row).Error
		}
		if err != nil {
			return err
		}
		if percent > row.Progress {
			row.Progress = percent
			return tx.Save(&row).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Progress returns the stored watch percent for a (user, lesson) pair, 0 if
// nothing has been recorded yet.
func (s *Service) Progress(userID, lessonID uint) (float64, error) {
	var row learningModels.LessonProgress
	err := s.db.Where("user_id = ? AND lesson_id = ? AND is_deleted = ?", userID, lessonID, false).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return row.Progress, nil
}

// IsVideoWatched reports whether the user has crossed the watch threshold
func (s *Service) IsVideoWatched(userID, lessonID uint) (bool, error) {
	progress, err := s.Progress(userID, lessonID)
	if err != nil {
		return false, err
	}
	return progress >= WatchedThreshold, nil
}
