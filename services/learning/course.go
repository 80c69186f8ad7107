package learning

import (
	"errors"
	"fmt"
	"math"

	learningModels "worksuite/models/learning"

	"gorm.io/gorm"
)

// CompletionStatus folds the lesson completion predicate across every
// published lesson of a course. The result is computed from progress,
// attempts and quiz data on each call; it is never read from a stored flag.
func (s *Service) CompletionStatus(userID, courseID uint) (*CourseCompletion, error) {
	var course learningModels.Course
	if err := s.db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var lessons []learningModels.Lesson
	if err := s.db.Where("course_id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).
		Order("order_index asc, id asc").Find(&lessons).Error; err != nil {
		return nil, err
	}

	status := &CourseCompletion{
		CourseID:                 courseID,
		TotalLessons:             len(lessons),
		LessonsNeedingCompletion: []string{},
	}

	for _, lesson := range lessons {
		watched, err := s.IsVideoWatched(userID, lesson.ID)
		if err != nil {
			return nil, err
		}

		quiz, err := s.lessonQuiz(lesson.ID)
		if err != nil {
			return nil, err
		}

		passed := false
		if quiz != nil {
			status.TotalQuizzes++
			passed, err = s.HasPassedAttempt(userID, lesson.ID)
			if err != nil {
				return nil, err
			}
			if passed {
				status.PassedQuizzes++
			}
		}

		completed := watched && (quiz == nil || passed)
		if completed {
			status.CompletedLessons++
			continue
		}

		if !watched {
			status.LessonsNeedingCompletion = append(status.LessonsNeedingCompletion,
				fmt.Sprintf("Watch the video for \"%s\"", lesson.Title))
		}
		if quiz != nil && !passed {
			status.LessonsNeedingCompletion = append(status.LessonsNeedingCompletion,
				fmt.Sprintf("Pass the quiz for \"%s\"", lesson.Title))
		}
	}

	if status.TotalLessons > 0 {
		status.CompletionPercentage = int(math.Round(float64(status.CompletedLessons) / float64(status.TotalLessons) * 100))
	}
	status.FullyCompleted = status.TotalLessons > 0 && status.CompletedLessons == status.TotalLessons

	return status, nil
}
