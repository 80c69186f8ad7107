package learning

import (
	"encoding/json"
	"fmt"
	"testing"

	"worksuite/models"
	learningModels "worksuite/models/learning"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&learningModels.Course{},
		&learningModels.Enrollment{},
		&learningModels.Lesson{},
		&learningModels.LessonProgress{},
		&learningModels.Quiz{},
		&learningModels.Question{},
		&learningModels.QuizAttempt{},
		&learningModels.Certificate{},
	)
	require.NoError(t, err)

	return NewService(db, nil)
}

func seedUser(t *testing.T, s *Service, name string) *models.User {
	t.Helper()
	user := &models.User{
		Name:     name,
		Email:    fmt.Sprintf("%s@worksuite.in", name),
		Password: "hashed",
	}
	require.NoError(t, s.db.Create(user).Error)
	return user
}

func seedCourse(t *testing.T, s *Service, title string) *learningModels.Course {
	t.Helper()
	course := &learningModels.Course{
		Title:       title,
		Description: "test course",
		Status:      "ACTIVE",
		IsPublished: true,
	}
	require.NoError(t, s.db.Create(course).Error)
	return course
}

func seedLesson(t *testing.T, s *Service, courseID uint, title string) *learningModels.Lesson {
	t.Helper()
	lesson := &learningModels.Lesson{
		CourseID:    courseID,
		Title:       title,
		VideoURL:    "https://videos.worksuite.in/" + title,
		Duration:    600,
		IsPublished: true,
	}
	require.NoError(t, s.db.Create(lesson).Error)
	return lesson
}

// seedQuiz creates a quiz with n two-option questions, each worth 1 point,
// correct option always index 0
func seedQuiz(t *testing.T, s *Service, lessonID uint, passingScore, n int) (*learningModels.Quiz, []learningModels.Question) {
	t.Helper()
	quiz := &learningModels.Quiz{
		LessonID:     lessonID,
		Title:        "quiz",
		PassingScore: passingScore,
	}
	require.NoError(t, s.db.Create(quiz).Error)

	questions := make([]learningModels.Question, n)
	for i := 0; i < n; i++ {
		questions[i] = learningModels.Question{
			QuizID:        quiz.ID,
			Text:          fmt.Sprintf("Question %d", i+1),
			Type:          learningModels.QuestionTypeMultipleChoice,
			Options:       mustOptions(t, []string{"Right", "Wrong"}),
			CorrectOption: 0,
			Points:        1,
			OrderIndex:    i,
		}
		require.NoError(t, s.db.Create(&questions[i]).Error)
	}
	return quiz, questions
}

func mustOptions(t *testing.T, options []string) []byte {
	t.Helper()
	raw, err := json.Marshal(options)
	require.NoError(t, err)
	return raw
}

// correctAnswers builds a fully correct answer set for seedQuiz questions
func correctAnswers(questions []learningModels.Question) []Answer {
	answers := make([]Answer, len(questions))
	for i, q := range questions {
		answers[i] = Answer{QuestionID: q.ID, SelectedOption: q.CorrectOption}
	}
	return answers
}

// wrongAnswers builds a fully incorrect answer set for seedQuiz questions
func wrongAnswers(questions []learningModels.Question) []Answer {
	answers := make([]Answer, len(questions))
	for i, q := range questions {
		answers[i] = Answer{QuestionID: q.ID, SelectedOption: q.CorrectOption + 1}
	}
	return answers
}

func watchLesson(t *testing.T, s *Service, userID, lessonID uint) {
	t.Helper()
	_, err := s.RecordProgress(userID, lessonID, 100)
	require.NoError(t, err)
}
