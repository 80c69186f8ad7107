package learning

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitAttemptRecordsAndScores(t *testing.T) {
	s := newTestService(t)
	user := seedUser(t, s, "asha")
	course := seedCourse(t, s, "Onboarding")
	lesson := seedLesson(t, s, course.ID, "Welcome")
	_, questions := seedQuiz(t, s, lesson.ID, 70, 2)
	watchLesson(t, s, user.ID, lesson.ID)

	attempt, err := s.SubmitAttempt(user.ID, lesson.ID, correctAnswers(questions), 120, false)
	require.NoError(t, err)

	assert.Equal(t, 1, attempt.AttemptNumber)
	assert.Equal(t, 2, attempt.Score)
	assert.Equal(t, 2, attempt.TotalPoints)
	assert.Equal(t, float64(100), attempt.Percentage)
	assert.True(t, attempt.Passed)
	assert.Equal(t, 120, attempt.TimeSpent)
	assert.NotEmpty(t, attempt.QuizSnapshot)

	count, err := s.CountAttempts(user.ID, lesson.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSubmitAttemptLockedUntilWatched(t *testing.T) {
	s := newTestService(t)
	user := seedUser(t, s, "ravi")
	course := seedCourse(t, s, "Compliance")
	lesson := seedLesson(t, s, course.ID, "Policies")
	_, questions := seedQuiz(t, s, lesson.ID, 70, 2)

	_, err := s.SubmitAttempt(user.ID, lesson.ID, correctAnswers(questions), 0, false)
	assert.ErrorIs(t, err, ErrLessonLocked)

	// instructor bypass skips the watch gate
	attempt, err := s.SubmitAttempt(user.ID, lesson.ID, correctAnswers(questions), 0, true)
	require.NoError(t, err)
	assert.True(t, attempt.Passed)
}

func TestSubmitAttemptNilAnswersRejected(t *testing.T) {
	s := newTestService(t)
	user := seedUser(t, s, "meera")
	course := seedCourse(t, s, "Security")
	lesson := seedLesson(t, s, course.ID, "Phishing")
	seedQuiz(t, s, lesson.ID, 70, 2)
	watchLesson(t, s, user.ID, lesson.ID)

	_, err := s.SubmitAttempt(user.ID, lesson.ID, nil, 0, false)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "answers")

	// nothing was persisted
	count, err := s.CountAttempts(user.ID, lesson.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestSubmitAttemptNoQuizLesson(t *testing.T) {
	s := newTestService(t)
	user := seedUser(t, s, "vikram")
	course := seedCourse(t, s, "Culture")
	lesson := seedLesson(t, s, course.ID, "Values")
	watchLesson(t, s, user.ID, lesson.ID)

	_, err := s.SubmitAttempt(user.ID, lesson.ID, []Answer{}, 0, false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAttemptCapEnforced(t *testing.T) {
	s := newTestService(t)
	user := seedUser(t, s, "asha")
	course := seedCourse(t, s, "Onboarding")
	lesson := seedLesson(t, s, course.ID, "Welcome")
	_, questions := seedQuiz(t, s, lesson.ID, 70, 2)
	watchLesson(t, s, user.ID, lesson.ID)

	for i := 0; i < MaxAttempts; i++ {
		attempt, err := s.SubmitAttempt(user.ID, lesson.ID, wrongAnswers(questions), 0, false)
		require.NoError(t, err)
		assert.Equal(t, i+1, attempt.AttemptNumber)
		assert.False(t, attempt.Passed)
	}

	// the fourth submission always fails, whatever the answers
	_, err := s.SubmitAttempt(user.ID, lesson.ID, correctAnswers(questions), 0, false)
	assert.ErrorIs(t, err, ErrAttemptLimitExceeded)

	// recorded attempts are untouched
	count, err := s.CountAttempts(user.ID, lesson.ID)
	require.NoError(t, err)
	assert.Equal(t, MaxAttempts, count)

	canAttempt, err := s.CanAttempt(user.ID, lesson.ID)
	require.NoError(t, err)
	assert.False(t, canAttempt)
}

func TestAttemptCapBypassForInstructors(t *testing.T) {
	s := newTestService(t)
	user := seedUser(t, s, "priya")
	course := seedCourse(t, s, "Onboarding")
	lesson := seedLesson(t, s, course.ID, "Welcome")
	_, questions := seedQuiz(t, s, lesson.ID, 70, 2)
	watchLesson(t, s, user.ID, lesson.ID)

	for i := 0; i < MaxAttempts; i++ {
		_, err := s.SubmitAttempt(user.ID, lesson.ID, wrongAnswers(questions), 0, false)
		require.NoError(t, err)
	}

	attempt, err := s.SubmitAttempt(user.ID, lesson.ID, correctAnswers(questions), 0, true)
	require.NoError(t, err)
	assert.Equal(t, MaxAttempts+1, attempt.AttemptNumber)
}

func TestConcurrentSubmissionsNeverExceedCap(t *testing.T) {
	s := newTestService(t)
	user := seedUser(t, s, "asha")
	course := seedCourse(t, s, "Onboarding")
	lesson := seedLesson(t, s, course.ID, "Welcome")
	_, questions := seedQuiz(t, s, lesson.ID, 70, 2)
	watchLesson(t, s, user.ID, lesson.ID)

	const workers = 10
	var wg sync.WaitGroup
	results := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.SubmitAttempt(user.ID, lesson.ID, wrongAnswers(questions), 0, false)
			results[i] = err
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrAttemptLimitExceeded)
		}
	}
	assert.Equal(t, MaxAttempts, succeeded)

	count, err := s.CountAttempts(user.ID, lesson.ID)
	require.NoError(t, err)
	assert.Equal(t, MaxAttempts, count)
}

func TestLatestAttemptAgreesWithOrder(t *testing.T) {
	s := newTestService(t)
	user := seedUser(t, s, "ravi")
	course := seedCourse(t, s, "Compliance")
	lesson := seedLesson(t, s, course.ID, "Policies")
	_, questions := seedQuiz(t, s, lesson.ID, 70, 2)
	watchLesson(t, s, user.ID, lesson.ID)

	latest, err := s.LatestAttempt(user.ID, lesson.ID)
	require.NoError(t, err)
	assert.Nil(t, latest)

	_, err = s.SubmitAttempt(user.ID, lesson.ID, wrongAnswers(questions), 0, false)
	require.NoError(t, err)
	second, err := s.SubmitAttempt(user.ID, lesson.ID, correctAnswers(questions), 0, false)
	require.NoError(t, err)

	latest, err = s.LatestAttempt(user.ID, lesson.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, second.ID, latest.ID)
	assert.Equal(t, 2, latest.AttemptNumber)

	best, err := s.BestAttempt(user.ID, lesson.ID)
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, float64(100), best.Percentage)
}
