package learning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLessonStateNoQuiz(t *testing.T) {
	s := newTestService(t)
	user := seedUser(t, s, "asha")
	course := seedCourse(t, s, "Culture")
	lesson := seedLesson(t, s, course.ID, "Values")

	state, err := s.LessonState(user.ID, lesson.ID, false)
	require.NoError(t, err)
	assert.Equal(t, StatusNoQuiz, state.Status)
	assert.False(t, state.Completed)

	watchLesson(t, s, user.ID, lesson.ID)

	state, err = s.LessonState(user.ID, lesson.ID, false)
	require.NoError(t, err)
	assert.Equal(t, StatusNoQuiz, state.Status)
	assert.True(t, state.Completed)
}

func TestLessonStateLockedBeforeWatch(t *testing.T) {
	s := newTestService(t)
	user := seedUser(t, s, "ravi")
	course := seedCourse(t, s, "Compliance")
	lesson := seedLesson(t, s, course.ID, "Policies")
	seedQuiz(t, s, lesson.ID, 70, 2)

	state, err := s.LessonState(user.ID, lesson.ID, false)
	require.NoError(t, err)
	assert.Equal(t, StatusLocked, state.Status)
	assert.False(t, state.CanTake)
	assert.False(t, state.VideoWatched)

	// the lock applies regardless of attempt budget
	assert.Equal(t, MaxAttempts, state.AttemptsLeft)

	// admin bypass unlocks without progress
	state, err = s.LessonState(user.ID, lesson.ID, true)
	require.NoError(t, err)
	assert.Equal(t, StatusAvailable, state.Status)
	assert.True(t, state.CanTake)
}

func TestLessonStateAvailableAfterWatch(t *testing.T) {
	s := newTestService(t)
	user := seedUser(t, s, "meera")
	course := seedCourse(t, s, "Security")
	lesson := seedLesson(t, s, course.ID, "Phishing")
	seedQuiz(t, s, lesson.ID, 70, 2)
	watchLesson(t, s, user.ID, lesson.ID)

	state, err := s.LessonState(user.ID, lesson.ID, false)
	require.NoError(t, err)
	assert.Equal(t, StatusAvailable, state.Status)
	assert.True(t, state.CanTake)
	assert.Equal(t, 0, state.AttemptsUsed)
}

func TestLessonStateFailedThenPassed(t *testing.T) {
	s := newTestService(t)
	user := seedUser(t, s, "vikram")
	course := seedCourse(t, s, "Onboarding")
	lesson := seedLesson(t, s, course.ID, "Welcome")
	_, questions := seedQuiz(t, s, lesson.ID, 70, 2)
	watchLesson(t, s, user.ID, lesson.ID)

	_, err := s.SubmitAttempt(user.ID, lesson.ID, wrongAnswers(questions), 0, false)
	require.NoError(t, err)

	state, err := s.LessonState(user.ID, lesson.ID, false)
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, state.Status)
	assert.True(t, state.CanTake)
	assert.False(t, state.Completed)
	assert.Equal(t, 1, state.AttemptsUsed)
	assert.Equal(t, 2, state.AttemptsLeft)

	_, err = s.SubmitAttempt(user.ID, lesson.ID, correctAnswers(questions), 0, false)
	require.NoError(t, err)

	state, err = s.LessonState(user.ID, lesson.ID, false)
	require.NoError(t, err)
	assert.Equal(t, StatusPassed, state.Status)
	assert.True(t, state.Completed)
	// retake to improve the score stays open while attempts remain
	assert.True(t, state.CanTake)
	assert.Equal(t, float64(100), state.BestPercentage)
}

func TestLessonStateMaxAttempts(t *testing.T) {
	s := newTestService(t)
	user := seedUser(t, s, "asha")
	course := seedCourse(t, s, "Onboarding")
	lesson := seedLesson(t, s, course.ID, "Welcome")
	_, questions := seedQuiz(t, s, lesson.ID, 70, 2)
	watchLesson(t, s, user.ID, lesson.ID)

	for i := 0; i < MaxAttempts; i++ {
		_, err := s.SubmitAttempt(user.ID, lesson.ID, wrongAnswers(questions), 0, false)
		require.NoError(t, err)
	}

	state, err := s.LessonState(user.ID, lesson.ID, false)
	require.NoError(t, err)
	assert.Equal(t, StatusMaxAttempts, state.Status)
	assert.False(t, state.CanTake)
	assert.Equal(t, 0, state.AttemptsLeft)
	assert.False(t, state.Completed)
}

func TestLessonStatePassKeptAfterLaterFail(t *testing.T) {
	s := newTestService(t)
	user := seedUser(t, s, "priya")
	course := seedCourse(t, s, "Security")
	lesson := seedLesson(t, s, course.ID, "Phishing")
	_, questions := seedQuiz(t, s, lesson.ID, 70, 2)
	watchLesson(t, s, user.ID, lesson.ID)

	_, err := s.SubmitAttempt(user.ID, lesson.ID, correctAnswers(questions), 0, false)
	require.NoError(t, err)
	_, err = s.SubmitAttempt(user.ID, lesson.ID, wrongAnswers(questions), 0, false)
	require.NoError(t, err)

	// latest outcome is a fail, but the earlier pass keeps the lesson completed
	state, err := s.LessonState(user.ID, lesson.ID, false)
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, state.Status)
	assert.True(t, state.Completed)

	completed, err := s.IsLessonCompleted(user.ID, *lesson)
	require.NoError(t, err)
	assert.True(t, completed)
}

func TestLessonStateUnknownLesson(t *testing.T) {
	s := newTestService(t)
	user := seedUser(t, s, "ravi")

	_, err := s.LessonState(user.ID, 424242, false)
	assert.ErrorIs(t, err, ErrNotFound)
}
