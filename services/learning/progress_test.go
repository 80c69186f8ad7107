package learning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordProgressMonotonic(t *testing.T) {
	s := newTestService(t)
	user := seedUser(t, s, "asha")
	course := seedCourse(t, s, "Onboarding")
	lesson := seedLesson(t, s, course.ID, "Welcome")

	row, err := s.RecordProgress(user.ID, lesson.ID, 50)
	require.NoError(t, err)
	assert.Equal(t, float64(50), row.Progress)

	// a lower report must not regress the stored value
	row, err = s.RecordProgress(user.ID, lesson.ID, 30)
	require.NoError(t, err)
	assert.Equal(t, float64(50), row.Progress)

	row, err = s.RecordProgress(user.ID, lesson.ID, 95)
	require.NoError(t, err)
	assert.Equal(t, float64(95), row.Progress)

	stored, err := s.Progress(user.ID, lesson.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(95), stored)
}

func TestRecordProgressClampsRange(t *testing.T) {
	s := newTestService(t)
	user := seedUser(t, s, "ravi")
	course := seedCourse(t, s, "Compliance")
	lesson := seedLesson(t, s, course.ID, "Policies")

	row, err := s.RecordProgress(user.ID, lesson.ID, 150)
	require.NoError(t, err)
	assert.Equal(t, float64(100), row.Progress)

	row, err = s.RecordProgress(user.ID, lesson.ID, -10)
	require.NoError(t, err)
	assert.Equal(t, float64(100), row.Progress)
}

func TestRecordProgressUnknownLesson(t *testing.T) {
	s := newTestService(t)
	user := seedUser(t, s, "meera")

	_, err := s.RecordProgress(user.ID, 9999, 50)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIsVideoWatchedThreshold(t *testing.T) {
	s := newTestService(t)
	user := seedUser(t, s, "vikram")
	course := seedCourse(t, s, "Security")
	lesson := seedLesson(t, s, course.ID, "Phishing")

	watched, err := s.IsVideoWatched(user.ID, lesson.ID)
	require.NoError(t, err)
	assert.False(t, watched)

	_, err = s.RecordProgress(user.ID, lesson.ID, 89.9)
	require.NoError(t, err)
	watched, err = s.IsVideoWatched(user.ID, lesson.ID)
	require.NoError(t, err)
	assert.False(t, watched)

	// 90 exactly crosses the threshold
	_, err = s.RecordProgress(user.ID, lesson.ID, 90)
	require.NoError(t, err)
	watched, err = s.IsVideoWatched(user.ID, lesson.ID)
	require.NoError(t, err)
	assert.True(t, watched)
}
