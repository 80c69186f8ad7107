package learning

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	url   string
	err   error
	calls int
}

func (g *stubGenerator) Generate(userName, userEmail, courseTitle string, completedAt time.Time) (string, error) {
	g.calls++
	return g.url, g.err
}

func completeCourse(t *testing.T, s *Service, userID uint) uint {
	t.Helper()
	courseID, lessons, answers := seedThreeLessonCourse(t, s)
	for _, id := range lessons {
		watchLesson(t, s, userID, id)
	}
	_, err := s.SubmitAttempt(userID, lessons[1], answers[0], 0, false)
	require.NoError(t, err)
	_, err = s.SubmitAttempt(userID, lessons[2], answers[1], 0, false)
	require.NoError(t, err)
	return courseID
}

func TestIssueCertificateRequiresCompletion(t *testing.T) {
	s := newTestService(t)
	user := seedUser(t, s, "asha")
	courseID, _, _ := seedThreeLessonCourse(t, s)

	_, err := s.IssueCertificate(user.ID, courseID)
	assert.ErrorIs(t, err, ErrNotEligible)

	// the rejection leaves nothing behind
	cert, err := s.CertificateFor(user.ID, courseID)
	require.NoError(t, err)
	assert.Nil(t, cert)
}

func TestIssueCertificateIdempotent(t *testing.T) {
	s := newTestService(t)
	gen := &stubGenerator{url: "https://certs.worksuite.in/artifacts/abc.pdf"}
	s.certGen = gen
	user := seedUser(t, s, "ravi")
	courseID := completeCourse(t, s, user.ID)

	first, err := s.IssueCertificate(user.ID, courseID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(first.CertificateNumber, fmt.Sprintf("WS-%d-", time.Now().Year())))
	assert.Equal(t, gen.url, first.CertificateURL)
	assert.Equal(t, "ACTIVE", first.Status)
	assert.True(t, first.ExpiresAt.After(first.IssuedAt))

	second, err := s.IssueCertificate(user.ID, courseID)
	require.NoError(t, err)
	assert.Equal(t, first.CertificateNumber, second.CertificateNumber)
	assert.Equal(t, first.ID, second.ID)

	// the artifact is rendered once, re-issues return the stored record
	assert.Equal(t, 1, gen.calls)
}

func TestIssueCertificateSurvivesGeneratorFailure(t *testing.T) {
	s := newTestService(t)
	s.certGen = &stubGenerator{err: errors.New("render service down")}
	user := seedUser(t, s, "meera")
	courseID := completeCourse(t, s, user.ID)

	cert, err := s.IssueCertificate(user.ID, courseID)
	require.NoError(t, err)
	assert.NotEmpty(t, cert.CertificateNumber)
	assert.Empty(t, cert.CertificateURL)
}

func TestIssueCertificateValidityWindow(t *testing.T) {
	s := newTestService(t)
	s.SetCertificateValidity(1)
	user := seedUser(t, s, "vikram")
	courseID := completeCourse(t, s, user.ID)

	cert, err := s.IssueCertificate(user.ID, courseID)
	require.NoError(t, err)
	assert.Equal(t, cert.IssuedAt.AddDate(1, 0, 0), cert.ExpiresAt)
}

func TestIssueCertificateUnknownUser(t *testing.T) {
	s := newTestService(t)
	user := seedUser(t, s, "priya")
	courseID := completeCourse(t, s, user.ID)

	_, err := s.IssueCertificate(98765, courseID)
	assert.ErrorIs(t, err, ErrNotFound)
}
