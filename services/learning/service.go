package learning

import (
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"
)

// CertificateGenerator renders the downloadable certificate artifact. The
// engine only decides whether to call it.
type CertificateGenerator interface {
	Generate(userName, userEmail, courseTitle string, completedAt time.Time) (string, error)
}

// Service implements the quiz and course-completion engine on top of GORM.
// All completion state is derived from progress, attempts and quiz data on
// read; nothing here keeps a second copy of the truth.
type Service struct {
	db         *gorm.DB
	certGen    CertificateGenerator
	validYears int

	// serializes progress writes and attempt submissions per (user, lesson)
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewService creates the engine. certGen may be nil; certificates are then
// issued without an artifact URL.
func NewService(db *gorm.DB, certGen CertificateGenerator) *Service {
	return &Service{
		db:         db,
		certGen:    certGen,
		validYears: 2,
		locks:      make(map[string]*sync.Mutex),
	}
}

// SetCertificateValidity overrides the default two-year certificate window
func (s *Service) SetCertificateValidity(years int) {
	if years > 0 {
		s.validYears = years
	}
}

func (s *Service) userLessonLock(userID, lessonID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := lockKey(userID, lessonID)
	m, ok := s.locks[key]
	if !ok {
		m = &sync.Mutex{}
		s.locks[key] = m
	}
	return m
}

func lockKey(userID, lessonID uint) string {
	return fmt.Sprintf("%d:%d", userID, lessonID)
}
