package learning

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"worksuite/models"
	learningModels "worksuite/models/learning"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CanIssueCertificate reports certificate eligibility for a (user, course)
// pair, along with the completion standing it was derived from.
func (s *Service) CanIssueCertificate(userID, courseID uint) (bool, *CourseCompletion, error) {
	completion, err := s.CompletionStatus(userID, courseID)
	if err != nil {
		return false, nil, err
	}
	return completion.FullyCompleted, completion, nil
}

// CertificateFor returns the existing certificate for a (user, course) pair,
// or nil when none has been issued.
func (s *Service) CertificateFor(userID, courseID uint) (*learningModels.Certificate, error) {
	var cert learningModels.Certificate
	err := s.db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&cert).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cert, nil
}

// IssueCertificate issues a certificate once the course is fully completed.
// Idempotent per (user, course): a second call returns the already issued
// certificate. Artifact rendering is delegated to the configured generator;
// a rendering failure does not block issuance, the URL stays empty and can
// be filled in by a re-render.
func (s *Service) IssueCertificate(userID, courseID uint) (*learningModels.Certificate, error) {
	if existing, err := s.CertificateFor(userID, courseID); err != nil {
		return nil, err
	} else if existing != nil {
		return existing, nil
	}

	var user models.User
	if err := s.db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var course learningModels.Course
	if err := s.db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	eligible, _, err := s.CanIssueCertificate(userID, courseID)
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, ErrNotEligible
	}

	now := time.Now()
	cert := learningModels.Certificate{
		UserID:            userID,
		CourseID:          courseID,
		CertificateNumber: newCertificateNumber(now),
		IssuedAt:          now,
		CompletedAt:       now,
		ExpiresAt:         now.AddDate(s.validYears, 0, 0),
		Status:            "ACTIVE",
	}

	if s.certGen != nil {
		url, err := s.certGen.Generate(user.Name, user.Email, course.Title, now)
		if err != nil {
			log.Printf("[CERTIFICATE] Artifact generation failed for user %d course %d: %v", userID, courseID, err)
		} else {
			cert.CertificateURL = url
		}
	}

	if err := s.db.Create(&cert).Error; err != nil {
		// a concurrent issue call may have won the unique (user, course) race
		if existing, lookupErr := s.CertificateFor(userID, courseID); lookupErr == nil && existing != nil {
			return existing, nil
		}
		return nil, err
	}
	return &cert, nil
}

func newCertificateNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:10])
	return fmt.Sprintf("WS-%d-%s", now.Year(), suffix)
}
