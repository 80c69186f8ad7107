package learning

import (
	"time"

	"gorm.io/gorm"
)

// Certificate represents an issued certificate for course completion.
// At most one per (user, course); the number is globally unique.
type Certificate struct {
	gorm.Model
	UserID            uint      `json:"user_id" gorm:"uniqueIndex:idx_user_course_cert;not null"`
	CourseID          uint      `json:"course_id" gorm:"uniqueIndex:idx_user_course_cert;not null"`
	CertificateNumber string    `json:"certificate_number" gorm:"unique"`
	CertificateURL    string    `json:"certificate_url"`
	IssuedAt          time.Time `json:"issued_at"`
	CompletedAt       time.Time `json:"completed_at"`
	ExpiresAt         time.Time `json:"expires_at"`
	Status            string    `json:"status" gorm:"default:'ACTIVE'"` // ACTIVE, EXPIRED
	ReminderSent      bool      `json:"reminder_sent" gorm:"default:false"`
	IsDeleted         bool      `gorm:"default:false"`
}
