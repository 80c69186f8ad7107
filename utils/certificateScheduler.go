package utils

import (
	"log"
	"time"

	"worksuite/database"
	"worksuite/models"
	learningModels "worksuite/models/learning"

	"github.com/robfig/cron/v3"
)

// InitializeCertificateScheduler sets up the daily certificate maintenance job
func InitializeCertificateScheduler() {
	log.Println("[CERT-SCHEDULER] Initializing certificate scheduler...")

	c := cron.New()

	// Run daily at 8 AM to expire certificates and send reminders
	c.AddFunc("0 8 * * *", func() {
		log.Println("[CERT-SCHEDULER] Running daily certificate check...")
		ProcessExpiringCertificates()
		ExpireCertificates()
	})

	c.Start()
	log.Println("[CERT-SCHEDULER] Certificate scheduler started - runs daily at 8 AM")
}

// ProcessExpiringCertificates sends reminder emails for certificates expiring within 30 days
func ProcessExpiringCertificates() {
	db := database.Database.Db
	now := time.Now()
	windowEnd := now.AddDate(0, 0, 30)

	var expiring []learningModels.Certificate
	if err := db.
		Where("status = ? AND reminder_sent = false AND is_deleted = ?", "ACTIVE", false).
		Where("expires_at BETWEEN ? AND ?", now, windowEnd).
		Find(&expiring).Error; err != nil {
		log.Printf("[CERT-SCHEDULER] Error fetching expiring certificates: %v", err)
		return
	}

	log.Printf("[CERT-SCHEDULER] Found %d certificates expiring soon", len(expiring))

	for _, cert := range expiring {
		var user models.User
		if err := db.Where("id = ?", cert.UserID).First(&user).Error; err != nil {
			log.Printf("[CERT-SCHEDULER] Error fetching user %d: %v", cert.UserID, err)
			continue
		}

		var course learningModels.Course
		if err := db.Where("id = ?", cert.CourseID).First(&course).Error; err != nil {
			log.Printf("[CERT-SCHEDULER] Error fetching course %d: %v", cert.CourseID, err)
			continue
		}

		SendCertificateExpiryReminder(user.Name, user.Email, course.Title, cert.ExpiresAt)

		db.Model(&cert).Update("reminder_sent", true)
		log.Printf("[CERT-SCHEDULER] Sent expiry reminder for certificate %s to %s", cert.CertificateNumber, user.Email)
	}
}

// ExpireCertificates marks certificates past their expiry date as EXPIRED
func ExpireCertificates() {
	db := database.Database.Db
	now := time.Now()

	result := db.Model(&learningModels.Certificate{}).
		Where("status = ? AND expires_at < ? AND is_deleted = ?", "ACTIVE", now, false).
		Update("status", "EXPIRED")
	if result.Error != nil {
		log.Printf("[CERT-SCHEDULER] Error expiring certificates: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[CERT-SCHEDULER] Marked %d certificates as EXPIRED", result.RowsAffected)
	}
}
