package learningControllers

import (
	"worksuite/database"
	"worksuite/middleware"
	learningModels "worksuite/models/learning"

	"github.com/gofiber/fiber/v2"
)

// GetAdminDashboard returns aggregate training metrics for admins
func GetAdminDashboard(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalCourses, activeCourses, totalLessons, totalQuizzes int64
	db.Model(&learningModels.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)
	db.Model(&learningModels.Course{}).Where("is_deleted = ? AND status = ?", false, "ACTIVE").Count(&activeCourses)
	db.Model(&learningModels.Lesson{}).Where("is_deleted = ?", false).Count(&totalLessons)
	db.Model(&learningModels.Quiz{}).Where("is_deleted = ?", false).Count(&totalQuizzes)

	var totalEnrollments, totalAttempts, passedAttempts, certificatesIssued int64
	db.Model(&learningModels.Enrollment{}).Where("is_deleted = ?", false).Count(&totalEnrollments)
	db.Model(&learningModels.QuizAttempt{}).Where("is_deleted = ?", false).Count(&totalAttempts)
	db.Model(&learningModels.QuizAttempt{}).Where("is_deleted = ? AND passed = ?", false, true).Count(&passedAttempts)
	db.Model(&learningModels.Certificate{}).Where("is_deleted = ?", false).Count(&certificatesIssued)

	passRate := float64(0)
	if totalAttempts > 0 {
		passRate = float64(passedAttempts) / float64(totalAttempts) * 100
	}

	// Per-course enrollment and certificate counts
	var courses []learningModels.Course
	db.Where("is_deleted = ? AND is_published = ?", false, true).Order("created_at desc").Limit(20).Find(&courses)

	type CourseStats struct {
		CourseID     uint   `json:"course_id"`
		Title        string `json:"title"`
		Enrollments  int64  `json:"enrollments"`
		Certificates int64  `json:"certificates"`
	}

	courseStats := make([]CourseStats, len(courses))
	for i, course := range courses {
		var enrollments, certificates int64
		db.Model(&learningModels.Enrollment{}).Where("course_id = ? AND is_deleted = ?", course.ID, false).Count(&enrollments)
		db.Model(&learningModels.Certificate{}).Where("course_id = ? AND is_deleted = ?", course.ID, false).Count(&certificates)
		courseStats[i] = CourseStats{
			CourseID:     course.ID,
			Title:        course.Title,
			Enrollments:  enrollments,
			Certificates: certificates,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"totals": fiber.Map{
			"courses":             totalCourses,
			"active_courses":      activeCourses,
			"lessons":             totalLessons,
			"quizzes":             totalQuizzes,
			"enrollments":         totalEnrollments,
			"quiz_attempts":       totalAttempts,
			"certificates_issued": certificatesIssued,
		},
		"quiz_pass_rate": passRate,
		"courses":        courseStats,
	})
}
