package learningControllers

import (
	"worksuite/database"
	"worksuite/middleware"
	"worksuite/models"
	learningModels "worksuite/models/learning"
	"worksuite/utils"

	"github.com/gofiber/fiber/v2"
)

// GetCertificateEligibility reports whether the caller can be issued a
// certificate for a course, with the completion standing behind the answer
func GetCertificateEligibility(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	eligible, completion, err := Engine().CanIssueCertificate(userID, courseID)
	if err != nil {
		return engineErrorResponse(c, err)
	}

	existing, err := Engine().CertificateFor(userID, courseID)
	if err != nil {
		return engineErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate eligibility fetched successfully!", fiber.Map{
		"eligible":       eligible,
		"already_issued": existing != nil,
		"completion":     completion,
	})
}

// IssueCertificate issues (or returns the existing) certificate for a course
func IssueCertificate(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	existing, err := Engine().CertificateFor(userID, courseID)
	if err != nil {
		return engineErrorResponse(c, err)
	}

	cert, err := Engine().IssueCertificate(userID, courseID)
	if err != nil {
		return engineErrorResponse(c, err)
	}

	// Notify only on first issue, re-issues just return the record
	if existing == nil {
		var course learningModels.Course
		if dbErr := database.Database.Db.Where("id = ?", courseID).First(&course).Error; dbErr == nil {
			go utils.SendCertificateEmail(user.Name, user.Email, course.Title, cert.CertificateNumber, cert.ExpiresAt)
		}
	}

	statusCode := fiber.StatusCreated
	if existing != nil {
		statusCode = fiber.StatusOK
	}
	return middleware.JsonResponse(c, statusCode, true, "Certificate issued successfully!", cert)
}

// GetUserCertificates gets all certificates for the current user
func GetUserCertificates(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	type CertificateWithCourse struct {
		learningModels.Certificate
		CourseName string `json:"course_name"`
	}

	var certificates []learningModels.Certificate
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("issued_at desc").Find(&certificates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	result := make([]CertificateWithCourse, len(certificates))
	for i, cert := range certificates {
		var course learningModels.Course
		database.Database.Db.Where("id = ?", cert.CourseID).First(&course)
		result[i] = CertificateWithCourse{
			Certificate: cert,
			CourseName:  course.Title,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": result,
		"total":        len(result),
	})
}
