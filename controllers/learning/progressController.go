package learningControllers

import (
	"worksuite/database"
	"worksuite/middleware"
	"worksuite/models"
	learningService "worksuite/services/learning"

	"github.com/gofiber/fiber/v2"
)

// RecordProgress stores a watch-progress report for a lesson video
func RecordProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	lessonID := c.Locals("lessonID").(uint)
	reqData, ok := c.Locals("validatedProgress").(*struct {
		Progress float64 `json:"progress"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	row, err := Engine().RecordProgress(userID, lessonID, reqData.Progress)
	if err != nil {
		return engineErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress recorded!", fiber.Map{
		"lesson_id":     lessonID,
		"progress":      row.Progress,
		"video_watched": row.Progress >= learningService.WatchedThreshold,
	})
}

// GetLessonStatus returns the caller's quiz standing for a lesson
func GetLessonStatus(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	lessonID := c.Locals("lessonID").(uint)

	state, err := Engine().LessonState(userID, lessonID, middleware.BypassRestrictions(c))
	if err != nil {
		return engineErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson status fetched successfully!", state)
}
