package learningControllers

import (
	"worksuite/database"
	"worksuite/middleware"
	learningModels "worksuite/models/learning"

	"github.com/gofiber/fiber/v2"
)

// CreateCourse creates a new draft course
func CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Author      string `json:"author"`
		Duration    int64  `json:"duration"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := learningModels.Course{
		Title:       reqData.Title,
		Description: reqData.Description,
		Author:      reqData.Author,
		Duration:    reqData.Duration,
		Status:      "DRAFT",
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// PublishCourse activates and publishes a course
func PublishCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course learningModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var lessonCount int64
	database.Database.Db.Model(&learningModels.Lesson{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).Count(&lessonCount)
	if lessonCount == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Cannot publish a course without lessons!", nil)
	}

	course.Status = "ACTIVE"
	course.IsPublished = true
	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to publish course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course published successfully!", course)
}

// CreateLesson adds a lesson to a course
func CreateLesson(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course learningModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedLesson").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		VideoURL    string `json:"video_url"`
		Duration    int    `json:"duration"`
		OrderIndex  int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lesson := learningModels.Lesson{
		CourseID:    courseID,
		Title:       reqData.Title,
		Description: reqData.Description,
		VideoURL:    reqData.VideoURL,
		Duration:    reqData.Duration,
		OrderIndex:  reqData.OrderIndex,
		IsPublished: true,
	}

	if err := database.Database.Db.Create(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}

// DeleteLesson soft-deletes a lesson
func DeleteLesson(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(uint)

	var lesson learningModels.Lesson
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	lesson.IsDeleted = true
	if err := database.Database.Db.Save(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", nil)
}
