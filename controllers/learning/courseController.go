package learningControllers

import (
	"worksuite/database"
	"worksuite/middleware"
	"worksuite/models"
	learningModels "worksuite/models/learning"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists published courses with pagination
func GetAllCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedList").(*struct {
		Page  *int `query:"page"`
		Limit *int `query:"limit"`
	})
	page, limit := 1, 20
	if ok {
		if reqData.Page != nil {
			page = *reqData.Page
		}
		if reqData.Limit != nil {
			limit = *reqData.Limit
		}
	}

	var total int64
	database.Database.Db.Model(&learningModels.Course{}).
		Where("is_deleted = ? AND is_published = ?", false, true).Count(&total)

	var courses []learningModels.Course
	if err := database.Database.Db.Where("is_deleted = ? AND is_published = ?", false, true).
		Order("created_at desc").Offset((page - 1) * limit).Limit(limit).Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetCourseDetails returns a course, its lessons and the caller's per-lesson standing
func GetCourseDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	var course learningModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var lessons []learningModels.Lesson
	database.Database.Db.Where("course_id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).
		Order("order_index asc, id asc").Find(&lessons)

	bypass := middleware.BypassRestrictions(c)

	type LessonView struct {
		learningModels.Lesson
		State interface{} `json:"state"`
	}

	views := make([]LessonView, 0, len(lessons))
	for _, lesson := range lessons {
		state, err := Engine().LessonState(userID, lesson.ID, bypass)
		if err != nil {
			return engineErrorResponse(c, err)
		}
		views = append(views, LessonView{Lesson: lesson, State: state})
	}

	var enrollment learningModels.Enrollment
	isEnrolled := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
		First(&enrollment).Error == nil

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":      course,
		"lessons":     views,
		"is_enrolled": isEnrolled,
	})
}

// EnrollInCourse enrolls the caller into an active course
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	var course learningModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND status = ?", courseID, false, "ACTIVE").First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not active!", nil)
	}

	var existing learningModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this course!", nil)
	}

	enrollment := learningModels.Enrollment{
		UserID:   userID,
		CourseID: courseID,
		Status:   "ENROLLED",
	}

	tx := database.Database.Db.Begin()
	if err := tx.Create(&enrollment).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", enrollment)
}

// GetCourseCompletion returns the caller's derived completion standing for a course
func GetCourseCompletion(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	completion, err := Engine().CompletionStatus(userID, courseID)
	if err != nil {
		return engineErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Completion status fetched successfully!", completion)
}
