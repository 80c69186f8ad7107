package learningValidator

import (
	"strconv"

	"worksuite/middleware"
	learningService "worksuite/services/learning"

	"github.com/gofiber/fiber/v2"
)

// parseIDParam reads a positive integer route parameter into c.Locals
func parseIDParam(c *fiber.Ctx, param, localKey string) (bool, error) {
	raw := c.Params(param)
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return false, middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid "+param+" parameter!", nil)
	}
	c.Locals(localKey, uint(id))
	return true, nil
}

// CourseID validates the :course_id route parameter
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := parseIDParam(c, "course_id", "courseID"); !ok {
			return err
		}
		return c.Next()
	}
}

// LessonID validates the :lesson_id route parameter
func LessonID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := parseIDParam(c, "lesson_id", "lessonID"); !ok {
			return err
		}
		return c.Next()
	}
}

// RecordProgress validates a watch-progress report
func RecordProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := parseIDParam(c, "lesson_id", "lessonID"); !ok {
			return err
		}

		reqData := new(struct {
			Progress float64 `json:"progress"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Progress < 0 || reqData.Progress > 100 {
			errors["progress"] = "Progress must be between 0 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}

// SubmitAttempt validates a quiz submission payload
func SubmitAttempt() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ok, err := parseIDParam(c, "lesson_id", "lessonID"); !ok {
			return err
		}

		reqData := new(struct {
			Answers   []learningService.Answer `json:"answers"`
			TimeSpent int                      `json:"time_spent"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Answers == nil {
			errors["answers"] = "Answers array is required!"
		}
		if reqData.TimeSpent < 0 {
			errors["time_spent"] = "Time spent cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAttempt", reqData)
		return c.Next()
	}
}

// CourseList validates pagination query parameters
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `query:"page"`
			Limit *int `query:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit != nil && (*reqData.Limit < 1 || *reqData.Limit > 100) {
			errors["limit"] = "Limit must be between 1 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}
