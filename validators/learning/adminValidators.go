package learningValidator

import (
	"strings"

	"worksuite/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// QuizPayload is the admin request to create or replace a lesson quiz
type QuizPayload struct {
	Title        string            `json:"title" validate:"required,min=3"`
	Description  string            `json:"description"`
	PassingScore int               `json:"passing_score" validate:"gte=0,lte=100"`
	TimeLimit    int               `json:"time_limit" validate:"gte=0"`
	Questions    []QuestionPayload `json:"questions" validate:"required,min=1,dive"`
}

// QuestionPayload is one question inside a QuizPayload
type QuestionPayload struct {
	Text          string   `json:"text" validate:"required"`
	Type          string   `json:"type" validate:"required,oneof=multiple-choice true-false"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correct_option" validate:"gte=0"`
	Points        int      `json:"points"`
	Explanation   string   `json:"explanation"`
}

// UpsertQuiz validates the admin quiz payload
func UpsertQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(QuizPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[strings.ToLower(fieldErr.Field())] = "Failed on rule: " + fieldErr.Tag()
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}

// CreateCourse validates the admin course payload
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Author      string `json:"author"`
			Duration    int64  `json:"duration"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}

		if reqData.Duration < 0 {
			errors["duration"] = "Duration cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// CreateLesson validates the admin lesson payload
func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			VideoURL    string `json:"video_url"`
			Duration    int    `json:"duration"`
			OrderIndex  int    `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.VideoURL) == "" {
			errors["video_url"] = "Video URL is required!"
		}
		if reqData.Duration < 0 {
			errors["duration"] = "Duration cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}
