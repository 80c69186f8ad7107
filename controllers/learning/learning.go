package learningControllers

import (
	"errors"
	"sync"

	"worksuite/config"
	"worksuite/database"
	"worksuite/middleware"
	learningService "worksuite/services/learning"
	"worksuite/utils"

	"github.com/gofiber/fiber/v2"
)

var (
	engine     *learningService.Service
	engineOnce sync.Once
)

// Engine returns the shared quiz/completion engine instance
func Engine() *learningService.Service {
	engineOnce.Do(func() {
		engine = learningService.NewService(database.Database.Db, utils.NewCertificateClient())
		engine.SetCertificateValidity(config.AppConfig.CertValidYears)
	})
	return engine
}

// engineErrorResponse maps engine errors onto the JSON envelope
func engineErrorResponse(c *fiber.Ctx, err error) error {
	var vErr *learningService.ValidationError
	switch {
	case errors.As(err, &vErr):
		return middleware.ValidationErrorResponse(c, vErr.Fields)
	case errors.Is(err, learningService.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Record not found!", nil)
	case errors.Is(err, learningService.ErrAttemptLimitExceeded):
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Maximum quiz attempts reached!", nil)
	case errors.Is(err, learningService.ErrLessonLocked):
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Watch the lesson video before taking the quiz!", nil)
	case errors.Is(err, learningService.ErrNotEligible):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please complete the course before requesting a certificate!", nil)
	default:
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}
}
