package learningRoutes

import (
	controllers "worksuite/controllers/learning"
	"worksuite/middleware"
	validators "worksuite/validators/learning"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminLearningRoutes sets up course administration routes
func SetupAdminLearningRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/learning", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("MANAGE_COURSES"))

	adminGroup.Post("/course", validators.CreateCourse(), controllers.CreateCourse)
	adminGroup.Post("/course/:course_id/publish", validators.CourseID(), controllers.PublishCourse)
	adminGroup.Post("/course/:course_id/lesson", validators.CourseID(), validators.CreateLesson(), controllers.CreateLesson)
	adminGroup.Delete("/lesson/:lesson_id", validators.LessonID(), controllers.DeleteLesson)

	adminGroup.Get("/lesson/:lesson_id/quiz", validators.LessonID(), controllers.GetLessonQuizAdmin)
	adminGroup.Put("/lesson/:lesson_id/quiz", validators.LessonID(), validators.UpsertQuiz(), controllers.UpsertLessonQuiz)
	adminGroup.Delete("/lesson/:lesson_id/quiz", validators.LessonID(), controllers.DeleteLessonQuiz)

	adminGroup.Get("/dashboard", controllers.GetAdminDashboard)
}
