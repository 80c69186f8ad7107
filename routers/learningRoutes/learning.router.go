package learningRoutes

import (
	controllers "worksuite/controllers/learning"
	"worksuite/middleware"
	validators "worksuite/validators/learning"

	"github.com/gofiber/fiber/v2"
)

// SetupLearningRoutes sets up all user-facing course and quiz routes
func SetupLearningRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Course listing and details (published courses)
	courseGroup.Get("/list", middleware.JWTMiddleware, validators.CourseList(), controllers.GetAllCourses)
	courseGroup.Get("/:course_id", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)

	// Enrollment
	courseGroup.Post("/:course_id/enroll", middleware.JWTMiddleware, validators.CourseID(), controllers.EnrollInCourse)

	// Course completion (derived on every read)
	courseGroup.Get("/:course_id/completion", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseCompletion)

	// Certificates
	courseGroup.Get("/:course_id/certificate/eligibility", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCertificateEligibility)
	courseGroup.Post("/:course_id/certificate/issue", middleware.JWTMiddleware, validators.CourseID(), controllers.IssueCertificate)

	lessonGroup := app.Group("/lesson")

	// Watch progress and quiz flow
	lessonGroup.Post("/:lesson_id/progress", middleware.JWTMiddleware, validators.RecordProgress(), controllers.RecordProgress)
	lessonGroup.Get("/:lesson_id/status", middleware.JWTMiddleware, validators.LessonID(), controllers.GetLessonStatus)
	lessonGroup.Get("/:lesson_id/quiz", middleware.JWTMiddleware, validators.LessonID(), controllers.GetLessonQuiz)
	lessonGroup.Post("/:lesson_id/quiz/submit", middleware.JWTMiddleware, validators.SubmitAttempt(), controllers.SubmitQuizAttempt)

	// User certificates
	userGroup := app.Group("/user")
	userGroup.Get("/certificates", middleware.JWTMiddleware, controllers.GetUserCertificates)
}
