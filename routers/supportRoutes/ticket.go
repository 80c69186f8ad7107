package supportRoutes

import (
	controllers "worksuite/controllers/support"
	"worksuite/middleware"
	validators "worksuite/validators/support"

	"github.com/gofiber/fiber/v2"
)

// SetupSupportRoutes sets up helpdesk ticket routes
func SetupSupportRoutes(app *fiber.App) {
	ticketGroup := app.Group("/support")

	ticketGroup.Post("/ticket", middleware.JWTMiddleware, validators.CreateTicket(), controllers.CreateSupportTicket)
	ticketGroup.Get("/tickets", middleware.JWTMiddleware, controllers.GetUserTickets)
	ticketGroup.Post("/ticket/reply", middleware.JWTMiddleware, validators.ReplyTicket(), controllers.ReplyToTicket)
}
