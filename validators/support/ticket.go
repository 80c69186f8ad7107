package supportValidator

import (
	"strings"

	"worksuite/middleware"

	"github.com/gofiber/fiber/v2"
)

var allowedPriorities = map[string]bool{"LOW": true, "MEDIUM": true, "HIGH": true}
var allowedCategories = map[string]bool{"GENERAL": true, "TRAINING": true, "IT": true, "HR": true}

// CreateTicket validates a new helpdesk ticket
func CreateTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title    string  `json:"title"`
			Subject  *string `json:"subject"`
			Message  string  `json:"message"`
			Priority *string `json:"priority"`
			Category *string `json:"category"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Message) == "" {
			errors["message"] = "Message is required!"
		}
		if reqData.Priority != nil && !allowedPriorities[strings.ToUpper(*reqData.Priority)] {
			errors["priority"] = "Priority must be LOW, MEDIUM or HIGH!"
		}
		if reqData.Category != nil && !allowedCategories[strings.ToUpper(*reqData.Category)] {
			errors["category"] = "Category must be GENERAL, TRAINING, IT or HR!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		if reqData.Priority != nil {
			upper := strings.ToUpper(*reqData.Priority)
			reqData.Priority = &upper
		}
		if reqData.Category != nil {
			upper := strings.ToUpper(*reqData.Category)
			reqData.Category = &upper
		}

		c.Locals("validatedSupportTicket", reqData)
		return c.Next()
	}
}

// ReplyTicket validates a ticket reply
func ReplyTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			TicketID uint   `json:"ticket_id"`
			Message  string `json:"message"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.TicketID == 0 {
			errors["ticket_id"] = "Ticket ID is required!"
		}
		if strings.TrimSpace(reqData.Message) == "" {
			errors["message"] = "Message is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTicketReply", reqData)
		return c.Next()
	}
}
