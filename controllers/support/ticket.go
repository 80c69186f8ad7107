package supportControllers

import (
	"encoding/json"
	"time"

	"worksuite/database"
	"worksuite/middleware"
	"worksuite/models"

	"github.com/gofiber/fiber/v2"
)

type ticketMessage struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
	Time   string `json:"time"`
}

// CreateSupportTicket opens a helpdesk ticket for the caller
func CreateSupportTicket(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedSupportTicket").(*struct {
		Title    string  `json:"title"`
		Subject  *string `json:"subject"`
		Message  string  `json:"message"`
		Priority *string `json:"priority"`
		Category *string `json:"category"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	thread := []ticketMessage{{
		Sender: "user",
		Text:   reqData.Message,
		Time:   time.Now().UTC().Format(time.RFC3339),
	}}
	msgJSON, err := json.Marshal(thread)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to format message!", nil)
	}

	ticket := models.SupportTicket{
		UserID:   userID,
		Title:    reqData.Title,
		Message:  msgJSON,
		Status:   "OPEN",
		Priority: "MEDIUM",
		Category: "GENERAL",
	}

	if reqData.Subject != nil {
		ticket.Subject = *reqData.Subject
	}
	if reqData.Priority != nil {
		ticket.Priority = *reqData.Priority
	}
	if reqData.Category != nil {
		ticket.Category = *reqData.Category
	}

	if err := database.Database.Db.Create(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create ticket!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Ticket created successfully!", ticket)
}

// GetUserTickets lists the caller's tickets
func GetUserTickets(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var tickets []models.SupportTicket
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").Find(&tickets).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tickets!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tickets fetched successfully!", fiber.Map{
		"tickets": tickets,
		"total":   len(tickets),
	})
}

// ReplyToTicket appends a message to an open ticket's thread
func ReplyToTicket(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedTicketReply").(*struct {
		TicketID uint   `json:"ticket_id"`
		Message  string `json:"message"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var ticket models.SupportTicket
	if err := database.Database.Db.Where("id = ? AND user_id = ? AND is_deleted = ?", reqData.TicketID, userID, false).First(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Ticket not found!", nil)
	}

	if ticket.Status == "CLOSED" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Cannot reply to a closed ticket!", nil)
	}

	var thread []ticketMessage
	if len(ticket.Message) > 0 {
		if err := json.Unmarshal(ticket.Message, &thread); err != nil {
			thread = nil
		}
	}
	thread = append(thread, ticketMessage{
		Sender: "user",
		Text:   reqData.Message,
		Time:   time.Now().UTC().Format(time.RFC3339),
	})

	msgJSON, err := json.Marshal(thread)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to format message!", nil)
	}

	ticket.Message = msgJSON
	ticket.Status = "IN_PROGRESS"
	if err := database.Database.Db.Save(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update ticket!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reply added successfully!", ticket)
}
