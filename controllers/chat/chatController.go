package chatController

import (
	"codelearn/database"
	"codelearn/middleware"
	"codelearn/models"
	"codelearn/utils"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// fallbackReply is returned when the model produces no text at all.
const fallbackReply = "No response received."

// SanitizeReply strips markdown emphasis markers from model output so the
// mobile client can render it as plain text.
func SanitizeReply(text string) string {
	text = strings.ReplaceAll(text, "*", "")
	text = strings.ReplaceAll(text, "_", "")
	return strings.TrimSpace(text)
}

// SendMessage forwards a learner's question to the assistant model and
// returns the sanitized reply. The exchange is stateless: each request
// carries the full prompt and nothing is stored.
func SendMessage(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedChatMessage").(*struct {
		Message string `json:"message"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	reply, err := utils.AskGemini(reqData.Message)
	if err != nil {
		log.Printf("Error calling assistant model for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Assistant is unavailable right now. Please try again.", nil)
	}

	reply = SanitizeReply(reply)
	if reply == "" {
		reply = fallbackReply
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reply generated!", fiber.Map{
		"reply": reply,
	})
}
