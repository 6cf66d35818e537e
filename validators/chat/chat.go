package chatValidator

import (
	"codelearn/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const maxMessageLength = 4000

// Message validates the chat request body.
func Message() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Message string `json:"message"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Message) == "" {
			errors["message"] = "Message is required!"
		} else if len(reqData.Message) > maxMessageLength {
			errors["message"] = "Message is too long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedChatMessage", reqData)
		return c.Next()
	}
}
