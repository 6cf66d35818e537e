package chatRoutes

import (
	controllers "codelearn/controllers/chat"
	"codelearn/middleware"
	validators "codelearn/validators/chat"

	"github.com/gofiber/fiber/v2"
)

func SetupChatRoutes(app *fiber.App) {
	chatGroup := app.Group("/chat")

	chatGroup.Post("/message", middleware.JWTMiddleware, validators.Message(), controllers.SendMessage)
}
