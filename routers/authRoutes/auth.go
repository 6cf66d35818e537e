package authRoutes

import (
	authControllers "codelearn/controllers/auth"
	"codelearn/middleware"
	authValidators "codelearn/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidators.Signup(), authControllers.Signup)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Get("/login/history", authValidators.LoginHistory(), middleware.JWTMiddleware, authControllers.LoginHistoryList)
}
