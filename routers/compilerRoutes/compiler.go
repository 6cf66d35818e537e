package compilerRoutes

import (
	controllers "codelearn/controllers/compiler"
	"codelearn/middleware"
	validators "codelearn/validators/compiler"

	"github.com/gofiber/fiber/v2"
)

func SetupCompilerRoutes(app *fiber.App) {
	compilerGroup := app.Group("/compiler")

	compilerGroup.Get("/languages", middleware.JWTMiddleware, controllers.GetLanguages)
	compilerGroup.Post("/run", middleware.JWTMiddleware, validators.RunCode(), controllers.RunCode)
}
