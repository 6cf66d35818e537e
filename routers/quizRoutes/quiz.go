package quizRoutes

import (
	controllers "codelearn/controllers/quiz"
	"codelearn/middleware"
	validators "codelearn/validators/quiz"

	"github.com/gofiber/fiber/v2"
)

func SetupQuizRoutes(app *fiber.App) {
	quizGroup := app.Group("/quiz", middleware.JWTMiddleware)

	quizGroup.Get("/list", controllers.GetAllQuizzes)
	quizGroup.Post("/:quizId/start", validators.QuizIDParam(), controllers.StartQuiz)

	// Session lifecycle
	quizGroup.Get("/session/:sessionId", controllers.GetSession)
	quizGroup.Post("/session/:sessionId/answer", validators.Answer(), controllers.SubmitAnswer)
	quizGroup.Delete("/session/:sessionId", controllers.CancelSession)
}
