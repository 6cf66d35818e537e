package courseRoutes

import (
	controllers "codelearn/controllers/course"
	"codelearn/middleware"
	validators "codelearn/validators/course"
	quizValidators "codelearn/validators/quiz"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up content authoring and the admin dashboard.
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/course", middleware.JWTMiddleware, middleware.AdminOnly)

	adminGroup.Post("/create", validators.CreateCourse(), controllers.CreateCourse)
	adminGroup.Put("/:courseTitle", validators.CourseTitleParam(), validators.UpdateCourse(), controllers.UpdateCourse)
	adminGroup.Delete("/:courseTitle", validators.CourseTitleParam(), controllers.DeleteCourse)

	quizGroup := app.Group("/admin/quiz", middleware.JWTMiddleware, middleware.AdminOnly)
	quizGroup.Post("/create", validators.CreateQuiz(), controllers.CreateQuiz)
	quizGroup.Delete("/:quizId", quizValidators.QuizIDParam(), controllers.DeleteQuiz)

	dashGroup := app.Group("/admin/dashboard", middleware.JWTMiddleware, middleware.AdminOnly)
	dashGroup.Get("/stats", controllers.GetAdminDashboard)
}
