package courseRoutes

import (
	controllers "codelearn/controllers/course"
	"codelearn/middleware"
	validators "codelearn/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the learner-facing catalog, enrollment and
// progress routes. Fixed paths are registered before the :courseTitle
// parameter routes so "/list" never matches as a title.
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	courseGroup.Get("/list", middleware.JWTMiddleware, controllers.GetAllCourses)
	courseGroup.Get("/:courseTitle", middleware.JWTMiddleware, validators.CourseTitleParam(), controllers.GetCourseDetails)

	// Enrollment
	courseGroup.Post("/:courseTitle/enroll", middleware.JWTMiddleware, validators.CourseTitleParam(), controllers.EnrollInCourse)

	// Chapter reading with sequential unlock
	courseGroup.Get("/:courseTitle/resume", middleware.JWTMiddleware, validators.CourseTitleParam(), controllers.GetCourseResume)
	courseGroup.Get("/:courseTitle/chapter/:chapterIndex", middleware.JWTMiddleware, validators.CourseTitleParam(), validators.ChapterIndexParam(), controllers.GetChapter)

	// Progress tracking
	courseGroup.Post("/:courseTitle/chapter/complete", middleware.JWTMiddleware, validators.CourseTitleParam(), validators.ChapterComplete(), controllers.CompleteChapter)
	courseGroup.Get("/:courseTitle/progress", middleware.JWTMiddleware, validators.CourseTitleParam(), controllers.GetCourseProgress)

	enrollGroup := app.Group("/user")
	enrollGroup.Get("/enrollments", middleware.JWTMiddleware, controllers.GetEnrollments)
}
