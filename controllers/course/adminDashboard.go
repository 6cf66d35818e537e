package courseController

import (
	"codelearn/database"
	"codelearn/middleware"
	"codelearn/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// GetAdminDashboard returns platform-wide counts for the admin overview:
// totals plus today's and this week's activity.
func GetAdminDashboard(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	db := database.Database.Db

	var totalUsers, totalCourses, totalQuizzes, totalEnrollments int64
	db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&totalUsers)
	db.Model(&models.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)
	db.Model(&models.Quiz{}).Where("is_deleted = ?", false).Count(&totalQuizzes)
	db.Model(&models.Enrollment{}).Where("is_deleted = ?", false).Count(&totalEnrollments)

	today := now.BeginningOfDay()
	weekStart := now.BeginningOfWeek()

	var signupsToday, enrollmentsToday, enrollmentsThisWeek int64
	db.Model(&models.User{}).Where("is_deleted = ? AND created_at >= ?", false, today).Count(&signupsToday)
	db.Model(&models.Enrollment{}).Where("is_deleted = ? AND enrolled_at >= ?", false, today).Count(&enrollmentsToday)
	db.Model(&models.Enrollment{}).Where("is_deleted = ? AND enrolled_at >= ?", false, weekStart).Count(&enrollmentsThisWeek)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"totals": fiber.Map{
			"users":       totalUsers,
			"courses":     totalCourses,
			"quizzes":     totalQuizzes,
			"enrollments": totalEnrollments,
		},
		"today": fiber.Map{
			"signups":     signupsToday,
			"enrollments": enrollmentsToday,
		},
		"thisWeek": fiber.Map{
			"enrollments": enrollmentsThisWeek,
		},
	})
}
