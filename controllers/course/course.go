package courseController

import (
	"codelearn/database"
	"codelearn/middleware"
	"codelearn/models"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses returns the active course catalog, optionally filtered by
// category and a title search term. Chapters come back with topic content
// stripped; the full content is fetched per chapter once enrolled.
func GetAllCourses(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	db := database.Database.Db.Model(&models.Course{}).Where("is_deleted = ? AND status = ?", false, "ACTIVE")

	if category := c.Query("category"); category != "" {
		db = db.Where("category = ?", category)
	}
	if search := c.Query("q"); search != "" {
		db = db.Where("title ILIKE ?", "%"+search+"%")
	}

	var courses []models.Course
	if err := db.Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	// Which catalog entries the user already enrolled in, so the client can
	// route directly to the detail screen.
	var enrollments []models.Enrollment
	database.Database.Db.Where("user_id = ? AND is_deleted = ?", userId, false).Find(&enrollments)
	enrolledTitles := make(map[string]bool, len(enrollments))
	for _, e := range enrollments {
		enrolledTitles[e.CourseTitle] = true
	}

	type catalogEntry struct {
		models.Course
		IsEnrolled bool `json:"isEnrolled"`
	}
	entries := make([]catalogEntry, len(courses))
	for i, course := range courses {
		entries[i] = catalogEntry{Course: course, IsEnrolled: enrolledTitles[course.Title]}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": entries,
	})
}

// GetCourseDetails returns one catalog course by title.
func GetCourseDetails(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseTitle := c.Locals("courseTitle").(string)

	var course models.Course
	if err := database.Database.Db.Where("title = ? AND is_deleted = ? AND status = ?", courseTitle, false, "ACTIVE").First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var enrollment models.Enrollment
	isEnrolled := database.Database.Db.Where("user_id = ? AND course_title = ? AND is_deleted = ?", userId, courseTitle, false).First(&enrollment).Error == nil

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":     course,
		"isEnrolled": isEnrolled,
	})
}
