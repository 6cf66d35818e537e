package courseController

import (
	"codelearn/database"
	"codelearn/middleware"
	"codelearn/models"
	"codelearn/progress"
	"codelearn/utils"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// EnrollInCourse copies the catalog course into the user's enrollment
// records. The copy is taken once; later catalog edits never flow into an
// existing enrollment. Chapter completion always starts from scratch.
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseTitle := c.Locals("courseTitle").(string)

	var course models.Course
	if err := database.Database.Db.Where("title = ? AND is_deleted = ? AND status = ?", courseTitle, false, "ACTIVE").First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not active!", nil)
	}

	// Check if user is already enrolled
	var existingEnrollment models.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_title = ? AND is_deleted = ?", userID, courseTitle, false).First(&existingEnrollment).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this course!", nil)
	}

	// Snapshot with all chapters reset to not-completed.
	chapters, err := progress.DecodeChapters(course.Chapters)
	if err != nil {
		log.Printf("Error decoding chapters for course %q: %v", courseTitle, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}
	for i := range chapters {
		chapters[i].Completed = false
	}
	encoded, err := progress.EncodeChapters(chapters)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	enrollment := models.Enrollment{
		UserID:       userID,
		CourseTitle:  course.Title,
		Description:  course.Description,
		Type:         course.Type,
		Category:     course.Category,
		Image:        course.Image,
		ChapterCount: course.ChapterCount,
		Chapters:     encoded,
		EnrolledAt:   time.Now(),
	}

	tx := database.Database.Db.Begin()
	if err := tx.Create(&enrollment).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}
	tx.Commit()

	go func(name, email, title string) {
		if err := utils.SendEnrollmentEmail(name, email, title); err != nil {
			log.Printf("Error sending enrollment email to %s: %v", email, err)
		}
	}(user.Name, user.Email, course.Title)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", enrollment)
}

// GetEnrollments lists the user's enrolled courses with a progress report
// per course (the "my courses" and progress-ring screens).
func GetEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var enrollments []models.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).Order("enrolled_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	type enrollmentEntry struct {
		models.Enrollment
		Progress progress.Report `json:"progress"`
	}

	entries := make([]enrollmentEntry, len(enrollments))
	for i, e := range enrollments {
		chapters, err := progress.DecodeChapters(e.Chapters)
		if err != nil {
			log.Printf("Error decoding chapters for enrollment %d: %v", e.ID, err)
			chapters = nil
		}
		entries[i] = enrollmentEntry{Enrollment: e, Progress: progress.Summarize(chapters)}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": entries,
	})
}
