package courseController

import (
	"codelearn/database"
	"codelearn/middleware"
	"codelearn/models"
	"codelearn/progress"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var errCourseNotFound = errors.New("course not found")

// loadEnrollmentRecord fetches the learner's stored copy of a course. A
// missing enrollment is a valid state, not an error: the caller gets a
// synthesized default record built from the catalog definition with every
// chapter not completed. The bool reports whether a stored record exists.
func loadEnrollmentRecord(userID uint, courseTitle string) (*models.Enrollment, []models.Chapter, bool, error) {
	db := database.Database.Db

	var enrollment models.Enrollment
	err := db.Where("user_id = ? AND course_title = ? AND is_deleted = ?", userID, courseTitle, false).First(&enrollment).Error
	if err == nil {
		chapters, decodeErr := progress.DecodeChapters(enrollment.Chapters)
		if decodeErr != nil {
			return nil, nil, false, decodeErr
		}
		return &enrollment, chapters, true, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, false, err
	}

	// Not enrolled yet: fall back to the authored definition.
	var course models.Course
	if err := db.Where("title = ? AND is_deleted = ?", courseTitle, false).First(&course).Error; err != nil {
		return nil, nil, false, errCourseNotFound
	}

	chapters, decodeErr := progress.DecodeChapters(course.Chapters)
	if decodeErr != nil {
		return nil, nil, false, decodeErr
	}
	for i := range chapters {
		chapters[i].Completed = false
	}

	fallback := &models.Enrollment{
		UserID:       userID,
		CourseTitle:  course.Title,
		Description:  course.Description,
		Type:         course.Type,
		Category:     course.Category,
		Image:        course.Image,
		ChapterCount: course.ChapterCount,
		Chapters:     course.Chapters,
	}
	return fallback, chapters, false, nil
}

// GetCourseResume returns the record a detail screen renders from: the
// stored enrollment when present, otherwise the synthesized default.
func GetCourseResume(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseTitle := c.Locals("courseTitle").(string)

	enrollment, chapters, enrolled, err := loadEnrollmentRecord(userID, courseTitle)
	if err != nil {
		if errors.Is(err, errCourseNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		log.Printf("Error loading enrollment for user %d course %q: %v", userID, courseTitle, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load course progress!", nil)
	}

	// Unlocked flags per chapter save the client from re-deriving gating.
	type chapterEntry struct {
		models.Chapter
		Unlocked bool `json:"unlocked"`
	}
	entries := make([]chapterEntry, len(chapters))
	for i, ch := range chapters {
		ch.Content = nil // topic content is fetched per chapter
		entries[i] = chapterEntry{Chapter: ch, Unlocked: progress.CanAccess(chapters, i)}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course progress loaded!", fiber.Map{
		"courseTitle": enrollment.CourseTitle,
		"description": enrollment.Description,
		"category":    enrollment.Category,
		"image":       enrollment.Image,
		"noOfChapter": enrollment.ChapterCount,
		"isEnrolled":  enrolled,
		"chapters":    entries,
		"progress":    progress.Summarize(chapters),
	})
}

// GetChapter returns one chapter's full topic content, enforcing sequential
// unlock: chapter i is only readable once chapter i-1 is completed. A locked
// chapter is a precondition failure, not an error path — nothing changes.
func GetChapter(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseTitle := c.Locals("courseTitle").(string)
	chapterIndex := c.Locals("chapterIndex").(int)

	_, chapters, _, err := loadEnrollmentRecord(userID, courseTitle)
	if err != nil {
		if errors.Is(err, errCourseNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		log.Printf("Error loading enrollment for user %d course %q: %v", userID, courseTitle, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load course progress!", nil)
	}

	if chapterIndex >= len(chapters) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	if !progress.CanAccess(chapters, chapterIndex) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Complete previous chapters first!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter fetched successfully!", fiber.Map{
		"courseTitle":  courseTitle,
		"chapterIndex": chapterIndex,
		"chapter":      chapters[chapterIndex],
	})
}

// CompleteChapter marks the named chapter completed in the user's enrollment
// record and persists the full updated chapter list. The write is
// confirmed-only: the response never reports a completion the store has not
// acknowledged, so a failed save leaves the stored record untouched and the
// client free to retry. Re-completing a chapter is idempotent.
func CompleteChapter(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseTitle := c.Locals("courseTitle").(string)
	reqData, ok := c.Locals("validatedChapterComplete").(*struct {
		ChapterName string `json:"chapterName"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var enrollment models.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_title = ? AND is_deleted = ?", userID, courseTitle, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	chapters, err := progress.DecodeChapters(enrollment.Chapters)
	if err != nil {
		log.Printf("Error decoding chapters for enrollment %d: %v", enrollment.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	updated, changed := progress.Complete(chapters, reqData.ChapterName)
	if changed {
		encoded, err := progress.EncodeChapters(updated)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
		}
		if err := database.Database.Db.Model(&enrollment).
			Updates(map[string]interface{}{"chapters": encoded, "updated_at": time.Now()}).Error; err != nil {
			log.Printf("Error persisting chapter completion for enrollment %d: %v", enrollment.ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save progress. Please try again.", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter completion saved!", fiber.Map{
		"courseTitle": courseTitle,
		"chapterName": reqData.ChapterName,
		"progress":    progress.Summarize(updated),
	})
}

// GetCourseProgress returns the completion report for one course.
func GetCourseProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseTitle := c.Locals("courseTitle").(string)

	_, chapters, enrolled, err := loadEnrollmentRecord(userID, courseTitle)
	if err != nil {
		if errors.Is(err, errCourseNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		log.Printf("Error loading enrollment for user %d course %q: %v", userID, courseTitle, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load course progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"courseTitle": courseTitle,
		"isEnrolled":  enrolled,
		"progress":    progress.Summarize(chapters),
	})
}
