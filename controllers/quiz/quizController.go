package quizController

import (
	"codelearn/database"
	"codelearn/engine"
	"codelearn/middleware"
	"codelearn/models"
	"encoding/json"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// Sessions holds every in-flight quiz attempt. Attempts are ephemeral: they
// live here and nowhere else, and starting a quiz always begins a new one.
var Sessions = engine.NewManager()

// GetAllQuizzes lists the quiz catalog with question counts.
func GetAllQuizzes(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var quizzes []models.Quiz
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("created_at desc").Find(&quizzes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quizzes!", nil)
	}

	type quizEntry struct {
		ID            uint   `json:"id"`
		Title         string `json:"title"`
		QuestionCount int    `json:"questionCount"`
	}

	entries := make([]quizEntry, len(quizzes))
	for i, quiz := range quizzes {
		var questions []models.Question
		if len(quiz.Questions) > 0 {
			if err := json.Unmarshal(quiz.Questions, &questions); err != nil {
				log.Printf("Error decoding questions for quiz %d: %v", quiz.ID, err)
			}
		}
		entries[i] = quizEntry{ID: quiz.ID, Title: quiz.Title, QuestionCount: len(questions)}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quizzes fetched successfully!", fiber.Map{
		"quizzes": entries,
	})
}

// StartQuiz begins a fresh timed attempt at the given quiz: up to ten
// questions drawn at random from the bank, 120 seconds on the clock.
func StartQuiz(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	quizID := c.Locals("quizID").(int)

	var quiz models.Quiz
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	var questions []models.Question
	if len(quiz.Questions) > 0 {
		if err := json.Unmarshal(quiz.Questions, &questions); err != nil {
			log.Printf("Error decoding questions for quiz %d: %v", quiz.ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to start quiz!", nil)
		}
	}

	view := Sessions.Start(quiz.Title, questions)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz started!", view)
}

// GetSession returns the current view of a running attempt.
func GetSession(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(uint); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	sessionID := c.Params("sessionId")

	view, err := Sessions.Get(sessionID)
	if err != nil {
		if errors.Is(err, engine.ErrSessionNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz session not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quiz session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz session fetched!", view)
}

// SubmitAnswer locks in an answer for the current question. Taps after the
// first are ignored until the session advances past the locked question.
func SubmitAnswer(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(uint); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	sessionID := c.Params("sessionId")

	reqData, ok := c.Locals("validatedAnswer").(*struct {
		Answer string `json:"answer"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	view, err := Sessions.Submit(sessionID, reqData.Answer)
	if err != nil {
		if errors.Is(err, engine.ErrSessionNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz session not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit answer!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answer submitted!", view)
}

// CancelSession tears down an attempt when the learner leaves the quiz
// screen early. The countdown stops and any pending advance is cancelled.
func CancelSession(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(uint); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	sessionID := c.Params("sessionId")

	if err := Sessions.Cancel(sessionID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz session not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz session cancelled.", nil)
}
