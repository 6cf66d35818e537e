package courseValidator

import (
	"codelearn/middleware"
	"codelearn/models"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreateCourse validates the course authoring body. Chapter order in the
// request is the unlock order learners will see.
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string           `json:"courseTitle"`
			Description string           `json:"description"`
			Type        string           `json:"type"`
			Category    string           `json:"category"`
			Image       string           `json:"image"`
			Chapters    []models.Chapter `json:"chapters"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["courseTitle"] = "Course title must be at least 3 characters long!"
		}
		if strings.TrimSpace(reqData.Category) == "" {
			errors["category"] = "Category is required!"
		}
		if len(reqData.Chapters) == 0 {
			errors["chapters"] = "At least one chapter is required!"
		}
		seen := make(map[string]bool)
		for i, ch := range reqData.Chapters {
			name := strings.TrimSpace(ch.ChapterName)
			if name == "" {
				errors[fmt.Sprintf("chapters[%d]", i)] = "Chapter name is required!"
				continue
			}
			if seen[name] {
				errors[fmt.Sprintf("chapters[%d]", i)] = "Duplicate chapter name!"
			}
			seen[name] = true
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validates the course edit body. Only the fields present are
// applied; chapters are deliberately not editable here.
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Description *string `json:"description"`
			Category    *string `json:"category"`
			Image       *string `json:"image"`
			Status      *string `json:"status"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Status != nil && *reqData.Status != "ACTIVE" && *reqData.Status != "INACTIVE" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be ACTIVE or INACTIVE!",
			})
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// CreateQuiz validates a quiz definition: a title and a bank of questions
// where every correct answer appears among its own options.
func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title     string            `json:"title"`
			Questions []models.Question `json:"quiz"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Quiz title is required!"
		}
		if len(reqData.Questions) == 0 {
			errors["quiz"] = "At least one question is required!"
		}
		for i, q := range reqData.Questions {
			key := fmt.Sprintf("quiz[%d]", i)
			if strings.TrimSpace(q.Question) == "" {
				errors[key] = "Question text is required!"
				continue
			}
			if len(q.Options) < 2 {
				errors[key] = "At least two options are required!"
				continue
			}
			found := false
			for _, opt := range q.Options {
				if opt == q.CorrectAns {
					found = true
					break
				}
			}
			if !found {
				errors[key] = "Correct answer must be one of the options!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}
