package quizValidator

import (
	"codelearn/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// QuizIDParam checks the quizId route parameter is a positive integer.
func QuizIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("quizId"))
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
		}

		c.Locals("quizID", id)
		return c.Next()
	}
}

// Answer validates the answer submission body.
func Answer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Answer string `json:"answer"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Answer) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"answer": "Answer is required!",
			})
		}

		c.Locals("validatedAnswer", reqData)
		return c.Next()
	}
}
