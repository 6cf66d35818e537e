package compilerValidator

import (
	compilerController "codelearn/controllers/compiler"
	"codelearn/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RunCode validates a code execution request against the supported
// language menu.
func RunCode() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			SourceCode string `json:"sourceCode"`
			LanguageID int    `json:"languageId"`
			Stdin      string `json:"stdin"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.SourceCode) == "" {
			errors["sourceCode"] = "Source code is required!"
		}
		if !compilerController.IsSupportedLanguage(reqData.LanguageID) {
			errors["languageId"] = "Unsupported language!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRunCode", reqData)
		return c.Next()
	}
}
