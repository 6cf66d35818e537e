package courseValidator

import (
	"codelearn/middleware"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CourseTitleParam decodes and checks the courseTitle route parameter.
// Titles routinely contain spaces, so the raw segment is URL-decoded.
func CourseTitleParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Params("courseTitle")
		title, err := url.PathUnescape(raw)
		if err != nil {
			title = raw
		}
		title = strings.TrimSpace(title)
		if title == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course title is required!", nil)
		}

		c.Locals("courseTitle", title)
		return c.Next()
	}
}

// ChapterIndexParam checks the chapterIndex route parameter is a
// non-negative integer.
func ChapterIndexParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idx, err := strconv.Atoi(c.Params("chapterIndex"))
		if err != nil || idx < 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid chapter index!", nil)
		}

		c.Locals("chapterIndex", idx)
		return c.Next()
	}
}

// ChapterComplete validates the mark-completed request body.
func ChapterComplete() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ChapterName string `json:"chapterName"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.ChapterName) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"chapterName": "Chapter name is required!",
			})
		}

		c.Locals("validatedChapterComplete", reqData)
		return c.Next()
	}
}
