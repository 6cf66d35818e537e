package userValidator

import (
	"codelearn/middleware"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var mobileRe = regexp.MustCompile(`^\+?\d{10,15}$`)

// UpdateProfile validator middleware. All fields are optional; empty fields
// leave the stored value untouched.
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name         string `json:"name"`
			Mobile       string `json:"mobile"`
			ProfileImage string `json:"profile_image"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name != "" && len(strings.TrimSpace(reqData.Name)) < 2 {
			errors["name"] = "Name must be at least 2 characters long!"
		}
		if reqData.Mobile != "" && !mobileRe.MatchString(reqData.Mobile) {
			errors["mobile"] = "Invalid mobile number!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}
