package authValidator

import (
	"strings"

	"codelearn/middleware"

	"github.com/gofiber/fiber/v2"
)

// Register validator middleware
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			FirstName string `json:"first_name" validate:"required,min=2"`
			LastName  string `json:"last_name"`
			Email     string `json:"email" validate:"required,email"`
			Password  string `json:"password" validate:"required,min=8"`
			Role      string `json:"role" validate:"omitempty,oneof=STUDENT INSTRUCTOR"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.FirstName = strings.TrimSpace(reqData.FirstName)
		reqData.LastName = strings.TrimSpace(reqData.LastName)
		reqData.Email = strings.ToLower(strings.TrimSpace(reqData.Email))
		reqData.Role = strings.ToUpper(strings.TrimSpace(reqData.Role))

		if errors := middleware.ValidateStruct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email    string `json:"email" validate:"required,email"`
			Password string `json:"password" validate:"required"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Email = strings.ToLower(strings.TrimSpace(reqData.Email))

		if errors := middleware.ValidateStruct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
