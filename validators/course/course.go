package courseValidator

import (
	"strconv"
	"strings"

	"codelearn/middleware"

	"github.com/gofiber/fiber/v2"
)

func parseIDParam(c *fiber.Ctx, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Params(name))
	if raw == "" {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// CourseID validates the :id path parameter
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// CourseLesson validates the :course_id and :lesson_id path parameters
func CourseLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseIDParam(c, "course_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		lessonID, ok := parseIDParam(c, "lesson_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Lesson ID!", nil)
		}

		c.Locals("courseID", courseID)
		c.Locals("lessonID", lessonID)
		return c.Next()
	}
}

// CourseList validates catalog listing query parameters
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Category string `json:"category"`
			Level    string `json:"level"`
			Search   string `json:"search"`
			Page     *int   `json:"page"`
			Limit    *int   `json:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		reqData.Level = strings.ToUpper(strings.TrimSpace(reqData.Level))
		if reqData.Level != "" {
			validLevels := map[string]bool{"BEGINNER": true, "INTERMEDIATE": true, "ADVANCED": true}
			if !validLevels[reqData.Level] {
				errors["level"] = "Level must be BEGINNER, INTERMEDIATE, or ADVANCED!"
			}
		}

		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}

		if reqData.Limit != nil && (*reqData.Limit < 1 || *reqData.Limit > 100) {
			errors["limit"] = "Limit must be between 1 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseList", reqData)
		return c.Next()
	}
}

// QuizSubmit validates a quiz answer submission
func QuizSubmit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Answer *int `json:"answer" validate:"required,gte=0"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := middleware.ValidateStruct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuizSubmit", reqData)
		return c.Next()
	}
}
