package adminValidator

import (
	"strconv"
	"strings"

	"codelearn/middleware"

	"github.com/gofiber/fiber/v2"
)

// CourseBody validates course create/update payloads
func CourseBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title        string `json:"title" validate:"required,min=3"`
			Description  string `json:"description"`
			Category     string `json:"category" validate:"required"`
			Level        string `json:"level" validate:"required,oneof=BEGINNER INTERMEDIATE ADVANCED"`
			Duration     string `json:"duration"`
			PriceCents   int64  `json:"price_cents" validate:"gte=0"`
			InstructorID uint   `json:"instructor_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Category = strings.TrimSpace(reqData.Category)
		reqData.Level = strings.ToUpper(strings.TrimSpace(reqData.Level))

		if errors := middleware.ValidateStruct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAdminCourse", reqData)
		return c.Next()
	}
}

// LessonBody validates lesson create/update payloads. A lesson with a quiz
// question must carry at least two options and an answer key pointing at one
// of them; a lesson without a question must carry neither.
func LessonBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title               string   `json:"title" validate:"required,min=3"`
			Duration            string   `json:"duration"`
			Content             string   `json:"content"`
			VideoURL            string   `json:"video_url"`
			OrderIndex          int      `json:"order_index" validate:"gte=0"`
			ExerciseInstruction string   `json:"exercise_instruction"`
			ExerciseStarterCode string   `json:"exercise_starter_code"`
			ExerciseSolution    string   `json:"exercise_solution"`
			QuizQuestion        string   `json:"quiz_question"`
			QuizOptions         []string `json:"quiz_options"`
			QuizAnswer          *int     `json:"quiz_answer"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.QuizQuestion = strings.TrimSpace(reqData.QuizQuestion)

		errors := middleware.ValidateStruct(reqData)

		if reqData.QuizQuestion != "" {
			if len(reqData.QuizOptions) < 2 {
				errors["quiz_options"] = "A quiz needs at least 2 options!"
			}
			for i, option := range reqData.QuizOptions {
				if strings.TrimSpace(option) == "" {
					errors["quiz_options"] = "Option " + strconv.Itoa(i+1) + " is empty!"
					break
				}
			}
			if reqData.QuizAnswer == nil {
				errors["quiz_answer"] = "A quiz needs an answer key!"
			} else if *reqData.QuizAnswer < 0 || *reqData.QuizAnswer >= len(reqData.QuizOptions) {
				errors["quiz_answer"] = "Answer must point at one of the options!"
			}
		} else if len(reqData.QuizOptions) > 0 || reqData.QuizAnswer != nil {
			errors["quiz_question"] = "Quiz options and answer require a question!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAdminLesson", reqData)
		return c.Next()
	}
}

// RequestID validates the :request_id path parameter
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestIDStr := strings.TrimSpace(c.Params("request_id"))
		if requestIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Request ID is required!", nil)
		}

		requestID, err := strconv.Atoi(requestIDStr)
		if err != nil || requestID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Request ID!", nil)
		}

		c.Locals("requestID", uint(requestID))
		return c.Next()
	}
}

// RejectCertificate validates a certificate rejection payload
func RejectCertificate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Reason string `json:"reason" validate:"required,min=3"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Reason = strings.TrimSpace(reqData.Reason)

		if errors := middleware.ValidateStruct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCertificateReject", reqData)
		return c.Next()
	}
}
