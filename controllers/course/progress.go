package controllers

import (
	"codelearn/middleware"
	courseService "codelearn/services/course"

	"github.com/gofiber/fiber/v2"
)

// MarkLessonComplete marks one lesson of an enrolled course as completed.
// Marking an already-completed lesson again is a no-op.
func MarkLessonComplete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)
	lessonID := c.Locals("lessonID").(uint)

	enrollment, err := courseService.MarkLessonComplete(userID, courseID, lessonID)
	if err != nil {
		switch err {
		case courseService.ErrNotEnrolled:
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
		case courseService.ErrLessonNotFound:
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark lesson complete!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson marked complete!", enrollment)
}

// SubmitQuiz grades a quiz submission, records the score and marks the
// lesson complete on a correct answer
func SubmitQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)
	lessonID := c.Locals("lessonID").(uint)

	reqData, ok := c.Locals("validatedQuizSubmit").(*struct {
		Answer *int `json:"answer" validate:"required,gte=0"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lesson, err := courseService.GetLesson(courseID, lessonID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	result, err := courseService.Grade(lesson, *reqData.Answer)
	if err != nil {
		switch err {
		case courseService.ErrNoQuiz:
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Lesson has no quiz!", nil)
		case courseService.ErrInvalidOption:
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Selected option is out of range!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to grade quiz!", nil)
		}
	}

	if err := courseService.RecordQuizScore(userID, courseID, lessonID, *reqData.Answer, result.Score, result.Correct); err != nil {
		if err == courseService.ErrNotEnrolled {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record quiz score!", nil)
	}

	// A correct answer completes the lesson
	if result.Correct {
		if _, err := courseService.MarkLessonComplete(userID, courseID, lessonID); err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answer submitted!", fiber.Map{
		"correct": result.Correct,
		"score":   result.Score,
	})
}

// GetCourseProgress returns the user's progress view for one course
func GetCourseProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	progress, err := courseService.Progress(userID, courseID)
	if err != nil {
		switch err {
		case courseService.ErrNotEnrolled:
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Not enrolled in this course!", nil)
		case courseService.ErrCourseNotFound:
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", progress)
}
