package controllers

import (
	"codelearn/middleware"
	courseService "codelearn/services/course"

	"github.com/gofiber/fiber/v2"
)

// GetCourseLessons lists a course's lessons in sequence order with the
// answer keys stripped
func GetCourseLessons(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	lessons, err := courseService.ListLessons(courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	for i := range lessons {
		hideAnswers(&lessons[i])
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", fiber.Map{
		"lessons": lessons,
	})
}

// GetLesson returns one lesson for an enrolled user. Access is decided by
// the lesson gate; viewing bumps the enrollment's last access time.
func GetLesson(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)
	lessonID := c.Locals("lessonID").(uint)

	lesson, err := courseService.GetLesson(courseID, lessonID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if !courseService.CanAccessLesson(userID, courseID, lessonID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course and complete the previous lessons first!", nil)
	}

	courseService.TouchLastAccessed(userID, courseID)

	hideAnswers(lesson)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully!", fiber.Map{
		"lesson": lesson,
	})
}
