package controllers

import (
	"codelearn/database"
	"codelearn/middleware"
	"codelearn/models"
	courseModels "codelearn/models/course"
	courseService "codelearn/services/course"
	"codelearn/utils"

	"github.com/gofiber/fiber/v2"
)

// EnrollInCourse enrolls the user in a course. Enrolling twice is a no-op
// that returns the existing enrollment.
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	enrollment, created, err := courseService.Enroll(userID, courseID)
	if err != nil {
		if err == courseService.ErrCourseNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not active!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	if !created {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Already enrolled in this course.", enrollment)
	}

	if course, err := courseService.GetCourse(courseID); err == nil {
		utils.SendEnrollmentEmail(user.Email, user.FullName(), course.Title)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in course successfully!", enrollment)
}

// GetEnrolledCourses lists the user's enrollments with their courses
func GetEnrolledCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Preload("Course").
		Order("last_accessed_at desc").
		Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
	})
}
