package userController

import (
	"codelearn/database"
	"codelearn/middleware"
	courseModels "codelearn/models/course"
	courseService "codelearn/services/course"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RequestCertificate requests a certificate for a completed course
func RequestCertificate(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	enrollment, err := courseService.GetEnrollment(userID, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	if enrollment.Status != courseModels.StatusCompleted {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please complete the course before requesting a certificate!", nil)
	}

	// Re-requesting while a request is pending or approved is a no-op
	var existing courseModels.CertificateRequest
	if err := database.Database.Db.
		Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
		First(&existing).Error; err == nil {
		if existing.Status == "PENDING" {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate request is already pending.", existing)
		}
		if existing.Status == "APPROVED" {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate has already been issued.", existing)
		}
	}

	request := courseModels.CertificateRequest{
		UserID:       userID,
		CourseID:     courseID,
		EnrollmentID: enrollment.ID,
		Status:       "PENDING",
		RequestedAt:  time.Now(),
	}
	if err := database.Database.Db.Create(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to request certificate!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Certificate requested successfully!", request)
}

// GetUserCertificates lists the user's issued certificates
func GetUserCertificates(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var certificates []courseModels.Certificate
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("issued_at desc").
		Find(&certificates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": certificates,
	})
}
