package adminController

import (
	"time"

	"codelearn/database"
	"codelearn/middleware"
	"codelearn/models"
	courseModels "codelearn/models/course"
	"codelearn/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AdminDashboard returns platform-wide counters for the admin home screen
func AdminDashboard(c *fiber.Ctx) error {
	if _, err := requireAdmin(c); err != nil {
		return err
	}

	db := database.Database.Db

	var totalStudents int64
	db.Model(&models.User{}).Where("role = ? AND is_deleted = ?", "STUDENT", false).Count(&totalStudents)

	var totalCourses int64
	db.Model(&courseModels.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)

	var totalEnrollments int64
	db.Model(&courseModels.Enrollment{}).Where("is_deleted = ?", false).Count(&totalEnrollments)

	var completedEnrollments int64
	db.Model(&courseModels.Enrollment{}).
		Where("status = ? AND is_deleted = ?", courseModels.StatusCompleted, false).
		Count(&completedEnrollments)

	var pendingCertificates int64
	db.Model(&courseModels.CertificateRequest{}).
		Where("status = ? AND is_deleted = ?", "PENDING", false).
		Count(&pendingCertificates)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"total_students":        totalStudents,
		"total_courses":         totalCourses,
		"total_enrollments":     totalEnrollments,
		"completed_enrollments": completedEnrollments,
		"pending_certificates":  pendingCertificates,
	})
}

// AdminGetCourseEnrollments lists every enrollment for one course
func AdminGetCourseEnrollments(c *fiber.Ctx) error {
	if _, err := requireAdmin(c); err != nil {
		return err
	}

	courseID := c.Locals("courseID").(uint)

	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("created_at desc").
		Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
	})
}

// AdminGetCertificateRequests lists certificate requests, pending first
func AdminGetCertificateRequests(c *fiber.Ctx) error {
	if _, err := requireAdmin(c); err != nil {
		return err
	}

	var requests []courseModels.CertificateRequest
	if err := database.Database.Db.
		Where("is_deleted = ?", false).
		Order("CASE WHEN status = 'PENDING' THEN 0 ELSE 1 END, requested_at desc").
		Find(&requests).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificate requests!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate requests fetched successfully!", fiber.Map{
		"requests": requests,
	})
}

// AdminApproveCertificate approves a pending request and issues the
// certificate. The student is notified by email.
func AdminApproveCertificate(c *fiber.Ctx) error {
	admin, err := requireAdmin(c)
	if err != nil {
		return err
	}

	requestID := c.Locals("requestID").(uint)

	var request courseModels.CertificateRequest
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = ?", requestID, false).
		First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate request not found!", nil)
	}

	if request.Status != "PENDING" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Certificate request has already been processed!", nil)
	}

	now := time.Now()
	certificate := courseModels.Certificate{
		UserID:            request.UserID,
		CourseID:          request.CourseID,
		CertificateNumber: uuid.New().String(),
		IssuedAt:          now,
	}

	request.Status = "APPROVED"
	request.ApprovedAt = &now
	request.ApprovedBy = &admin.ID

	tx := database.Database.Db.Begin()
	if err := tx.Create(&certificate).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue certificate!", nil)
	}
	if err := tx.Save(&request).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update request!", nil)
	}
	tx.Commit()

	var student models.User
	var course courseModels.Course
	if database.Database.Db.First(&student, request.UserID).Error == nil &&
		database.Database.Db.First(&course, request.CourseID).Error == nil {
		utils.SendCertificateEmail(student.Email, student.FullName(), course.Title, certificate.CertificateNumber)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate approved and issued!", certificate)
}

// AdminRejectCertificate rejects a pending request with a reason
func AdminRejectCertificate(c *fiber.Ctx) error {
	if _, err := requireAdmin(c); err != nil {
		return err
	}

	requestID := c.Locals("requestID").(uint)

	reqData, ok := c.Locals("validatedCertificateReject").(*struct {
		Reason string `json:"reason" validate:"required,min=3"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var request courseModels.CertificateRequest
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = ?", requestID, false).
		First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate request not found!", nil)
	}

	if request.Status != "PENDING" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Certificate request has already been processed!", nil)
	}

	request.Status = "REJECTED"
	request.RejectionReason = reqData.Reason

	if err := database.Database.Db.Save(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reject request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate request rejected.", request)
}
