package adminController

import (
	"codelearn/database"
	"codelearn/middleware"
	"codelearn/models"
	courseModels "codelearn/models/course"

	"github.com/gofiber/fiber/v2"
)

// requireAdmin loads the caller and rejects non-admins
func requireAdmin(c *fiber.Ctx) (*models.User, error) {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return nil, middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return nil, middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != "ADMIN" && user.Role != "INSTRUCTOR" {
		return nil, middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	return &user, nil
}

func AdminCreateCourse(c *fiber.Ctx) error {
	if _, err := requireAdmin(c); err != nil {
		return err
	}

	reqData, ok := c.Locals("validatedAdminCourse").(*struct {
		Title        string `json:"title" validate:"required,min=3"`
		Description  string `json:"description"`
		Category     string `json:"category" validate:"required"`
		Level        string `json:"level" validate:"required,oneof=BEGINNER INTERMEDIATE ADVANCED"`
		Duration     string `json:"duration"`
		PriceCents   int64  `json:"price_cents" validate:"gte=0"`
		InstructorID uint   `json:"instructor_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := courseModels.Course{
		Title:        reqData.Title,
		Description:  reqData.Description,
		Category:     reqData.Category,
		Level:        reqData.Level,
		Duration:     reqData.Duration,
		PriceCents:   reqData.PriceCents,
		InstructorID: reqData.InstructorID,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

func AdminUpdateCourse(c *fiber.Ctx) error {
	if _, err := requireAdmin(c); err != nil {
		return err
	}

	courseID := c.Locals("courseID").(uint)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedAdminCourse").(*struct {
		Title        string `json:"title" validate:"required,min=3"`
		Description  string `json:"description"`
		Category     string `json:"category" validate:"required"`
		Level        string `json:"level" validate:"required,oneof=BEGINNER INTERMEDIATE ADVANCED"`
		Duration     string `json:"duration"`
		PriceCents   int64  `json:"price_cents" validate:"gte=0"`
		InstructorID uint   `json:"instructor_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course.Title = reqData.Title
	course.Description = reqData.Description
	course.Category = reqData.Category
	course.Level = reqData.Level
	course.Duration = reqData.Duration
	course.PriceCents = reqData.PriceCents
	if reqData.InstructorID != 0 {
		course.InstructorID = reqData.InstructorID
	}

	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

func AdminDeleteCourse(c *fiber.Ctx) error {
	if _, err := requireAdmin(c); err != nil {
		return err
	}

	courseID := c.Locals("courseID").(uint)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	course.IsDeleted = true
	course.IsPublished = false
	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

func AdminPublishCourse(c *fiber.Ctx) error {
	if _, err := requireAdmin(c); err != nil {
		return err
	}

	courseID := c.Locals("courseID").(uint)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// A course needs at least one publishable lesson to go live
	var lessonCount int64
	database.Database.Db.Model(&courseModels.Lesson{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Count(&lessonCount)
	if lessonCount == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Add at least one lesson before publishing!", nil)
	}

	course.IsPublished = true
	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to publish course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course published successfully!", course)
}

func AdminGetAllCourses(c *fiber.Ctx) error {
	if _, err := requireAdmin(c); err != nil {
		return err
	}

	var courses []courseModels.Course
	if err := database.Database.Db.
		Where("is_deleted = ?", false).
		Order("created_at desc").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}
