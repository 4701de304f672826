package controllers

import (
	"codelearn/database"
	"codelearn/middleware"
	courseModels "codelearn/models/course"
	courseService "codelearn/services/course"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists published courses with optional category/level/search
// filters and pagination
func GetAllCourses(c *fiber.Ctx) error {
	reqData, _ := c.Locals("validatedCourseList").(*struct {
		Category string `json:"category"`
		Level    string `json:"level"`
		Search   string `json:"search"`
		Page     *int   `json:"page"`
		Limit    *int   `json:"limit"`
	})

	// Set default pagination
	page := 1
	limit := 12
	if reqData != nil && reqData.Page != nil && *reqData.Page > 0 {
		page = *reqData.Page
	}
	if reqData != nil && reqData.Limit != nil && *reqData.Limit > 0 {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&courseModels.Course{}).
		Where("is_deleted = ? AND is_published = ?", false, true)

	if reqData != nil {
		if reqData.Category != "" {
			db = db.Where("category = ?", reqData.Category)
		}
		if reqData.Level != "" {
			db = db.Where("level = ?", reqData.Level)
		}
		if reqData.Search != "" {
			search := "%" + reqData.Search + "%"
			db = db.Where("title LIKE ? OR description LIKE ?", search, search)
		}
	}

	// Get total count
	var total int64
	db.Count(&total)

	// Fetch paginated data
	var courses []courseModels.Course
	if err := db.Offset(offset).Limit(limit).Order("students_count desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"total":       total,
			"page":        page,
			"limit":       limit,
			"total_pages": totalPages,
		},
	})
}

// GetCourseDetails returns one course with its lesson list, instructor bio
// and, when the caller is authenticated, their enrollment
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	course, err := courseService.GetCourse(courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	lessons, err := courseService.ListLessons(courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}
	for i := range lessons {
		hideAnswers(&lessons[i])
	}

	var instructor courseModels.Instructor
	database.Database.Db.Where("id = ? AND is_deleted = ?", course.InstructorID, false).First(&instructor)

	response := fiber.Map{
		"course":     course,
		"lessons":    lessons,
		"instructor": instructor,
	}

	// Enrollment is optional context; the route works unauthenticated
	if userID, ok := c.Locals("userId").(uint); ok {
		if enrollment, err := courseService.GetEnrollment(userID, courseID); err == nil {
			response["is_enrolled"] = true
			response["enrollment"] = enrollment
		} else {
			response["is_enrolled"] = false
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", response)
}

// hideAnswers strips the answer key and reference solution before a lesson
// leaves the server
func hideAnswers(lesson *courseModels.Lesson) {
	lesson.QuizAnswer = -1
	lesson.ExerciseSolution = ""
}
