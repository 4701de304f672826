package adminController

import (
	"encoding/json"

	"codelearn/database"
	"codelearn/middleware"
	courseModels "codelearn/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

type validatedLessonBody = struct {
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
}

func applyLessonBody(lesson *courseModels.Lesson, reqData *validatedLessonBody) {
	lesson.Title = reqData.Title
	lesson.Duration = reqData.Duration
	lesson.Content = reqData.Content
	lesson.VideoURL = reqData.VideoURL
	if reqData.OrderIndex > 0 {
		lesson.OrderIndex = reqData.OrderIndex
	}
	lesson.ExerciseInstruction = reqData.ExerciseInstruction
	lesson.ExerciseStarterCode = reqData.ExerciseStarterCode
	lesson.ExerciseSolution = reqData.ExerciseSolution

	lesson.QuizQuestion = reqData.QuizQuestion
	lesson.QuizOptions = nil
	lesson.QuizAnswer = -1
	if reqData.QuizQuestion != "" {
		raw, _ := json.Marshal(reqData.QuizOptions)
		lesson.QuizOptions = datatypes.JSON(raw)
		lesson.QuizAnswer = *reqData.QuizAnswer
	}
}

func AdminCreateLesson(c *fiber.Ctx) error {
	if _, err := requireAdmin(c); err != nil {
		return err
	}

	courseID := c.Locals("courseID").(uint)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedAdminLesson").(*validatedLessonBody)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lesson := courseModels.Lesson{CourseID: courseID}
	applyLessonBody(&lesson, reqData)

	// New lessons default to the end of the sequence
	if lesson.OrderIndex == 0 {
		var maxIndex int
		database.Database.Db.Model(&courseModels.Lesson{}).
			Where("course_id = ? AND is_deleted = ?", courseID, false).
			Select("COALESCE(MAX(order_index), 0)").
			Scan(&maxIndex)
		lesson.OrderIndex = maxIndex + 1
	}

	if err := database.Database.Db.Create(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}

func AdminUpdateLesson(c *fiber.Ctx) error {
	if _, err := requireAdmin(c); err != nil {
		return err
	}

	courseID := c.Locals("courseID").(uint)
	lessonID := c.Locals("lessonID").(uint)

	var lesson courseModels.Lesson
	if err := database.Database.Db.
		Where("id = ? AND course_id = ? AND is_deleted = ?", lessonID, courseID, false).
		First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	reqData, ok := c.Locals("validatedAdminLesson").(*validatedLessonBody)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	applyLessonBody(&lesson, reqData)

	if err := database.Database.Db.Save(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", lesson)
}

func AdminDeleteLesson(c *fiber.Ctx) error {
	if _, err := requireAdmin(c); err != nil {
		return err
	}

	courseID := c.Locals("courseID").(uint)
	lessonID := c.Locals("lessonID").(uint)

	var lesson courseModels.Lesson
	if err := database.Database.Db.
		Where("id = ? AND course_id = ? AND is_deleted = ?", lessonID, courseID, false).
		First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	lesson.IsDeleted = true
	lesson.IsPublished = false
	if err := database.Database.Db.Save(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", nil)
}

func AdminPublishLesson(c *fiber.Ctx) error {
	if _, err := requireAdmin(c); err != nil {
		return err
	}

	courseID := c.Locals("courseID").(uint)
	lessonID := c.Locals("lessonID").(uint)

	var lesson courseModels.Lesson
	if err := database.Database.Db.
		Where("id = ? AND course_id = ? AND is_deleted = ?", lessonID, courseID, false).
		First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	lesson.IsPublished = true
	if err := database.Database.Db.Save(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to publish lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson published successfully!", lesson)
}
