package userController

import (
	"codelearn/database"
	"codelearn/middleware"
	"codelearn/models"
	courseModels "codelearn/models/course"
	courseService "codelearn/services/course"

	"github.com/gofiber/fiber/v2"
)

// EnrolledCourseView is one dashboard card: the enrollment plus the title
// of the next lesson to take
type EnrolledCourseView struct {
	courseModels.Enrollment
	NextLessonID    uint   `json:"next_lesson_id,omitempty"`
	NextLessonTitle string `json:"next_lesson_title,omitempty"`
}

// AchievementView is a badge definition with the user's earned state
type AchievementView struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Earned      bool   `json:"earned"`
}

// GetDashboard returns the learner's aggregate stats, enrolled courses and
// achievements
func GetDashboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	summary, err := courseService.Summary(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard!", nil)
	}

	var enrollments []courseModels.Enrollment
	database.Database.Db.
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Preload("Course").
		Order("last_accessed_at desc").
		Find(&enrollments)

	cards := make([]EnrolledCourseView, len(enrollments))
	for i, e := range enrollments {
		cards[i] = EnrolledCourseView{Enrollment: e}

		progress, err := courseService.Progress(userID, e.CourseID)
		if err != nil || progress.CourseComplete {
			continue
		}

		var nextLesson courseModels.Lesson
		err = database.Database.Db.
			Where("course_id = ? AND order_index = ? AND is_deleted = ? AND is_published = ?",
				e.CourseID, progress.NextLessonOrdinal, false, true).
			First(&nextLesson).Error
		if err == nil {
			cards[i].NextLessonID = nextLesson.ID
			cards[i].NextLessonTitle = nextLesson.Title
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"user":             user,
		"summary":          summary,
		"enrolled_courses": cards,
		"achievements":     achievementViews(userID),
	})
}

// GetAchievements lists every badge with the user's earned state
func GetAchievements(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Achievements fetched successfully!", fiber.Map{
		"achievements": achievementViews(userID),
	})
}

func achievementViews(userID uint) []AchievementView {
	var definitions []models.Achievement
	database.Database.Db.Where("is_deleted = ?", false).Order("id asc").Find(&definitions)

	var earned []models.UserAchievement
	database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).Find(&earned)

	earnedByID := make(map[uint]bool, len(earned))
	for _, e := range earned {
		earnedByID[e.AchievementID] = true
	}

	views := make([]AchievementView, len(definitions))
	for i, def := range definitions {
		views[i] = AchievementView{
			Title:       def.Title,
			Description: def.Description,
			Earned:      earnedByID[def.ID],
		}
	}
	return views
}
