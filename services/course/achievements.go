package courseService

import (
	"log"
	"time"

	"codelearn/database"
	"codelearn/models"
	courseModels "codelearn/models/course"

	"github.com/jinzhu/now"
)

// AwardAchievement grants a badge to the user once. Already-earned badges
// and unknown slugs are silently skipped.
func AwardAchievement(userID uint, slug string) {
	db := database.Database.Db

	var achievement models.Achievement
	if err := db.Where("slug = ? AND is_deleted = ?", slug, false).First(&achievement).Error; err != nil {
		return
	}

	var existing models.UserAchievement
	err := db.Where("user_id = ? AND achievement_id = ? AND is_deleted = ?", userID, achievement.ID, false).
		First(&existing).Error
	if err == nil {
		return
	}

	earned := models.UserAchievement{
		UserID:        userID,
		AchievementID: achievement.ID,
		EarnedAt:      time.Now(),
	}
	if err := db.Create(&earned).Error; err != nil {
		log.Printf("[ACHIEVEMENT] Failed to award %s to user %d: %v", slug, userID, err)
		return
	}
	log.Printf("[ACHIEVEMENT] User %d earned %s", userID, slug)
}

// AwardQuickLearnerIfEligible grants the Quick Learner badge once the user
// has completed 5 lessons since the start of today.
func AwardQuickLearnerIfEligible(userID uint) {
	var todayCount int64
	database.Database.Db.Model(&courseModels.LessonCompletion{}).
		Where("user_id = ? AND is_deleted = ? AND created_at >= ?", userID, false, now.BeginningOfDay()).
		Count(&todayCount)

	if todayCount >= 5 {
		AwardAchievement(userID, models.AchievementQuickLearner)
	}
}
