package utils

import (
	"log"
	"time"

	"codelearn/database"
	"codelearn/models"
	courseModels "codelearn/models/course"
	courseService "codelearn/services/course"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// InitializeAchievementScheduler sets up the nightly reconciliation job
func InitializeAchievementScheduler() {
	log.Println("[ACHIEVEMENT-SCHEDULER] Initializing achievement scheduler...")

	c := cron.New()

	// Run daily shortly after midnight
	c.AddFunc("15 0 * * *", func() {
		log.Println("[ACHIEVEMENT-SCHEDULER] Running nightly reconciliation...")
		ReconcileEnrollmentProgress()
		AwardConsistencyAchievements()
	})

	c.Start()
	log.Println("[ACHIEVEMENT-SCHEDULER] Achievement scheduler started - runs daily at 00:15")
}

// ReconcileEnrollmentProgress recomputes the cached progress snapshot of
// every active enrollment from the completion rows. Catches drift after
// admin edits to a course's lesson list.
func ReconcileEnrollmentProgress() {
	db := database.Database.Db

	var enrollments []courseModels.Enrollment
	if err := db.Where("is_deleted = ? AND status != ?", false, courseModels.StatusCompleted).
		Find(&enrollments).Error; err != nil {
		log.Printf("[ACHIEVEMENT-SCHEDULER] Error fetching enrollments: %v", err)
		return
	}

	reconciled := 0
	for _, e := range enrollments {
		progress, err := courseService.Progress(e.UserID, e.CourseID)
		if err != nil {
			continue
		}
		if progress.Percent == e.Progress && progress.CompletedCount == e.CompletedLessons {
			continue
		}

		updates := map[string]interface{}{
			"progress":          progress.Percent,
			"completed_lessons": progress.CompletedCount,
			"total_lessons":     progress.TotalCount,
		}
		if progress.CourseComplete {
			completedAt := time.Now()
			updates["status"] = courseModels.StatusCompleted
			updates["completed_at"] = &completedAt
		} else if progress.CompletedCount > 0 {
			updates["status"] = courseModels.StatusInProgress
		}

		if err := db.Model(&courseModels.Enrollment{}).Where("id = ?", e.ID).Updates(updates).Error; err != nil {
			log.Printf("[ACHIEVEMENT-SCHEDULER] Error reconciling enrollment %d: %v", e.ID, err)
			continue
		}
		reconciled++
	}

	if reconciled > 0 {
		log.Printf("[ACHIEVEMENT-SCHEDULER] Reconciled %d enrollments", reconciled)
	}
}

// AwardConsistencyAchievements grants the Consistent Student badge to users
// with lesson completions on each of the last 7 days.
func AwardConsistencyAchievements() {
	db := database.Database.Db

	var userIDs []uint
	weekAgo := now.BeginningOfDay().AddDate(0, 0, -7)
	if err := db.Model(&courseModels.LessonCompletion{}).
		Where("is_deleted = ? AND created_at >= ?", false, weekAgo).
		Distinct("user_id").
		Pluck("user_id", &userIDs).Error; err != nil {
		log.Printf("[ACHIEVEMENT-SCHEDULER] Error fetching active users: %v", err)
		return
	}

	for _, userID := range userIDs {
		if hasSevenDayStreak(userID) {
			courseService.AwardAchievement(userID, models.AchievementConsistentStudent)
		}
	}
}

func hasSevenDayStreak(userID uint) bool {
	db := database.Database.Db

	for day := 1; day <= 7; day++ {
		dayEnd := now.BeginningOfDay().AddDate(0, 0, -(day - 1))
		dayStart := dayEnd.AddDate(0, 0, -1)

		var count int64
		db.Model(&courseModels.LessonCompletion{}).
			Where("user_id = ? AND is_deleted = ? AND created_at >= ? AND created_at < ?",
				userID, false, dayStart, dayEnd).
			Count(&count)
		if count == 0 {
			return false
		}
	}
	return true
}
