package models

import (
	"time"

	"gorm.io/gorm"
)

// Achievement slugs awarded by the platform
const (
	AchievementFirstEnrollment   = "first-course-enrolled"
	AchievementQuickLearner      = "quick-learner"      // 5 lessons completed in a day
	AchievementConsistentStudent = "consistent-student" // 7 days of study in a row
	AchievementCourseCompleter   = "course-completer"   // first course completed
)

// Achievement is a badge definition, seeded at migration time
type Achievement struct {
	gorm.Model
	Slug        string `json:"slug" gorm:"unique;not null"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsDeleted   bool   `json:"-" gorm:"default:false"`
}

// UserAchievement records a badge earned by a user
type UserAchievement struct {
	gorm.Model
	UserID        uint      `json:"user_id" gorm:"index;not null"`
	AchievementID uint      `json:"achievement_id" gorm:"index;not null"`
	EarnedAt      time.Time `json:"earned_at"`
	IsDeleted     bool      `json:"-" gorm:"default:false"`
}
