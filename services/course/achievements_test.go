package courseService

import (
	"testing"

	"codelearn/database"
	"codelearn/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func earnedCount(t *testing.T, userID uint, slug string) int64 {
	t.Helper()

	var achievement models.Achievement
	require.NoError(t, database.Database.Db.Where("slug = ?", slug).First(&achievement).Error)

	var count int64
	database.Database.Db.Model(&models.UserAchievement{}).
		Where("user_id = ? AND achievement_id = ?", userID, achievement.ID).
		Count(&count)
	return count
}

func TestAwardAchievementOnlyOnce(t *testing.T) {
	setupTestDB(t)

	AwardAchievement(1, models.AchievementCourseCompleter)
	AwardAchievement(1, models.AchievementCourseCompleter)

	assert.Equal(t, int64(1), earnedCount(t, 1, models.AchievementCourseCompleter))
}

func TestAwardAchievementUnknownSlug(t *testing.T) {
	setupTestDB(t)

	// Must not create anything or panic
	AwardAchievement(1, "no-such-badge")

	var count int64
	database.Database.Db.Model(&models.UserAchievement{}).Where("user_id = ?", 1).Count(&count)
	assert.Zero(t, count)
}

func TestFirstEnrollmentBadge(t *testing.T) {
	setupTestDB(t)
	course, _ := createTestCourse(t, 2)

	_, _, err := Enroll(1, course.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(1), earnedCount(t, 1, models.AchievementFirstEnrollment))
}

func TestQuickLearnerBadgeAfterFiveLessonsInADay(t *testing.T) {
	setupTestDB(t)
	course, lessons := createTestCourse(t, 6)

	_, _, err := Enroll(1, course.ID)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		_, err = MarkLessonComplete(1, course.ID, lessons[i].ID)
		require.NoError(t, err)
	}
	assert.Zero(t, earnedCount(t, 1, models.AchievementQuickLearner))

	_, err = MarkLessonComplete(1, course.ID, lessons[4].ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), earnedCount(t, 1, models.AchievementQuickLearner))
}

func TestCourseCompleterBadge(t *testing.T) {
	setupTestDB(t)
	course, lessons := createTestCourse(t, 2)

	_, _, err := Enroll(1, course.ID)
	require.NoError(t, err)

	for i := range lessons {
		_, err = MarkLessonComplete(1, course.ID, lessons[i].ID)
		require.NoError(t, err)
	}

	assert.Equal(t, int64(1), earnedCount(t, 1, models.AchievementCourseCompleter))
}
