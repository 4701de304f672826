package courseService

import (
	"encoding/json"
	"fmt"
	"testing"

	"codelearn/config"
	"codelearn/database"
	courseModels "codelearn/models/course"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the global database instance at a fresh in-memory
// sqlite database, named per test so state never bleeds between tests.
func setupTestDB(t *testing.T) {
	t.Helper()

	config.AppConfig = &config.Config{
		Port:         "8000",
		JWTKey:       "test-secret",
		SaltRound:    10,
		AccessPolicy: config.AccessPolicyOpen,
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	database.Database = database.DbInstance{Db: db}
	database.RunMigrations(db)
	database.SeedAchievements(db)
}

// createTestCourse creates a published course with lessonCount published
// lessons ordered 1..lessonCount, none of which carry a quiz.
func createTestCourse(t *testing.T, lessonCount int) (*courseModels.Course, []courseModels.Lesson) {
	t.Helper()

	course := courseModels.Course{
		Title:       "Test Course",
		Description: "A course for tests",
		Category:    "Programming",
		Level:       courseModels.LevelBeginner,
		IsPublished: true,
	}
	require.NoError(t, database.Database.Db.Create(&course).Error)

	lessons := make([]courseModels.Lesson, lessonCount)
	for i := 0; i < lessonCount; i++ {
		lessons[i] = courseModels.Lesson{
			CourseID:    course.ID,
			Title:       fmt.Sprintf("Lesson %d", i+1),
			OrderIndex:  i + 1,
			QuizAnswer:  -1,
			IsPublished: true,
		}
		require.NoError(t, database.Database.Db.Create(&lessons[i]).Error)
	}

	return &course, lessons
}

// addQuiz attaches a quiz to a lesson
func addQuiz(t *testing.T, lesson *courseModels.Lesson, options []string, answer int) {
	t.Helper()

	raw, err := json.Marshal(options)
	require.NoError(t, err)

	lesson.QuizQuestion = "Which option is correct?"
	lesson.QuizOptions = datatypes.JSON(raw)
	lesson.QuizAnswer = answer
	require.NoError(t, database.Database.Db.Save(lesson).Error)
}
