package courseService

import (
	"testing"

	"codelearn/config"
	"codelearn/database"
	courseModels "codelearn/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenPolicyAllowsAnyLesson(t *testing.T) {
	setupTestDB(t)
	course, lessons := createTestCourse(t, 3)

	_, _, err := Enroll(1, course.ID)
	require.NoError(t, err)

	for i := range lessons {
		assert.True(t, CanAccessLesson(1, course.ID, lessons[i].ID))
	}
}

func TestGateDeniesWithoutEnrollment(t *testing.T) {
	setupTestDB(t)
	course, lessons := createTestCourse(t, 2)

	assert.False(t, CanAccessLesson(1, course.ID, lessons[0].ID))
}

func TestGateDeniesUnknownLesson(t *testing.T) {
	setupTestDB(t)
	course, _ := createTestCourse(t, 2)

	_, _, err := Enroll(1, course.ID)
	require.NoError(t, err)

	assert.False(t, CanAccessLesson(1, course.ID, 9999))
}

func TestSequentialPolicyRequiresPredecessor(t *testing.T) {
	setupTestDB(t)
	config.AppConfig.AccessPolicy = config.AccessPolicySequential

	course, lessons := createTestCourse(t, 3)

	_, _, err := Enroll(1, course.ID)
	require.NoError(t, err)

	// Only the first lesson is open at the start
	assert.True(t, CanAccessLesson(1, course.ID, lessons[0].ID))
	assert.False(t, CanAccessLesson(1, course.ID, lessons[1].ID))
	assert.False(t, CanAccessLesson(1, course.ID, lessons[2].ID))

	_, err = MarkLessonComplete(1, course.ID, lessons[0].ID)
	require.NoError(t, err)

	assert.True(t, CanAccessLesson(1, course.ID, lessons[1].ID))
	assert.False(t, CanAccessLesson(1, course.ID, lessons[2].ID))
}

func TestSequentialPolicyGapUnlocks(t *testing.T) {
	setupTestDB(t)
	config.AppConfig.AccessPolicy = config.AccessPolicySequential

	course, _ := createTestCourse(t, 1)

	// A lesson at ordinal 3 with no ordinal-2 predecessor is treated as open
	orphan := courseModels.Lesson{
		CourseID:    course.ID,
		Title:       "Orphan Lesson",
		OrderIndex:  3,
		QuizAnswer:  -1,
		IsPublished: true,
	}
	require.NoError(t, database.Database.Db.Create(&orphan).Error)

	_, _, err := Enroll(1, course.ID)
	require.NoError(t, err)

	assert.True(t, CanAccessLesson(1, course.ID, orphan.ID))
}
