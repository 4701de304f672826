package courseService

import (
	"testing"

	"codelearn/database"
	courseModels "codelearn/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCourseHidesUnpublished(t *testing.T) {
	setupTestDB(t)
	course, _ := createTestCourse(t, 1)

	fetched, err := GetCourse(course.ID)
	require.NoError(t, err)
	assert.Equal(t, course.Title, fetched.Title)

	course.IsPublished = false
	require.NoError(t, database.Database.Db.Save(course).Error)

	_, err = GetCourse(course.ID)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestGetLessonScopedToCourse(t *testing.T) {
	setupTestDB(t)
	courseA, lessonsA := createTestCourse(t, 1)
	courseB, _ := createTestCourse(t, 1)

	_, err := GetLesson(courseA.ID, lessonsA[0].ID)
	require.NoError(t, err)

	// The same lesson id under another course must not resolve
	_, err = GetLesson(courseB.ID, lessonsA[0].ID)
	assert.ErrorIs(t, err, ErrLessonNotFound)
}

func TestListLessonsOrderedAndPublishedOnly(t *testing.T) {
	setupTestDB(t)
	course, _ := createTestCourse(t, 3)

	draft := courseModels.Lesson{
		CourseID:    course.ID,
		Title:       "Draft Lesson",
		OrderIndex:  4,
		QuizAnswer:  -1,
		IsPublished: false,
	}
	require.NoError(t, database.Database.Db.Create(&draft).Error)

	lessons, err := ListLessons(course.ID)
	require.NoError(t, err)
	require.Len(t, lessons, 3)
	for i, lesson := range lessons {
		assert.Equal(t, i+1, lesson.OrderIndex)
	}
}
