package courseService

import (
	"sync"
	"testing"

	"codelearn/database"
	courseModels "codelearn/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollCreatesEnrollment(t *testing.T) {
	setupTestDB(t)
	course, _ := createTestCourse(t, 3)

	enrollment, created, err := Enroll(1, course.ID)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, courseModels.StatusEnrolled, enrollment.Status)
	assert.Equal(t, 3, enrollment.TotalLessons)
	assert.Zero(t, enrollment.Progress)

	var reloaded courseModels.Course
	require.NoError(t, database.Database.Db.First(&reloaded, course.ID).Error)
	assert.Equal(t, int64(1), reloaded.StudentsCount)
}

func TestEnrollIsIdempotent(t *testing.T) {
	setupTestDB(t)
	course, _ := createTestCourse(t, 3)

	first, created, err := Enroll(1, course.ID)
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := Enroll(1, course.ID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	// No duplicate student counting either
	var reloaded courseModels.Course
	require.NoError(t, database.Database.Db.First(&reloaded, course.ID).Error)
	assert.Equal(t, int64(1), reloaded.StudentsCount)
}

func TestEnrollUnknownCourse(t *testing.T) {
	setupTestDB(t)

	_, _, err := Enroll(1, 9999)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestMarkLessonCompleteAdvancesProgress(t *testing.T) {
	setupTestDB(t)
	course, lessons := createTestCourse(t, 4)

	_, _, err := Enroll(1, course.ID)
	require.NoError(t, err)

	enrollment, err := MarkLessonComplete(1, course.ID, lessons[0].ID)
	require.NoError(t, err)
	assert.Equal(t, courseModels.StatusInProgress, enrollment.Status)
	assert.Equal(t, 1, enrollment.CompletedLessons)
	assert.InDelta(t, 25.0, enrollment.Progress, 0.01)
	assert.NotNil(t, enrollment.LastAccessedAt)
}

func TestMarkLessonCompleteIsIdempotent(t *testing.T) {
	setupTestDB(t)
	course, lessons := createTestCourse(t, 4)

	_, _, err := Enroll(1, course.ID)
	require.NoError(t, err)

	_, err = MarkLessonComplete(1, course.ID, lessons[0].ID)
	require.NoError(t, err)

	enrollment, err := MarkLessonComplete(1, course.ID, lessons[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 1, enrollment.CompletedLessons)
	assert.InDelta(t, 25.0, enrollment.Progress, 0.01)

	var count int64
	database.Database.Db.Model(&courseModels.LessonCompletion{}).
		Where("user_id = ? AND lesson_id = ?", 1, lessons[0].ID).
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestMarkLessonCompleteRequiresEnrollment(t *testing.T) {
	setupTestDB(t)
	course, lessons := createTestCourse(t, 2)

	_, err := MarkLessonComplete(1, course.ID, lessons[0].ID)
	assert.ErrorIs(t, err, ErrNotEnrolled)
}

func TestMarkLessonCompleteUnknownLesson(t *testing.T) {
	setupTestDB(t)
	course, _ := createTestCourse(t, 2)

	_, _, err := Enroll(1, course.ID)
	require.NoError(t, err)

	_, err = MarkLessonComplete(1, course.ID, 9999)
	assert.ErrorIs(t, err, ErrLessonNotFound)
}

func TestCourseCompletionFiresOnce(t *testing.T) {
	setupTestDB(t)
	course, lessons := createTestCourse(t, 2)

	completions := 0
	previous := OnCourseCompleted
	OnCourseCompleted = func(userID, courseID uint) { completions++ }
	defer func() { OnCourseCompleted = previous }()

	_, _, err := Enroll(1, course.ID)
	require.NoError(t, err)

	_, err = MarkLessonComplete(1, course.ID, lessons[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 0, completions)

	enrollment, err := MarkLessonComplete(1, course.ID, lessons[1].ID)
	require.NoError(t, err)
	assert.Equal(t, courseModels.StatusCompleted, enrollment.Status)
	assert.NotNil(t, enrollment.CompletedAt)
	assert.Equal(t, 1, completions)

	// Re-completing a lesson of a finished course must not re-notify
	_, err = MarkLessonComplete(1, course.ID, lessons[1].ID)
	require.NoError(t, err)
	assert.Equal(t, 1, completions)
}

func TestRecordQuizScoreKeepsLatestAttempt(t *testing.T) {
	setupTestDB(t)
	course, lessons := createTestCourse(t, 2)
	addQuiz(t, &lessons[0], []string{"a", "b", "c"}, 1)

	_, _, err := Enroll(1, course.ID)
	require.NoError(t, err)

	require.NoError(t, RecordQuizScore(1, course.ID, lessons[0].ID, 2, 0, false))
	require.NoError(t, RecordQuizScore(1, course.ID, lessons[0].ID, 1, 100, true))

	var scores []courseModels.QuizScore
	database.Database.Db.
		Where("user_id = ? AND lesson_id = ?", 1, lessons[0].ID).
		Find(&scores)
	require.Len(t, scores, 1)
	assert.Equal(t, 100, scores[0].Score)
	assert.Equal(t, 1, scores[0].SelectedOption)
	assert.True(t, scores[0].IsCorrect)
}

func TestEnrollmentLockSharedPerKey(t *testing.T) {
	var wg sync.WaitGroup
	locks := make([]*sync.Mutex, 16)

	for i := range locks {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			locks[i] = enrollmentLock(7, 42)
		}(i)
	}
	wg.Wait()

	// Every goroutine must observe the same mutex for the same key
	for _, lock := range locks {
		assert.Same(t, locks[0], lock)
	}

	assert.NotSame(t, locks[0], enrollmentLock(7, 43))
	assert.NotSame(t, locks[0], enrollmentLock(8, 42))
}

func TestRecordQuizScoreRequiresEnrollment(t *testing.T) {
	setupTestDB(t)
	course, lessons := createTestCourse(t, 2)

	err := RecordQuizScore(1, course.ID, lessons[0].ID, 0, 0, false)
	assert.ErrorIs(t, err, ErrNotEnrolled)
}
