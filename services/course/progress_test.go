package courseService

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressRequiresEnrollment(t *testing.T) {
	setupTestDB(t)
	course, _ := createTestCourse(t, 3)

	_, err := Progress(1, course.ID)
	assert.ErrorIs(t, err, ErrNotEnrolled)
}

func TestProgressThroughACourse(t *testing.T) {
	setupTestDB(t)
	course, lessons := createTestCourse(t, 10)
	addQuiz(t, &lessons[2], []string{"a", "b", "c", "d"}, 1)

	_, _, err := Enroll(1, course.ID)
	require.NoError(t, err)

	// Freshly enrolled: nothing done, next lesson is the first
	progress, err := Progress(1, course.ID)
	require.NoError(t, err)
	assert.Zero(t, progress.Percent)
	assert.Equal(t, 10, progress.TotalCount)
	assert.Equal(t, 1, progress.NextLessonOrdinal)
	assert.False(t, progress.CourseComplete)

	// Two lessons done: 20%, next is the third
	_, err = MarkLessonComplete(1, course.ID, lessons[0].ID)
	require.NoError(t, err)
	_, err = MarkLessonComplete(1, course.ID, lessons[1].ID)
	require.NoError(t, err)

	progress, err = Progress(1, course.ID)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, progress.Percent, 0.01)
	assert.Equal(t, 2, progress.CompletedCount)
	assert.Equal(t, 3, progress.NextLessonOrdinal)

	// A correct quiz answer completes the third lesson
	result, err := Grade(&lessons[2], 1)
	require.NoError(t, err)
	require.True(t, result.Correct)
	require.NoError(t, RecordQuizScore(1, course.ID, lessons[2].ID, 1, result.Score, result.Correct))
	_, err = MarkLessonComplete(1, course.ID, lessons[2].ID)
	require.NoError(t, err)

	progress, err = Progress(1, course.ID)
	require.NoError(t, err)
	assert.InDelta(t, 30.0, progress.Percent, 0.01)
	assert.Equal(t, 4, progress.NextLessonOrdinal)
	assert.Equal(t, 100, progress.QuizScores[lessons[2].ID])
	assert.Contains(t, progress.CompletedLessonIDs, lessons[2].ID)
}

func TestProgressSkippingAhead(t *testing.T) {
	setupTestDB(t)
	course, lessons := createTestCourse(t, 3)

	_, _, err := Enroll(1, course.ID)
	require.NoError(t, err)

	// Completing lesson 2 first leaves lesson 1 as the next lesson
	_, err = MarkLessonComplete(1, course.ID, lessons[1].ID)
	require.NoError(t, err)

	progress, err := Progress(1, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, progress.NextLessonOrdinal)
	assert.Equal(t, 1, progress.CompletedCount)
}

func TestProgressCourseComplete(t *testing.T) {
	setupTestDB(t)
	course, lessons := createTestCourse(t, 2)

	_, _, err := Enroll(1, course.ID)
	require.NoError(t, err)

	for i := range lessons {
		_, err = MarkLessonComplete(1, course.ID, lessons[i].ID)
		require.NoError(t, err)
	}

	progress, err := Progress(1, course.ID)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, progress.Percent, 0.01)
	assert.True(t, progress.CourseComplete)
	assert.Zero(t, progress.NextLessonOrdinal)
}

func TestSummaryAcrossEnrollments(t *testing.T) {
	setupTestDB(t)
	courseA, lessonsA := createTestCourse(t, 2)
	courseB, _ := createTestCourse(t, 4)

	_, _, err := Enroll(1, courseA.ID)
	require.NoError(t, err)
	_, _, err = Enroll(1, courseB.ID)
	require.NoError(t, err)

	for i := range lessonsA {
		_, err = MarkLessonComplete(1, courseA.ID, lessonsA[i].ID)
		require.NoError(t, err)
	}

	summary, err := Summary(1)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.EnrolledCourseCount)
	assert.Equal(t, 1, summary.CompletedCourseCount)
	assert.Equal(t, 2, summary.TotalCompletedLessons)
	assert.InDelta(t, 50.0, summary.AverageProgressPercent, 0.01)
}

func TestSummaryEmpty(t *testing.T) {
	setupTestDB(t)

	summary, err := Summary(1)
	require.NoError(t, err)
	assert.Zero(t, summary.EnrolledCourseCount)
	assert.Zero(t, summary.AverageProgressPercent)
}
