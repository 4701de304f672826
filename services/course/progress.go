package courseService

import (
	"codelearn/database"
	courseModels "codelearn/models/course"
)

// CourseProgress is the read-side view of one enrollment. It is recomputed
// from the completion rows and the lesson sequence on every call; nothing
// here is cached or written back.
type CourseProgress struct {
	Percent            float64      `json:"percent"`
	CompletedCount     int          `json:"completed_count"`
	TotalCount         int          `json:"total_count"`
	NextLessonOrdinal  int          `json:"next_lesson_ordinal"` // 0 when the course is complete
	CourseComplete     bool         `json:"course_complete"`
	CompletedLessonIDs []uint       `json:"completed_lessons"`
	QuizScores         map[uint]int `json:"quiz_scores"`
}

// DashboardSummary aggregates progress across all of a user's enrollments
type DashboardSummary struct {
	EnrolledCourseCount    int     `json:"enrolled_course_count"`
	CompletedCourseCount   int     `json:"completed_course_count"`
	TotalCompletedLessons  int     `json:"total_completed_lessons"`
	AverageProgressPercent float64 `json:"average_progress_percent"`
}

// Progress derives the user's progress in one course. Returns ErrNotEnrolled
// when no enrollment exists; UI-facing callers render that as "not started".
func Progress(userID, courseID uint) (*CourseProgress, error) {
	if _, err := GetEnrollment(userID, courseID); err != nil {
		return nil, err
	}

	lessons, err := ListLessons(courseID)
	if err != nil {
		return nil, err
	}

	var completions []courseModels.LessonCompletion
	database.Database.Db.
		Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
		Find(&completions)

	completed := make(map[uint]bool, len(completions))
	completedIDs := make([]uint, 0, len(completions))
	for _, c := range completions {
		completed[c.LessonID] = true
		completedIDs = append(completedIDs, c.LessonID)
	}

	result := &CourseProgress{
		TotalCount:         len(lessons),
		CompletedLessonIDs: completedIDs,
		QuizScores:         make(map[uint]int),
	}

	// Next lesson = first lesson in sequence order not yet completed
	for _, lesson := range lessons {
		if completed[lesson.ID] {
			result.CompletedCount++
		} else if result.NextLessonOrdinal == 0 {
			result.NextLessonOrdinal = lesson.OrderIndex
		}
	}
	if result.TotalCount > 0 {
		result.Percent = float64(result.CompletedCount) / float64(result.TotalCount) * 100
	}
	if result.NextLessonOrdinal == 0 && result.TotalCount > 0 {
		result.CourseComplete = true
	}

	var scores []courseModels.QuizScore
	database.Database.Db.
		Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
		Find(&scores)
	for _, s := range scores {
		result.QuizScores[s.LessonID] = s.Score
	}

	return result, nil
}

// Summary aggregates Progress over every enrollment owned by the user
func Summary(userID uint) (*DashboardSummary, error) {
	var enrollments []courseModels.Enrollment
	err := database.Database.Db.
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Find(&enrollments).Error
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{EnrolledCourseCount: len(enrollments)}

	var percentTotal float64
	for _, e := range enrollments {
		progress, err := Progress(userID, e.CourseID)
		if err != nil {
			// Course may have been unpublished since enrollment; skip it
			continue
		}
		summary.TotalCompletedLessons += progress.CompletedCount
		percentTotal += progress.Percent
		if progress.CourseComplete {
			summary.CompletedCourseCount++
		}
	}
	if len(enrollments) > 0 {
		summary.AverageProgressPercent = percentTotal / float64(len(enrollments))
	}

	return summary, nil
}
