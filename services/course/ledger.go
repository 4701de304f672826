package courseService

import (
	"log"
	"sync"
	"time"

	"codelearn/database"
	"codelearn/models"
	courseModels "codelearn/models/course"

	"gorm.io/gorm"
)

// Mutations on an enrollment are serialized per (userID, courseID). Each
// lock covers exactly one key and is never held while taking another, so
// there is no lock ordering to get wrong. Reads stay lock-free.
var (
	enrollmentLocksMu sync.Mutex
	enrollmentLocks   = make(map[[2]uint]*sync.Mutex)
)

// OnCourseCompleted is invoked once when an enrollment first reaches
// COMPLETED status. Wired up in main to the notification layer.
var OnCourseCompleted func(userID, courseID uint)

func enrollmentLock(userID, courseID uint) *sync.Mutex {
	enrollmentLocksMu.Lock()
	defer enrollmentLocksMu.Unlock()

	key := [2]uint{userID, courseID}
	lock, ok := enrollmentLocks[key]
	if !ok {
		lock = &sync.Mutex{}
		enrollmentLocks[key] = lock
	}
	return lock
}

// GetEnrollment fetches the user's enrollment for a course
func GetEnrollment(userID, courseID uint) (*courseModels.Enrollment, error) {
	var enrollment courseModels.Enrollment
	err := database.Database.Db.
		Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
		First(&enrollment).Error
	if err != nil {
		return nil, ErrNotEnrolled
	}
	return &enrollment, nil
}

// Enroll creates an enrollment for the user in a course. Idempotent: if an
// enrollment already exists it is returned unchanged and created is false,
// with no duplicate side effects (student counter, achievements, emails).
func Enroll(userID, courseID uint) (*courseModels.Enrollment, bool, error) {
	course, err := GetCourse(courseID)
	if err != nil {
		return nil, false, err
	}

	lock := enrollmentLock(userID, courseID)
	lock.Lock()
	defer lock.Unlock()

	if existing, err := GetEnrollment(userID, courseID); err == nil {
		return existing, false, nil
	}

	var totalLessons int64
	database.Database.Db.Model(&courseModels.Lesson{}).
		Where("course_id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).
		Count(&totalLessons)

	enrollment := courseModels.Enrollment{
		UserID:       userID,
		CourseID:     courseID,
		Status:       courseModels.StatusEnrolled,
		TotalLessons: int(totalLessons),
	}

	tx := database.Database.Db.Begin()
	if err := tx.Create(&enrollment).Error; err != nil {
		tx.Rollback()
		return nil, false, err
	}
	if err := tx.Model(course).Update("students_count", gorm.Expr("students_count + 1")).Error; err != nil {
		tx.Rollback()
		return nil, false, err
	}
	tx.Commit()

	AwardAchievement(userID, models.AchievementFirstEnrollment)

	return &enrollment, true, nil
}

// MarkLessonComplete adds the lesson to the user's completed set. Repeat
// calls are no-ops. The enrollment progress snapshot is recomputed inside
// the same transaction and LastAccessedAt is bumped.
func MarkLessonComplete(userID, courseID, lessonID uint) (*courseModels.Enrollment, error) {
	lock := enrollmentLock(userID, courseID)
	lock.Lock()
	defer lock.Unlock()

	enrollment, err := GetEnrollment(userID, courseID)
	if err != nil {
		return nil, err
	}

	if _, err := GetLesson(courseID, lessonID); err != nil {
		return nil, err
	}

	wasCompleted := enrollment.Status == courseModels.StatusCompleted

	tx := database.Database.Db.Begin()

	var existing courseModels.LessonCompletion
	err = tx.Where("user_id = ? AND lesson_id = ? AND is_deleted = ?", userID, lessonID, false).
		First(&existing).Error
	if err != nil {
		completion := courseModels.LessonCompletion{
			UserID:   userID,
			LessonID: lessonID,
			CourseID: courseID,
		}
		if err := tx.Create(&completion).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := refreshProgress(tx, enrollment); err != nil {
		tx.Rollback()
		return nil, err
	}
	tx.Commit()

	if !wasCompleted && enrollment.Status == courseModels.StatusCompleted {
		AwardAchievement(userID, models.AchievementCourseCompleter)
		if OnCourseCompleted != nil {
			OnCourseCompleted(userID, courseID)
		}
	}
	AwardQuickLearnerIfEligible(userID)

	return enrollment, nil
}

// RecordQuizScore stores the latest quiz attempt for a lesson, overwriting
// any prior score. Only the most recent attempt is retained.
func RecordQuizScore(userID, courseID, lessonID uint, selectedOption, score int, correct bool) error {
	lock := enrollmentLock(userID, courseID)
	lock.Lock()
	defer lock.Unlock()

	if _, err := GetEnrollment(userID, courseID); err != nil {
		return err
	}
	if _, err := GetLesson(courseID, lessonID); err != nil {
		return err
	}

	var existing courseModels.QuizScore
	err := database.Database.Db.
		Where("user_id = ? AND lesson_id = ? AND is_deleted = ?", userID, lessonID, false).
		First(&existing).Error
	if err == nil {
		existing.SelectedOption = selectedOption
		existing.Score = score
		existing.IsCorrect = correct
		return database.Database.Db.Save(&existing).Error
	}

	attempt := courseModels.QuizScore{
		UserID:         userID,
		LessonID:       lessonID,
		CourseID:       courseID,
		SelectedOption: selectedOption,
		Score:          score,
		IsCorrect:      correct,
	}
	return database.Database.Db.Create(&attempt).Error
}

// TouchLastAccessed bumps the enrollment's LastAccessedAt on a lesson view.
// Best effort; a missing enrollment is not an error here.
func TouchLastAccessed(userID, courseID uint) {
	now := time.Now()
	err := database.Database.Db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
		Update("last_accessed_at", &now).Error
	if err != nil {
		log.Printf("[LEDGER] Failed to update last access for user %d course %d: %v", userID, courseID, err)
	}
}

// refreshProgress recomputes the enrollment's progress snapshot from the
// completion rows and lesson count, and advances its status.
func refreshProgress(tx *gorm.DB, enrollment *courseModels.Enrollment) error {
	var totalLessons int64
	tx.Model(&courseModels.Lesson{}).
		Where("course_id = ? AND is_deleted = ? AND is_published = ?", enrollment.CourseID, false, true).
		Count(&totalLessons)

	var completedLessons int64
	tx.Model(&courseModels.LessonCompletion{}).
		Where("user_id = ? AND course_id = ? AND is_deleted = ?", enrollment.UserID, enrollment.CourseID, false).
		Count(&completedLessons)

	enrollment.CompletedLessons = int(completedLessons)
	enrollment.TotalLessons = int(totalLessons)
	enrollment.Progress = 0
	if totalLessons > 0 {
		enrollment.Progress = float64(completedLessons) / float64(totalLessons) * 100
	}

	now := time.Now()
	enrollment.LastAccessedAt = &now

	if enrollment.Progress >= 100 {
		enrollment.Status = courseModels.StatusCompleted
		if enrollment.CompletedAt == nil {
			enrollment.CompletedAt = &now
		}
	} else if enrollment.Progress > 0 {
		enrollment.Status = courseModels.StatusInProgress
	}

	return tx.Save(enrollment).Error
}
