package courseService

import (
	"codelearn/config"
	"codelearn/database"
	courseModels "codelearn/models/course"
)

// CanAccessLesson decides whether the user may view a lesson. Fails closed:
// no enrollment, unknown course or unknown lesson all deny access. Under the
// default "open" policy every lesson of an enrolled course is accessible;
// under "sequential" a lesson is accessible only when its predecessor in the
// course sequence has been completed. The first lesson is always accessible
// to an enrolled user.
func CanAccessLesson(userID, courseID, lessonID uint) bool {
	if _, err := GetEnrollment(userID, courseID); err != nil {
		return false
	}

	lesson, err := GetLesson(courseID, lessonID)
	if err != nil {
		return false
	}

	if config.AppConfig.AccessPolicy == config.AccessPolicyOpen {
		return true
	}

	if lesson.OrderIndex <= 1 {
		return true
	}

	var previous courseModels.Lesson
	err = database.Database.Db.
		Where("course_id = ? AND order_index = ? AND is_deleted = ? AND is_published = ?",
			courseID, lesson.OrderIndex-1, false, true).
		First(&previous).Error
	if err != nil {
		// Gap in the sequence; treat the lesson as unlocked
		return true
	}

	var completion courseModels.LessonCompletion
	err = database.Database.Db.
		Where("user_id = ? AND lesson_id = ? AND is_deleted = ?", userID, previous.ID, false).
		First(&completion).Error
	return err == nil
}
