package courseService

import (
	"codelearn/database"
	courseModels "codelearn/models/course"
)

// The catalog is read-only for every other service: learner actions never
// write to courses or lessons. Only published, non-deleted rows are visible.

// GetCourse fetches one published course by id
func GetCourse(courseID uint) (*courseModels.Course, error) {
	var course courseModels.Course
	err := database.Database.Db.
		Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).
		First(&course).Error
	if err != nil {
		return nil, ErrCourseNotFound
	}
	return &course, nil
}

// GetLesson fetches one published lesson of a course
func GetLesson(courseID, lessonID uint) (*courseModels.Lesson, error) {
	var lesson courseModels.Lesson
	err := database.Database.Db.
		Where("id = ? AND course_id = ? AND is_deleted = ? AND is_published = ?", lessonID, courseID, false, true).
		First(&lesson).Error
	if err != nil {
		return nil, ErrLessonNotFound
	}
	return &lesson, nil
}

// ListLessons returns the course's published lessons in sequence order
func ListLessons(courseID uint) ([]courseModels.Lesson, error) {
	if _, err := GetCourse(courseID); err != nil {
		return nil, err
	}

	var lessons []courseModels.Lesson
	err := database.Database.Db.
		Where("course_id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).
		Order("order_index asc").
		Find(&lessons).Error
	if err != nil {
		return nil, err
	}
	return lessons, nil
}
