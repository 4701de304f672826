package courseService

import "errors"

// Sentinel errors returned by the course services. All are per-request,
// recoverable conditions; controllers translate them into status codes.
var (
	ErrCourseNotFound = errors.New("course not found")
	ErrLessonNotFound = errors.New("lesson not found")
	ErrNotEnrolled    = errors.New("user not enrolled in this course")
	ErrNoQuiz         = errors.New("lesson has no quiz")
	ErrInvalidOption  = errors.New("selected option is out of range")
)
