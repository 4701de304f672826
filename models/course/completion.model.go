package course

import "gorm.io/gorm"

// LessonCompletion tracks a user's completion of one lesson. Rows behave as
// a set: marking an already-completed lesson complete again is a no-op.
type LessonCompletion struct {
	gorm.Model
	UserID    uint `json:"user_id" gorm:"not null;uniqueIndex:idx_user_lesson"`
	LessonID  uint `json:"lesson_id" gorm:"not null;uniqueIndex:idx_user_lesson"`
	CourseID  uint `json:"course_id" gorm:"index;not null"`
	IsDeleted bool `json:"-" gorm:"default:false"`
}

// QuizScore keeps the latest quiz attempt for one lesson. A re-attempt
// overwrites the previous row; no attempt history is retained.
type QuizScore struct {
	gorm.Model
	UserID         uint `json:"user_id" gorm:"not null;uniqueIndex:idx_user_lesson_quiz"`
	LessonID       uint `json:"lesson_id" gorm:"not null;uniqueIndex:idx_user_lesson_quiz"`
	CourseID       uint `json:"course_id" gorm:"index;not null"`
	SelectedOption int  `json:"selected_option"`
	Score          int  `json:"score"` // 0-100
	IsCorrect      bool `json:"is_correct" gorm:"default:false"`
	IsDeleted      bool `json:"-" gorm:"default:false"`
}
