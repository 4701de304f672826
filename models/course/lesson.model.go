package course

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Lesson is one unit of a course. OrderIndex is the 1-based position within
// the course's lesson sequence and drives the "next lesson" computation.
// The code exercise and quiz columns are optional; a lesson has a quiz iff
// QuizQuestion is non-empty, in which case QuizAnswer must be a valid index
// into QuizOptions (enforced by the authoring validators, not at grading
// time).
type Lesson struct {
	gorm.Model
	CourseID   uint   `json:"course_id" gorm:"index;not null"`
	Title      string `json:"title"`
	Duration   string `json:"duration"` // e.g. "45 min"
	Content    string `json:"content" gorm:"type:text"`
	VideoURL   string `json:"video_url"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`

	ExerciseInstruction string `json:"exercise_instruction,omitempty" gorm:"type:text"`
	ExerciseStarterCode string `json:"exercise_starter_code,omitempty" gorm:"type:text"`
	ExerciseSolution    string `json:"exercise_solution,omitempty" gorm:"type:text"`

	QuizQuestion string         `json:"quiz_question,omitempty"`
	QuizOptions  datatypes.JSON `json:"quiz_options,omitempty"` // JSON array of option strings
	QuizAnswer   int            `json:"quiz_answer" gorm:"default:-1"`

	IsPublished bool `json:"is_published" gorm:"default:false"`
	IsDeleted   bool `json:"-" gorm:"default:false"`
}

// HasQuiz reports whether the lesson carries a quiz
func (l *Lesson) HasQuiz() bool {
	return l.QuizQuestion != ""
}

// HasCodeExercise reports whether the lesson carries a code exercise
func (l *Lesson) HasCodeExercise() bool {
	return l.ExerciseInstruction != ""
}

// Options decodes the stored quiz option array
func (l *Lesson) Options() []string {
	var opts []string
	if len(l.QuizOptions) == 0 {
		return opts
	}
	_ = json.Unmarshal(l.QuizOptions, &opts)
	return opts
}
