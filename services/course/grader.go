package courseService

import (
	courseModels "codelearn/models/course"
)

// GradeResult is the outcome of evaluating one quiz submission
type GradeResult struct {
	Correct bool `json:"correct"`
	Score   int  `json:"score"`
}

// Grade evaluates a selected option index against the lesson's answer key.
// Pure function: no database access and no side effects. The caller records
// the score and marks the lesson complete on a correct answer.
func Grade(lesson *courseModels.Lesson, selectedOption int) (GradeResult, error) {
	if !lesson.HasQuiz() {
		return GradeResult{}, ErrNoQuiz
	}

	options := lesson.Options()
	if selectedOption < 0 || selectedOption >= len(options) {
		return GradeResult{}, ErrInvalidOption
	}

	result := GradeResult{Correct: selectedOption == lesson.QuizAnswer}
	if result.Correct {
		result.Score = 100
	}
	return result, nil
}
