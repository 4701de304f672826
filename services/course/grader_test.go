package courseService

import (
	"testing"

	courseModels "codelearn/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func quizLesson(answer int) *courseModels.Lesson {
	return &courseModels.Lesson{
		Title:        "Quiz Lesson",
		QuizQuestion: "Which option is correct?",
		QuizOptions:  datatypes.JSON(`["int","char","string","bool"]`),
		QuizAnswer:   answer,
	}
}

func TestGradeCorrectAnswer(t *testing.T) {
	result, err := Grade(quizLesson(1), 1)
	require.NoError(t, err)
	assert.True(t, result.Correct)
	assert.Equal(t, 100, result.Score)
}

func TestGradeIncorrectAnswer(t *testing.T) {
	result, err := Grade(quizLesson(1), 2)
	require.NoError(t, err)
	assert.False(t, result.Correct)
	assert.Equal(t, 0, result.Score)
}

func TestGradeOptionOutOfRange(t *testing.T) {
	_, err := Grade(quizLesson(1), 4)
	assert.ErrorIs(t, err, ErrInvalidOption)

	_, err = Grade(quizLesson(1), -1)
	assert.ErrorIs(t, err, ErrInvalidOption)
}

func TestGradeLessonWithoutQuiz(t *testing.T) {
	lesson := &courseModels.Lesson{Title: "Reading", QuizAnswer: -1}
	_, err := Grade(lesson, 0)
	assert.ErrorIs(t, err, ErrNoQuiz)
}
