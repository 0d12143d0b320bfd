package validator

import (
	"testing"

	"github.com/SAP-F-2025/lingua-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

type answerPayload struct {
	SelectedIndex *int `json:"selected_index"`
	TimedOut      bool `json:"timed_out" validate:"answer_selection"`
}

func TestValidate_NotBlankUsesJSONNames(t *testing.T) {
	v := New()

	err := v.Validate(models.VocabularyItem{ID: "1", Primary: "   ", Translation: "cat"})
	require.Error(t, err)

	errs, ok := err.(ValidationErrors)
	require.True(t, ok)
	require.Len(t, errs, 1)
	assert.Equal(t, "primary", errs[0].Field)
	assert.Equal(t, "not_blank", errs[0].Rule)
	assert.Equal(t, "must not be blank", errs[0].Message)

	assert.NoError(t, v.Validate(models.VocabularyItem{ID: "1", Primary: "cat", Translation: "قطة"}))
}

func TestValidate_AnswerSelection(t *testing.T) {
	v := New()
	idx := 2

	assert.NoError(t, v.Validate(answerPayload{SelectedIndex: &idx}))
	assert.NoError(t, v.Validate(answerPayload{TimedOut: true}))
	assert.Error(t, v.Validate(answerPayload{}))
	assert.Error(t, v.Validate(answerPayload{SelectedIndex: &idx, TimedOut: true}))
}

func validBundle() *ContentBundle {
	return &ContentBundle{
		Courses:    []models.Course{{ID: 1, Title: "English Basics"}},
		Lessons:    []models.Lesson{{ID: 10, CourseID: 1, Title: "Greetings"}},
		Paragraphs: []models.Paragraph{{ID: 100, LessonID: 10, Title: "Hello"}},
		Keywords:   []models.Keyword{{ID: 1000, ParagraphID: 100, Word: "hello", Translation: "مرحبا"}},
		Quizzes: []models.QuizQuestion{{
			ID: 1, ParagraphID: 100, Question: "Pick the greeting",
			Options: datatypes.NewJSONType([]string{"hello", "table"}), CorrectAnswer: 0,
		}},
		Exercises: []models.WritingExercise{{ID: 1, ParagraphID: 100, CorrectAnswer: "Hello"}},
	}
}

func TestContentValidator_ValidBundle(t *testing.T) {
	assert.NoError(t, NewContentValidator().ValidateBundle(validBundle()))
}

func TestContentValidator_Violations(t *testing.T) {
	cases := map[string]func(b *ContentBundle){
		"duplicate course": func(b *ContentBundle) {
			b.Courses = append(b.Courses, b.Courses[0])
		},
		"unknown course level": func(b *ContentBundle) {
			b.Courses[0].Level = "expert"
		},
		"orphan lesson": func(b *ContentBundle) {
			b.Lessons[0].CourseID = 99
		},
		"orphan paragraph": func(b *ContentBundle) {
			b.Paragraphs[0].LessonID = 99
		},
		"blank keyword": func(b *ContentBundle) {
			b.Keywords[0].Translation = " "
		},
		"answer index out of range": func(b *ContentBundle) {
			b.Quizzes[0].CorrectAnswer = 2
		},
		"duplicate options": func(b *ContentBundle) {
			b.Quizzes[0].Options = datatypes.NewJSONType([]string{"hello", "hello"})
		},
		"exercise without answer": func(b *ContentBundle) {
			b.Exercises[0].CorrectAnswer = ""
		},
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			b := validBundle()
			mutate(b)
			assert.Error(t, NewContentValidator().ValidateBundle(b))
		})
	}
}
