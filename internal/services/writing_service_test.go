package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SAP-F-2025/lingua-service/internal/events"
	"github.com/SAP-F-2025/lingua-service/internal/grading"
	"github.com/SAP-F-2025/lingua-service/internal/models"
	"github.com/SAP-F-2025/lingua-service/internal/repositories"
	"github.com/SAP-F-2025/lingua-service/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWritingServiceWithMocks() (WritingService, *MockContentRepository, *events.MockEventPublisher) {
	repo := new(MockContentRepository)
	publisher := events.NewMockEventPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)))
	learningEvents := NewLearningEventService(publisher, testLogger("events"))
	return NewWritingService(repo, learningEvents, validator.New(), testLogger("writing")), repo, publisher
}

func strPtr(s string) *string { return &s }

func TestWritingService_CheckExercise(t *testing.T) {
	exercise := &models.WritingExercise{
		ID: 2, ParagraphID: 2,
		CorrectAnswer: "Thank you for your help",
		Hint:          "Thank you for ...",
		HintAr:        "ابدأ بـ Thank you",
	}

	tests := []struct {
		name      string
		answer    string
		feedback  grading.Feedback
		wantHints bool
	}{
		{"exact after normalization", "  THANK YOU FOR YOUR HELP ", grading.FeedbackCorrect, false},
		{"one typo is close", "Thank you for your hlp", grading.FeedbackClose, true},
		{"unrelated answer", "Good night", grading.FeedbackIncorrect, true},
		{"empty answer", "", grading.FeedbackIncorrect, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, repo, publisher := newWritingServiceWithMocks()
			ctx := context.Background()
			repo.On("GetExercise", ctx, uint(2), uint(2)).Return(exercise, nil)

			result, err := s.CheckExercise(ctx, &CheckExerciseRequest{ParagraphID: 2, ExerciseID: 2, Answer: strPtr(tt.answer)})
			require.NoError(t, err)
			assert.Equal(t, tt.feedback, result.Feedback)
			assert.Equal(t, tt.answer, result.UserAnswer)
			assert.Equal(t, exercise.CorrectAnswer, result.CorrectAnswer)
			assert.NotEmpty(t, result.Message)
			assert.NotEmpty(t, result.MessageAr)

			if tt.wantHints {
				require.NotNil(t, result.Hint)
				require.NotNil(t, result.HintAr)
				assert.Equal(t, exercise.Hint, *result.Hint)
			} else {
				assert.Nil(t, result.Hint)
				assert.Nil(t, result.HintAr)
			}

			published := publisher.GetPublishedEvents()
			require.Len(t, published, 1)
			assert.Equal(t, events.EventWritingChecked, published[0].Type)
		})
	}
}

func TestWritingService_CheckExercise_Errors(t *testing.T) {
	s, repo, publisher := newWritingServiceWithMocks()
	ctx := context.Background()
	repo.On("GetExercise", ctx, uint(1), uint(9)).Return(nil, repositories.ErrNotFound)

	_, err := s.CheckExercise(ctx, &CheckExerciseRequest{ParagraphID: 1, ExerciseID: 9, Answer: strPtr("x")})
	assert.ErrorIs(t, err, ErrExerciseNotFound)

	_, err = s.CheckExercise(ctx, &CheckExerciseRequest{ParagraphID: 1, ExerciseID: 9})
	var validationErrors ValidationErrors
	require.ErrorAs(t, err, &validationErrors)
	assert.Equal(t, "answer", validationErrors[0].Field)

	assert.Empty(t, publisher.GetPublishedEvents())
}

func TestWritingService_CheckAnswer(t *testing.T) {
	s, _, _ := newWritingServiceWithMocks()
	ctx := context.Background()

	result, err := s.CheckAnswer(ctx, &CheckAnswerRequest{Answer: "Mothr", CorrectAnswer: "Mother", Hint: "family"})
	require.NoError(t, err)
	assert.True(t, result.IsClose)
	assert.False(t, result.IsCorrect)
	require.NotNil(t, result.Hint)
	assert.Equal(t, "family", *result.Hint)

	_, err = s.CheckAnswer(ctx, &CheckAnswerRequest{Answer: "x", CorrectAnswer: " "})
	assert.True(t, IsValidation(err))
}

type failingPublisher struct{}

func (failingPublisher) Publish(context.Context, *events.LearningEvent) error {
	return errors.New("broker unavailable")
}

func (failingPublisher) Close() error { return nil }

func TestLearningEventService_FailuresDoNotReachCaller(t *testing.T) {
	repo := new(MockContentRepository)
	learningEvents := NewLearningEventService(failingPublisher{}, testLogger("events"))
	s := NewWritingService(repo, learningEvents, validator.New(), testLogger("writing"))

	ctx := context.Background()
	repo.On("GetExercise", ctx, uint(1), uint(1)).Return(&models.WritingExercise{ID: 1, CorrectAnswer: "Hello"}, nil)

	result, err := s.CheckExercise(ctx, &CheckExerciseRequest{ParagraphID: 1, ExerciseID: 1, Answer: strPtr("hello")})
	require.NoError(t, err)
	assert.True(t, result.IsCorrect)
}
