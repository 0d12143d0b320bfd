package services

import (
	"context"
	"strconv"
	"time"

	"github.com/SAP-F-2025/lingua-service/internal/grading"
	"github.com/SAP-F-2025/lingua-service/internal/repositories"
	"github.com/SAP-F-2025/lingua-service/internal/validator"
)

var feedbackMessages = map[grading.Feedback][2]string{
	grading.FeedbackCorrect:   {"Correct answer! Excellent!", "إجابة صحيحة! ممتاز!"},
	grading.FeedbackClose:     {"Very close! Check your spelling.", "قريب جداً! تحقق من التهجئة."},
	grading.FeedbackIncorrect: {"Incorrect answer. Try again.", "إجابة خاطئة. حاول مرة أخرى."},
}

type CheckExerciseRequest struct {
	ParagraphID uint    `json:"paragraph_id" validate:"required"`
	ExerciseID  uint    `json:"exercise_id" validate:"required"`
	Answer      *string `json:"answer" validate:"required"`
}

type CheckAnswerRequest struct {
	Answer        string `json:"answer"`
	CorrectAnswer string `json:"correct_answer" validate:"required,not_blank"`
	Hint          string `json:"hint"`
	HintAr        string `json:"hint_ar"`
}

// WritingCheckResult reports the learner's answer as typed next to the
// reference answer. Hints are only set when the answer is not correct.
type WritingCheckResult struct {
	UserAnswer    string           `json:"user_answer"`
	CorrectAnswer string           `json:"correct_answer"`
	IsCorrect     bool             `json:"is_correct"`
	IsClose       bool             `json:"is_close"`
	Similarity    float64          `json:"similarity"`
	Feedback      grading.Feedback `json:"feedback"`
	Message       string           `json:"message"`
	MessageAr     string           `json:"message_ar"`
	Hint          *string          `json:"hint"`
	HintAr        *string          `json:"hint_ar"`
}

type WritingService interface {
	CheckExercise(ctx context.Context, req *CheckExerciseRequest) (*WritingCheckResult, error)
	CheckAnswer(ctx context.Context, req *CheckAnswerRequest) (*WritingCheckResult, error)
}

type writingService struct {
	content   repositories.ContentRepository
	events    LearningEventService
	validator *validator.Validator
	logger    *ServiceLogger
}

func NewWritingService(content repositories.ContentRepository, events LearningEventService, validator *validator.Validator, logger *ServiceLogger) WritingService {
	return &writingService{
		content:   content,
		events:    events,
		validator: validator,
		logger:    logger,
	}
}

func (s *writingService) CheckExercise(ctx context.Context, req *CheckExerciseRequest) (result *WritingCheckResult, err error) {
	started := time.Now()
	defer func() {
		s.logger.LogOperation(ctx, "check_exercise", "exercise", strconv.FormatUint(uint64(req.ExerciseID), 10), started, err)
	}()

	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	exercise, err := s.content.GetExercise(ctx, req.ParagraphID, req.ExerciseID)
	if err != nil {
		return nil, notFound(err, ErrExerciseNotFound)
	}

	verdict := grading.Score(*req.Answer, exercise.CorrectAnswer)
	s.events.WritingChecked(ctx, req.ParagraphID, req.ExerciseID, verdict)

	return buildCheckResult(*req.Answer, exercise.CorrectAnswer, verdict, exercise.Hint, exercise.HintAr), nil
}

func (s *writingService) CheckAnswer(ctx context.Context, req *CheckAnswerRequest) (result *WritingCheckResult, err error) {
	started := time.Now()
	defer func() {
		s.logger.LogOperation(ctx, "check_answer", "answer", "", started, err)
	}()

	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	verdict := grading.Score(req.Answer, req.CorrectAnswer)
	s.events.WritingChecked(ctx, 0, 0, verdict)

	return buildCheckResult(req.Answer, req.CorrectAnswer, verdict, req.Hint, req.HintAr), nil
}

func buildCheckResult(userAnswer, correctAnswer string, verdict grading.Verdict, hint, hintAr string) *WritingCheckResult {
	messages := feedbackMessages[verdict.Feedback]
	result := &WritingCheckResult{
		UserAnswer:    userAnswer,
		CorrectAnswer: correctAnswer,
		IsCorrect:     verdict.IsCorrect,
		IsClose:       verdict.IsClose,
		Similarity:    verdict.Similarity,
		Feedback:      verdict.Feedback,
		Message:       messages[0],
		MessageAr:     messages[1],
	}
	if !verdict.IsCorrect {
		result.Hint = &hint
		result.HintAr = &hintAr
	}
	return result
}
