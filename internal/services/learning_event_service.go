package services

import (
	"context"

	"github.com/SAP-F-2025/lingua-service/internal/events"
	"github.com/SAP-F-2025/lingua-service/internal/grading"
	"github.com/SAP-F-2025/lingua-service/internal/repositories"
)

// LearningEventService announces learner activity. Publishing is best effort:
// failures are logged and never reach the caller.
type LearningEventService interface {
	QuizStarted(ctx context.Context, record *repositories.QuizSessionRecord)
	QuizCompleted(ctx context.Context, record *repositories.QuizSessionRecord)
	WritingChecked(ctx context.Context, paragraphID, exerciseID uint, verdict grading.Verdict)
}

type learningEventService struct {
	publisher events.EventPublisher
	logger    *ServiceLogger
}

func NewLearningEventService(publisher events.EventPublisher, logger *ServiceLogger) LearningEventService {
	return &learningEventService{
		publisher: publisher,
		logger:    logger,
	}
}

func (s *learningEventService) publish(ctx context.Context, event *events.LearningEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.LogEventFailure(ctx, string(event.Type), err)
	}
}

func (s *learningEventService) QuizStarted(ctx context.Context, record *repositories.QuizSessionRecord) {
	session := record.Session
	if session.StartedAt == nil {
		return
	}
	s.publish(ctx, events.NewQuizStartedEvent(session.ID, record.Source, session.Total(), *session.StartedAt))
}

func (s *learningEventService) QuizCompleted(ctx context.Context, record *repositories.QuizSessionRecord) {
	session := record.Session
	result, err := session.FinalResult()
	if err != nil || session.CompletedAt == nil {
		return
	}
	s.publish(ctx, events.NewQuizCompletedEvent(session.ID, record.Source, result, *session.CompletedAt))
}

func (s *learningEventService) WritingChecked(ctx context.Context, paragraphID, exerciseID uint, verdict grading.Verdict) {
	s.publish(ctx, events.NewWritingCheckedEvent(paragraphID, exerciseID, verdict.IsCorrect, verdict.IsClose, verdict.Similarity))
}
