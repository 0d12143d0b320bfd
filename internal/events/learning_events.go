package events

import (
	"time"

	"github.com/SAP-F-2025/lingua-service/internal/quiz"
	"github.com/google/uuid"
)

const (
	eventSource  = "lingua-service"
	eventVersion = "1.0"
)

// EventType represents different types of learning events
type EventType string

const (
	EventQuizStarted    EventType = "quiz.started"
	EventQuizCompleted  EventType = "quiz.completed"
	EventWritingChecked EventType = "writing.checked"
)

// LearningEvent is the envelope for all learning events
type LearningEvent struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Source    string      `json:"source"`
	Version   string      `json:"version"`
	Data      interface{} `json:"data"`
}

type QuizStartedEvent struct {
	SessionID      string    `json:"session_id"`
	Source         string    `json:"source"`
	TotalQuestions int       `json:"total_questions"`
	StartedAt      time.Time `json:"started_at"`
}

// QuizCompletedEvent carries the final result for progress tracking.
type QuizCompletedEvent struct {
	SessionID   string      `json:"session_id"`
	Source      string      `json:"source"`
	Result      quiz.Result `json:"result"`
	CompletedAt time.Time   `json:"completed_at"`
}

type WritingCheckedEvent struct {
	ParagraphID uint    `json:"paragraph_id,omitempty"`
	ExerciseID  uint    `json:"exercise_id,omitempty"`
	IsCorrect   bool    `json:"is_correct"`
	IsClose     bool    `json:"is_close"`
	Similarity  float64 `json:"similarity"`
}

func newEvent(eventType EventType, data interface{}) *LearningEvent {
	return &LearningEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Source:    eventSource,
		Version:   eventVersion,
		Data:      data,
	}
}

func NewQuizStartedEvent(sessionID, source string, total int, startedAt time.Time) *LearningEvent {
	return newEvent(EventQuizStarted, QuizStartedEvent{
		SessionID:      sessionID,
		Source:         source,
		TotalQuestions: total,
		StartedAt:      startedAt,
	})
}

func NewQuizCompletedEvent(sessionID, source string, result quiz.Result, completedAt time.Time) *LearningEvent {
	return newEvent(EventQuizCompleted, QuizCompletedEvent{
		SessionID:   sessionID,
		Source:      source,
		Result:      result,
		CompletedAt: completedAt,
	})
}

func NewWritingCheckedEvent(paragraphID, exerciseID uint, isCorrect, isClose bool, similarity float64) *LearningEvent {
	return newEvent(EventWritingChecked, WritingCheckedEvent{
		ParagraphID: paragraphID,
		ExerciseID:  exerciseID,
		IsCorrect:   isCorrect,
		IsClose:     isClose,
		Similarity:  similarity,
	})
}
