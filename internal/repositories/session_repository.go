package repositories

import (
	"context"
	"time"

	"github.com/SAP-F-2025/lingua-service/internal/models"
	"github.com/SAP-F-2025/lingua-service/internal/quiz"
)

// QuizSessionRecord is a persisted quiz session together with what is needed
// to retake it and to time the current question.
type QuizSessionRecord struct {
	Session          *quiz.Session           `json:"session"`
	Pool             []models.VocabularyItem `json:"pool"`
	Source           string                  `json:"source"`
	QuestionIssuedAt *time.Time              `json:"question_issued_at,omitempty"`
	// Version increments on every successful save.
	Version int64 `json:"version"`
}

func (r *QuizSessionRecord) ID() string {
	return r.Session.ID
}

// SessionRepository stores quiz session records with a time to live. Save
// fails with ErrVersionConflict when the stored version differs from the
// record's version, and bumps the version on success.
type SessionRepository interface {
	Save(ctx context.Context, record *QuizSessionRecord, ttl time.Duration) error
	Get(ctx context.Context, id string) (*QuizSessionRecord, error)
	Delete(ctx context.Context, id string) error
}
