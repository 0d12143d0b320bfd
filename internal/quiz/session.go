package quiz

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Session walks a learner through a question list one question at a time.
// Fields are exported so a session can be persisted between requests; use the
// methods to move it between states.
type Session struct {
	ID          string         `json:"id"`
	Status      Status         `json:"status"`
	Questions   []Question     `json:"questions"`
	Answers     []AnswerRecord `json:"answers"`
	Current     int            `json:"current"`
	Result      *Result        `json:"result,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	StartedAt   *time.Time     `json:"started_at,omitempty"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
}

func NewSession(id string, questions []Question, now time.Time) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return &Session{
		ID:        id,
		Status:    StatusNotStarted,
		Questions: questions,
		Answers:   make([]AnswerRecord, 0, len(questions)),
		CreatedAt: now,
	}, nil
}

func (s *Session) Start(now time.Time) error {
	if s.Status != StatusNotStarted {
		return ErrSessionAlreadyStarted
	}
	s.Status = StatusInProgress
	s.StartedAt = &now
	return nil
}

func (s *Session) Total() int {
	return len(s.Questions)
}

// CurrentQuestion returns the question awaiting an answer.
func (s *Session) CurrentQuestion() (Question, error) {
	if err := s.requireInProgress(); err != nil {
		return Question{}, err
	}
	return s.Questions[s.Current], nil
}

// Submit records the response to the current question and advances. Answering the
// last question completes the session and computes its Result.
func (s *Session) Submit(sel Selection, timeRemaining int, now time.Time) (AnswerRecord, error) {
	q, err := s.CurrentQuestion()
	if err != nil {
		return AnswerRecord{}, err
	}

	record, err := SubmitAnswer(q, sel, timeRemaining)
	if err != nil {
		return AnswerRecord{}, err
	}

	if s.Current+1 == s.Total() {
		answers := append(cloneAnswers(s.Answers), record)
		result, err := Complete(answers)
		if err != nil {
			return AnswerRecord{}, fmt.Errorf("complete session %s: %w", s.ID, err)
		}
		s.Answers = answers
		s.Result = &result
		s.Status = StatusCompleted
		s.CompletedAt = &now
	} else {
		s.Answers = append(s.Answers, record)
	}
	s.Current++

	return record, nil
}

// FinalResult returns a copy of the result of a completed session.
func (s *Session) FinalResult() (Result, error) {
	if s.Status != StatusCompleted || s.Result == nil {
		return Result{}, ErrSessionNotCompleted
	}
	r := *s.Result
	r.Answers = cloneAnswers(r.Answers)
	return r, nil
}

func (s *Session) requireInProgress() error {
	switch s.Status {
	case StatusNotStarted:
		return ErrSessionNotStarted
	case StatusCompleted:
		return ErrSessionCompleted
	}
	return nil
}
