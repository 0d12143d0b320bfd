package services

import (
	"time"

	"github.com/SAP-F-2025/lingua-service/internal/models"
	"github.com/SAP-F-2025/lingua-service/internal/quiz"
	"github.com/SAP-F-2025/lingua-service/internal/repositories"
)

// CreateSessionRequest selects the vocabulary pool. Exactly one source must
// be set.
type CreateSessionRequest struct {
	LessonID    *uint  `json:"lesson_id"`
	ParagraphID *uint  `json:"paragraph_id"`
	KeywordIDs  []uint `json:"keyword_ids"`
}

// SubmitAnswerRequest carries either a selected option or a timeout. When
// TimeRemaining is omitted the server clock decides.
type SubmitAnswerRequest struct {
	SelectedIndex *int `json:"selected_index"`
	TimedOut      bool `json:"timed_out" validate:"answer_selection"`
	TimeRemaining *int `json:"time_remaining" validate:"omitempty,min=0,max=30"`
}

type GenerateRequest struct {
	Items []models.VocabularyItem `json:"items" validate:"required,dive"`
}

type ScoreRequest struct {
	Answers []quiz.AnswerRecord `json:"answers"`
}

type ParagraphQuizRequest struct {
	ParagraphID uint  `json:"paragraph_id" validate:"required"`
	Answers     []int `json:"answers" validate:"required"`
}

// QuestionView is a question as shown to a learner, without the answer key.
type QuestionView struct {
	ID        string         `json:"id"`
	Number    int            `json:"number"`
	Direction quiz.Direction `json:"direction"`
	Prompt    string         `json:"prompt"`
	Options   []string       `json:"options"`
	Example   string         `json:"example,omitempty"`
}

type SessionView struct {
	ID              string        `json:"id"`
	Status          quiz.Status   `json:"status"`
	Source          string        `json:"source"`
	TotalQuestions  int           `json:"total_questions"`
	AnsweredCount   int           `json:"answered_count"`
	TimeLimit       int           `json:"time_limit"`
	CurrentQuestion *QuestionView `json:"current_question,omitempty"`
	Result          *quiz.Result  `json:"result,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	StartedAt       *time.Time    `json:"started_at,omitempty"`
	CompletedAt     *time.Time    `json:"completed_at,omitempty"`
}

// AnswerFeedback reveals the key for the question just answered.
type AnswerFeedback struct {
	Answer        quiz.AnswerRecord `json:"answer"`
	CorrectIndex  int               `json:"correct_index"`
	CorrectAnswer string            `json:"correct_answer"`
	Session       *SessionView      `json:"session"`
}

type QuestionReview struct {
	QuestionID    uint   `json:"question_id"`
	Question      string `json:"question"`
	QuestionAr    string `json:"question_ar"`
	UserAnswer    int    `json:"user_answer"`
	CorrectAnswer int    `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
	Explanation   string `json:"explanation"`
	ExplanationAr string `json:"explanation_ar"`
}

type ParagraphQuizResult struct {
	Score          int               `json:"score"`
	Grade          quiz.Grade        `json:"grade"`
	CorrectAnswers int               `json:"correct_answers"`
	TotalQuestions int               `json:"total_questions"`
	Passed         bool              `json:"passed"`
	Results        []*QuestionReview `json:"results"`
}

func newSessionView(record *repositories.QuizSessionRecord) *SessionView {
	s := record.Session
	view := &SessionView{
		ID:             s.ID,
		Status:         s.Status,
		Source:         record.Source,
		TotalQuestions: s.Total(),
		AnsweredCount:  len(s.Answers),
		TimeLimit:      quiz.QuestionTimeLimit,
		Result:         s.Result,
		CreatedAt:      s.CreatedAt,
		StartedAt:      s.StartedAt,
		CompletedAt:    s.CompletedAt,
	}
	if q, err := s.CurrentQuestion(); err == nil {
		view.CurrentQuestion = &QuestionView{
			ID:        q.ID,
			Number:    s.Current + 1,
			Direction: q.Direction,
			Prompt:    q.Prompt,
			Options:   q.Options,
			Example:   q.Example,
		}
	}
	return view
}
