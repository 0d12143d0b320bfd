package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/SAP-F-2025/lingua-service/internal/models"
	"github.com/SAP-F-2025/lingua-service/internal/quiz"
	"github.com/SAP-F-2025/lingua-service/internal/repositories"
	"github.com/SAP-F-2025/lingua-service/internal/validator"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// QuizService runs vocabulary quiz sessions and scores paragraph quizzes.
type QuizService interface {
	// Sessions
	CreateSession(ctx context.Context, req *CreateSessionRequest) (*SessionView, error)
	CreateSessionFromPool(ctx context.Context, source string, pool []models.VocabularyItem) (*SessionView, error)
	GetSession(ctx context.Context, id string) (*SessionView, error)
	StartSession(ctx context.Context, id string) (*SessionView, error)
	SubmitAnswer(ctx context.Context, id string, req *SubmitAnswerRequest) (*AnswerFeedback, error)
	TimeoutQuestion(ctx context.Context, id string) (*AnswerFeedback, error)
	GetResult(ctx context.Context, id string) (*quiz.Result, error)
	Retake(ctx context.Context, id string) (*SessionView, error)

	// Stateless engine access
	Generate(ctx context.Context, req *GenerateRequest) ([]quiz.Question, error)
	Score(ctx context.Context, req *ScoreRequest) (*quiz.Result, error)

	// Static paragraph quiz
	SubmitParagraphQuiz(ctx context.Context, req *ParagraphQuizRequest) (*ParagraphQuizResult, error)
}

type QuizServiceConfig struct {
	SessionTTL time.Duration
	Generator  *quiz.Generator
	// Clock and NewID default to time.Now and uuid.NewString.
	Clock func() time.Time
	NewID func() string
}

type quizService struct {
	content    repositories.ContentRepository
	sessions   repositories.SessionRepository
	events     LearningEventService
	validator  *validator.Validator
	logger     *ServiceLogger
	generator  *quiz.Generator
	sessionTTL time.Duration
	now        func() time.Time
	newID      func() string
}

func NewQuizService(
	content repositories.ContentRepository,
	sessions repositories.SessionRepository,
	events LearningEventService,
	validator *validator.Validator,
	logger *ServiceLogger,
	cfg QuizServiceConfig,
) QuizService {
	s := &quizService{
		content:    content,
		sessions:   sessions,
		events:     events,
		validator:  validator,
		logger:     logger,
		generator:  cfg.Generator,
		sessionTTL: cfg.SessionTTL,
		now:        cfg.Clock,
		newID:      cfg.NewID,
	}
	if s.generator == nil {
		s.generator = quiz.NewGenerator(nil)
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	return s
}

// ===== SESSIONS =====

func (s *quizService) CreateSession(ctx context.Context, req *CreateSessionRequest) (view *SessionView, err error) {
	started := time.Now()
	defer func() { s.logger.LogOperation(ctx, "create_session", "quiz_session", sessionID(view), started, err) }()

	source, pool, err := s.resolvePool(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.createSession(ctx, source, pool)
}

func (s *quizService) CreateSessionFromPool(ctx context.Context, source string, pool []models.VocabularyItem) (view *SessionView, err error) {
	started := time.Now()
	defer func() { s.logger.LogOperation(ctx, "create_session", "quiz_session", sessionID(view), started, err) }()

	return s.createSession(ctx, source, pool)
}

func sessionID(view *SessionView) string {
	if view == nil {
		return ""
	}
	return view.ID
}

func (s *quizService) createSession(ctx context.Context, source string, pool []models.VocabularyItem) (*SessionView, error) {
	questions, err := s.generator.Generate(pool)
	if err != nil {
		return nil, fmt.Errorf("failed to generate quiz: %w", err)
	}

	session, err := quiz.NewSession(s.newID(), questions, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("vocabulary pool of %d items: %w", len(pool), err)
	}

	record := &repositories.QuizSessionRecord{
		Session: session,
		Pool:    pool,
		Source:  source,
	}
	if err := s.sessions.Save(ctx, record, s.sessionTTL); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return newSessionView(record), nil
}

// resolvePool loads the vocabulary pool named by exactly one request field.
func (s *quizService) resolvePool(ctx context.Context, req *CreateSessionRequest) (string, []models.VocabularyItem, error) {
	set := lo.Count([]bool{req.LessonID != nil, req.ParagraphID != nil, len(req.KeywordIDs) > 0}, true)
	if set != 1 {
		return "", nil, ValidationErrors{*NewValidationError("source", "exactly one of lesson_id, paragraph_id or keyword_ids is required", nil)}
	}

	var (
		source   string
		keywords []*models.Keyword
		err      error
	)
	switch {
	case req.LessonID != nil:
		source = "lesson:" + idString(*req.LessonID)
		if _, err := s.content.GetLesson(ctx, *req.LessonID); err != nil {
			return "", nil, notFound(err, ErrLessonNotFound)
		}
		keywords, err = s.content.ListKeywordsByLesson(ctx, *req.LessonID)
	case req.ParagraphID != nil:
		source = "paragraph:" + idString(*req.ParagraphID)
		if _, err := s.content.GetParagraph(ctx, *req.ParagraphID); err != nil {
			return "", nil, notFound(err, ErrParagraphNotFound)
		}
		keywords, err = s.content.ListKeywordsByParagraph(ctx, *req.ParagraphID)
	default:
		source = "keywords"
		ids := lo.Uniq(req.KeywordIDs)
		keywords, err = s.content.GetKeywordsByIDs(ctx, ids)
		if err == nil && len(keywords) != len(ids) {
			found := lo.Map(keywords, func(k *models.Keyword, _ int) uint { return k.ID })
			missing, _ := lo.Difference(ids, found)
			return "", nil, fmt.Errorf("%w: keywords %v", ErrNotFound, missing)
		}
	}
	if err != nil {
		return "", nil, fmt.Errorf("failed to load keywords: %w", err)
	}

	return source, lo.Map(keywords, func(k *models.Keyword, _ int) models.VocabularyItem {
		return k.VocabularyItem()
	}), nil
}

func (s *quizService) load(ctx context.Context, id string) (*repositories.QuizSessionRecord, error) {
	record, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrSessionNotFound)
	}
	return record, nil
}

func (s *quizService) GetSession(ctx context.Context, id string) (*SessionView, error) {
	record, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return newSessionView(record), nil
}

func (s *quizService) StartSession(ctx context.Context, id string) (view *SessionView, err error) {
	started := time.Now()
	defer func() { s.logger.LogOperation(ctx, "start_session", "quiz_session", id, started, err) }()

	record, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	if err := record.Session.Start(now); err != nil {
		return nil, err
	}
	record.QuestionIssuedAt = &now

	if err := s.sessions.Save(ctx, record, s.sessionTTL); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.events.QuizStarted(ctx, record)
	return newSessionView(record), nil
}

func (s *quizService) SubmitAnswer(ctx context.Context, id string, req *SubmitAnswerRequest) (feedback *AnswerFeedback, err error) {
	started := time.Now()
	defer func() { s.logger.LogOperation(ctx, "submit_answer", "quiz_session", id, started, err) }()

	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	sel := quiz.TimedOut()
	if !req.TimedOut {
		sel = quiz.Answered(*req.SelectedIndex)
	}
	return s.submit(ctx, id, sel, req.TimeRemaining)
}

func (s *quizService) TimeoutQuestion(ctx context.Context, id string) (feedback *AnswerFeedback, err error) {
	started := time.Now()
	defer func() { s.logger.LogOperation(ctx, "timeout_question", "quiz_session", id, started, err) }()

	return s.submit(ctx, id, quiz.TimedOut(), nil)
}

// remainingByClock derives the seconds left on the current question from the
// time it was issued. A question past its limit counts as timed out.
func remainingByClock(issuedAt *time.Time, now time.Time) (int, bool) {
	if issuedAt == nil {
		return quiz.QuestionTimeLimit, false
	}
	elapsed := int(now.Sub(*issuedAt) / time.Second)
	if elapsed >= quiz.QuestionTimeLimit {
		return 0, true
	}
	return quiz.QuestionTimeLimit - max(elapsed, 0), false
}

func (s *quizService) submit(ctx context.Context, id string, sel quiz.Selection, timeRemaining *int) (*AnswerFeedback, error) {
	record, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	// The server clock caps whatever time the client reports.
	now := s.now().UTC()
	remaining, expired := remainingByClock(record.QuestionIssuedAt, now)
	if expired {
		sel = quiz.TimedOut()
	} else if timeRemaining != nil {
		remaining = min(*timeRemaining, remaining)
	}

	session := record.Session
	question, err := session.CurrentQuestion()
	if err != nil {
		return nil, err
	}

	answer, err := session.Submit(sel, remaining, now)
	if err != nil {
		return nil, err
	}

	if session.Status == quiz.StatusCompleted {
		record.QuestionIssuedAt = nil
	} else {
		record.QuestionIssuedAt = &now
	}

	if err := s.sessions.Save(ctx, record, s.sessionTTL); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	if session.Status == quiz.StatusCompleted {
		s.events.QuizCompleted(ctx, record)
	}

	return &AnswerFeedback{
		Answer:        answer,
		CorrectIndex:  question.CorrectIndex,
		CorrectAnswer: question.CorrectAnswer(),
		Session:       newSessionView(record),
	}, nil
}

func (s *quizService) GetResult(ctx context.Context, id string) (*quiz.Result, error) {
	record, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	result, err := record.Session.FinalResult()
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Retake starts over with a fresh generation from the same pool. The old
// session is left untouched.
func (s *quizService) Retake(ctx context.Context, id string) (view *SessionView, err error) {
	started := time.Now()
	defer func() { s.logger.LogOperation(ctx, "retake_session", "quiz_session", id, started, err) }()

	record, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.createSession(ctx, record.Source, record.Pool)
}

// ===== STATELESS =====

func (s *quizService) Generate(ctx context.Context, req *GenerateRequest) (questions []quiz.Question, err error) {
	started := time.Now()
	defer func() { s.logger.LogOperation(ctx, "generate_quiz", "vocabulary", "", started, err) }()

	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}
	return s.generator.Generate(req.Items)
}

func (s *quizService) Score(ctx context.Context, req *ScoreRequest) (result *quiz.Result, err error) {
	started := time.Now()
	defer func() { s.logger.LogOperation(ctx, "score_quiz", "answers", "", started, err) }()

	r, err := quiz.Complete(req.Answers)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ===== PARAGRAPH QUIZ =====

// SubmitParagraphQuiz grades answers against the paragraph's static quiz by
// position. Answers beyond the quiz length are ignored; missing answers count
// as wrong.
func (s *quizService) SubmitParagraphQuiz(ctx context.Context, req *ParagraphQuizRequest) (result *ParagraphQuizResult, err error) {
	started := time.Now()
	defer func() {
		s.logger.LogOperation(ctx, "submit_paragraph_quiz", "paragraph", strconv.FormatUint(uint64(req.ParagraphID), 10), started, err)
	}()

	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	if _, err := s.content.GetParagraph(ctx, req.ParagraphID); err != nil {
		return nil, notFound(err, ErrParagraphNotFound)
	}
	questions, err := s.content.ListQuizQuestionsByParagraph(ctx, req.ParagraphID)
	if err != nil {
		return nil, fmt.Errorf("failed to load quiz: %w", err)
	}
	if len(questions) == 0 {
		return nil, ErrParagraphNoQuiz
	}

	result = &ParagraphQuizResult{
		TotalQuestions: len(questions),
		Results:        make([]*QuestionReview, 0, len(questions)),
	}
	for i, answer := range req.Answers {
		if i >= len(questions) {
			break
		}
		q := questions[i]
		review := &QuestionReview{
			QuestionID:    q.ID,
			Question:      q.Question,
			QuestionAr:    q.QuestionAr,
			UserAnswer:    answer,
			CorrectAnswer: q.CorrectAnswer,
			IsCorrect:     answer == q.CorrectAnswer,
			Explanation:   q.Explanation,
			ExplanationAr: q.ExplanationAr,
		}
		if review.IsCorrect {
			result.CorrectAnswers++
		}
		result.Results = append(result.Results, review)
	}

	result.Score = quiz.Percentage(result.CorrectAnswers, result.TotalQuestions)
	result.Grade = quiz.GradeFor(result.Score)
	result.Passed = result.Score >= quiz.PassingPercentage
	return result, nil
}
