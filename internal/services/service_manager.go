package services

import (
	"log/slog"
	"time"

	"github.com/SAP-F-2025/lingua-service/internal/cache"
	"github.com/SAP-F-2025/lingua-service/internal/events"
	"github.com/SAP-F-2025/lingua-service/internal/quiz"
	"github.com/SAP-F-2025/lingua-service/internal/repositories"
	"github.com/SAP-F-2025/lingua-service/internal/validator"
)

// ServiceManager gives handlers access to every service.
type ServiceManager interface {
	Content() ContentService
	Writing() WritingService
	Quiz() QuizService
	ImportExport() ImportExportService
}

type Dependencies struct {
	Content   repositories.ContentRepository
	Sessions  repositories.SessionRepository
	Cache     cache.CacheService
	Publisher events.EventPublisher
	Validator *validator.Validator
	Logger    *slog.Logger

	CacheTTL   time.Duration
	SessionTTL time.Duration
	// Generator is optional; nil uses the global random source.
	Generator *quiz.Generator
}

type serviceManager struct {
	content      ContentService
	writing      WritingService
	quiz         QuizService
	importExport ImportExportService
}

func NewServiceManager(deps Dependencies) ServiceManager {
	cacheService := deps.Cache
	if cacheService == nil {
		cacheService = cache.NewNoopCache()
	}
	publisher := deps.Publisher
	if publisher == nil {
		publisher = events.NewMockEventPublisher(deps.Logger)
	}
	v := deps.Validator
	if v == nil {
		v = validator.New()
	}

	learningEvents := NewLearningEventService(publisher, NewServiceLogger(deps.Logger, "events"))
	quizService := NewQuizService(deps.Content, deps.Sessions, learningEvents, v,
		NewServiceLogger(deps.Logger, "quiz"),
		QuizServiceConfig{SessionTTL: deps.SessionTTL, Generator: deps.Generator},
	)

	return &serviceManager{
		content:      NewContentService(deps.Content, cacheService, deps.CacheTTL, NewServiceLogger(deps.Logger, "content")),
		writing:      NewWritingService(deps.Content, learningEvents, v, NewServiceLogger(deps.Logger, "writing")),
		quiz:         quizService,
		importExport: NewImportExportService(quizService, deps.Sessions, v, NewServiceLogger(deps.Logger, "import_export")),
	}
}

func (m *serviceManager) Content() ContentService           { return m.content }
func (m *serviceManager) Writing() WritingService           { return m.writing }
func (m *serviceManager) Quiz() QuizService                 { return m.quiz }
func (m *serviceManager) ImportExport() ImportExportService { return m.importExport }
