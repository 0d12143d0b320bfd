package services

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/SAP-F-2025/lingua-service/internal/models"
	"github.com/SAP-F-2025/lingua-service/internal/repositories"
	"github.com/stretchr/testify/mock"
)

func testLogger(service string) *ServiceLogger {
	return NewServiceLogger(slog.New(slog.NewTextHandler(io.Discard, nil)), service)
}

// MockContentRepository is a mock implementation of ContentRepository
type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) ListCourses(ctx context.Context) ([]*models.Course, error) {
	args := m.Called(ctx)
	courses, _ := args.Get(0).([]*models.Course)
	return courses, args.Error(1)
}

func (m *MockContentRepository) GetCourse(ctx context.Context, id uint) (*models.Course, error) {
	args := m.Called(ctx, id)
	course, _ := args.Get(0).(*models.Course)
	return course, args.Error(1)
}

func (m *MockContentRepository) CountLessonsByCourse(ctx context.Context) (map[uint]int, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).(map[uint]int)
	return counts, args.Error(1)
}

func (m *MockContentRepository) ListLessonsByCourse(ctx context.Context, courseID uint) ([]*models.Lesson, error) {
	args := m.Called(ctx, courseID)
	lessons, _ := args.Get(0).([]*models.Lesson)
	return lessons, args.Error(1)
}

func (m *MockContentRepository) GetLesson(ctx context.Context, id uint) (*models.Lesson, error) {
	args := m.Called(ctx, id)
	lesson, _ := args.Get(0).(*models.Lesson)
	return lesson, args.Error(1)
}

func (m *MockContentRepository) ListParagraphsByLesson(ctx context.Context, lessonID uint) ([]*models.Paragraph, error) {
	args := m.Called(ctx, lessonID)
	paragraphs, _ := args.Get(0).([]*models.Paragraph)
	return paragraphs, args.Error(1)
}

func (m *MockContentRepository) CountParagraphsByLesson(ctx context.Context, lessonIDs []uint) (map[uint]int, error) {
	args := m.Called(ctx, lessonIDs)
	counts, _ := args.Get(0).(map[uint]int)
	return counts, args.Error(1)
}

func (m *MockContentRepository) GetParagraph(ctx context.Context, id uint) (*models.Paragraph, error) {
	args := m.Called(ctx, id)
	paragraph, _ := args.Get(0).(*models.Paragraph)
	return paragraph, args.Error(1)
}

func (m *MockContentRepository) ListKeywordsByParagraph(ctx context.Context, paragraphID uint) ([]*models.Keyword, error) {
	args := m.Called(ctx, paragraphID)
	keywords, _ := args.Get(0).([]*models.Keyword)
	return keywords, args.Error(1)
}

func (m *MockContentRepository) ListKeywordsByLesson(ctx context.Context, lessonID uint) ([]*models.Keyword, error) {
	args := m.Called(ctx, lessonID)
	keywords, _ := args.Get(0).([]*models.Keyword)
	return keywords, args.Error(1)
}

func (m *MockContentRepository) GetKeywordsByIDs(ctx context.Context, ids []uint) ([]*models.Keyword, error) {
	args := m.Called(ctx, ids)
	keywords, _ := args.Get(0).([]*models.Keyword)
	return keywords, args.Error(1)
}

func (m *MockContentRepository) ListQuizQuestionsByParagraph(ctx context.Context, paragraphID uint) ([]*models.QuizQuestion, error) {
	args := m.Called(ctx, paragraphID)
	questions, _ := args.Get(0).([]*models.QuizQuestion)
	return questions, args.Error(1)
}

func (m *MockContentRepository) ListExercisesByParagraph(ctx context.Context, paragraphID uint) ([]*models.WritingExercise, error) {
	args := m.Called(ctx, paragraphID)
	exercises, _ := args.Get(0).([]*models.WritingExercise)
	return exercises, args.Error(1)
}

func (m *MockContentRepository) GetExercise(ctx context.Context, paragraphID, exerciseID uint) (*models.WritingExercise, error) {
	args := m.Called(ctx, paragraphID, exerciseID)
	exercise, _ := args.Get(0).(*models.WritingExercise)
	return exercise, args.Error(1)
}

func (m *MockContentRepository) SearchParagraphs(ctx context.Context, filters repositories.SearchFilters) ([]*models.Paragraph, error) {
	args := m.Called(ctx, filters)
	paragraphs, _ := args.Get(0).([]*models.Paragraph)
	return paragraphs, args.Error(1)
}

func (m *MockContentRepository) SearchKeywords(ctx context.Context, filters repositories.SearchFilters) ([]*models.Keyword, error) {
	args := m.Called(ctx, filters)
	keywords, _ := args.Get(0).([]*models.Keyword)
	return keywords, args.Error(1)
}

func (m *MockContentRepository) Stats(ctx context.Context) (*repositories.ContentStats, error) {
	args := m.Called(ctx)
	stats, _ := args.Get(0).(*repositories.ContentStats)
	return stats, args.Error(1)
}

func (m *MockContentRepository) GetContactInfo(ctx context.Context) (*models.ContactInfo, error) {
	args := m.Called(ctx)
	info, _ := args.Get(0).(*models.ContactInfo)
	return info, args.Error(1)
}

// MockCacheService is a mock implementation of cache.CacheService
type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheService) Get(ctx context.Context, key string, dest interface{}) error {
	args := m.Called(ctx, key, dest)
	return args.Error(0)
}

func (m *MockCacheService) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheService) DeletePattern(ctx context.Context, pattern string) error {
	args := m.Called(ctx, pattern)
	return args.Error(0)
}
