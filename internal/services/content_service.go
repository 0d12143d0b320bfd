package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SAP-F-2025/lingua-service/internal/cache"
	"github.com/SAP-F-2025/lingua-service/internal/models"
	"github.com/SAP-F-2025/lingua-service/internal/repositories"
	"github.com/samber/lo"
)

const excerptLength = 200

// ContentService serves the course catalogue and lesson material.
type ContentService interface {
	ListCourses(ctx context.Context) ([]*models.Course, error)
	GetCourse(ctx context.Context, id uint) (*models.Course, error)
	GetCourseLessons(ctx context.Context, courseID uint) ([]*LessonSummary, error)
	GetLesson(ctx context.Context, id uint) (*LessonDetail, error)
	GetParagraph(ctx context.Context, id uint) (*ParagraphDetail, error)
	Search(ctx context.Context, query string) (*SearchResults, error)
	GetStats(ctx context.Context) (*StatsResponse, error)
	GetContactInfo(ctx context.Context) (*models.ContactInfo, error)
}

type contentService struct {
	repo     repositories.ContentRepository
	cache    cache.CacheService
	cacheTTL time.Duration
	logger   *ServiceLogger
	now      func() time.Time
}

func NewContentService(repo repositories.ContentRepository, cacheService cache.CacheService, cacheTTL time.Duration, logger *ServiceLogger) ContentService {
	return &contentService{
		repo:     repo,
		cache:    cacheService,
		cacheTTL: cacheTTL,
		logger:   logger,
		now:      time.Now,
	}
}

// cached serves key from the cache, or computes and stores it. Cache
// failures only cost a recomputation.
func cached[T any](ctx context.Context, s *contentService, key string, load func() (T, error)) (T, error) {
	var value T
	if err := s.cache.Get(ctx, key, &value); err == nil {
		return value, nil
	}

	value, err := load()
	if err != nil {
		return value, err
	}
	if err := s.cache.Set(ctx, key, value, s.cacheTTL); err != nil {
		s.logger.logger.WarnContext(ctx, "Failed to cache content", "key", key, "error", err)
	}
	return value, nil
}

func idString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func (s *contentService) ListCourses(ctx context.Context) (courses []*models.Course, err error) {
	started := time.Now()
	defer func() { s.logger.LogOperation(ctx, "list_courses", "course", "", started, err) }()

	return cached(ctx, s, "courses", func() ([]*models.Course, error) {
		courses, err := s.repo.ListCourses(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list courses: %w", err)
		}
		counts, err := s.repo.CountLessonsByCourse(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count lessons: %w", err)
		}
		for _, c := range courses {
			c.LessonsCount = counts[c.ID]
		}
		return courses, nil
	})
}

func (s *contentService) GetCourse(ctx context.Context, id uint) (course *models.Course, err error) {
	started := time.Now()
	defer func() { s.logger.LogOperation(ctx, "get_course", "course", idString(id), started, err) }()

	course, err = s.repo.GetCourse(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrCourseNotFound)
	}
	return course, nil
}

func (s *contentService) GetCourseLessons(ctx context.Context, courseID uint) (lessons []*LessonSummary, err error) {
	started := time.Now()
	defer func() { s.logger.LogOperation(ctx, "get_course_lessons", "course", idString(courseID), started, err) }()

	if _, err := s.repo.GetCourse(ctx, courseID); err != nil {
		return nil, notFound(err, ErrCourseNotFound)
	}

	rows, err := s.repo.ListLessonsByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lessons: %w", err)
	}
	counts, err := s.repo.CountParagraphsByLesson(ctx, lo.Map(rows, func(l *models.Lesson, _ int) uint { return l.ID }))
	if err != nil {
		return nil, fmt.Errorf("failed to count paragraphs: %w", err)
	}

	return lo.Map(rows, func(l *models.Lesson, _ int) *LessonSummary {
		return &LessonSummary{Lesson: *l, ParagraphsCount: counts[l.ID]}
	}), nil
}

func (s *contentService) GetLesson(ctx context.Context, id uint) (detail *LessonDetail, err error) {
	started := time.Now()
	defer func() { s.logger.LogOperation(ctx, "get_lesson", "lesson", idString(id), started, err) }()

	return cached(ctx, s, "lesson:"+idString(id), func() (*LessonDetail, error) {
		lesson, err := s.repo.GetLesson(ctx, id)
		if err != nil {
			return nil, notFound(err, ErrLessonNotFound)
		}

		paragraphs, err := s.repo.ListParagraphsByLesson(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to list paragraphs: %w", err)
		}

		detail := &LessonDetail{
			Lesson:     *lesson,
			Paragraphs: make([]*ParagraphContent, 0, len(paragraphs)),
		}
		for _, p := range paragraphs {
			content, err := s.paragraphContent(ctx, p)
			if err != nil {
				return nil, err
			}
			detail.Paragraphs = append(detail.Paragraphs, content)
		}

		detail.CourseInfo, err = s.courseInfo(ctx, lesson.CourseID)
		if err != nil {
			return nil, err
		}
		return detail, nil
	})
}

func (s *contentService) GetParagraph(ctx context.Context, id uint) (detail *ParagraphDetail, err error) {
	started := time.Now()
	defer func() { s.logger.LogOperation(ctx, "get_paragraph", "paragraph", idString(id), started, err) }()

	paragraph, err := s.repo.GetParagraph(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrParagraphNotFound)
	}

	content, err := s.paragraphContent(ctx, paragraph)
	if err != nil {
		return nil, err
	}
	detail = &ParagraphDetail{ParagraphContent: *content}

	lesson, err := s.repo.GetLesson(ctx, paragraph.LessonID)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return detail, nil
	case err != nil:
		return nil, fmt.Errorf("failed to load lesson: %w", err)
	}
	detail.LessonInfo = &LessonInfo{ID: lesson.ID, Title: lesson.Title, Order: lesson.Order}

	detail.CourseInfo, err = s.courseInfo(ctx, lesson.CourseID)
	if err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *contentService) paragraphContent(ctx context.Context, p *models.Paragraph) (*ParagraphContent, error) {
	quizzes, err := s.repo.ListQuizQuestionsByParagraph(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quiz questions: %w", err)
	}
	exercises, err := s.repo.ListExercisesByParagraph(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	keywords, err := s.repo.ListKeywordsByParagraph(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list keywords: %w", err)
	}
	return &ParagraphContent{
		Paragraph:        *p,
		Quiz:             quizzes,
		WritingExercises: exercises,
		Keywords:         keywords,
	}, nil
}

// courseInfo returns nil for a missing course.
func (s *contentService) courseInfo(ctx context.Context, courseID uint) (*CourseInfo, error) {
	course, err := s.repo.GetCourse(ctx, courseID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load course: %w", err)
	}
	return &CourseInfo{ID: course.ID, Title: course.Title, Level: course.Level}, nil
}

func excerpt(s string) string {
	runes := []rune(s)
	if len(runes) <= excerptLength {
		return s
	}
	return string(runes[:excerptLength]) + "..."
}

// location resolves the lesson and course a paragraph belongs to.
type location struct {
	lesson *models.Lesson
	course *models.Course
}

func (s *contentService) locate(ctx context.Context, memo map[uint]location, lessonID uint) (location, error) {
	if loc, ok := memo[lessonID]; ok {
		return loc, nil
	}
	var loc location
	lesson, err := s.repo.GetLesson(ctx, lessonID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return loc, err
	}
	loc.lesson = lesson
	if lesson != nil {
		course, err := s.repo.GetCourse(ctx, lesson.CourseID)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return loc, err
		}
		loc.course = course
	}
	memo[lessonID] = loc
	return loc, nil
}

func (loc location) apply(r *SearchResult) {
	if loc.lesson != nil {
		r.LessonID = loc.lesson.ID
		r.LessonTitle = loc.lesson.Title
	}
	if loc.course != nil {
		r.CourseID = loc.course.ID
		r.CourseTitle = loc.course.Title
	}
}

func (s *contentService) Search(ctx context.Context, query string) (results *SearchResults, err error) {
	started := time.Now()
	defer func() { s.logger.LogOperation(ctx, "search", "content", query, started, err) }()

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptySearchQuery
	}
	filters := repositories.SearchFilters{Query: query}

	paragraphs, err := s.repo.SearchParagraphs(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to search paragraphs: %w", err)
	}
	keywords, err := s.repo.SearchKeywords(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to search keywords: %w", err)
	}

	memo := make(map[uint]location)
	results = &SearchResults{Query: query, Results: make([]*SearchResult, 0, len(paragraphs)+len(keywords))}

	for _, p := range paragraphs {
		loc, err := s.locate(ctx, memo, p.LessonID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve paragraph location: %w", err)
		}
		r := &SearchResult{
			Type:        SearchResultParagraph,
			ID:          p.ID,
			Title:       p.Title,
			Content:     excerpt(p.Content),
			Translation: excerpt(p.Translation),
			ParagraphID: p.ID,
		}
		loc.apply(r)
		results.Results = append(results.Results, r)
	}

	for _, k := range keywords {
		r := &SearchResult{
			Type:          SearchResultKeyword,
			ID:            k.ID,
			Word:          k.Word,
			Translation:   k.Translation,
			Pronunciation: k.Pronunciation,
			Example:       k.Example,
			ParagraphID:   k.ParagraphID,
		}
		paragraph, err := s.repo.GetParagraph(ctx, k.ParagraphID)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("failed to resolve keyword paragraph: %w", err)
		}
		if paragraph != nil {
			loc, err := s.locate(ctx, memo, paragraph.LessonID)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve keyword location: %w", err)
			}
			loc.apply(r)
		}
		results.Results = append(results.Results, r)
	}

	results.Total = len(results.Results)
	return results, nil
}

func (s *contentService) GetStats(ctx context.Context) (stats *StatsResponse, err error) {
	started := time.Now()
	defer func() { s.logger.LogOperation(ctx, "get_stats", "stats", "", started, err) }()

	return cached(ctx, s, "stats", func() (*StatsResponse, error) {
		counts, err := s.repo.Stats(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to compute stats: %w", err)
		}
		return &StatsResponse{ContentStats: *counts, LastUpdated: s.now().UTC()}, nil
	})
}

func (s *contentService) GetContactInfo(ctx context.Context) (*models.ContactInfo, error) {
	return s.repo.GetContactInfo(ctx)
}
