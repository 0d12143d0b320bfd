package filestore

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/SAP-F-2025/lingua-service/internal/models"
	"github.com/SAP-F-2025/lingua-service/internal/repositories"
	"github.com/SAP-F-2025/lingua-service/internal/validator"
	"github.com/samber/lo"
)

// contentFile mirrors the layout of rich-content.json.
type contentFile struct {
	Courses     []models.Course          `json:"courses"`
	Lessons     []models.Lesson          `json:"lessons"`
	Paragraphs  []models.Paragraph       `json:"paragraphs"`
	Keywords    []models.Keyword         `json:"keywords"`
	Quizzes     []models.QuizQuestion    `json:"quizzes"`
	Exercises   []models.WritingExercise `json:"exercises"`
	ContactInfo models.ContactInfo       `json:"contact_info"`
}

// ContentFileStore serves content loaded once from a JSON document. It is
// never modified after Load and is safe for concurrent use. Lookups return
// copies.
type ContentFileStore struct {
	bundle *validator.ContentBundle

	courses    map[uint]models.Course
	lessons    map[uint]models.Lesson
	paragraphs map[uint]models.Paragraph
	keywords   map[uint]models.Keyword
}

// LoadFile reads and validates the content document at path.
func LoadFile(path string) (*ContentFileStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open content file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

func Load(r io.Reader) (*ContentFileStore, error) {
	var doc contentFile
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode content: %w", err)
	}

	bundle := &validator.ContentBundle{
		Courses:     doc.Courses,
		Lessons:     doc.Lessons,
		Paragraphs:  doc.Paragraphs,
		Keywords:    doc.Keywords,
		Quizzes:     doc.Quizzes,
		Exercises:   doc.Exercises,
		ContactInfo: doc.ContactInfo,
	}
	if err := validator.NewContentValidator().ValidateBundle(bundle); err != nil {
		return nil, fmt.Errorf("invalid content: %w", err)
	}

	slices.SortStableFunc(bundle.Courses, func(a, b models.Course) int { return cmp.Compare(a.ID, b.ID) })
	slices.SortStableFunc(bundle.Lessons, func(a, b models.Lesson) int {
		return cmp.Or(cmp.Compare(a.Order, b.Order), cmp.Compare(a.ID, b.ID))
	})
	slices.SortStableFunc(bundle.Paragraphs, func(a, b models.Paragraph) int {
		return cmp.Or(cmp.Compare(a.Order, b.Order), cmp.Compare(a.ID, b.ID))
	})
	slices.SortStableFunc(bundle.Keywords, func(a, b models.Keyword) int { return cmp.Compare(a.ID, b.ID) })
	slices.SortStableFunc(bundle.Quizzes, func(a, b models.QuizQuestion) int { return cmp.Compare(a.ID, b.ID) })
	slices.SortStableFunc(bundle.Exercises, func(a, b models.WritingExercise) int { return cmp.Compare(a.ID, b.ID) })

	return &ContentFileStore{
		bundle:     bundle,
		courses:    lo.KeyBy(bundle.Courses, func(c models.Course) uint { return c.ID }),
		lessons:    lo.KeyBy(bundle.Lessons, func(l models.Lesson) uint { return l.ID }),
		paragraphs: lo.KeyBy(bundle.Paragraphs, func(p models.Paragraph) uint { return p.ID }),
		keywords:   lo.KeyBy(bundle.Keywords, func(k models.Keyword) uint { return k.ID }),
	}, nil
}

// Bundle exposes the loaded content, e.g. for seeding a database.
func (s *ContentFileStore) Bundle() *validator.ContentBundle {
	return s.bundle
}

func ptrs[T any](items []T) []*T {
	out := make([]*T, len(items))
	for i := range items {
		item := items[i]
		out[i] = &item
	}
	return out
}

func get[T any](m map[uint]T, id uint) (*T, error) {
	v, ok := m[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &v, nil
}

func (s *ContentFileStore) ListCourses(ctx context.Context) ([]*models.Course, error) {
	return ptrs(s.bundle.Courses), nil
}

func (s *ContentFileStore) GetCourse(ctx context.Context, id uint) (*models.Course, error) {
	return get(s.courses, id)
}

func (s *ContentFileStore) CountLessonsByCourse(ctx context.Context) (map[uint]int, error) {
	return lo.CountValuesBy(s.bundle.Lessons, func(l models.Lesson) uint { return l.CourseID }), nil
}

func (s *ContentFileStore) ListLessonsByCourse(ctx context.Context, courseID uint) ([]*models.Lesson, error) {
	return ptrs(lo.Filter(s.bundle.Lessons, func(l models.Lesson, _ int) bool {
		return l.CourseID == courseID
	})), nil
}

func (s *ContentFileStore) GetLesson(ctx context.Context, id uint) (*models.Lesson, error) {
	return get(s.lessons, id)
}

func (s *ContentFileStore) ListParagraphsByLesson(ctx context.Context, lessonID uint) ([]*models.Paragraph, error) {
	return ptrs(lo.Filter(s.bundle.Paragraphs, func(p models.Paragraph, _ int) bool {
		return p.LessonID == lessonID
	})), nil
}

func (s *ContentFileStore) CountParagraphsByLesson(ctx context.Context, lessonIDs []uint) (map[uint]int, error) {
	wanted := lo.SliceToMap(lessonIDs, func(id uint) (uint, bool) { return id, true })
	matching := lo.Filter(s.bundle.Paragraphs, func(p models.Paragraph, _ int) bool {
		return wanted[p.LessonID]
	})
	return lo.CountValuesBy(matching, func(p models.Paragraph) uint { return p.LessonID }), nil
}

func (s *ContentFileStore) GetParagraph(ctx context.Context, id uint) (*models.Paragraph, error) {
	return get(s.paragraphs, id)
}

func (s *ContentFileStore) ListKeywordsByParagraph(ctx context.Context, paragraphID uint) ([]*models.Keyword, error) {
	return ptrs(lo.Filter(s.bundle.Keywords, func(k models.Keyword, _ int) bool {
		return k.ParagraphID == paragraphID
	})), nil
}

func (s *ContentFileStore) ListKeywordsByLesson(ctx context.Context, lessonID uint) ([]*models.Keyword, error) {
	return ptrs(lo.Filter(s.bundle.Keywords, func(k models.Keyword, _ int) bool {
		p, ok := s.paragraphs[k.ParagraphID]
		return ok && p.LessonID == lessonID
	})), nil
}

func (s *ContentFileStore) GetKeywordsByIDs(ctx context.Context, ids []uint) ([]*models.Keyword, error) {
	out := make([]*models.Keyword, 0, len(ids))
	for _, id := range lo.Uniq(ids) {
		if k, ok := s.keywords[id]; ok {
			out = append(out, &k)
		}
	}
	return out, nil
}

func (s *ContentFileStore) ListQuizQuestionsByParagraph(ctx context.Context, paragraphID uint) ([]*models.QuizQuestion, error) {
	return ptrs(lo.Filter(s.bundle.Quizzes, func(q models.QuizQuestion, _ int) bool {
		return q.ParagraphID == paragraphID
	})), nil
}

func (s *ContentFileStore) ListExercisesByParagraph(ctx context.Context, paragraphID uint) ([]*models.WritingExercise, error) {
	return ptrs(lo.Filter(s.bundle.Exercises, func(e models.WritingExercise, _ int) bool {
		return e.ParagraphID == paragraphID
	})), nil
}

func (s *ContentFileStore) GetExercise(ctx context.Context, paragraphID, exerciseID uint) (*models.WritingExercise, error) {
	e, ok := lo.Find(s.bundle.Exercises, func(e models.WritingExercise) bool {
		return e.ID == exerciseID && e.ParagraphID == paragraphID
	})
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &e, nil
}

func containsFold(term string, fields ...string) bool {
	return lo.SomeBy(fields, func(f string) bool {
		return strings.Contains(strings.ToLower(f), term)
	})
}

func (s *ContentFileStore) SearchParagraphs(ctx context.Context, filters repositories.SearchFilters) ([]*models.Paragraph, error) {
	term := strings.ToLower(strings.TrimSpace(filters.Query))
	matches := lo.Filter(s.bundle.Paragraphs, func(p models.Paragraph, _ int) bool {
		return containsFold(term, p.Title, p.Content, p.Translation)
	})
	return ptrs(lo.Subset(matches, 0, uint(filters.EffectiveLimit()))), nil
}

func (s *ContentFileStore) SearchKeywords(ctx context.Context, filters repositories.SearchFilters) ([]*models.Keyword, error) {
	term := strings.ToLower(strings.TrimSpace(filters.Query))
	matches := lo.Filter(s.bundle.Keywords, func(k models.Keyword, _ int) bool {
		return containsFold(term, k.Word, k.Translation)
	})
	return ptrs(lo.Subset(matches, 0, uint(filters.EffectiveLimit()))), nil
}

func (s *ContentFileStore) Stats(ctx context.Context) (*repositories.ContentStats, error) {
	return &repositories.ContentStats{
		TotalCourses:    int64(len(s.bundle.Courses)),
		TotalLessons:    int64(len(s.bundle.Lessons)),
		TotalParagraphs: int64(len(s.bundle.Paragraphs)),
		TotalQuizzes:    int64(len(s.bundle.Quizzes)),
		TotalExercises:  int64(len(s.bundle.Exercises)),
		TotalKeywords:   int64(len(s.bundle.Keywords)),
		TotalStudents:   int64(lo.SumBy(s.bundle.Courses, func(c models.Course) int { return c.Students })),
	}, nil
}

func (s *ContentFileStore) GetContactInfo(ctx context.Context) (*models.ContactInfo, error) {
	info := s.bundle.ContactInfo
	return &info, nil
}

var _ repositories.ContentRepository = (*ContentFileStore)(nil)
