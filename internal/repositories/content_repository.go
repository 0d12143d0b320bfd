package repositories

import (
	"context"

	"github.com/SAP-F-2025/lingua-service/internal/models"
)

// ContentRepository is read-only access to learning content. Lessons and
// paragraphs come back sorted by their order field; everything else by id.
type ContentRepository interface {
	// Courses
	ListCourses(ctx context.Context) ([]*models.Course, error)
	GetCourse(ctx context.Context, id uint) (*models.Course, error)
	CountLessonsByCourse(ctx context.Context) (map[uint]int, error)

	// Lessons & paragraphs
	ListLessonsByCourse(ctx context.Context, courseID uint) ([]*models.Lesson, error)
	GetLesson(ctx context.Context, id uint) (*models.Lesson, error)
	ListParagraphsByLesson(ctx context.Context, lessonID uint) ([]*models.Paragraph, error)
	CountParagraphsByLesson(ctx context.Context, lessonIDs []uint) (map[uint]int, error)
	GetParagraph(ctx context.Context, id uint) (*models.Paragraph, error)

	// Paragraph material
	ListKeywordsByParagraph(ctx context.Context, paragraphID uint) ([]*models.Keyword, error)
	ListKeywordsByLesson(ctx context.Context, lessonID uint) ([]*models.Keyword, error)
	GetKeywordsByIDs(ctx context.Context, ids []uint) ([]*models.Keyword, error)
	ListQuizQuestionsByParagraph(ctx context.Context, paragraphID uint) ([]*models.QuizQuestion, error)
	ListExercisesByParagraph(ctx context.Context, paragraphID uint) ([]*models.WritingExercise, error)
	GetExercise(ctx context.Context, paragraphID, exerciseID uint) (*models.WritingExercise, error)

	// Search matches case-insensitively on title, content and translation for
	// paragraphs and on word and translation for keywords.
	SearchParagraphs(ctx context.Context, filters SearchFilters) ([]*models.Paragraph, error)
	SearchKeywords(ctx context.Context, filters SearchFilters) ([]*models.Keyword, error)

	Stats(ctx context.Context) (*ContentStats, error)
	GetContactInfo(ctx context.Context) (*models.ContactInfo, error)
}
