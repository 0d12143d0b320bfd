package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/SAP-F-2025/lingua-service/internal/models"
	"github.com/SAP-F-2025/lingua-service/internal/repositories"
	"github.com/SAP-F-2025/lingua-service/internal/validator"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ContentPostgreSQL struct {
	db *gorm.DB
}

func NewContentPostgreSQL(db *gorm.DB) *ContentPostgreSQL {
	return &ContentPostgreSQL{db: db}
}

var _ repositories.ContentRepository = (*ContentPostgreSQL)(nil)

func first[T any](ctx context.Context, db *gorm.DB, query interface{}, args ...interface{}) (*T, error) {
	var out T
	if err := db.WithContext(ctx).Where(query, args...).First(&out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (c *ContentPostgreSQL) ListCourses(ctx context.Context) ([]*models.Course, error) {
	var courses []*models.Course
	if err := c.db.WithContext(ctx).Order("id").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *ContentPostgreSQL) GetCourse(ctx context.Context, id uint) (*models.Course, error) {
	return first[models.Course](ctx, c.db, "id = ?", id)
}

type countRow struct {
	GroupKey uint
	Count    int
}

func (c *ContentPostgreSQL) groupCount(ctx context.Context, model interface{}, column string, scope func(*gorm.DB) *gorm.DB) (map[uint]int, error) {
	var rows []countRow
	q := c.db.WithContext(ctx).Model(model).
		Select(column + " AS group_key, COUNT(*) AS count").
		Group(column)
	if scope != nil {
		q = scope(q)
	}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[uint]int, len(rows))
	for _, r := range rows {
		counts[r.GroupKey] = r.Count
	}
	return counts, nil
}

func (c *ContentPostgreSQL) CountLessonsByCourse(ctx context.Context) (map[uint]int, error) {
	return c.groupCount(ctx, &models.Lesson{}, "course_id", nil)
}

func (c *ContentPostgreSQL) ListLessonsByCourse(ctx context.Context, courseID uint) ([]*models.Lesson, error) {
	var lessons []*models.Lesson
	if err := c.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("sort_order, id").
		Find(&lessons).Error; err != nil {
		return nil, err
	}
	return lessons, nil
}

func (c *ContentPostgreSQL) GetLesson(ctx context.Context, id uint) (*models.Lesson, error) {
	return first[models.Lesson](ctx, c.db, "id = ?", id)
}

func (c *ContentPostgreSQL) ListParagraphsByLesson(ctx context.Context, lessonID uint) ([]*models.Paragraph, error) {
	var paragraphs []*models.Paragraph
	if err := c.db.WithContext(ctx).
		Where("lesson_id = ?", lessonID).
		Order("sort_order, id").
		Find(&paragraphs).Error; err != nil {
		return nil, err
	}
	return paragraphs, nil
}

func (c *ContentPostgreSQL) CountParagraphsByLesson(ctx context.Context, lessonIDs []uint) (map[uint]int, error) {
	if len(lessonIDs) == 0 {
		return map[uint]int{}, nil
	}
	return c.groupCount(ctx, &models.Paragraph{}, "lesson_id", func(q *gorm.DB) *gorm.DB {
		return q.Where("lesson_id IN ?", lessonIDs)
	})
}

func (c *ContentPostgreSQL) GetParagraph(ctx context.Context, id uint) (*models.Paragraph, error) {
	return first[models.Paragraph](ctx, c.db, "id = ?", id)
}

func (c *ContentPostgreSQL) ListKeywordsByParagraph(ctx context.Context, paragraphID uint) ([]*models.Keyword, error) {
	var keywords []*models.Keyword
	if err := c.db.WithContext(ctx).
		Where("paragraph_id = ?", paragraphID).
		Order("id").
		Find(&keywords).Error; err != nil {
		return nil, err
	}
	return keywords, nil
}

func (c *ContentPostgreSQL) ListKeywordsByLesson(ctx context.Context, lessonID uint) ([]*models.Keyword, error) {
	var keywords []*models.Keyword
	if err := c.db.WithContext(ctx).
		Joins("JOIN paragraphs ON paragraphs.id = keywords.paragraph_id").
		Where("paragraphs.lesson_id = ?", lessonID).
		Order("keywords.id").
		Find(&keywords).Error; err != nil {
		return nil, err
	}
	return keywords, nil
}

func (c *ContentPostgreSQL) GetKeywordsByIDs(ctx context.Context, ids []uint) ([]*models.Keyword, error) {
	if len(ids) == 0 {
		return []*models.Keyword{}, nil
	}
	var keywords []*models.Keyword
	if err := c.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id").
		Find(&keywords).Error; err != nil {
		return nil, err
	}
	return keywords, nil
}

func (c *ContentPostgreSQL) ListQuizQuestionsByParagraph(ctx context.Context, paragraphID uint) ([]*models.QuizQuestion, error) {
	var questions []*models.QuizQuestion
	if err := c.db.WithContext(ctx).
		Where("paragraph_id = ?", paragraphID).
		Order("id").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (c *ContentPostgreSQL) ListExercisesByParagraph(ctx context.Context, paragraphID uint) ([]*models.WritingExercise, error) {
	var exercises []*models.WritingExercise
	if err := c.db.WithContext(ctx).
		Where("paragraph_id = ?", paragraphID).
		Order("id").
		Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

func (c *ContentPostgreSQL) GetExercise(ctx context.Context, paragraphID, exerciseID uint) (*models.WritingExercise, error) {
	return first[models.WritingExercise](ctx, c.db, "id = ? AND paragraph_id = ?", exerciseID, paragraphID)
}

func (c *ContentPostgreSQL) SearchParagraphs(ctx context.Context, filters repositories.SearchFilters) ([]*models.Paragraph, error) {
	pattern := "%" + filters.Query + "%"
	var paragraphs []*models.Paragraph
	if err := c.db.WithContext(ctx).
		Where("title ILIKE ? OR content ILIKE ? OR translation ILIKE ?", pattern, pattern, pattern).
		Order("sort_order, id").
		Limit(filters.EffectiveLimit()).
		Find(&paragraphs).Error; err != nil {
		return nil, err
	}
	return paragraphs, nil
}

func (c *ContentPostgreSQL) SearchKeywords(ctx context.Context, filters repositories.SearchFilters) ([]*models.Keyword, error) {
	pattern := "%" + filters.Query + "%"
	var keywords []*models.Keyword
	if err := c.db.WithContext(ctx).
		Where("word ILIKE ? OR translation ILIKE ?", pattern, pattern).
		Order("id").
		Limit(filters.EffectiveLimit()).
		Find(&keywords).Error; err != nil {
		return nil, err
	}
	return keywords, nil
}

func (c *ContentPostgreSQL) Stats(ctx context.Context) (*repositories.ContentStats, error) {
	stats := &repositories.ContentStats{}
	db := c.db.WithContext(ctx)

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.Course{}, &stats.TotalCourses},
		{&models.Lesson{}, &stats.TotalLessons},
		{&models.Paragraph{}, &stats.TotalParagraphs},
		{&models.QuizQuestion{}, &stats.TotalQuizzes},
		{&models.WritingExercise{}, &stats.TotalExercises},
		{&models.Keyword{}, &stats.TotalKeywords},
	}
	for _, cnt := range counts {
		if err := db.Model(cnt.model).Count(cnt.dest).Error; err != nil {
			return nil, err
		}
	}

	if err := db.Model(&models.Course{}).
		Select("COALESCE(SUM(students), 0)").
		Scan(&stats.TotalStudents).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

func (c *ContentPostgreSQL) GetContactInfo(ctx context.Context) (*models.ContactInfo, error) {
	var info models.ContactInfo
	err := c.db.WithContext(ctx).Order("id").First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.ContactInfo{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// ImportBundle upserts a full content bundle in one transaction, parents
// before children.
func (c *ContentPostgreSQL) ImportBundle(ctx context.Context, b *validator.ContentBundle) error {
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		upsert := tx.Clauses(clause.OnConflict{UpdateAll: true})

		steps := []struct {
			name  string
			count int
			value interface{}
		}{
			{"courses", len(b.Courses), &b.Courses},
			{"lessons", len(b.Lessons), &b.Lessons},
			{"paragraphs", len(b.Paragraphs), &b.Paragraphs},
			{"keywords", len(b.Keywords), &b.Keywords},
			{"quiz questions", len(b.Quizzes), &b.Quizzes},
			{"writing exercises", len(b.Exercises), &b.Exercises},
		}
		for _, step := range steps {
			if step.count == 0 {
				continue
			}
			if err := upsert.CreateInBatches(step.value, 100).Error; err != nil {
				return fmt.Errorf("failed to import %s: %w", step.name, err)
			}
		}

		info := b.ContactInfo
		info.ID = 1
		if err := upsert.Create(&info).Error; err != nil {
			return fmt.Errorf("failed to import contact info: %w", err)
		}
		return nil
	})
}
