package validator

import (
	"fmt"
	"strings"

	"github.com/SAP-F-2025/lingua-service/internal/models"
	"github.com/samber/lo"
)

// ContentBundle is a complete set of learning content as loaded from a
// content source.
type ContentBundle struct {
	Courses     []models.Course
	Lessons     []models.Lesson
	Paragraphs  []models.Paragraph
	Keywords    []models.Keyword
	Quizzes     []models.QuizQuestion
	Exercises   []models.WritingExercise
	ContactInfo models.ContactInfo
}

// ContentValidator checks referential integrity and per-record rules of
// loaded content.
type ContentValidator struct{}

// NewContentValidator creates a new content validator
func NewContentValidator() *ContentValidator {
	return &ContentValidator{}
}

// ValidateBundle returns the first integrity violation found in b.
func (v *ContentValidator) ValidateBundle(b *ContentBundle) error {
	courseIDs := make(map[uint]bool, len(b.Courses))
	for _, c := range b.Courses {
		if courseIDs[c.ID] {
			return fmt.Errorf("duplicate course id %d", c.ID)
		}
		courseIDs[c.ID] = true
		if strings.TrimSpace(c.Title) == "" {
			return fmt.Errorf("course %d: title is required", c.ID)
		}
		if c.Level != "" && !c.Level.Valid() {
			return fmt.Errorf("course %d: unknown level %q", c.ID, c.Level)
		}
	}

	lessonIDs := make(map[uint]bool, len(b.Lessons))
	for _, l := range b.Lessons {
		if lessonIDs[l.ID] {
			return fmt.Errorf("duplicate lesson id %d", l.ID)
		}
		lessonIDs[l.ID] = true
		if !courseIDs[l.CourseID] {
			return fmt.Errorf("lesson %d: unknown course %d", l.ID, l.CourseID)
		}
		if l.Level != "" && !l.Level.Valid() {
			return fmt.Errorf("lesson %d: unknown level %q", l.ID, l.Level)
		}
	}

	paragraphIDs := make(map[uint]bool, len(b.Paragraphs))
	for _, p := range b.Paragraphs {
		if paragraphIDs[p.ID] {
			return fmt.Errorf("duplicate paragraph id %d", p.ID)
		}
		paragraphIDs[p.ID] = true
		if !lessonIDs[p.LessonID] {
			return fmt.Errorf("paragraph %d: unknown lesson %d", p.ID, p.LessonID)
		}
	}

	for _, k := range b.Keywords {
		if err := v.ValidateKeyword(k); err != nil {
			return err
		}
		if !paragraphIDs[k.ParagraphID] {
			return fmt.Errorf("keyword %d: unknown paragraph %d", k.ID, k.ParagraphID)
		}
	}

	for _, q := range b.Quizzes {
		if err := v.ValidateQuizQuestion(q); err != nil {
			return err
		}
		if !paragraphIDs[q.ParagraphID] {
			return fmt.Errorf("quiz question %d: unknown paragraph %d", q.ID, q.ParagraphID)
		}
	}

	for _, e := range b.Exercises {
		if strings.TrimSpace(e.CorrectAnswer) == "" {
			return fmt.Errorf("exercise %d: correct answer is required", e.ID)
		}
		if !paragraphIDs[e.ParagraphID] {
			return fmt.Errorf("exercise %d: unknown paragraph %d", e.ID, e.ParagraphID)
		}
	}

	return nil
}

// ValidateKeyword checks that a keyword can serve as a vocabulary item.
func (v *ContentValidator) ValidateKeyword(k models.Keyword) error {
	if strings.TrimSpace(k.Word) == "" {
		return fmt.Errorf("keyword %d: word is required", k.ID)
	}
	if strings.TrimSpace(k.Translation) == "" {
		return fmt.Errorf("keyword %d: translation is required", k.ID)
	}
	return nil
}

// ValidateQuizQuestion checks a static multiple-choice question.
func (v *ContentValidator) ValidateQuizQuestion(q models.QuizQuestion) error {
	options := q.Options.Data()
	if strings.TrimSpace(q.Question) == "" {
		return fmt.Errorf("quiz question %d: question text is required", q.ID)
	}
	if len(options) < 2 {
		return fmt.Errorf("quiz question %d: at least 2 options required", q.ID)
	}
	if len(lo.Uniq(options)) != len(options) {
		return fmt.Errorf("quiz question %d: duplicate options", q.ID)
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(options) {
		return fmt.Errorf("quiz question %d: correct answer index %d out of range", q.ID, q.CorrectAnswer)
	}
	return nil
}
