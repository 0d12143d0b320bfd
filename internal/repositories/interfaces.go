package repositories

import (
	"errors"
)

var (
	ErrNotFound        = errors.New("record not found")
	ErrVersionConflict = errors.New("record was modified concurrently")
)

// ===== SHARED STATISTICS STRUCTS =====

type ContentStats struct {
	TotalCourses    int64 `json:"total_courses"`
	TotalLessons    int64 `json:"total_lessons"`
	TotalParagraphs int64 `json:"total_paragraphs"`
	TotalQuizzes    int64 `json:"total_quizzes"`
	TotalExercises  int64 `json:"total_exercises"`
	TotalKeywords   int64 `json:"total_keywords"`
	TotalStudents   int64 `json:"total_students"`
}

// ===== SHARED FILTER STRUCTS =====

type SearchFilters struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

const DefaultSearchLimit = 50

// EffectiveLimit clamps the limit to (0, DefaultSearchLimit].
func (f SearchFilters) EffectiveLimit() int {
	if f.Limit <= 0 || f.Limit > DefaultSearchLimit {
		return DefaultSearchLimit
	}
	return f.Limit
}
