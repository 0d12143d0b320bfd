package services

import (
	"time"

	"github.com/SAP-F-2025/lingua-service/internal/models"
	"github.com/SAP-F-2025/lingua-service/internal/repositories"
)

type CourseInfo struct {
	ID    uint               `json:"id"`
	Title string             `json:"title"`
	Level models.CourseLevel `json:"level"`
}

type LessonInfo struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Order int    `json:"order"`
}

type LessonSummary struct {
	models.Lesson
	ParagraphsCount int `json:"paragraphs_count"`
}

// ParagraphContent is a paragraph with everything a learner practices on it.
type ParagraphContent struct {
	models.Paragraph
	Quiz             []*models.QuizQuestion    `json:"quiz"`
	WritingExercises []*models.WritingExercise `json:"writing_exercises"`
	Keywords         []*models.Keyword         `json:"keywords"`
}

type LessonDetail struct {
	models.Lesson
	Paragraphs []*ParagraphContent `json:"paragraphs"`
	CourseInfo *CourseInfo         `json:"course_info"`
}

type ParagraphDetail struct {
	ParagraphContent
	LessonInfo *LessonInfo `json:"lesson_info"`
	CourseInfo *CourseInfo `json:"course_info"`
}

type SearchResultType string

const (
	SearchResultParagraph SearchResultType = "paragraph"
	SearchResultKeyword   SearchResultType = "keyword"
)

type SearchResult struct {
	Type        SearchResultType `json:"type"`
	ID          uint             `json:"id"`
	Title       string           `json:"title,omitempty"`
	Content     string           `json:"content,omitempty"`
	Word        string           `json:"word,omitempty"`
	Translation string           `json:"translation,omitempty"`
	// Pronunciation and Example are set for keywords only.
	Pronunciation string `json:"pronunciation,omitempty"`
	Example       string `json:"example,omitempty"`
	CourseID      uint   `json:"course_id"`
	CourseTitle   string `json:"course_title"`
	LessonID      uint   `json:"lesson_id"`
	LessonTitle   string `json:"lesson_title"`
	ParagraphID   uint   `json:"paragraph_id"`
}

type SearchResults struct {
	Query   string          `json:"query"`
	Total   int             `json:"total"`
	Results []*SearchResult `json:"results"`
}

type StatsResponse struct {
	repositories.ContentStats
	LastUpdated time.Time `json:"last_updated"`
}
