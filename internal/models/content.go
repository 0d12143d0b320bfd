package models

import (
	"time"

	"gorm.io/datatypes"
)

type CourseLevel string

const (
	LevelBeginner     CourseLevel = "beginner"
	LevelIntermediate CourseLevel = "intermediate"
	LevelAdvanced     CourseLevel = "advanced"
)

func (l CourseLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

type Course struct {
	ID          uint                         `json:"id" gorm:"primaryKey"`
	Title       string                       `json:"title" gorm:"not null;size:200;index"`
	Description string                       `json:"description" gorm:"type:text"`
	Level       CourseLevel                  `json:"level" gorm:"size:50;index"`
	Duration    string                       `json:"duration" gorm:"size:50"`
	Image       string                       `json:"image"`
	Color       string                       `json:"color" gorm:"size:50"`
	Instructor  string                       `json:"instructor" gorm:"size:100"`
	Rating      float64                      `json:"rating"`
	Students    int                          `json:"students"`
	Price       float64                      `json:"price"`
	Category    string                       `json:"category" gorm:"size:100;index"`
	Skills      datatypes.JSONType[[]string] `json:"skills" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	// Computed fields (not stored)
	LessonsCount int `json:"lessons_count" gorm:"-"`
}

type Lesson struct {
	ID          uint                         `json:"id" gorm:"primaryKey"`
	CourseID    uint                         `json:"course_id" gorm:"not null;index"`
	Title       string                       `json:"title" gorm:"not null;size:200"`
	Description string                       `json:"description" gorm:"type:text"`
	Duration    string                       `json:"duration" gorm:"size:50"`
	Level       CourseLevel                  `json:"level" gorm:"size:50"`
	Order       int                          `json:"order" gorm:"column:sort_order;index"`
	VideoURL    string                       `json:"video_url"`
	Objectives  datatypes.JSONType[[]string] `json:"objectives" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type Paragraph struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	LessonID    uint   `json:"lesson_id" gorm:"not null;index"`
	Title       string `json:"title" gorm:"not null;size:200"`
	Content     string `json:"content" gorm:"type:text"`
	Translation string `json:"translation" gorm:"type:text"`
	Order       int    `json:"order" gorm:"column:sort_order;index"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Keyword is a vocabulary entry attached to a paragraph.
type Keyword struct {
	ID                 uint   `json:"id" gorm:"primaryKey"`
	ParagraphID        uint   `json:"paragraph_id" gorm:"not null;index"`
	Word               string `json:"word" gorm:"not null;size:200;index"`
	Translation        string `json:"translation" gorm:"not null;size:200"`
	Pronunciation      string `json:"pronunciation" gorm:"size:200"`
	Example            string `json:"example" gorm:"type:text"`
	ExampleTranslation string `json:"example_translation" gorm:"type:text"`
}

// QuizQuestion is a fixed multiple-choice question authored for a paragraph.
type QuizQuestion struct {
	ID            uint                         `json:"id" gorm:"primaryKey"`
	ParagraphID   uint                         `json:"paragraph_id" gorm:"not null;index"`
	Question      string                       `json:"question" gorm:"type:text;not null"`
	QuestionAr    string                       `json:"question_ar" gorm:"type:text"`
	Options       datatypes.JSONType[[]string] `json:"options" gorm:"type:jsonb"`
	CorrectAnswer int                          `json:"correct_answer"`
	Explanation   string                       `json:"explanation" gorm:"type:text"`
	ExplanationAr string                       `json:"explanation_ar" gorm:"type:text"`
}

type WritingExercise struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	ParagraphID   uint   `json:"paragraph_id" gorm:"not null;index"`
	Prompt        string `json:"prompt" gorm:"type:text;not null"`
	PromptAr      string `json:"prompt_ar" gorm:"type:text"`
	CorrectAnswer string `json:"correct_answer" gorm:"not null"`
	Hint          string `json:"hint" gorm:"type:text"`
	HintAr        string `json:"hint_ar" gorm:"type:text"`
}

type ContactInfo struct {
	ID      uint                                  `json:"-" gorm:"primaryKey"`
	Email   string                                `json:"email"`
	Phone   string                                `json:"phone"`
	Address string                                `json:"address"`
	Social  datatypes.JSONType[map[string]string] `json:"social" gorm:"type:jsonb"`
}

func (Course) TableName() string {
	return "courses"
}

func (Lesson) TableName() string {
	return "lessons"
}

func (Paragraph) TableName() string {
	return "paragraphs"
}

func (Keyword) TableName() string {
	return "keywords"
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

func (WritingExercise) TableName() string {
	return "writing_exercises"
}

func (ContactInfo) TableName() string {
	return "contact_info"
}

// AllModels lists every persisted content model, in dependency order.
func AllModels() []interface{} {
	return []interface{}{
		&Course{},
		&Lesson{},
		&Paragraph{},
		&Keyword{},
		&QuizQuestion{},
		&WritingExercise{},
		&ContactInfo{},
	}
}
