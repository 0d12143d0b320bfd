package quiz

import (
	"fmt"
	"math"

	"github.com/samber/lo"
)

// PassingPercentage is the lowest percentage that passes a quiz.
const PassingPercentage = 60

type Grade string

const (
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeB     Grade = "B"
	GradeC     Grade = "C"
	GradeD     Grade = "D"
	GradeF     Grade = "F"
)

// GradeFor maps a percentage onto the fixed letter bands (inclusive lower bounds).
func GradeFor(percentage int) Grade {
	switch {
	case percentage >= 90:
		return GradeAPlus
	case percentage >= 80:
		return GradeA
	case percentage >= 70:
		return GradeB
	case percentage >= 60:
		return GradeC
	case percentage >= 50:
		return GradeD
	default:
		return GradeF
	}
}

// Percentage returns round(correct / total * 100).
func Percentage(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// Result is the report of a finished quiz.
type Result struct {
	TotalQuestions int            `json:"total_questions"`
	CorrectAnswers int            `json:"correct_answers"`
	WrongAnswers   int            `json:"wrong_answers"`
	Percentage     int            `json:"percentage"`
	Grade          Grade          `json:"grade"`
	AverageTime    int            `json:"average_time"`
	Passed         bool           `json:"passed"`
	Answers        []AnswerRecord `json:"answers"`
}

// Complete scores a finished quiz. It fails without side effects when answers is empty.
func Complete(answers []AnswerRecord) (Result, error) {
	if len(answers) == 0 {
		return Result{}, ErrNoAnswers
	}
	for i, a := range answers {
		if a.TimeTaken < 0 || a.TimeTaken > QuestionTimeLimit {
			return Result{}, fmt.Errorf("answers[%d]: %w: time taken %d", i, ErrInvalidTimeRemaining, a.TimeTaken)
		}
		if err := checkRecord(a); err != nil {
			return Result{}, fmt.Errorf("answers[%d]: %w", i, err)
		}
	}

	total := len(answers)
	correct := lo.CountBy(answers, func(a AnswerRecord) bool { return a.IsCorrect })
	totalTime := lo.SumBy(answers, func(a AnswerRecord) int { return a.TimeTaken })
	percentage := Percentage(correct, total)

	return Result{
		TotalQuestions: total,
		CorrectAnswers: correct,
		WrongAnswers:   total - correct,
		Percentage:     percentage,
		Grade:          GradeFor(percentage),
		AverageTime:    int(math.Round(float64(totalTime) / float64(total))),
		Passed:         percentage >= PassingPercentage,
		Answers:        cloneAnswers(answers),
	}, nil
}

// checkRecord rejects records SubmitAnswer could not have produced.
func checkRecord(a AnswerRecord) error {
	switch {
	case a.TimedOut != (a.SelectedIndex == nil):
		return fmt.Errorf("%w: timed_out must be set exactly when selected_index is absent", ErrInvalidAnswerRecord)
	case a.TimedOut && a.IsCorrect:
		return fmt.Errorf("%w: a timed out answer cannot be correct", ErrInvalidAnswerRecord)
	case a.TimedOut && (a.TimeRemaining != 0 || a.TimeTaken != QuestionTimeLimit):
		return fmt.Errorf("%w: a timed out answer takes the full %d seconds", ErrInvalidAnswerRecord, QuestionTimeLimit)
	case !a.TimedOut && a.TimeTaken != QuestionTimeLimit-a.TimeRemaining:
		return fmt.Errorf("%w: time taken %d and time remaining %d do not sum to %d",
			ErrInvalidAnswerRecord, a.TimeTaken, a.TimeRemaining, QuestionTimeLimit)
	}
	return nil
}

func cloneAnswers(answers []AnswerRecord) []AnswerRecord {
	out := make([]AnswerRecord, len(answers))
	for i, a := range answers {
		if a.SelectedIndex != nil {
			idx := *a.SelectedIndex
			a.SelectedIndex = &idx
		}
		out[i] = a
	}
	return out
}
