package grading

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// CloseThreshold is the similarity a wrong answer must exceed to count as a near miss.
// The comparison is strict: a similarity of exactly 0.8 is not close.
const CloseThreshold = 0.8

type Feedback string

const (
	FeedbackCorrect   Feedback = "correct"
	FeedbackClose     Feedback = "close"
	FeedbackIncorrect Feedback = "incorrect"
)

// Verdict is the outcome of comparing a learner's free-text answer to a reference answer.
type Verdict struct {
	UserAnswer    string   `json:"user_answer"`
	CorrectAnswer string   `json:"correct_answer"`
	IsCorrect     bool     `json:"is_correct"`
	IsClose       bool     `json:"is_close"`
	Similarity    float64  `json:"similarity"`
	Feedback      Feedback `json:"feedback"`
}

// Normalize trims surrounding whitespace, composes the text to NFC and lowercases it.
func Normalize(s string) string {
	// A Caser is stateful, so each call gets its own.
	return cases.Lower(language.Und).String(norm.NFC.String(strings.TrimSpace(s)))
}

// Score grades userAnswer against correctAnswer. It never fails.
func Score(userAnswer, correctAnswer string) Verdict {
	user := Normalize(userAnswer)
	correct := Normalize(correctAnswer)

	similarity := Similarity(user, correct)
	isCorrect := user == correct
	isClose := similarity > CloseThreshold && !isCorrect

	feedback := FeedbackIncorrect
	switch {
	case isCorrect:
		feedback = FeedbackCorrect
	case isClose:
		feedback = FeedbackClose
	}

	return Verdict{
		UserAnswer:    user,
		CorrectAnswer: correct,
		IsCorrect:     isCorrect,
		IsClose:       isClose,
		Similarity:    similarity,
		Feedback:      feedback,
	}
}

// Similarity returns (longer - distance) / longer, measured in runes, or 1.0 when both are empty.
// Inputs are compared as given; callers normalize first.
func Similarity(a, b string) float64 {
	longer := max(len([]rune(a)), len([]rune(b)))
	if longer == 0 {
		return 1.0
	}
	return float64(longer-Distance(a, b)) / float64(longer)
}

// Distance computes the Levenshtein edit distance between a and b over runes.
func Distance(a, b string) int {
	ar := []rune(a)
	br := []rune(b)

	// dp[i][j] is the distance between ar[:i] and br[:j]
	dp := make([][]int, len(ar)+1)
	for i := range dp {
		dp[i] = make([]int, len(br)+1)
		dp[i][0] = i
	}
	for j := 0; j <= len(br); j++ {
		dp[0][j] = j
	}

	for i := 1; i <= len(ar); i++ {
		for j := 1; j <= len(br); j++ {
			if ar[i-1] == br[j-1] {
				dp[i][j] = dp[i-1][j-1]
				continue
			}
			dp[i][j] = 1 + min(
				dp[i-1][j],   // delete
				dp[i][j-1],   // insert
				dp[i-1][j-1], // substitute
			)
		}
	}

	return dp[len(ar)][len(br)]
}
