package grading

import (
	"testing"

	"github.com/agext/levenshtein"
	"github.com/stretchr/testify/assert"
)

var samplePairs = [][2]string{
	{"", ""},
	{"", "hello"},
	{"kitten", "sitting"},
	{"Hello", "helo"},
	{"مرحبا", "مرحبه"},
	{"Good morning", "good evening"},
	{"thank you", "thanks"},
	{"  Goodbye ", "goodbye"},
	{"شكرا لك", "شكرا"},
}

func TestScore_Identity(t *testing.T) {
	for _, s := range []string{"", "a", "Hello", "  Thank You  ", "صباح الخير", "Ünïcödé"} {
		v := Score(s, s)
		assert.True(t, v.IsCorrect, s)
		assert.False(t, v.IsClose, s)
		assert.Equal(t, 1.0, v.Similarity, s)
		assert.Equal(t, FeedbackCorrect, v.Feedback, s)
	}
}

func TestScore_IgnoresCaseAndSurroundingSpace(t *testing.T) {
	v := Score("  GOODBYE\t", "Goodbye")

	assert.True(t, v.IsCorrect)
	assert.Equal(t, "goodbye", v.UserAnswer)
	assert.Equal(t, "goodbye", v.CorrectAnswer)
}

func TestSimilarity_SymmetricAndBounded(t *testing.T) {
	for _, p := range samplePairs {
		a, b := Normalize(p[0]), Normalize(p[1])
		ab := Similarity(a, b)
		ba := Similarity(b, a)

		assert.Equal(t, ab, ba, "%q vs %q", a, b)
		assert.GreaterOrEqual(t, ab, 0.0)
		assert.LessOrEqual(t, ab, 1.0)
	}
}

func TestDistance_MatchesReferenceImplementation(t *testing.T) {
	for _, p := range samplePairs {
		assert.Equal(t, levenshtein.Distance(p[0], p[1], nil), Distance(p[0], p[1]), "%q vs %q", p[0], p[1])
	}
	assert.Equal(t, 3, Distance("kitten", "sitting"))
}

func TestScore_SingleSubstitutionIsClose(t *testing.T) {
	v := Score("travel", "trabel")

	assert.False(t, v.IsCorrect)
	assert.True(t, v.IsClose)
	assert.Greater(t, v.Similarity, CloseThreshold)
	assert.Equal(t, FeedbackClose, v.Feedback)
}

func TestScore_ThresholdIsStrict(t *testing.T) {
	v := Score("Helo", "Hello")

	assert.False(t, v.IsCorrect)
	assert.Equal(t, 0.8, v.Similarity)
	assert.False(t, v.IsClose)
	assert.Equal(t, FeedbackIncorrect, v.Feedback)
}

func TestScore_EmptyAnswer(t *testing.T) {
	v := Score("", "Hello")
	assert.Equal(t, 0.0, v.Similarity)
	assert.Equal(t, FeedbackIncorrect, v.Feedback)

	v = Score("   ", "")
	assert.True(t, v.IsCorrect)
}

func TestScore_CountsRunesNotBytes(t *testing.T) {
	// one substituted letter out of five
	v := Score("مرحبه", "مرحبا")
	assert.Equal(t, 0.8, v.Similarity)
}
