package quiz

import (
	"math/rand/v2"
	"testing"

	"github.com/SAP-F-2025/lingua-service/internal/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func greetingsPool() []models.VocabularyItem {
	return []models.VocabularyItem{
		{ID: "1", Primary: "Hello", Translation: "مرحبا", Example: "Hello, how are you?", ExampleTranslation: "مرحبا، كيف حالك؟"},
		{ID: "2", Primary: "Goodbye", Translation: "وداعا"},
		{ID: "3", Primary: "Thanks", Translation: "شكرا"},
	}
}

func largePool() []models.VocabularyItem {
	return []models.VocabularyItem{
		{ID: "1", Primary: "Hello", Translation: "مرحبا"},
		{ID: "2", Primary: "Goodbye", Translation: "وداعا"},
		{ID: "3", Primary: "Thanks", Translation: "شكرا"},
		{ID: "4", Primary: "Good morning", Translation: "صباح الخير"},
		{ID: "5", Primary: "Good evening", Translation: "مساء الخير"},
		{ID: "6", Primary: "Please", Translation: "من فضلك"},
	}
}

func seeded(seed uint64) *Generator {
	return NewGenerator(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func TestGenerate_TwoQuestionsPerItem(t *testing.T) {
	for _, pool := range [][]models.VocabularyItem{greetingsPool(), largePool(), greetingsPool()[:2]} {
		questions, err := NewGenerator(nil).Generate(pool)
		require.NoError(t, err)
		assert.Len(t, questions, 2*len(pool))
	}
}

func TestGenerate_DegeneratePool(t *testing.T) {
	questions, err := NewGenerator(nil).Generate(nil)
	require.NoError(t, err)
	assert.Empty(t, questions)

	questions, err = NewGenerator(nil).Generate(greetingsPool()[:1])
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestGenerate_OptionsHoldExpectedAnswer(t *testing.T) {
	pool := largePool()
	byID := lo.KeyBy(pool, func(item models.VocabularyItem) string { return item.ID })

	for seed := uint64(0); seed < 20; seed++ {
		questions, err := seeded(seed).Generate(pool)
		require.NoError(t, err)

		for _, q := range questions {
			item := byID[q.ItemID]
			require.GreaterOrEqual(t, q.CorrectIndex, 0)
			require.Less(t, q.CorrectIndex, len(q.Options))

			switch q.Direction {
			case PrimaryToTranslation:
				assert.Equal(t, item.Primary, q.Prompt)
				assert.Equal(t, item.Translation, q.Options[q.CorrectIndex])
			case TranslationToPrimary:
				assert.Equal(t, item.Translation, q.Prompt)
				assert.Equal(t, item.Primary, q.Options[q.CorrectIndex])
			default:
				t.Fatalf("unexpected direction %q", q.Direction)
			}

			assert.Len(t, q.Options, 1+MaxDistractors)
			assert.Len(t, lo.Uniq(q.Options), len(q.Options), "options must be unique: %v", q.Options)
		}
	}
}

func TestGenerate_SmallPoolHasFewerOptions(t *testing.T) {
	questions, err := NewGenerator(nil).Generate(greetingsPool()[:2])
	require.NoError(t, err)

	for _, q := range questions {
		assert.Len(t, q.Options, 2)
	}
}

func TestGenerate_DeduplicatesDistractors(t *testing.T) {
	pool := []models.VocabularyItem{
		{ID: "1", Primary: "Hi", Translation: "مرحبا"},
		{ID: "2", Primary: "Hey", Translation: "أهلا"},
		{ID: "3", Primary: "Hello", Translation: "أهلا"},
		{ID: "4", Primary: "Greetings", Translation: "أهلا"},
	}

	questions, err := seeded(7).Generate(pool)
	require.NoError(t, err)

	for _, q := range questions {
		assert.Len(t, lo.Uniq(q.Options), len(q.Options), "options must be unique: %v", q.Options)
	}
}

func TestGenerate_NoDistinctDistractor(t *testing.T) {
	pool := []models.VocabularyItem{
		{ID: "1", Primary: "Hey", Translation: "أهلا"},
		{ID: "2", Primary: "Hello", Translation: "أهلا"},
	}

	_, err := NewGenerator(nil).Generate(pool)
	assert.ErrorIs(t, err, ErrNoDistractors)
	assert.True(t, IsInvalidInput(err))
}

func TestGenerate_RejectsMalformedItems(t *testing.T) {
	cases := map[string][]models.VocabularyItem{
		"missing translation": {{ID: "1", Primary: "Hello"}, {ID: "2", Primary: "Bye", Translation: "وداعا"}},
		"blank primary":       {{ID: "1", Primary: "  ", Translation: "مرحبا"}, {ID: "2", Primary: "Bye", Translation: "وداعا"}},
		"missing id":          {{Primary: "Hello", Translation: "مرحبا"}, {ID: "2", Primary: "Bye", Translation: "وداعا"}},
		"duplicate id":        {{ID: "1", Primary: "Hello", Translation: "مرحبا"}, {ID: "1", Primary: "Bye", Translation: "وداعا"}},
	}

	for name, pool := range cases {
		t.Run(name, func(t *testing.T) {
			questions, err := NewGenerator(nil).Generate(pool)
			assert.ErrorIs(t, err, ErrInvalidVocabulary)
			assert.Nil(t, questions)
		})
	}
}

func TestGenerate_SeededIsDeterministic(t *testing.T) {
	first, err := seeded(42).Generate(largePool())
	require.NoError(t, err)
	second, err := seeded(42).Generate(largePool())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerate_CarriesExampleForDirection(t *testing.T) {
	questions, err := NewGenerator(nil).Generate(greetingsPool())
	require.NoError(t, err)

	forward, ok := lo.Find(questions, func(q Question) bool { return q.ID == "pt_1" })
	require.True(t, ok)
	assert.Equal(t, "Hello, how are you?", forward.Example)

	backward, ok := lo.Find(questions, func(q Question) bool { return q.ID == "tp_1" })
	require.True(t, ok)
	assert.Equal(t, "مرحبا، كيف حالك؟", backward.Example)
}
