package quiz

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/SAP-F-2025/lingua-service/internal/models"
	"github.com/samber/lo"
)

// MaxDistractors is the number of wrong options drawn per question when the pool allows it.
const MaxDistractors = 3

type Direction string

const (
	PrimaryToTranslation Direction = "primary_to_translation"
	TranslationToPrimary Direction = "translation_to_primary"
)

// Question is a generated multiple-choice question. Options are unique and
// Options[CorrectIndex] is the expected answer for the question's direction.
type Question struct {
	ID           string    `json:"id"`
	ItemID       string    `json:"item_id"`
	Direction    Direction `json:"direction"`
	Prompt       string    `json:"prompt"`
	Options      []string  `json:"options"`
	CorrectIndex int       `json:"correct_index"`
	Example      string    `json:"example,omitempty"`
}

// CorrectAnswer returns the option text at CorrectIndex.
func (q Question) CorrectAnswer() string {
	return q.Options[q.CorrectIndex]
}

// Shuffler is a source of uniform random permutations. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type globalShuffler struct{}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}

type Generator struct {
	rnd Shuffler
}

// NewGenerator returns a generator drawing permutations from rnd, or from the
// global source when rnd is nil. The generator is safe for concurrent use
// only if rnd is.
func NewGenerator(rnd Shuffler) *Generator {
	if rnd == nil {
		rnd = globalShuffler{}
	}
	return &Generator{rnd: rnd}
}

// Generate builds two questions per item, one in each direction, and returns them
// in random order. Pools with fewer than two items produce no questions.
func (g *Generator) Generate(pool []models.VocabularyItem) ([]Question, error) {
	if len(pool) < 2 {
		return []Question{}, nil
	}
	seen := make(map[string]struct{}, len(pool))
	for i, item := range pool {
		if err := validateItem(item); err != nil {
			return nil, fmt.Errorf("pool[%d]: %w", i, err)
		}
		if _, dup := seen[item.ID]; dup {
			return nil, fmt.Errorf("pool[%d]: %w: duplicate id %q", i, ErrInvalidVocabulary, item.ID)
		}
		seen[item.ID] = struct{}{}
	}

	primaries := lo.Map(pool, func(item models.VocabularyItem, _ int) string { return item.Primary })
	translations := lo.Map(pool, func(item models.VocabularyItem, _ int) string { return item.Translation })

	questions := make([]Question, 0, 2*len(pool))
	for _, item := range pool {
		forward, err := g.question(item, PrimaryToTranslation, item.Primary, item.Translation, item.Example, translations)
		if err != nil {
			return nil, err
		}
		backward, err := g.question(item, TranslationToPrimary, item.Translation, item.Primary, item.ExampleTranslation, primaries)
		if err != nil {
			return nil, err
		}
		questions = append(questions, forward, backward)
	}

	g.rnd.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	return questions, nil
}

func (g *Generator) question(item models.VocabularyItem, dir Direction, prompt, correct, example string, candidates []string) (Question, error) {
	distractors := g.distractors(correct, candidates)
	if len(distractors) == 0 {
		return Question{}, fmt.Errorf("item %q (%s): %w", item.ID, dir, ErrNoDistractors)
	}

	options := append([]string{correct}, distractors...)
	g.rnd.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return Question{
		ID:           questionID(item.ID, dir),
		ItemID:       item.ID,
		Direction:    dir,
		Prompt:       prompt,
		Options:      options,
		CorrectIndex: lo.IndexOf(options, correct),
		Example:      example,
	}, nil
}

// distractors picks up to MaxDistractors distinct values other than correct.
func (g *Generator) distractors(correct string, candidates []string) []string {
	wrong := lo.Uniq(lo.Filter(candidates, func(c string, _ int) bool { return c != correct }))
	g.rnd.Shuffle(len(wrong), func(i, j int) {
		wrong[i], wrong[j] = wrong[j], wrong[i]
	})
	if len(wrong) > MaxDistractors {
		wrong = wrong[:MaxDistractors]
	}
	return wrong
}

func validateItem(item models.VocabularyItem) error {
	switch {
	case strings.TrimSpace(item.ID) == "":
		return fmt.Errorf("%w: missing id", ErrInvalidVocabulary)
	case strings.TrimSpace(item.Primary) == "":
		return fmt.Errorf("%w: item %q has no primary text", ErrInvalidVocabulary, item.ID)
	case strings.TrimSpace(item.Translation) == "":
		return fmt.Errorf("%w: item %q has no translation", ErrInvalidVocabulary, item.ID)
	}
	return nil
}

func questionID(itemID string, dir Direction) string {
	if dir == PrimaryToTranslation {
		return "pt_" + itemID
	}
	return "tp_" + itemID
}
