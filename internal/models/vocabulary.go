package models

import "strconv"

// VocabularyItem is the unit a vocabulary quiz is built from.
type VocabularyItem struct {
	ID                 string `json:"id" validate:"required,not_blank"`
	Primary            string `json:"primary" validate:"required,not_blank"`
	Translation        string `json:"translation" validate:"required,not_blank"`
	Pronunciation      string `json:"pronunciation,omitempty"`
	Example            string `json:"example,omitempty"`
	ExampleTranslation string `json:"example_translation,omitempty"`
}

// VocabularyItem projects the keyword onto the quiz vocabulary shape.
func (k Keyword) VocabularyItem() VocabularyItem {
	return VocabularyItem{
		ID:                 strconv.FormatUint(uint64(k.ID), 10),
		Primary:            k.Word,
		Translation:        k.Translation,
		Pronunciation:      k.Pronunciation,
		Example:            k.Example,
		ExampleTranslation: k.ExampleTranslation,
	}
}
