package quiz

import "errors"

var (
	ErrInvalidVocabulary     = errors.New("invalid vocabulary item")
	ErrNoDistractors         = errors.New("vocabulary pool has no distinct distractor")
	ErrSelectionOutOfRange   = errors.New("selected option index out of range")
	ErrInvalidTimeRemaining  = errors.New("time remaining out of range")
	ErrInvalidAnswerRecord   = errors.New("inconsistent answer record")
	ErrNoAnswers             = errors.New("quiz has no answers to score")
	ErrNoQuestions           = errors.New("quiz has no questions")
	ErrSessionNotStarted     = errors.New("quiz session not started")
	ErrSessionAlreadyStarted = errors.New("quiz session already started")
	ErrSessionCompleted      = errors.New("quiz session already completed")
	ErrSessionNotCompleted   = errors.New("quiz session not completed")
)

// IsInvalidInput reports whether err is a caller contract violation.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidVocabulary) ||
		errors.Is(err, ErrNoDistractors) ||
		errors.Is(err, ErrSelectionOutOfRange) ||
		errors.Is(err, ErrInvalidTimeRemaining) ||
		errors.Is(err, ErrInvalidAnswerRecord) ||
		errors.Is(err, ErrNoAnswers) ||
		errors.Is(err, ErrNoQuestions)
}

// IsStateConflict reports whether err is an illegal session transition.
func IsStateConflict(err error) bool {
	return errors.Is(err, ErrSessionNotStarted) ||
		errors.Is(err, ErrSessionAlreadyStarted) ||
		errors.Is(err, ErrSessionCompleted) ||
		errors.Is(err, ErrSessionNotCompleted)
}
