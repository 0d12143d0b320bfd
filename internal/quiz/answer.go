package quiz

import "fmt"

// QuestionTimeLimit is the number of seconds a learner has for each question.
const QuestionTimeLimit = 30

// Selection is a learner's response to one question: either an option index or a timeout.
type Selection struct {
	index    int
	answered bool
}

func Answered(index int) Selection {
	return Selection{index: index, answered: true}
}

func TimedOut() Selection {
	return Selection{}
}

// Index returns the selected option and false when the question timed out.
func (s Selection) Index() (int, bool) {
	return s.index, s.answered
}

// AnswerRecord is one scored response. SelectedIndex is nil when the question timed out.
type AnswerRecord struct {
	QuestionID    string `json:"question_id"`
	SelectedIndex *int   `json:"selected_index"`
	TimedOut      bool   `json:"timed_out"`
	IsCorrect     bool   `json:"is_correct"`
	TimeRemaining int    `json:"time_remaining"`
	TimeTaken     int    `json:"time_taken"`
}

// Selection reconstructs the tagged selection the record was built from.
func (a AnswerRecord) Selection() Selection {
	if a.TimedOut || a.SelectedIndex == nil {
		return TimedOut()
	}
	return Answered(*a.SelectedIndex)
}

// SubmitAnswer scores a single response to q. A timeout always scores as wrong
// with no time remaining.
func SubmitAnswer(q Question, sel Selection, timeRemaining int) (AnswerRecord, error) {
	if timeRemaining < 0 || timeRemaining > QuestionTimeLimit {
		return AnswerRecord{}, fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidTimeRemaining, timeRemaining, QuestionTimeLimit)
	}

	index, answered := sel.Index()
	if !answered {
		return AnswerRecord{
			QuestionID:    q.ID,
			TimedOut:      true,
			TimeRemaining: 0,
			TimeTaken:     QuestionTimeLimit,
		}, nil
	}

	if index < 0 || index >= len(q.Options) {
		return AnswerRecord{}, fmt.Errorf("%w: %d not in [0, %d)", ErrSelectionOutOfRange, index, len(q.Options))
	}

	return AnswerRecord{
		QuestionID:    q.ID,
		SelectedIndex: &index,
		IsCorrect:     index == q.CorrectIndex,
		TimeRemaining: timeRemaining,
		TimeTaken:     QuestionTimeLimit - timeRemaining,
	}, nil
}
