package domain

import (
	"strings"

	"github.com/google/uuid"
)

// OptionCount is the fixed number of options every multiple-choice question carries.
const OptionCount = 4

// optionLetters maps option positions to the letters users type.
var optionLetters = [OptionCount]string{"A", "B", "C", "D"}

// Flashcard is a single question/answer pair produced by the flashcard parser.
type Flashcard struct {
	ID       uuid.UUID
	Question string
	Answer   string
}

// MultipleChoiceQuestion is a question with exactly four options and one correct option.
type MultipleChoiceQuestion struct {
	ID                 uuid.UUID
	Question           string
	Options            []string
	CorrectAnswerIndex int
	Explanation        *string
}

// Validate checks the shape invariants: non-empty question, exactly four
// options and a correct index that points into them.
func (q MultipleChoiceQuestion) Validate() error {
	var errs []FieldError
	if strings.TrimSpace(q.Question) == "" {
		errs = append(errs, FieldError{Field: "question", Message: "required"})
	}
	if len(q.Options) != OptionCount {
		errs = append(errs, FieldError{Field: "options", Message: "exactly 4 required"})
	}
	if q.CorrectAnswerIndex < 0 || q.CorrectAnswerIndex >= len(q.Options) {
		errs = append(errs, FieldError{Field: "correct_answer_index", Message: "out of range"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// CorrectOption returns the letter and text of the correct option.
func (q MultipleChoiceQuestion) CorrectOption() (string, string) {
	letter, _ := OptionLetter(q.CorrectAnswerIndex)
	if q.CorrectAnswerIndex < 0 || q.CorrectAnswerIndex >= len(q.Options) {
		return letter, ""
	}
	return letter, q.Options[q.CorrectAnswerIndex]
}

// OptionLetter returns the letter ("A".."D") for a 0-based option index.
func OptionLetter(index int) (string, bool) {
	if index < 0 || index >= OptionCount {
		return "", false
	}
	return optionLetters[index], true
}

// OptionIndex maps a letter to its 0-based option index. The letter must
// already be trimmed; matching is case-insensitive.
func OptionIndex(letter string) (int, bool) {
	for i, l := range optionLetters {
		if strings.EqualFold(l, letter) {
			return i, true
		}
	}
	return -1, false
}

// ParseResult is the outcome of one parse call: every record that could be
// recovered plus, optionally, one localized message describing a problem.
//
// Error is empty when no problem was found. A non-empty Error next to
// non-empty Records is a partial success.
type ParseResult[T any] struct {
	Records []T
	Error   string
}

// HasError reports whether a problem was recorded.
func (r ParseResult[T]) HasError() bool { return r.Error != "" }

// Failed reports whether the whole input must be treated as failed.
func (r ParseResult[T]) Failed() bool { return r.Error != "" && len(r.Records) == 0 }

// Partial reports whether records were recovered despite a recorded problem.
func (r ParseResult[T]) Partial() bool { return r.Error != "" && len(r.Records) > 0 }
