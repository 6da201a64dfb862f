package review

import (
	"errors"
	"slices"

	"github.com/heartmarshall/practice-text/internal/domain"
)

var (
	ErrNoSelection      = errors.New("no option selected")
	ErrAlreadySubmitted = errors.New("answer already submitted")
	ErrQuizComplete     = errors.New("quiz is complete")
)

// Feedback is what the user sees after submitting an answer.
type Feedback struct {
	Correct bool
	// Selected is the index the user submitted.
	Selected      int
	CorrectLetter string
	CorrectText   string
	Explanation   *string
}

// Quiz walks through multiple-choice questions once, keeping score.
type Quiz struct {
	questions []domain.MultipleChoiceQuestion
	index     int
	selected  int
	submitted bool
	score     int
	complete  bool
}

// NewQuiz returns a quiz positioned on the first question. A quiz without
// questions starts complete.
func NewQuiz(questions []domain.MultipleChoiceQuestion) *Quiz {
	q := &Quiz{}
	q.Restart(questions)
	return q
}

// Restart replaces the questions and resets progress and score.
func (q *Quiz) Restart(questions []domain.MultipleChoiceQuestion) {
	q.questions = slices.Clone(questions)
	q.index = 0
	q.selected = -1
	q.submitted = false
	q.score = 0
	q.complete = len(q.questions) == 0
}

// Current returns the question under review.
func (q *Quiz) Current() (domain.MultipleChoiceQuestion, bool) {
	if q.complete || len(q.questions) == 0 {
		return domain.MultipleChoiceQuestion{}, false
	}
	return q.questions[q.index], true
}

// Position returns the 0-based index of the current question and the total.
func (q *Quiz) Position() (int, int) { return q.index, len(q.questions) }

// Selected returns the chosen option index, or -1.
func (q *Quiz) Selected() int { return q.selected }

// Submitted reports whether the current question has been answered.
func (q *Quiz) Submitted() bool { return q.submitted }

// Score returns the number of correct answers so far.
func (q *Quiz) Score() int { return q.score }

// Complete reports whether every question has been answered.
func (q *Quiz) Complete() bool { return q.complete }

// Select chooses an option. It is ignored after submission or when i is
// out of range.
func (q *Quiz) Select(i int) bool {
	if q.complete || q.submitted || i < 0 || i >= domain.OptionCount {
		return false
	}
	q.selected = i
	return true
}

// Submit grades the selected option.
func (q *Quiz) Submit() (Feedback, error) {
	cur, ok := q.Current()
	switch {
	case !ok:
		return Feedback{}, ErrQuizComplete
	case q.submitted:
		return Feedback{}, ErrAlreadySubmitted
	case q.selected < 0:
		return Feedback{}, ErrNoSelection
	}

	q.submitted = true
	fb := Feedback{
		Correct:     q.selected == cur.CorrectAnswerIndex,
		Selected:    q.selected,
		Explanation: cur.Explanation,
	}
	fb.CorrectLetter, fb.CorrectText = cur.CorrectOption()
	if fb.Correct {
		q.score++
	}
	return fb, nil
}

// Next moves to the following question, or marks the quiz complete after
// the last one.
func (q *Quiz) Next() {
	if q.complete {
		return
	}
	q.selected = -1
	q.submitted = false
	if q.index < len(q.questions)-1 {
		q.index++
		return
	}
	q.complete = true
}
