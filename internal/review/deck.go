// Package review holds the state of a study session: a flashcard deck the
// user pages through, or a multiple-choice quiz that keeps score.
package review

import (
	"slices"

	"github.com/heartmarshall/practice-text/internal/domain"
)

// Deck pages through flashcards. Navigation wraps around at both ends and
// always hides the answer.
type Deck struct {
	cards      []domain.Flashcard
	index      int
	showAnswer bool
}

// NewDeck returns a deck positioned on the first card.
func NewDeck(cards []domain.Flashcard) *Deck {
	return &Deck{cards: slices.Clone(cards)}
}

// Empty reports whether there is nothing to review.
func (d *Deck) Empty() bool { return len(d.cards) == 0 }

// Current returns the card under review.
func (d *Deck) Current() (domain.Flashcard, bool) {
	if d.Empty() {
		return domain.Flashcard{}, false
	}
	return d.cards[d.index], true
}

// Position returns the 0-based index of the current card and the deck size.
func (d *Deck) Position() (int, int) { return d.index, len(d.cards) }

// AnswerShown reports whether the current card's answer is visible.
func (d *Deck) AnswerShown() bool { return d.showAnswer }

// ToggleAnswer flips answer visibility.
func (d *Deck) ToggleAnswer() {
	if !d.Empty() {
		d.showAnswer = !d.showAnswer
	}
}

// Next moves to the following card, wrapping to the first.
func (d *Deck) Next() { d.move(1) }

// Previous moves to the preceding card, wrapping to the last.
func (d *Deck) Previous() { d.move(-1) }

func (d *Deck) move(step int) {
	d.showAnswer = false
	if d.Empty() {
		return
	}
	n := len(d.cards)
	d.index = ((d.index+step)%n + n) % n
}

// Reset replaces the cards and starts over from the first one.
func (d *Deck) Reset(cards []domain.Flashcard) {
	d.cards = slices.Clone(cards)
	d.index = 0
	d.showAnswer = false
}
