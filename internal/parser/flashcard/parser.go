// Package flashcard parses "Question:" / "Answer:" text into flashcards.
// Pure function: text and a translation set in, domain structs out.
package flashcard

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/practice-text/internal/domain"
	"github.com/heartmarshall/practice-text/internal/locale"
	"github.com/heartmarshall/practice-text/internal/parser"
)

var requiredKeys = []locale.Key{
	locale.FlashcardQuestionKeyword,
	locale.FlashcardAnswerKeyword,
	locale.QuestionNoun,
	locale.AnswerNoun,
	locale.ErrMissingAnswerForPreviousQuestion,
	locale.ErrQuestionMissingText,
	locale.ErrAnswerMissingPreviousQuestion,
	locale.ErrAnswerMissingText,
	locale.ErrUnrecognizedFormat,
	locale.ErrFirstLineMustBeQuestion,
	locale.ErrMustBeQuestion,
	locale.ErrLastQuestionMissingAnswer,
	locale.ErrNoValidPairs,
}

// Parser turns text into flashcards using one language's keywords.
// Keywords are matched case-sensitively and must be followed by ':'.
//
// Only one problem is reported per call: the last one found during the
// scan. A question left unanswered at the end always replaces it, and the
// "no valid pairs" message is used only when nothing else was reported.
type Parser struct {
	tr   *locale.TranslationSet
	opts parser.Options

	questionKW string
	answerKW   string
	qPrefix    string
	aPrefix    string

	questionNoun      string
	answerNoun        string
	questionNounLower string
	answerNounLower   string
}

// New validates that tr carries everything the parser needs.
func New(tr *locale.TranslationSet, opts ...parser.Option) (*Parser, error) {
	if tr == nil {
		return nil, fmt.Errorf("flashcard parser: nil translation set: %w", domain.ErrMissingKeyword)
	}
	if err := tr.Require(requiredKeys...); err != nil {
		return nil, fmt.Errorf("flashcard parser: %w", err)
	}

	q := tr.Get(locale.FlashcardQuestionKeyword)
	a := tr.Get(locale.FlashcardAnswerKeyword)
	qNoun := tr.Get(locale.QuestionNoun)
	aNoun := tr.Get(locale.AnswerNoun)

	return &Parser{
		tr:                tr,
		opts:              parser.Apply(opts...),
		questionKW:        q,
		answerKW:          a,
		qPrefix:           q + ":",
		aPrefix:           a + ":",
		questionNoun:      qNoun,
		answerNoun:        aNoun,
		questionNounLower: tr.Lower(qNoun),
		answerNounLower:   tr.Lower(aNoun),
	}, nil
}

// Parse is a shorthand for New followed by Parser.Parse.
func Parse(text string, tr *locale.TranslationSet, opts ...parser.Option) (domain.ParseResult[domain.Flashcard], error) {
	p, err := New(tr, opts...)
	if err != nil {
		return domain.ParseResult[domain.Flashcard]{}, err
	}
	return p.Parse(text), nil
}

// Parse scans text once, line by line. It never fails: problems end up in
// the result's Error next to whatever cards could be recovered.
func (p *Parser) Parse(text string) domain.ParseResult[domain.Flashcard] {
	rec := parser.NewRecorder(parser.LastWins)
	cards := make([]domain.Flashcard, 0)

	var (
		pending    string
		hasPending bool
	)

	for idx, raw := range parser.SplitLines(text) {
		lineNo := idx + 1
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, p.qPrefix):
			if hasPending {
				rec.Record(p.tr.Format(locale.ErrMissingAnswerForPreviousQuestion, lineNo, p.questionNoun, pending))
			}
			question := strings.TrimSpace(line[len(p.qPrefix):])
			if question == "" {
				rec.Record(p.tr.Format(locale.ErrQuestionMissingText, lineNo, p.questionKW, p.questionNounLower))
				pending, hasPending = "", false
				continue
			}
			pending, hasPending = question, true

		case strings.HasPrefix(line, p.aPrefix):
			if !hasPending {
				rec.Record(p.tr.Format(locale.ErrAnswerMissingPreviousQuestion, lineNo, p.answerKW, p.questionKW))
				continue
			}
			answer := strings.TrimSpace(line[len(p.aPrefix):])
			if answer == "" {
				rec.Record(p.tr.Format(locale.ErrAnswerMissingText,
					lineNo, p.answerKW, p.answerNounLower, p.questionNoun, pending))
				pending, hasPending = "", false
				continue
			}
			cards = append(cards, domain.Flashcard{
				ID:       p.opts.NewID(),
				Question: pending,
				Answer:   answer,
			})
			pending, hasPending = "", false

		default:
			snippet := parser.Snippet(line, p.opts.SnippetLength)
			switch {
			case hasPending:
				rec.Record(p.tr.Format(locale.ErrUnrecognizedFormat, lineNo, snippet, p.questionKW, p.answerKW))
			case lineNo == 1 && len(cards) == 0 &&
				strings.Contains(line, ":") && !strings.HasPrefix(line, p.questionKW):
				rec.Record(p.tr.Format(locale.ErrFirstLineMustBeQuestion, lineNo, p.questionKW, snippet))
			case !strings.HasPrefix(line, p.questionKW):
				rec.Record(p.tr.Format(locale.ErrMustBeQuestion, lineNo, p.questionKW, snippet))
			}
			// A line that starts with the question keyword but lacks the
			// colon is skipped; it surfaces as "no valid pairs" if nothing
			// else parses.
		}
	}

	if hasPending {
		rec.Override(p.tr.Format(locale.ErrLastQuestionMissingAnswer, p.questionNoun, pending, p.answerNounLower))
	}

	if len(cards) == 0 && !parser.IsBlank(text) {
		rec.Fallback(p.tr.Format(locale.ErrNoValidPairs, p.questionNoun, p.answerNoun, p.questionKW, p.answerKW))
	}

	return domain.ParseResult[domain.Flashcard]{Records: cards, Error: rec.Message()}
}
