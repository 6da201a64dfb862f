// Package mcq parses multiple-choice question blocks:
//
//	Question: What is 2+2?
//	A. 3
//	B. 4
//	C. 5
//	D. 22
//	Correct Answer: B
//	Explanation: Basic arithmetic.
//
// Keywords from every supported language are accepted in any mix; messages
// are produced in the active language.
package mcq

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/practice-text/internal/domain"
	"github.com/heartmarshall/practice-text/internal/locale"
	"github.com/heartmarshall/practice-text/internal/parser"
)

var requiredKeys = []locale.Key{
	locale.MCQQuestionKeyword,
	locale.MCQCorrectAnswerKeyword,
	locale.MCQExplanationKeyword,
	locale.ErrMCQIncompleteBlock,
	locale.ErrMCQExpectedQuestion,
	locale.ErrMCQMissingQuestion,
	locale.ErrMCQMissingOption,
	locale.ErrMCQInvalidCorrectAnswer,
	locale.ErrMCQMissingCorrectAnswer,
	locale.ErrMCQNoMCQsFound,
}

// state is a position inside one question block.
type state int

const (
	stateAwaitingQuestion state = iota
	stateAwaitingOptions
	stateAwaitingCorrectAnswer
	stateAwaitingExplanation
	stateDone
	stateAbandoned
)

func (s state) String() string {
	switch s {
	case stateAwaitingQuestion:
		return "awaiting-question"
	case stateAwaitingOptions:
		return "awaiting-options"
	case stateAwaitingCorrectAnswer:
		return "awaiting-correct-answer"
	case stateAwaitingExplanation:
		return "awaiting-explanation"
	case stateDone:
		return "done"
	case stateAbandoned:
		return "abandoned"
	}
	return "unknown"
}

// Parser turns text into multiple-choice questions. It reports the first
// problem it finds and keeps every block that was complete.
type Parser struct {
	tr       *locale.TranslationSet
	keywords *keywordMatcher
	opts     parser.Options

	questionKW      string
	correctAnswerKW string
}

// New builds a parser that reports in active's language and recognises the
// keywords of active plus every set in supported.
func New(active *locale.TranslationSet, supported []*locale.TranslationSet, opts ...parser.Option) (*Parser, error) {
	if active == nil {
		return nil, fmt.Errorf("mcq parser: nil translation set: %w", domain.ErrMissingKeyword)
	}
	if err := active.Require(requiredKeys...); err != nil {
		return nil, fmt.Errorf("mcq parser: %w", err)
	}

	sets := make([]*locale.TranslationSet, 0, len(supported)+1)
	sets = append(sets, active)
	for _, s := range supported {
		if s == nil || s == active {
			continue
		}
		sets = append(sets, s)
	}

	km, err := newKeywordMatcher(sets)
	if err != nil {
		return nil, fmt.Errorf("mcq parser: %w", err)
	}

	return &Parser{
		tr:              active,
		keywords:        km,
		opts:            parser.Apply(opts...),
		questionKW:      active.Get(locale.MCQQuestionKeyword),
		correctAnswerKW: active.Get(locale.MCQCorrectAnswerKeyword),
	}, nil
}

// Parse is a shorthand for New followed by Parser.Parse.
func Parse(text string, active *locale.TranslationSet, supported []*locale.TranslationSet, opts ...parser.Option) (domain.ParseResult[domain.MultipleChoiceQuestion], error) {
	p, err := New(active, supported, opts...)
	if err != nil {
		return domain.ParseResult[domain.MultipleChoiceQuestion]{}, err
	}
	return p.Parse(text), nil
}

// Parse scans text block by block. It never fails: problems end up in the
// result's Error next to whatever questions could be recovered.
func (p *Parser) Parse(text string) domain.ParseResult[domain.MultipleChoiceQuestion] {
	s := &scanner{
		p:     p,
		lines: parser.SplitLines(text),
		rec:   parser.NewRecorder(parser.FirstWins),
	}
	out := make([]domain.MultipleChoiceQuestion, 0)

	for s.pos < len(s.lines) {
		if parser.IsBlank(s.lines[s.pos]) {
			s.pos++
			continue
		}
		if q, ok := s.block(); ok {
			out = append(out, q)
		}
	}

	if len(out) == 0 && !parser.IsBlank(text) {
		s.rec.Fallback(p.tr.Format(locale.ErrMCQNoMCQsFound))
	}

	return domain.ParseResult[domain.MultipleChoiceQuestion]{Records: out, Error: s.rec.Message()}
}

// draft collects one block's fields while the state machine runs.
type draft struct {
	start       int // 1-based line of the question keyword
	question    string
	options     []string
	correct     int
	hasCorrect  bool
	explanation *string
}

// scanner is the cursor over the lines of a single Parse call.
type scanner struct {
	p     *Parser
	lines []string
	pos   int
	rec   *parser.Recorder
}

func (s *scanner) line(i int) string { return strings.TrimSpace(s.lines[i]) }

// block runs the state machine over one block starting at the cursor,
// which must be on a non-blank line.
func (s *scanner) block() (domain.MultipleChoiceQuestion, bool) {
	d := &draft{start: s.pos + 1}

	st := stateAwaitingQuestion
	for st != stateDone && st != stateAbandoned {
		switch st {
		case stateAwaitingQuestion:
			st = s.awaitQuestion(d)
		case stateAwaitingOptions:
			st = s.awaitOptions(d)
		case stateAwaitingCorrectAnswer:
			st = s.awaitCorrectAnswer(d)
		case stateAwaitingExplanation:
			st = s.awaitExplanation(d)
		}
	}
	if st == stateAbandoned {
		return domain.MultipleChoiceQuestion{}, false
	}
	return s.emit(d)
}

func (s *scanner) awaitQuestion(d *draft) state {
	line := s.line(s.pos)
	rest, ok := s.p.keywords.match(fieldQuestion, line)
	if !ok {
		s.rec.Record(s.p.tr.Format(locale.ErrMCQExpectedQuestion,
			s.pos+1, s.p.questionKW, parser.Snippet(line, s.p.opts.SnippetLength)))
		s.pos++
		return stateAbandoned
	}
	s.pos++

	d.question = s.accumulate(rest, triggerAny)
	if d.question == "" {
		s.rec.Record(s.p.tr.Format(locale.ErrMCQMissingQuestion, d.start, s.p.questionKW))
	}
	return stateAwaitingOptions
}

func (s *scanner) awaitOptions(d *draft) state {
	for s.pos < len(s.lines) && len(d.options) < domain.OptionCount {
		line := s.line(s.pos)
		if line == "" {
			// Blank lines end the options unless another option follows.
			next := s.nextNonBlank(s.pos)
			if next < len(s.lines) {
				if _, ok := matchOption(s.line(next)); !ok {
					break
				}
			}
			s.pos = next
			continue
		}
		text, ok := matchOption(line)
		if !ok {
			break
		}
		s.pos++
		d.options = append(d.options, s.accumulate(text, triggerAny))
	}

	if len(d.options) != domain.OptionCount && d.question != "" {
		s.rec.Record(s.p.tr.Format(locale.ErrMCQMissingOption, d.start, len(d.options), d.question))
	}
	return stateAwaitingCorrectAnswer
}

func (s *scanner) awaitCorrectAnswer(d *draft) state {
	next := s.nextNonBlank(s.pos)
	if next < len(s.lines) {
		if rest, ok := s.p.keywords.match(fieldCorrectAnswer, s.line(next)); ok {
			s.pos = next + 1
			letter := strings.ToUpper(strings.TrimSpace(rest))
			if idx, ok := domain.OptionIndex(letter); ok {
				d.correct, d.hasCorrect = idx, true
			} else {
				s.rec.Record(s.p.tr.Format(locale.ErrMCQInvalidCorrectAnswer, next+1, letter, questionOrNA(d.question)))
			}
			return stateAwaitingExplanation
		}
	}

	if d.question != "" && len(d.options) == domain.OptionCount {
		lineNo := next + 1
		if next >= len(s.lines) {
			lineNo = len(s.lines)
		}
		s.rec.Record(s.p.tr.Format(locale.ErrMCQMissingCorrectAnswer, lineNo, s.p.correctAnswerKW, d.question))
	}
	return stateAwaitingExplanation
}

func (s *scanner) awaitExplanation(d *draft) state {
	next := s.nextNonBlank(s.pos)
	if next >= len(s.lines) {
		return stateDone
	}
	rest, ok := s.p.keywords.match(fieldExplanation, s.line(next))
	if !ok {
		return stateDone
	}
	s.pos = next + 1

	// Only a new question ends an explanation.
	if text := s.accumulate(rest, triggerQuestion); text != "" {
		d.explanation = &text
	}
	return stateDone
}

func (s *scanner) emit(d *draft) (domain.MultipleChoiceQuestion, bool) {
	if d.question != "" && d.hasCorrect {
		q := domain.MultipleChoiceQuestion{
			ID:                 s.p.opts.NewID(),
			Question:           d.question,
			Options:            d.options,
			CorrectAnswerIndex: d.correct,
			Explanation:        d.explanation,
		}
		if q.Validate() == nil {
			return q, true
		}
	}
	if d.question != "" {
		s.rec.Record(s.p.tr.Format(locale.ErrMCQIncompleteBlock, d.start))
	}
	return domain.MultipleChoiceQuestion{}, false
}

// accumulate joins first with the following raw lines until a line in
// stop (or a blank line directly followed by one) is reached. The cursor
// is left on the stopping line.
func (s *scanner) accumulate(first string, stop trigger) string {
	parts := []string{first}
	for s.pos < len(s.lines) && !s.stopsAt(s.pos, stop) {
		parts = append(parts, s.lines[s.pos])
		s.pos++
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}

func (s *scanner) stopsAt(i int, stop trigger) bool {
	line := s.line(i)
	if line == "" {
		return i+1 < len(s.lines) && s.p.keywords.triggers(s.line(i+1), stop)
	}
	return s.p.keywords.triggers(line, stop)
}

func (s *scanner) nextNonBlank(i int) int {
	for i < len(s.lines) && s.line(i) == "" {
		i++
	}
	return i
}

func questionOrNA(q string) string {
	if q == "" {
		return "N/A"
	}
	return q
}
