package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/heartmarshall/practice-text/internal/domain"
	"github.com/heartmarshall/practice-text/internal/locale"
	"github.com/heartmarshall/practice-text/internal/service/studyset"
)

// printer writes an imported set back out in the keyword format of its
// language, so the output of "parse" is itself valid input.
type printer struct {
	w   io.Writer
	err error

	keyword lipgloss.Style
	correct lipgloss.Style
	warn    lipgloss.Style
	fail    lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w)
	return &printer{
		w:       w,
		keyword: r.NewStyle().Bold(true).Foreground(lipgloss.Color("62")),
		correct: r.NewStyle().Foreground(lipgloss.Color("42")),
		warn:    r.NewStyle().Foreground(lipgloss.Color("214")),
		fail:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	}
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) field(style lipgloss.Style, kw, value string) {
	p.printf("%s %s\n", style.Render(kw+":"), value)
}

func (p *printer) flashcards(set studyset.StudySet[domain.Flashcard]) {
	qk := set.Translations.Get(locale.FlashcardQuestionKeyword)
	ak := set.Translations.Get(locale.FlashcardAnswerKeyword)

	for i, c := range set.Items {
		if i > 0 {
			p.printf("\n")
		}
		p.field(p.keyword, qk, c.Question)
		p.field(p.keyword, ak, c.Answer)
	}
	p.warning(set.Warning)
}

func (p *printer) mcqs(set studyset.StudySet[domain.MultipleChoiceQuestion]) {
	qk := set.Translations.Get(locale.MCQQuestionKeyword)
	ck := set.Translations.Get(locale.MCQCorrectAnswerKeyword)
	ek := set.Translations.Get(locale.MCQExplanationKeyword)

	for i, q := range set.Items {
		if i > 0 {
			p.printf("\n")
		}
		p.field(p.keyword, qk, q.Question)
		for j, opt := range q.Options {
			letter, _ := domain.OptionLetter(j)
			p.printf("%s. %s\n", letter, opt)
		}
		letter, _ := q.CorrectOption()
		p.field(p.correct, ck, letter)
		if q.Explanation != nil {
			p.field(p.keyword, ek, *q.Explanation)
		}
	}
	p.warning(set.Warning)
}

func (p *printer) warning(msg string) {
	if msg == "" {
		return
	}
	p.printf("\n%s\n", p.warn.Render(strings.TrimSpace(msg)))
}

func (p *printer) failure(msg string) {
	p.printf("%s\n", p.fail.Render(msg))
}
