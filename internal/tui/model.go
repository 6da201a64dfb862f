// Package tui is the terminal front end for reviewing an imported study set.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/heartmarshall/practice-text/internal/domain"
	"github.com/heartmarshall/practice-text/internal/locale"
	"github.com/heartmarshall/practice-text/internal/review"
	"github.com/heartmarshall/practice-text/internal/service/studyset"
)

type sessionState int

const (
	stateDeck sessionState = iota
	stateQuiz
)

// Model is the bubbletea model for one review session.
type Model struct {
	state   sessionState
	tr      *locale.TranslationSet
	warning string
	status  string
	width   int

	deck     *review.Deck
	deckKeys deckKeys

	quiz     *review.Quiz
	quizSet  studyset.StudySet[domain.MultipleChoiceQuestion]
	quizKeys quizKeys
	cursor   int
	feedback *review.Feedback

	help help.Model
}

// NewDeck builds a flashcard review session.
func NewDeck(set studyset.StudySet[domain.Flashcard]) Model {
	tr := set.Translations
	return Model{
		state:    stateDeck,
		tr:       tr,
		warning:  set.Warning,
		deck:     review.NewDeck(set.Items),
		deckKeys: newDeckKeys(tr),
		help:     help.New(),
	}
}

// NewQuiz builds a multiple-choice quiz session.
func NewQuiz(set studyset.StudySet[domain.MultipleChoiceQuestion]) Model {
	tr := set.Translations
	m := Model{
		state:    stateQuiz,
		tr:       tr,
		warning:  set.Warning,
		quiz:     review.NewQuiz(set.Items),
		quizSet:  set,
		quizKeys: newQuizKeys(tr),
		help:     help.New(),
	}
	m.quizKeys.Restart.SetEnabled(m.quiz.Complete())
	return m
}

// Run starts an interactive program and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, m Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd { return nil }

// --- Update ---

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, _ := docStyle.GetFrameSize()
		m.width = msg.Width - h
		m.help.Width = m.width
		return m, nil

	case tea.KeyMsg:
		if m.state == stateDeck {
			return m.updateDeck(msg)
		}
		return m.updateQuiz(msg)
	}
	return m, nil
}

func (m Model) updateDeck(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.deckKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.deckKeys.Toggle):
		m.deck.ToggleAnswer()
	case key.Matches(msg, m.deckKeys.Next):
		m.deck.Next()
	case key.Matches(msg, m.deckKeys.Previous):
		m.deck.Previous()
	}
	return m, nil
}

func (m Model) updateQuiz(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.quizKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.quizKeys.Restart):
		m.quiz.Restart(m.quizSet.Restart().Items)
		m.cursor, m.feedback = 0, nil

	case key.Matches(msg, m.quizKeys.Choose):
		if idx, ok := domain.OptionIndex(msg.String()); ok && m.quiz.Select(idx) {
			m.cursor = idx
		}

	case key.Matches(msg, m.quizKeys.Up):
		m.moveCursor(-1)

	case key.Matches(msg, m.quizKeys.Down):
		m.moveCursor(1)

	case key.Matches(msg, m.quizKeys.Confirm):
		m.confirm()
	}

	m.quizKeys.Restart.SetEnabled(m.quiz.Complete())
	return m, nil
}

func (m *Model) moveCursor(step int) {
	if m.quiz.Submitted() || m.quiz.Complete() {
		return
	}
	next := m.cursor + step
	if m.quiz.Selected() < 0 {
		// The first arrow press selects the option under the cursor.
		next = m.cursor
	}
	if next < 0 || next >= domain.OptionCount {
		return
	}
	m.cursor = next
	m.quiz.Select(next)
}

func (m *Model) confirm() {
	if m.quiz.Complete() {
		return
	}
	if m.quiz.Submitted() {
		m.quiz.Next()
		m.cursor, m.feedback = 0, nil
		return
	}
	fb, err := m.quiz.Submit()
	if errors.Is(err, review.ErrNoSelection) {
		m.status = m.tr.Get(locale.QuizSelectOption)
		return
	}
	if err == nil {
		m.feedback = &fb
	}
}

// --- View ---

func (m Model) View() string {
	var body string
	if m.state == stateDeck {
		body = m.viewDeck()
	} else {
		body = m.viewQuiz()
	}

	var b strings.Builder
	if m.warning != "" {
		b.WriteString(warningStyle.Render(m.warning))
		b.WriteString("\n\n")
	}
	b.WriteString(body)
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n\n")
	if m.state == stateDeck {
		b.WriteString(m.help.View(m.deckKeys))
	} else {
		b.WriteString(m.help.View(m.quizKeys))
	}
	return docStyle.Render(b.String())
}

func (m Model) cardWidth() int {
	if m.width <= 0 || m.width > maxCardWidth {
		return maxCardWidth
	}
	return m.width
}

func (m Model) viewDeck() string {
	card, ok := m.deck.Current()
	if !ok {
		return m.tr.Get(locale.ReviewNoCards)
	}
	idx, total := m.deck.Position()

	content := card.Question
	if m.deck.AnswerShown() {
		content += "\n\n" + dividerStyle.Render(strings.Repeat("─", 8)) + "\n\n" + answerStyle.Render(card.Answer)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.tr.Format(locale.ReviewCardLabel, idx+1, total)),
		cardStyle.Width(m.cardWidth()).Render(content),
	)
}

func (m Model) viewQuiz() string {
	_, total := m.quiz.Position()
	if total == 0 {
		return m.tr.Get(locale.QuizNoMCQs)
	}
	if m.quiz.Complete() {
		return lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(m.tr.Get(locale.QuizCompleteTitle)),
			"",
			m.tr.Format(locale.QuizFinalScore, m.quiz.Score(), total),
		)
	}

	q, _ := m.quiz.Current()
	idx, _ := m.quiz.Position()

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.tr.Format(locale.QuizQuestionLabel, idx+1, total)))
	b.WriteString("  ")
	b.WriteString(statusStyle.Render(m.tr.Format(locale.QuizScoreLabel, m.quiz.Score(), total)))
	b.WriteString("\n\n")
	b.WriteString(q.Question)
	b.WriteString("\n\n")

	for i, opt := range q.Options {
		letter, _ := domain.OptionLetter(i)
		line := fmt.Sprintf("%s. %s", letter, opt)
		switch {
		case m.feedback != nil && i == q.CorrectAnswerIndex:
			line = correctStyle.Render("✓ " + line)
		case m.feedback != nil && i == m.feedback.Selected:
			line = wrongStyle.Render("✗ " + line)
		case i == m.quiz.Selected():
			line = cursorStyle.Render("> " + line)
		default:
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if fb := m.feedback; fb != nil {
		b.WriteString("\n")
		if fb.Correct {
			b.WriteString(correctStyle.Render(m.tr.Get(locale.QuizFeedbackCorrect)))
		} else {
			b.WriteString(wrongStyle.Render(m.tr.Format(locale.QuizFeedbackIncorrect, fb.CorrectLetter+". "+fb.CorrectText)))
		}
		if fb.Explanation != nil {
			b.WriteString("\n")
			b.WriteString(m.tr.Get(locale.QuizExplanationLabel))
			b.WriteString(" ")
			b.WriteString(*fb.Explanation)
		}
	}

	return cardStyle.Width(m.cardWidth()).Render(strings.TrimRight(b.String(), "\n"))
}
