package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/heartmarshall/practice-text/internal/locale"
)

type deckKeys struct {
	Toggle   key.Binding
	Next     key.Binding
	Previous key.Binding
	Quit     key.Binding
}

func newDeckKeys(tr *locale.TranslationSet) deckKeys {
	return deckKeys{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", tr.Get(locale.ReviewShowAnswer)+" / "+tr.Get(locale.ReviewHideAnswer)),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "n"),
			key.WithHelp("→", tr.Get(locale.ReviewNext)),
		),
		Previous: key.NewBinding(
			key.WithKeys("left", "h", "p"),
			key.WithHelp("←", tr.Get(locale.ReviewPrevious)),
		),
		Quit: quitBinding(tr),
	}
}

func (k deckKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Previous, k.Next, k.Quit}
}

func (k deckKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type quizKeys struct {
	Choose  key.Binding
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Restart key.Binding
	Quit    key.Binding
}

func newQuizKeys(tr *locale.TranslationSet) quizKeys {
	return quizKeys{
		Choose: key.NewBinding(
			key.WithKeys("a", "b", "c", "d", "A", "B", "C", "D"),
			key.WithHelp("a-d", ""),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/↓", ""),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", tr.Get(locale.QuizSubmit)+" / "+tr.Get(locale.QuizNextQuestion)),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", tr.Get(locale.QuizRestart)),
			key.WithDisabled(),
		),
		Quit: quitBinding(tr),
	}
}

func (k quizKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Choose, k.Up, k.Confirm, k.Restart, k.Quit}
}

func (k quizKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func quitBinding(tr *locale.TranslationSet) key.Binding {
	return key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", tr.Get(locale.CommonQuit)),
	)
}
