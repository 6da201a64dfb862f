package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/heartmarshall/practice-text/internal/domain"
	"github.com/heartmarshall/practice-text/internal/locale"
	"github.com/heartmarshall/practice-text/internal/service/studyset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func english(t *testing.T) *locale.TranslationSet {
	t.Helper()
	s, err := locale.Default().Get(locale.English)
	require.NoError(t, err)
	return s
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var enter = tea.KeyMsg{Type: tea.KeyEnter}

func send(t *testing.T, m tea.Model, msgs ...tea.Msg) tea.Model {
	t.Helper()
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func deckSet(t *testing.T, warning string, cards ...domain.Flashcard) studyset.StudySet[domain.Flashcard] {
	return studyset.StudySet[domain.Flashcard]{
		Translations: english(t),
		Source:       cards,
		Items:        cards,
		Warning:      warning,
	}
}

func quizSet(t *testing.T) studyset.StudySet[domain.MultipleChoiceQuestion] {
	why := "two is two"
	items := []domain.MultipleChoiceQuestion{
		{ID: uuid.New(), Question: "Pick two", Options: []string{"one", "two", "three", "four"}, CorrectAnswerIndex: 1, Explanation: &why},
		{ID: uuid.New(), Question: "Pick three", Options: []string{"one", "two", "three", "four"}, CorrectAnswerIndex: 2},
	}
	return studyset.StudySet[domain.MultipleChoiceQuestion]{
		Translations: english(t),
		Source:       items,
		Items:        items,
	}
}

// ---------------------------------------------------------------------------
// Flashcards
// ---------------------------------------------------------------------------

func TestDeck_ToggleAndNavigate(t *testing.T) {
	t.Parallel()

	var m tea.Model = NewDeck(deckSet(t, "",
		domain.Flashcard{ID: uuid.New(), Question: "Q1", Answer: "A1"},
		domain.Flashcard{ID: uuid.New(), Question: "Q2", Answer: "A2"},
	))

	view := m.View()
	assert.Contains(t, view, "Card 1 of 2")
	assert.Contains(t, view, "Q1")
	assert.NotContains(t, view, "A1")

	m = send(t, m, enter)
	assert.Contains(t, m.View(), "A1")

	m = send(t, m, runes("n"))
	view = m.View()
	assert.Contains(t, view, "Card 2 of 2")
	assert.Contains(t, view, "Q2")
	assert.NotContains(t, view, "A2", "moving hides the answer")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Contains(t, m.View(), "Card 1 of 2", "navigation wraps")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Contains(t, m.View(), "Card 2 of 2")
}

func TestDeck_WarningAndEmpty(t *testing.T) {
	t.Parallel()

	m := NewDeck(deckSet(t, "something was skipped"))
	view := m.View()
	assert.Contains(t, view, "something was skipped")
	assert.Contains(t, view, "No flashcards to display.")
}

func TestDeck_Quit(t *testing.T) {
	t.Parallel()

	m := NewDeck(deckSet(t, "", domain.Flashcard{ID: uuid.New(), Question: "Q", Answer: "A"}))
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

// ---------------------------------------------------------------------------
// Quiz
// ---------------------------------------------------------------------------

func TestQuiz_FullRun(t *testing.T) {
	t.Parallel()

	var m tea.Model = NewQuiz(quizSet(t))
	view := m.View()
	assert.Contains(t, view, "Question 1 of 2")
	assert.Contains(t, view, "Score: 0/2")
	assert.Contains(t, view, "Pick two")

	m = send(t, m, enter)
	assert.Contains(t, m.View(), "Select an option first.")

	m = send(t, m, runes("b"), enter)
	view = m.View()
	assert.Contains(t, view, "Correct!")
	assert.Contains(t, view, "Explanation: two is two")
	assert.Contains(t, view, "Score: 1/2")

	m = send(t, m, runes("c"))
	assert.Contains(t, m.View(), "Correct!", "selection is locked after submit")

	m = send(t, m, enter)
	view = m.View()
	assert.Contains(t, view, "Question 2 of 2")
	assert.NotContains(t, view, "Correct!")

	m = send(t, m, runes("A"), enter)
	assert.Contains(t, m.View(), "Incorrect. The correct answer is: C. three")

	m = send(t, m, enter)
	view = m.View()
	assert.Contains(t, view, "Quiz Complete!")
	assert.Contains(t, view, "Your Final Score: 1 out of 2")

	m = send(t, m, runes("r"))
	view = m.View()
	assert.Contains(t, view, "Question 1 of 2")
	assert.Contains(t, view, "Score: 0/2")
}

func TestQuiz_RestartOnlyWhenComplete(t *testing.T) {
	t.Parallel()

	var m tea.Model = NewQuiz(quizSet(t))
	m = send(t, m, runes("b"), enter, enter)
	require.Contains(t, m.View(), "Question 2 of 2")

	m = send(t, m, runes("r"))
	assert.Contains(t, m.View(), "Question 2 of 2")
}

func TestQuiz_ArrowKeys(t *testing.T) {
	t.Parallel()

	var m tea.Model = NewQuiz(quizSet(t))
	down := tea.KeyMsg{Type: tea.KeyDown}
	up := tea.KeyMsg{Type: tea.KeyUp}

	m = send(t, m, down)
	assert.Contains(t, m.View(), "> A. one", "first press selects the option under the cursor")

	m = send(t, m, down, down, up)
	assert.Contains(t, m.View(), "> B. two")

	m = send(t, m, enter)
	assert.Contains(t, m.View(), "Correct!")
}

func TestQuiz_Empty(t *testing.T) {
	t.Parallel()

	set := quizSet(t)
	set.Items, set.Source = nil, nil
	m := NewQuiz(set)
	assert.Contains(t, m.View(), "No multiple choice questions to display.")
}

func TestUpdate_WindowSize(t *testing.T) {
	t.Parallel()

	var m tea.Model = NewDeck(deckSet(t, "", domain.Flashcard{ID: uuid.New(), Question: "Q", Answer: "A"}))
	m = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})

	model, ok := m.(Model)
	require.True(t, ok)
	assert.Equal(t, 36, model.width)
	assert.Equal(t, 36, model.cardWidth())
}
