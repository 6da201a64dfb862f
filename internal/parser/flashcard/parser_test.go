package flashcard

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/heartmarshall/practice-text/internal/domain"
	"github.com/heartmarshall/practice-text/internal/locale"
	"github.com/heartmarshall/practice-text/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func english(t *testing.T) *locale.TranslationSet {
	t.Helper()
	s, err := locale.Default().Get(locale.English)
	require.NoError(t, err)
	return s
}

func indonesian(t *testing.T) *locale.TranslationSet {
	t.Helper()
	s, err := locale.Default().Get(locale.Indonesian)
	require.NoError(t, err)
	return s
}

func mustParse(t *testing.T, tr *locale.TranslationSet, text string) domain.ParseResult[domain.Flashcard] {
	t.Helper()
	res, err := Parse(text, tr)
	require.NoError(t, err)
	return res
}

type pair struct{ q, a string }

func pairsOf(cards []domain.Flashcard) []pair {
	out := make([]pair, 0, len(cards))
	for _, c := range cards {
		out = append(out, pair{c.Question, c.Answer})
	}
	return out
}

// ---------------------------------------------------------------------------
// Well-formed input
// ---------------------------------------------------------------------------

func TestParse_TwoPairs(t *testing.T) {
	t.Parallel()

	res := mustParse(t, english(t), "Question: 1+1?\nAnswer: 2\n\nQuestion: Capital of France?\nAnswer: Paris")

	assert.Empty(t, res.Error)
	assert.Equal(t, []pair{{"1+1?", "2"}, {"Capital of France?", "Paris"}}, pairsOf(res.Records))
}

func TestParse_NPairsRoundTrip(t *testing.T) {
	t.Parallel()

	tr := english(t)
	for _, n := range []int{1, 2, 5, 20} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			var blocks []string
			var want []pair
			for i := range n {
				q, a := fmt.Sprintf("question %d?", i), fmt.Sprintf("answer %d", i)
				blocks = append(blocks, "Question: "+q+"\nAnswer: "+a)
				want = append(want, pair{q, a})
			}

			res := mustParse(t, tr, strings.Join(blocks, "\n\n"))
			assert.Empty(t, res.Error)
			assert.Equal(t, want, pairsOf(res.Records))
		})
	}
}

func TestParse_IndonesianKeywords(t *testing.T) {
	t.Parallel()

	res := mustParse(t, indonesian(t), "Soal: Ibu kota Prancis?\nJawaban: Paris")
	assert.Empty(t, res.Error)
	assert.Equal(t, []pair{{"Ibu kota Prancis?", "Paris"}}, pairsOf(res.Records))
}

func TestParse_IndentationAndCRLF(t *testing.T) {
	t.Parallel()

	res := mustParse(t, english(t), "  Question:   spaced?  \r\n\tAnswer:  yes \r\n")
	assert.Empty(t, res.Error)
	assert.Equal(t, []pair{{"spaced?", "yes"}}, pairsOf(res.Records))
}

func TestParse_TextContainingColons(t *testing.T) {
	t.Parallel()

	res := mustParse(t, english(t), "Question: Ratio 1:2?\nAnswer: half: 0.5")
	assert.Empty(t, res.Error)
	assert.Equal(t, []pair{{"Ratio 1:2?", "half: 0.5"}}, pairsOf(res.Records))
}

// ---------------------------------------------------------------------------
// Empty input
// ---------------------------------------------------------------------------

func TestParse_EmptyInput(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "   ", "\n\n\t\n", " \r\n "} {
		res := mustParse(t, english(t), text)
		assert.Empty(t, res.Records, "input %q", text)
		assert.Empty(t, res.Error, "input %q", text)
		assert.NotNil(t, res.Records)
	}
}

// ---------------------------------------------------------------------------
// Problems
// ---------------------------------------------------------------------------

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		text      string
		wantPairs []pair
		wantErr   string
	}{
		{
			name:      "dangling question after a valid pair",
			text:      "Question: 1+1?\nAnswer: 2\n\nQuestion: What is pi?",
			wantPairs: []pair{{"1+1?", "2"}},
			wantErr:   "Last Question 'What is pi?' is missing an answer.",
		},
		{
			name:    "plain text without keywords",
			text:    "just some text\nmore text",
			wantErr: "Error Line 2: Must start with 'Question:', not 'more text...'.",
		},
		{
			name:    "first line with a colon",
			text:    "Term: definition",
			wantErr: "Error Line 1: First line must start with 'Question:', not 'Term: definition...'.",
		},
		{
			name:    "colon heuristic only applies to line 1",
			text:    "\nTerm: definition",
			wantErr: "Error Line 2: Must start with 'Question:', not 'Term: definition...'.",
		},
		{
			name:    "answer without question",
			text:    "Answer: 42",
			wantErr: "Error Line 1: 'Answer:' without a preceding 'Question:'.",
		},
		{
			name:    "empty answer",
			text:    "Question: Q1\nAnswer:   ",
			wantErr: "Error Line 2: Missing answer text after 'Answer:' for Question 'Q1'.",
		},
		{
			name:      "question overwritten before answer",
			text:      "Question: Q1\nQuestion: Q2\nAnswer: A2",
			wantPairs: []pair{{"Q2", "A2"}},
			wantErr:   "Error Line 2: Missing answer for previous Question 'Q1'.",
		},
		{
			name:      "unrecognized line while an answer is expected",
			text:      "Question: Q1\nsomething else\nAnswer: A1",
			wantPairs: []pair{{"Q1", "A1"}},
			wantErr:   "Error Line 2: Unrecognized format 'something else...'. Please use 'Question:' or 'Answer:'.",
		},
		{
			name:    "snippet is cut to 20 characters",
			text:    "this line is definitely longer than twenty characters",
			wantErr: "Error Line 1: Must start with 'Question:', not 'this line is definit...'.",
		},
		{
			name:    "keyword without colon yields no valid pairs",
			text:    "Question what is this",
			wantErr: "No valid Question/Answer pairs found. Please check format: Question: [text] then Answer: [text].",
		},
		{
			name:    "keywords are case-sensitive",
			text:    "question: lower\nanswer: lower",
			wantErr: "Error Line 2: Must start with 'Question:', not 'answer: lower...'.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := mustParse(t, english(t), tt.text)
			assert.Equal(t, tt.wantErr, res.Error)
			if tt.wantPairs == nil {
				assert.Empty(t, res.Records)
			} else {
				assert.Equal(t, tt.wantPairs, pairsOf(res.Records))
			}
		})
	}
}

func TestParse_LastErrorWins(t *testing.T) {
	t.Parallel()

	// Line 1 reports a missing question text, line 2 then reports an
	// answer without a question; only the later message survives.
	res := mustParse(t, english(t), "Question:\nAnswer: orphan")
	assert.Equal(t, "Error Line 2: 'Answer:' without a preceding 'Question:'.", res.Error)
	assert.Empty(t, res.Records)
}

func TestParse_QuestionMissingText(t *testing.T) {
	t.Parallel()

	res := mustParse(t, english(t), "Question: Q1\nAnswer: A1\nQuestion:   ")
	assert.Equal(t, "Error Line 3: Missing question text after 'Question:'.", res.Error)
	assert.Equal(t, []pair{{"Q1", "A1"}}, pairsOf(res.Records))
}

func TestParse_UnansweredQuestionOverridesEarlierErrors(t *testing.T) {
	t.Parallel()

	res := mustParse(t, english(t), "Question: Q1\nAnswer: A1\nQuestion: Q2\nnot an answer")
	assert.Equal(t, "Last Question 'Q2' is missing an answer.", res.Error)
	assert.Len(t, res.Records, 1)
}

func TestParse_NoValidPairsIsLastResort(t *testing.T) {
	t.Parallel()

	// An earlier problem is kept instead of the generic message.
	res := mustParse(t, english(t), "Answer: orphan\nQuestion without colon")
	assert.Equal(t, "Error Line 1: 'Answer:' without a preceding 'Question:'.", res.Error)
}

func TestParse_IndonesianMessages(t *testing.T) {
	t.Parallel()

	res := mustParse(t, indonesian(t), "Soal: Apa itu air?")
	assert.Equal(t, "Soal terakhir 'Apa itu air?' tidak memiliki jawaban.", res.Error)
	assert.Empty(t, res.Records)
}

// ---------------------------------------------------------------------------
// Ids and options
// ---------------------------------------------------------------------------

func TestParse_FreshUniqueIDs(t *testing.T) {
	t.Parallel()

	text := "Question: a\nAnswer: b\nQuestion: c\nAnswer: d"
	first := mustParse(t, english(t), text)
	second := mustParse(t, english(t), text)

	require.Len(t, first.Records, 2)
	require.Len(t, second.Records, 2)

	seen := map[uuid.UUID]bool{}
	for _, c := range append(first.Records, second.Records...) {
		assert.NotEqual(t, uuid.Nil, c.ID)
		assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true
	}
}

func TestParse_Options(t *testing.T) {
	t.Parallel()

	var n int
	gen := func() uuid.UUID {
		n++
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte{byte(n)})
	}

	p, err := New(english(t), parser.WithIDGenerator(gen), parser.WithSnippetLength(5))
	require.NoError(t, err)

	res := p.Parse("Question: a\nAnswer: b")
	require.Len(t, res.Records, 1)
	assert.Equal(t, uuid.NewSHA1(uuid.NameSpaceOID, []byte{1}), res.Records[0].ID)

	res = p.Parse("abcdefghij")
	assert.Equal(t, "Error Line 1: Must start with 'Question:', not 'abcde...'.", res.Error)
}

func TestNew_MissingKeywords(t *testing.T) {
	t.Parallel()

	_, err := New(nil)
	require.ErrorIs(t, err, domain.ErrMissingKeyword)

	broken := english(t).With(map[locale.Key]string{locale.FlashcardAnswerKeyword: ""})
	_, err = Parse("Question: a\nAnswer: b", broken)
	require.ErrorIs(t, err, domain.ErrMissingKeyword)

	var mk *domain.MissingKeywordError
	require.ErrorAs(t, err, &mk)
	assert.Equal(t, string(locale.FlashcardAnswerKeyword), mk.Key)
}

func TestParse_CustomKeywords(t *testing.T) {
	t.Parallel()

	tr := english(t).With(map[locale.Key]string{
		locale.FlashcardQuestionKeyword: "Q",
		locale.FlashcardAnswerKeyword:   "A",
	})

	res := mustParse(t, tr, "Q: one\nA: two")
	assert.Empty(t, res.Error)
	assert.Equal(t, []pair{{"one", "two"}}, pairsOf(res.Records))
}
