package parser

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSnippet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"shorter than limit", "abc", 20, "abc"},
		{"exact limit", "abcde", 5, "abcde"},
		{"cut", "abcdefgh", 3, "abc"},
		{"multibyte runes", "ÄÖÜäöü", 4, "ÄÖÜä"},
		{"non-positive limit keeps all", "abc", 0, "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Snippet(tt.in, tt.n))
		})
	}
}

func TestSplitLinesAndIsBlank(t *testing.T) {
	t.Parallel()

	lines := SplitLines("a\n\n  \r\nb")
	assert.Len(t, lines, 4)
	assert.False(t, IsBlank(lines[0]))
	assert.True(t, IsBlank(lines[1]))
	assert.True(t, IsBlank(lines[2]))
	assert.Equal(t, "  ", lines[2], "CRLF is a single line break")
	assert.Equal(t, []string{""}, SplitLines(""))
}

func TestRecorder_Policies(t *testing.T) {
	t.Parallel()

	last := NewRecorder(LastWins)
	last.Record("one")
	last.Record("two")
	assert.Equal(t, "two", last.Message())

	first := NewRecorder(FirstWins)
	first.Record("one")
	first.Record("two")
	assert.Equal(t, "one", first.Message())

	first.Override("forced")
	assert.Equal(t, "forced", first.Message())

	first.Fallback("ignored")
	assert.Equal(t, "forced", first.Message())

	empty := NewRecorder(FirstWins)
	assert.True(t, empty.Empty())
	empty.Record("")
	assert.True(t, empty.Empty(), "empty messages are not recorded")
	empty.Fallback("fallback")
	assert.Equal(t, "fallback", empty.Message())
}

func TestApply_Defaults(t *testing.T) {
	t.Parallel()

	o := Apply()
	assert.Equal(t, DefaultSnippetLength, o.SnippetLength)
	assert.NotEqual(t, uuid.Nil, o.NewID())

	fixed := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	o = Apply(WithIDGenerator(func() uuid.UUID { return fixed }), WithSnippetLength(7), WithSnippetLength(0))
	assert.Equal(t, fixed, o.NewID())
	assert.Equal(t, 7, o.SnippetLength, "non-positive lengths are ignored")
}
