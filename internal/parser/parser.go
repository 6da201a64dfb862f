// Package parser holds what the flashcard and MCQ parsers share: line
// handling, the single-message error recorder and parser options.
package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// DefaultSnippetLength is how many characters of an offending line are quoted
// in error messages.
const DefaultSnippetLength = 20

// SplitLines splits raw text into lines, treating "\r\n" as a single break.
func SplitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// IsBlank reports whether line is empty after trimming.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// Snippet returns at most n runes of s.
func Snippet(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// Options configures a parser.
type Options struct {
	NewID         func() uuid.UUID
	SnippetLength int
}

// Option mutates Options.
type Option func(*Options)

// WithIDGenerator overrides how record ids are produced.
func WithIDGenerator(gen func() uuid.UUID) Option {
	return func(o *Options) {
		if gen != nil {
			o.NewID = gen
		}
	}
}

// WithSnippetLength overrides DefaultSnippetLength.
func WithSnippetLength(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.SnippetLength = n
		}
	}
}

// Apply resolves opts over the defaults.
func Apply(opts ...Option) Options {
	o := Options{
		NewID:         uuid.New,
		SnippetLength: DefaultSnippetLength,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
