package studyset

import (
	"slices"

	"github.com/heartmarshall/practice-text/internal/locale"
	"github.com/heartmarshall/practice-text/internal/shuffle"
)

// StudySet is the outcome of a successful import.
type StudySet[T any] struct {
	// Translations is the language the set was parsed in.
	Translations *locale.TranslationSet
	// Source keeps the records in the order they were written.
	Source []T
	// Items is the order to study in: a shuffled copy of Source when
	// RandomOrder is set, a plain copy otherwise.
	Items       []T
	RandomOrder bool
	// Warning is set when some records could not be parsed.
	Warning string

	src shuffle.Source
}

// Partial reports whether the import dropped some records.
func (s StudySet[T]) Partial() bool { return s.Warning != "" }

// Restart derives a fresh Items order from Source, reshuffling when the
// set is in random order.
func (s StudySet[T]) Restart() StudySet[T] {
	s.Items = arrange(s.src, s.Source, s.RandomOrder)
	return s
}

func arrange[T any](src shuffle.Source, items []T, random bool) []T {
	if random {
		if src == nil {
			src = shuffle.Global()
		}
		return shuffle.SliceWith(src, items)
	}
	return slices.Clone(items)
}
