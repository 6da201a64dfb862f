// Package shuffle provides a copy-returning Fisher–Yates shuffle.
package shuffle

import "math/rand/v2"

// Source is the randomness a shuffle draws from. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Global returns a Source backed by the package-level generator. It is
// safe for concurrent use.
func Global() Source { return globalSource{} }

// Slice returns a uniformly shuffled copy of items using the global
// generator. items is left untouched.
func Slice[T any](items []T) []T {
	return SliceWith(Global(), items)
}

// SliceWith is Slice with an explicit random source.
func SliceWith[T any](src Source, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)

	for i := len(out) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
