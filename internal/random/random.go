// Package random provides unbiased selection helpers over small pools.
package random

import (
	"math/rand/v2"

	"hoops-trivia/internal/domain"
)

// Source yields uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Default draws from the runtime's goroutine-safe generator.
var Default Source = globalSource{}

// NewSeeded returns a deterministic source. Not safe for concurrent use.
func NewSeeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Shuffle returns a Fisher-Yates permutation of in without touching in.
func Shuffle[T any](src Source, in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	for i := len(out) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// PickOne returns a uniformly chosen element.
func PickOne[T any](src Source, pool []T) (T, error) {
	var zero T
	if len(pool) == 0 {
		return zero, domain.ErrEmptyPool
	}
	return pool[src.IntN(len(pool))], nil
}

// PickDistinctOthers draws count elements with distinct keys, none sharing exclude's key.
// Duplicates in pool collapse to their first occurrence before drawing.
func PickDistinctOthers[T any, K comparable](src Source, pool []T, exclude T, count int, key func(T) K) ([]T, error) {
	skip := key(exclude)
	seen := make(map[K]struct{}, len(pool))
	eligible := make([]T, 0, len(pool))
	for _, item := range pool {
		k := key(item)
		if k == skip {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		eligible = append(eligible, item)
	}
	if len(eligible) < count {
		return nil, &domain.InsufficientPoolError{Need: count, Have: len(eligible)}
	}
	return Shuffle(src, eligible)[:count], nil
}
