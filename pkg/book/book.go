// Package book builds and serves an opening book: a partial lookup table
// mapping early-game states to a recommended move, bootstrapped from
// randomized self-play instead of full search.
package book

import (
	"github.com/samber/lo"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

// Book is a read-only recommendation table keyed by state value. Coverage is
// partial by design, entries exist only for states actually visited while
// building, so a miss is the expected common case and callers must fall back
// to full search.
type Book[S minimax.StateLike, M minimax.MoveLike] struct {
	entries map[S]M
}

func New[S minimax.StateLike, M minimax.MoveLike]() *Book[S, M] {
	return &Book[S, M]{entries: make(map[S]M)}
}

// Lookup the recommended move for the state, the second return value is
// false on a miss
func (bk *Book[S, M]) Lookup(s S) (M, bool) {
	mv, ok := bk.entries[s]
	return mv, ok
}

func (bk *Book[S, M]) Len() int {
	return len(bk.entries)
}

// All states the book has a recommendation for, in no particular order
func (bk *Book[S, M]) States() []S {
	return lo.Keys(bk.entries)
}
