package bench

import (
	"lukechampine.com/frand"

	"github.com/IlikeChooros/go-minimax/pkg/book"
	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

// SolverPlayer picks the move an alpha-beta search considers best.
type SolverPlayer[S minimax.StateLike, M minimax.MoveLike] struct {
	ops minimax.GameOperations[S, M]
}

func NewSolverPlayer[S minimax.StateLike, M minimax.MoveLike](ops minimax.GameOperations[S, M]) *SolverPlayer[S, M] {
	return &SolverPlayer[S, M]{ops: ops}
}

func (p *SolverPlayer[S, M]) Name() string { return "solver" }

func (p *SolverPlayer[S, M]) Select(s S) (M, error) {
	mv, _, err := minimax.NewSolver(p.ops).Solve(s)
	return mv, err
}

func (p *SolverPlayer[S, M]) Clone() PlayerLike[S, M] {
	return &SolverPlayer[S, M]{ops: p.ops}
}

// MinimaxPlayer picks moves with the full-width search, mostly useful as a
// baseline for the pruning solver.
type MinimaxPlayer[S minimax.StateLike, M minimax.MoveLike] struct {
	ops minimax.GameOperations[S, M]
}

func NewMinimaxPlayer[S minimax.StateLike, M minimax.MoveLike](ops minimax.GameOperations[S, M]) *MinimaxPlayer[S, M] {
	return &MinimaxPlayer[S, M]{ops: ops}
}

func (p *MinimaxPlayer[S, M]) Name() string { return "minimax" }

func (p *MinimaxPlayer[S, M]) Select(s S) (M, error) {
	mv, _, err := minimax.NewMinimax(p.ops).Solve(s)
	return mv, err
}

func (p *MinimaxPlayer[S, M]) Clone() PlayerLike[S, M] {
	return &MinimaxPlayer[S, M]{ops: p.ops}
}

// BookPlayer answers from the opening book when the state is booked and
// falls back to the given player otherwise.
type BookPlayer[S minimax.StateLike, M minimax.MoveLike] struct {
	book     *book.Book[S, M]
	fallback PlayerLike[S, M]
}

func NewBookPlayer[S minimax.StateLike, M minimax.MoveLike](b *book.Book[S, M], fallback PlayerLike[S, M]) *BookPlayer[S, M] {
	return &BookPlayer[S, M]{book: b, fallback: fallback}
}

func (p *BookPlayer[S, M]) Name() string { return "book+" + p.fallback.Name() }

func (p *BookPlayer[S, M]) Select(s S) (M, error) {
	if mv, ok := p.book.Lookup(s); ok {
		return mv, nil
	}
	return p.fallback.Select(s)
}

func (p *BookPlayer[S, M]) Clone() PlayerLike[S, M] {
	// The book is read-only after Build, only the fallback needs a copy
	return &BookPlayer[S, M]{book: p.book, fallback: p.fallback.Clone()}
}

// RandomPlayer picks uniformly among the legal moves.
type RandomPlayer[S minimax.StateLike, M minimax.MoveLike] struct {
	ops minimax.GameOperations[S, M]
	rng *frand.RNG
}

func NewRandomPlayer[S minimax.StateLike, M minimax.MoveLike](ops minimax.GameOperations[S, M]) *RandomPlayer[S, M] {
	return &RandomPlayer[S, M]{ops: ops, rng: frand.New()}
}

func (p *RandomPlayer[S, M]) Name() string { return "random" }

func (p *RandomPlayer[S, M]) Select(s S) (M, error) {
	moves := p.ops.Moves(s)
	if len(moves) == 0 {
		var zero M
		return zero, minimax.ErrNoMoves
	}
	return moves[p.rng.Intn(len(moves))], nil
}

func (p *RandomPlayer[S, M]) Clone() PlayerLike[S, M] {
	return &RandomPlayer[S, M]{ops: p.ops, rng: frand.New()}
}
