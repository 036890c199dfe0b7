// Package minimax implements full-depth minimax game tree search with
// alpha-beta pruning over a user-supplied game definition.
package minimax

import (
	"time"

	"github.com/rs/zerolog/log"
)

// thanks Wikipedia:
/**function alphabeta(node, depth, α, β, maximizingPlayer) is
    if depth = 0 or node is a terminal node then
        return the heuristic value of node
    if maximizingPlayer then
        value := −∞
        for each child of node do
            value := max(value, alphabeta(child, depth − 1, α, β, FALSE))
            α := max(α, value)
            if α ≥ β then
                break (* β cut-off *)
        return value
    else
        value := +∞
        for each child of node do
            value := min(value, alphabeta(child, depth − 1, α, β, TRUE))
            β := min(β, value)
            if α ≥ β then
                break (* α cut-off *)
        return value
(* Initial call *)
alphabeta(origin, depth, −∞, +∞, TRUE)
**/

// Solver implements the minimax + alphabeta algorithm.
type Solver[S StateLike, M MoveLike] struct {
	ops            GameOperations[S, M]
	maximizing     Player // the player Solve was called for, fixed for the whole search
	disablePruning bool
	stats          SearchStats
}

func NewSolver[S StateLike, M MoveLike](ops GameOperations[S, M]) *Solver[S, M] {
	return &Solver[S, M]{ops: ops}
}

// Turn off the cutoff checks, the search then visits the full tree,
// exactly like the plain Minimax solver
func (s *Solver[S, M]) SetPruningDisabled(v bool) {
	s.disablePruning = v
}

// Stats of the last Solve call
func (s *Solver[S, M]) Stats() SearchStats {
	return s.stats
}

// Number of states visited during the last Solve call
func (s *Solver[S, M]) TotalNodes() int {
	return s.stats.Nodes
}

// Solve picks the move maximizing the guaranteed outcome for the player on
// turn in 'root', against an optimal opponent. The root state must not be
// terminal.
func (s *Solver[S, M]) Solve(root S) (M, Result, error) {
	var best M
	if s.ops.IsTerminal(root) {
		return best, 0, ErrNoMoves
	}
	moves := s.ops.Moves(root)
	if len(moves) == 0 {
		return best, 0, ErrNoMoves
	}

	tstart := time.Now()
	s.stats = SearchStats{}
	s.maximizing = s.ops.Turn(root)

	log.Debug().
		Int("moves", len(moves)).
		Bool("pruning-disabled", s.disablePruning).
		Msg("alphabeta-solve-config")

	α, β := -Infinity, Infinity
	bestValue := -Infinity
	s.stats.Nodes++

	for _, mv := range moves {
		v := s.minValue(s.ops.Apply(root, mv), α, β)
		// Strictly > : the first move achieving the maximum is kept
		if v > bestValue {
			bestValue = v
			best = mv
		}
		// Later siblings benefit from the tightened bound
		α = max(α, v)
	}

	s.stats.Elapsed = time.Since(tstart)
	log.Debug().
		Int("nodes", s.stats.Nodes).
		Int("cutoffs", s.stats.Cutoffs).
		Float64("time-elapsed-sec", s.stats.Elapsed.Seconds()).
		Msg("solve-returning")

	return best, bestValue, nil
}

func (s *Solver[S, M]) maxValue(st S, α, β Result) Result {
	s.stats.Nodes++
	if s.ops.IsTerminal(st) {
		s.stats.Terminals++
		return s.ops.Utility(st, s.maximizing)
	}

	v := -Infinity
	for _, mv := range s.ops.Moves(st) {
		v = max(v, s.minValue(s.ops.Apply(st, mv), α, β))
		if !s.disablePruning && v >= β {
			// β cut-off: the minimizing ancestor will never allow this branch
			s.stats.Cutoffs++
			return v
		}
		α = max(α, v)
	}
	return v
}

func (s *Solver[S, M]) minValue(st S, α, β Result) Result {
	s.stats.Nodes++
	if s.ops.IsTerminal(st) {
		s.stats.Terminals++
		return s.ops.Utility(st, s.maximizing)
	}

	v := Infinity
	for _, mv := range s.ops.Moves(st) {
		v = min(v, s.maxValue(s.ops.Apply(st, mv), α, β))
		if !s.disablePruning && v <= α {
			// α cut-off: the maximizing ancestor already has a better option
			s.stats.Cutoffs++
			return v
		}
		β = min(β, v)
	}
	return v
}
