package minimax

import "time"

// Minimax is the plain full-width variant of the Solver, visiting every node
// of the game tree. It always picks the same move as the pruning solver
// (strictly > comparisons on both sides guarantee that), only the visit
// count differs. Kept mostly as a reference for tests and benchmarks.
type Minimax[S StateLike, M MoveLike] struct {
	ops        GameOperations[S, M]
	maximizing Player
	stats      SearchStats
}

func NewMinimax[S StateLike, M MoveLike](ops GameOperations[S, M]) *Minimax[S, M] {
	return &Minimax[S, M]{ops: ops}
}

func (m *Minimax[S, M]) Stats() SearchStats {
	return m.stats
}

func (m *Minimax[S, M]) TotalNodes() int {
	return m.stats.Nodes
}

func (m *Minimax[S, M]) Solve(root S) (M, Result, error) {
	var best M
	if m.ops.IsTerminal(root) {
		return best, 0, ErrNoMoves
	}
	moves := m.ops.Moves(root)
	if len(moves) == 0 {
		return best, 0, ErrNoMoves
	}

	tstart := time.Now()
	m.stats = SearchStats{}
	m.maximizing = m.ops.Turn(root)

	bestValue := -Infinity
	m.stats.Nodes++

	for _, mv := range moves {
		v := m.minValue(m.ops.Apply(root, mv))
		if v > bestValue {
			bestValue = v
			best = mv
		}
	}

	m.stats.Elapsed = time.Since(tstart)
	return best, bestValue, nil
}

func (m *Minimax[S, M]) maxValue(st S) Result {
	m.stats.Nodes++
	if m.ops.IsTerminal(st) {
		m.stats.Terminals++
		return m.ops.Utility(st, m.maximizing)
	}

	v := -Infinity
	for _, mv := range m.ops.Moves(st) {
		v = max(v, m.minValue(m.ops.Apply(st, mv)))
	}
	return v
}

func (m *Minimax[S, M]) minValue(st S) Result {
	m.stats.Nodes++
	if m.ops.IsTerminal(st) {
		m.stats.Terminals++
		return m.ops.Utility(st, m.maximizing)
	}

	v := Infinity
	for _, mv := range m.ops.Moves(st) {
		v = min(v, m.maxValue(m.ops.Apply(st, mv)))
	}
	return v
}
