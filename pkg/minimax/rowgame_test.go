package minimax

// A tiny single-row game used as the test fixture: five cells, the players
// alternately claim a free cell, three adjacent own marks win, a full board
// is a draw. Small enough to enumerate exhaustively.

const (
	rowEmpty  uint8 = 0
	rowFirst  uint8 = 1
	rowSecond uint8 = 2
)

type rowState struct {
	Cells [5]uint8
}

type rowOps struct{}

func (rowOps) Initial() rowState {
	return rowState{}
}

func (rowOps) Turn(s rowState) Player {
	marks := 0
	for _, c := range s.Cells {
		if c != rowEmpty {
			marks++
		}
	}
	return Player(marks % 2)
}

func (rowOps) Moves(s rowState) []int {
	moves := make([]int, 0, len(s.Cells))
	for i, c := range s.Cells {
		if c == rowEmpty {
			moves = append(moves, i)
		}
	}
	return moves
}

func (o rowOps) Apply(s rowState, mv int) rowState {
	mark := rowFirst
	if o.Turn(s) == Second {
		mark = rowSecond
	}
	s.Cells[mv] = mark
	return s
}

func rowWinner(s rowState) uint8 {
	for i := 0; i+2 < len(s.Cells); i++ {
		if s.Cells[i] != rowEmpty && s.Cells[i] == s.Cells[i+1] && s.Cells[i] == s.Cells[i+2] {
			return s.Cells[i]
		}
	}
	return rowEmpty
}

func (rowOps) IsTerminal(s rowState) bool {
	if rowWinner(s) != rowEmpty {
		return true
	}
	for _, c := range s.Cells {
		if c == rowEmpty {
			return false
		}
	}
	return true
}

func (rowOps) Utility(s rowState, p Player) Result {
	w := rowWinner(s)
	if w == rowEmpty {
		return 0
	}
	if (w == rowFirst) == (p == First) {
		return 1
	}
	return -1
}

// Every reachable state of the row game, deduplicated by value
func reachableRowStates() []rowState {
	ops := rowOps{}
	seen := make(map[rowState]bool)
	order := []rowState{}

	var walk func(s rowState)
	walk = func(s rowState) {
		if seen[s] {
			return
		}
		seen[s] = true
		order = append(order, s)
		if ops.IsTerminal(s) {
			return
		}
		for _, mv := range ops.Moves(s) {
			walk(ops.Apply(s, mv))
		}
	}

	walk(ops.Initial())
	return order
}

// Independent full game tree size (counting every state once per path),
// to cross-check the solvers' node accounting
func rowTreeSize(s rowState) int {
	ops := rowOps{}
	if ops.IsTerminal(s) {
		return 1
	}
	nodes := 1
	for _, mv := range ops.Moves(s) {
		nodes += rowTreeSize(ops.Apply(s, mv))
	}
	return nodes
}
