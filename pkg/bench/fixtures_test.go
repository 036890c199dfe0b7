package bench

import (
	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

// Row game used as the arena test fixture: five cells in a row, players
// alternate placing marks, three adjacent equal marks win. Only the first
// mover can ever win, the second mover runs out of marks, so an optimal
// player can never lose this game.

const (
	rowEmpty uint8 = iota
	rowFirst
	rowSecond
)

type rowState struct {
	Cells [5]uint8
}

type rowOps struct{}

func (rowOps) Initial() rowState { return rowState{} }

func (rowOps) Turn(s rowState) minimax.Player {
	marks := 0
	for _, c := range s.Cells {
		if c != rowEmpty {
			marks++
		}
	}
	if marks%2 == 0 {
		return minimax.First
	}
	return minimax.Second
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
	if o.Turn(s) == minimax.Second {
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

func (o rowOps) IsTerminal(s rowState) bool {
	return rowWinner(s) != rowEmpty || len(o.Moves(s)) == 0
}

func (rowOps) Utility(s rowState, p minimax.Player) minimax.Result {
	winner := rowWinner(s)
	if winner == rowEmpty {
		return 0
	}
	mine := rowFirst
	if p == minimax.Second {
		mine = rowSecond
	}
	if winner == mine {
		return 1
	}
	return -1
}

var _ minimax.GameOperations[rowState, int] = rowOps{}
