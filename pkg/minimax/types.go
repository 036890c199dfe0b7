package minimax

import "errors"

// Other types, shared between the plain and the pruning solver

// Turn parity. First is the player to move in the game's initial state.
type Player uint8

const (
	First  Player = 0
	Second Player = 1
)

func (p Player) Other() Player {
	return p ^ 1
}

// Game tree value. Terminal utilities must stay in a small fixed range
// (-1, 0, +1 for loss/draw/win), the search bounds use Infinity.
type Result int

const (
	// Infinity is 10 million.
	Infinity Result = 10000000
)

type StateLike comparable
type MoveLike comparable

var ErrNoMoves = errors.New("no legal moves in the root state")

// GameOperations describes a two-player, zero-sum, perfect-information game
// to the solvers. States are immutable values: Apply must return a new state
// and never mutate its input, and identical positions must compare equal
// (they are used directly as map keys by the opening book).
type GameOperations[S StateLike, M MoveLike] interface {
	// Canonical initial state of the game
	Initial() S
	// Side to move in the given state
	Turn(s S) Player
	// Legal moves, as a finite sequence with a stable order
	// (the solvers are deterministic only if this is)
	Moves(s S) []M
	// Apply the move to the state, producing the successor state
	Apply(s S, m M) S
	// Whether the state has a definitive outcome
	IsTerminal(s S) bool
	// Utility of a terminal state relative to the given player identity
	Utility(s S, p Player) Result
}
