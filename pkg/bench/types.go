package bench

import (
	"sync/atomic"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

type VersusMatchResult int

const (
	VersusPl1Win VersusMatchResult = 1
	VersusPl2Win VersusMatchResult = -1
	VersusDraw   VersusMatchResult = 0
)

// PlayerLike is a move-selection strategy. Select must not mutate the given
// state, and Clone must return an independent copy safe to use from another
// goroutine.
type PlayerLike[S minimax.StateLike, M minimax.MoveLike] interface {
	Name() string
	Select(S) (M, error)
	Clone() PlayerLike[S, M]
}

type VersusArenaStats struct {
	p1Wins           uint32
	p2Wins           uint32
	draws            uint32
	firstToMoveWins  uint32
	secondToMoveWins uint32
}

func (vas *VersusArenaStats) Total() int {
	return vas.P1Wins() + vas.P2Wins() + vas.Draws()
}

func (vas *VersusArenaStats) P1Wins() int {
	return int(atomic.LoadUint32(&vas.p1Wins))
}

func (vas *VersusArenaStats) P2Wins() int {
	return int(atomic.LoadUint32(&vas.p2Wins))
}

func (vas *VersusArenaStats) Draws() int {
	return int(atomic.LoadUint32(&vas.draws))
}

func (vas *VersusArenaStats) FirstToMoveWins() int {
	return int(atomic.LoadUint32(&vas.firstToMoveWins))
}

func (vas *VersusArenaStats) SecondToMoveWins() int {
	return int(atomic.LoadUint32(&vas.secondToMoveWins))
}

type VersusGameInfo[M minimax.MoveLike] struct {
	WorkerID      int
	NGames        int
	FinishedGames int
	Moves         []M
	Result        VersusMatchResult
	P1Wins        int
	P2Wins        int
	Draws         int
	P1Name        string
	P2Name        string
}

type VersusSummaryInfo struct {
	TotalGames       int    `json:"total_games"`
	P1Wins           int    `json:"player1_wins"`
	P2Wins           int    `json:"player2_wins"`
	FirstToMoveWins  int    `json:"first_to_move_wins"`
	SecondToMoveWins int    `json:"second_to_move_wins"`
	Draws            int    `json:"draws"`
	Workers          int    `json:"workers"`
	P1Name           string `json:"player1_name"`
	P2Name           string `json:"player2_name"`
}

// represents result from the first-mover's perspective in a single game
type GameOutcome struct {
	FirstMoverWon bool
	IsDraw        bool
}

// maps a game outcome to which agent won, given seat assignments
func toAgentResult(outcome GameOutcome, p1WentFirst bool) VersusMatchResult {
	if outcome.IsDraw {
		return VersusDraw
	}

	if p1WentFirst == outcome.FirstMoverWon {
		return VersusPl1Win
	}
	return VersusPl2Win
}

// determines the winner from the terminal state
func computeOutcome[S minimax.StateLike, M minimax.MoveLike](
	ops minimax.GameOperations[S, M],
	final S,
) GameOutcome {
	if !ops.IsTerminal(final) {
		panic("computeOutcome: state not terminal")
	}

	u := ops.Utility(final, minimax.First)
	if u == 0 {
		return GameOutcome{IsDraw: true}
	}
	return GameOutcome{FirstMoverWon: u > 0}
}
