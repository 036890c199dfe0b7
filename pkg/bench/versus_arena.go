package bench

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

// VersusArena plays a series of games between two players over the same
// rules, alternating seats by coin flip so neither side benefits from
// always moving first.
type VersusArena[S minimax.StateLike, M minimax.MoveLike] struct {
	VersusArenaStats
	ops      minimax.GameOperations[S, M]
	Player1  PlayerLike[S, M]
	Player2  PlayerLike[S, M]
	NGames   uint
	NThreads uint
	listener ListenerLike[M]
	ctx      context.Context
}

func NewVersusArena[S minimax.StateLike, M minimax.MoveLike](
	ops minimax.GameOperations[S, M], p1, p2 PlayerLike[S, M],
) *VersusArena[S, M] {
	return &VersusArena[S, M]{
		ops:      ops,
		Player1:  p1,
		Player2:  p2,
		NGames:   100,
		NThreads: 2,
		listener: DefaultListener[M]{},
		ctx:      context.Background(),
	}
}

func (va *VersusArena[S, M]) WithContext(ctx context.Context) *VersusArena[S, M] {
	va.ctx = ctx
	return va
}

func (va *VersusArena[S, M]) WithListener(l ListenerLike[M]) *VersusArena[S, M] {
	va.listener = l
	return va
}

func (va *VersusArena[S, M]) Setup(nGames, nThreads uint) {
	va.NGames = nGames
	va.NThreads = max(1, nThreads)
}

// Run plays the configured number of games, distributing them evenly over
// the worker goroutines, and blocks until every game finished or the
// context got cancelled.
func (va *VersusArena[S, M]) Run() error {
	va.listener.OnStart()

	g, ctx := errgroup.WithContext(va.ctx)

	// Start equally distributed work between worker threads
	nGames := va.NGames / va.NThreads
	rest := va.NGames % va.NThreads
	for i := uint(0); i < va.NThreads; i++ {
		delta := uint(0)
		if rest > 0 {
			delta = 1
			rest--
		}

		// Always use a clone, players may carry per-goroutine state
		id := int(i)
		n := int(nGames + delta)
		p1 := va.Player1.Clone()
		p2 := va.Player2.Clone()
		g.Go(func() error {
			return va.worker(ctx, id, n, p1, p2)
		})
	}

	err := g.Wait()

	va.listener.Summary(VersusSummaryInfo{
		TotalGames:       va.Total(),
		P1Wins:           va.P1Wins(),
		P2Wins:           va.P2Wins(),
		Draws:            va.Draws(),
		FirstToMoveWins:  va.FirstToMoveWins(),
		SecondToMoveWins: va.SecondToMoveWins(),
		Workers:          int(va.NThreads),
		P1Name:           va.Player1.Name(),
		P2Name:           va.Player2.Name(),
	})
	return err
}

func (va *VersusArena[S, M]) worker(ctx context.Context, id, nGames int, p1, p2 PlayerLike[S, M]) error {
	rng := frand.New()

	for i := 0; i < nGames; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		p1WentFirst := rng.Intn(2) == 0
		first, second := p1, p2
		if !p1WentFirst {
			first, second = p2, p1
		}

		outcome, moves, err := va.playGame(ctx, first, second)
		if err != nil {
			return err
		}

		result := toAgentResult(outcome, p1WentFirst)
		switch result {
		case VersusPl1Win:
			atomic.AddUint32(&va.p1Wins, 1)
		case VersusPl2Win:
			atomic.AddUint32(&va.p2Wins, 1)
		default:
			atomic.AddUint32(&va.draws, 1)
		}
		if !outcome.IsDraw {
			if outcome.FirstMoverWon {
				atomic.AddUint32(&va.firstToMoveWins, 1)
			} else {
				atomic.AddUint32(&va.secondToMoveWins, 1)
			}
		}

		va.listener.OnFinishedGame(VersusGameInfo[M]{
			WorkerID:      id,
			NGames:        nGames,
			FinishedGames: i + 1,
			Moves:         moves,
			Result:        result,
			P1Wins:        va.P1Wins(),
			P2Wins:        va.P2Wins(),
			Draws:         va.Draws(),
			P1Name:        va.Player1.Name(),
			P2Name:        va.Player2.Name(),
		})
	}

	return nil
}

// playGame runs a single game from the initial state, 'first' holding the
// first-mover seat.
func (va *VersusArena[S, M]) playGame(ctx context.Context, first, second PlayerLike[S, M]) (GameOutcome, []M, error) {
	state := va.ops.Initial()
	moves := make([]M, 0, 32)

	for !va.ops.IsTerminal(state) {
		select {
		case <-ctx.Done():
			return GameOutcome{IsDraw: true}, moves, ctx.Err()
		default:
		}

		player := first
		if va.ops.Turn(state) == minimax.Second {
			player = second
		}

		mv, err := player.Select(state)
		if err != nil {
			return GameOutcome{}, moves, fmt.Errorf("player %q: %w", player.Name(), err)
		}

		state = va.ops.Apply(state, mv)
		moves = append(moves, mv)
	}

	return computeOutcome(va.ops, state), moves, nil
}
