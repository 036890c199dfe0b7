package book

import (
	"encoding/binary"
	"time"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

const (
	DefaultRounds = 1000
	DefaultDepth  = 4
)

// Builder runs independent randomized self-play episodes from the game's
// initial state and tallies the simulated rewards per (state, move) pair.
// The tally is owned by the Build call alone, every Build starts from
// scratch.
type Builder[S minimax.StateLike, M minimax.MoveLike] struct {
	ops    minimax.GameOperations[S, M]
	rounds int
	depth  int
	rng    *frand.RNG
	tally  map[S]map[M]int
}

func NewBuilder[S minimax.StateLike, M minimax.MoveLike](ops minimax.GameOperations[S, M]) *Builder[S, M] {
	return &Builder[S, M]{
		ops:    ops,
		rounds: DefaultRounds,
		depth:  DefaultDepth,
		rng:    frand.New(),
	}
}

// Set the number of self-play episodes, zero produces an empty book
func (b *Builder[S, M]) SetRounds(rounds int) *Builder[S, M] {
	b.rounds = max(0, rounds)
	return b
}

// Set the lookahead depth, the book only records decisions within this many
// plies of the initial state
func (b *Builder[S, M]) SetDepth(depth int) *Builder[S, M] {
	b.depth = max(0, depth)
	return b
}

// Seed the random generator, making Build deterministic
func (b *Builder[S, M]) SetSeed(seed uint64) *Builder[S, M] {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	b.rng = frand.NewCustom(key[:], 1024, 12)
	return b
}

// Accumulated rewards for the state from the last Build call, as a copy
func (b *Builder[S, M]) Rewards(s S) map[M]int {
	byMove, ok := b.tally[s]
	if !ok {
		return nil
	}
	out := make(map[M]int, len(byMove))
	for mv, sum := range byMove {
		out[mv] = sum
	}
	return out
}

// Build the book: run the configured number of episodes and collapse the
// tally, keeping for every visited state the move with the highest
// accumulated reward.
func (b *Builder[S, M]) Build() *Book[S, M] {
	tstart := time.Now()
	b.tally = make(map[S]map[M]int)

	root := b.ops.Initial()
	for i := 0; i < b.rounds; i++ {
		b.episode(root, b.depth)
	}

	entries := make(map[S]M, len(b.tally))
	for state, byMove := range b.tally {
		// Walk the moves in their stable generation order, so ties keep
		// the first move and the collapse is deterministic given a seed
		if mv, ok := bestMove(b.ops.Moves(state), byMove); ok {
			entries[state] = mv
		}
	}

	log.Info().
		Int("rounds", b.rounds).
		Int("depth", b.depth).
		Int("states", len(entries)).
		Float64("time-elapsed-sec", time.Since(tstart).Seconds()).
		Msg("book-built")

	return &Book[S, M]{entries: entries}
}

// One self-play episode ply. The returned reward is always relative to the
// player to move in 'state'.
func (b *Builder[S, M]) episode(state S, depth int) int {
	if depth == 0 || b.ops.IsTerminal(state) {
		return b.rollout(state)
	}

	moves := b.ops.Moves(state)
	mv := moves[b.rng.Intn(len(moves))]

	// Negamax convention: a result good for the mover below is bad for
	// the mover above
	reward := -b.episode(b.ops.Apply(state, mv), depth-1)

	byMove, ok := b.tally[state]
	if !ok {
		byMove = make(map[M]int)
		b.tally[state] = byMove
	}
	byMove[mv] += reward

	return reward
}

// Finish the game with uniform random moves. The reward sign is fixed once,
// relative to the player on turn when the rollout begins, not re-derived at
// the final terminal state.
func (b *Builder[S, M]) rollout(state S) int {
	mover := b.ops.Turn(state)
	for !b.ops.IsTerminal(state) {
		moves := b.ops.Moves(state)
		state = b.ops.Apply(state, moves[b.rng.Intn(len(moves))])
	}
	return int(b.ops.Utility(state, mover))
}

func bestMove[M minimax.MoveLike](moves []M, tally map[M]int) (M, bool) {
	var best M
	bestSum := 0
	found := false

	for _, mv := range moves {
		sum, tried := tally[mv]
		if !tried {
			continue
		}
		if !found || sum > bestSum {
			best, bestSum, found = mv, sum, true
		}
	}

	return best, found
}
