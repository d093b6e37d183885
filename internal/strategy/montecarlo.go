package strategy

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-sim/internal/entity"
)

const DefaultPlayouts = 25

type Option func(mc *MonteCarlo)

// WithPlayouts sets the number of random playouts run for each candidate move.
func WithPlayouts(playouts int) Option {
	return func(mc *MonteCarlo) {
		if playouts > 0 {
			mc.playouts = playouts
		}
	}
}

// WithWorkers evaluates up to workers candidate moves concurrently.
func WithWorkers(workers int) Option {
	return func(mc *MonteCarlo) {
		if workers > 0 {
			mc.workers = workers
		}
	}
}

// WithDeadline bounds the time spent on a single move selection.
func WithDeadline(deadline time.Duration) Option {
	return func(mc *MonteCarlo) {
		if deadline > 0 {
			mc.deadline = deadline
		}
	}
}

// MonteCarlo scores each legal move by the results of random playouts from
// the position after that move.
type MonteCarlo struct {
	playouts int
	workers  int
	deadline time.Duration
}

func NewMonteCarlo(options ...Option) *MonteCarlo {
	mc := &MonteCarlo{
		playouts: DefaultPlayouts,
		workers:  1,
	}
	for _, option := range options {
		option(mc)
	}

	return mc
}

// MoveScore is the summed playout score of one candidate move.
type MoveScore struct {
	Move     int
	Total    float64
	Playouts int
}

// Mean is the average playout score, 0 when no playout finished.
func (that MoveScore) Mean() float64 {
	if that.Playouts == 0 {
		return 0
	}

	return that.Total / float64(that.Playouts)
}

func (that *MonteCarlo) Name() string {
	return MonteCarloName
}

func (that *MonteCarlo) Playouts() int {
	return that.playouts
}

func (that *MonteCarlo) SelectMove(ctx context.Context, game *entity.Game, rng *rand.Rand) (int, error) {
	scores, err := that.Evaluate(ctx, game, rng)
	if err != nil {
		return 0, err
	}

	return bestMove(scores), nil
}

// Evaluate runs the playouts for every legal move, in ascending move order.
// Every candidate gets its own random source seeded from rng up front, so the
// scores do not depend on the number of workers.
func (that *MonteCarlo) Evaluate(ctx context.Context, game *entity.Game, rng *rand.Rand) ([]MoveScore, error) {
	if err := playable(game); err != nil {
		return nil, err
	}

	moves := game.LegalMoves()
	searchCtx := ctx
	if that.deadline > 0 {
		var cancel context.CancelFunc
		searchCtx, cancel = context.WithTimeout(ctx, that.deadline)
		defer cancel()
	}

	scores := make([]MoveScore, len(moves))
	seeds := make([]uint64, len(moves))
	for i, move := range moves {
		scores[i].Move = move
		seeds[i] = rng.Uint64()
	}

	var group errgroup.Group
	group.SetLimit(that.workers)
	for i := range moves {
		group.Go(func() error {
			score, err := that.evaluateMove(searchCtx, game, moves[i], rand.New(rand.NewSource(seeds[i])))
			scores[i] = score

			return err
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("monte carlo search failed: %w", err)
	}

	// the deadline only cuts the search short, a cancelled caller is an error
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("monte carlo search interrupted: %w", err)
	}

	return scores, nil
}

// evaluateMove stops early without error when ctx expires; the caller tells
// a deadline from a cancellation.
func (that *MonteCarlo) evaluateMove(ctx context.Context, game *entity.Game, move int, rng *rand.Rand) (MoveScore, error) {
	mover := game.Turn()
	score := MoveScore{Move: move}

	for score.Playouts < that.playouts {
		if ctx.Err() != nil {
			break
		}

		playout := game.Clone()
		if err := playout.ApplyMove(move); err != nil {
			return score, fmt.Errorf("candidate %d: %w", move, err)
		}

		score.Total += Score(Playout(playout, rng), mover)
		score.Playouts++
	}

	return score, nil
}

// Playout plays random moves for both sides until the game is over.
func Playout(game *entity.Game, rng *rand.Rand) entity.Outcome {
	for !game.IsOver() {
		moves := game.LegalMoves()
		if err := game.ApplyMove(moves[rng.Intn(len(moves))]); err != nil {
			panic(err)
		}
	}

	return game.Outcome()
}

// Score rates a finished game from mover's point of view: 1 for a win,
// 0 for a loss and 0.5 for a tie.
func Score(outcome entity.Outcome, mover entity.Cell) float64 {
	return float64(outcome.Value()*int(mover)+1) / 2
}

// bestMove returns the move with the strictly highest mean; on equal means
// the earliest move is kept.
func bestMove(scores []MoveScore) int {
	best := scores[0]
	for _, score := range scores[1:] {
		if score.Mean() > best.Mean() {
			best = score
		}
	}

	return best.Move
}
