package simulator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/tictactoe-sim/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-sim/internal/entity"
	"github.com/rocketscienceinc/tictactoe-sim/internal/strategy"
)

// IllegalMovePolicy decides what a match does when a strategy picks a move
// the board rejects.
type IllegalMovePolicy string

const (
	// PolicyRetry logs the rejected move and asks the same side again.
	PolicyRetry IllegalMovePolicy = "retry"
	// PolicyAbort ends the match with the rejection error.
	PolicyAbort IllegalMovePolicy = "abort"
)

const DefaultMaxIllegalMoves = 10

var ErrUnknownPolicy = errors.New("unknown illegal move policy")

func ParseIllegalMovePolicy(value string) (IllegalMovePolicy, error) {
	switch policy := IllegalMovePolicy(value); policy {
	case PolicyRetry, PolicyAbort:
		return policy, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, value)
	}
}

type Option func(s *Simulator)

// MoveObserver sees every accepted move with the board after it. Batches
// with several workers call it from several goroutines.
type MoveObserver func(player string, move int, board entity.Board)

func WithIllegalMovePolicy(policy IllegalMovePolicy) Option {
	return func(s *Simulator) {
		if policy == PolicyRetry || policy == PolicyAbort {
			s.policy = policy
		}
	}
}

// WithMaxIllegalMoves caps consecutive rejected moves under PolicyRetry.
func WithMaxIllegalMoves(limit int) Option {
	return func(s *Simulator) {
		if limit > 0 {
			s.maxIllegalMoves = limit
		}
	}
}

// WithWorkers runs batch matches on that many goroutines.
func WithWorkers(workers int) Option {
	return func(s *Simulator) {
		if workers > 0 {
			s.workers = workers
		}
	}
}

// WithSeed fixes the seed every batch derives its match seeds from.
func WithSeed(seed uint64) Option {
	return func(s *Simulator) {
		s.seed = seed
	}
}

// WithMoveObserver reports every accepted move, e.g. to echo the board.
func WithMoveObserver(observer MoveObserver) Option {
	return func(s *Simulator) {
		s.observer = observer
	}
}

type Simulator struct {
	logger   *slog.Logger
	observer MoveObserver

	policy          IllegalMovePolicy
	maxIllegalMoves int
	workers         int
	seed            uint64
}

func New(logger *slog.Logger, options ...Option) *Simulator {
	s := &Simulator{
		logger:          logger.With("component", "simulator"),
		policy:          PolicyRetry,
		maxIllegalMoves: DefaultMaxIllegalMoves,
		workers:         1,
	}
	for _, option := range options {
		option(s)
	}

	return s
}

func (that *Simulator) Seed() uint64 {
	return that.seed
}

// RunMatch plays game to the end, x moving for PlayerX and o for PlayerO.
// The game is played from whatever position it is in.
func (that *Simulator) RunMatch(ctx context.Context, game *entity.Game, x, o strategy.Strategy, rng *rand.Rand) (entity.Outcome, error) {
	log := that.logger.With("method", "RunMatch", "x", x.Name(), "o", o.Name())

	illegalMoves := 0
	for !game.IsOver() {
		if err := ctx.Err(); err != nil {
			return entity.InProgress, fmt.Errorf("match interrupted: %w", err)
		}

		player := x
		if game.Turn() == entity.PlayerO {
			player = o
		}

		move, err := player.SelectMove(ctx, game, rng)
		if err != nil {
			return entity.InProgress, fmt.Errorf("%s failed to select a move: %w", player.Name(), err)
		}

		if err = game.ApplyMove(move); err != nil {
			if that.policy == PolicyAbort {
				return entity.InProgress, fmt.Errorf("%s: %w", player.Name(), err)
			}

			illegalMoves++
			log.Warn("illegal move rejected", "strategy", player.Name(), "move", move, "attempt", illegalMoves, "error", err)

			if illegalMoves >= that.maxIllegalMoves {
				return entity.InProgress, fmt.Errorf("%w: %s made %d in a row", apperror.ErrTooManyIllegalMoves, player.Name(), illegalMoves)
			}

			continue
		}

		illegalMoves = 0

		if that.observer != nil {
			that.observer(player.Name(), move, game.Board())
		}
	}

	return game.Outcome(), nil
}
