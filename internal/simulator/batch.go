package simulator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-sim/internal/entity"
	"github.com/rocketscienceinc/tictactoe-sim/internal/strategy"
)

var (
	ErrInvalidGameCount = errors.New("number of games must not be negative")
	ErrUnfinishedMatch  = errors.New("match did not finish")
)

// Tally counts batch results by strategy, not by side.
type Tally struct {
	WinsA           int
	WinsB           int
	Ties            int
	FirstMoverWins  int
	SecondMoverWins int
}

func (that Tally) Total() int {
	return that.WinsA + that.WinsB + that.Ties
}

// Summary labels the tally with a fresh run ID for publishing.
func (that Tally) Summary(nameA, nameB string, seed uint64) entity.BatchSummary {
	return entity.BatchSummary{
		RunID:           uuid.New().String(),
		StrategyA:       nameA,
		StrategyB:       nameB,
		Games:           that.Total(),
		WinsA:           that.WinsA,
		WinsB:           that.WinsB,
		Ties:            that.Ties,
		FirstMoverWins:  that.FirstMoverWins,
		SecondMoverWins: that.SecondMoverWins,
		Seed:            seed,
		FinishedAt:      time.Now().UTC(),
	}
}

func (that *Tally) add(outcome entity.Outcome, aPlaysX bool) error {
	switch outcome {
	case entity.XWins:
		that.FirstMoverWins++
		if aPlaysX {
			that.WinsA++
		} else {
			that.WinsB++
		}
	case entity.OWins:
		that.SecondMoverWins++
		if aPlaysX {
			that.WinsB++
		} else {
			that.WinsA++
		}
	case entity.Tie:
		that.Ties++
	default:
		return fmt.Errorf("%w: %s", ErrUnfinishedMatch, outcome)
	}

	return nil
}

// RunBatch plays n matches between a and b. Even matches give a the first
// move, odd matches give it to b. Every match has its own random source
// derived from the simulator seed, so a batch is reproducible whatever the
// number of workers.
func (that *Simulator) RunBatch(ctx context.Context, a, b strategy.Strategy, n int) (Tally, error) {
	if n < 0 {
		return Tally{}, fmt.Errorf("%w: %d", ErrInvalidGameCount, n)
	}

	log := that.logger.With("method", "RunBatch", "a", a.Name(), "b", b.Name())

	seeds := matchSeeds(that.seed, n)
	outcomes := make([]entity.Outcome, n)

	// running totals for the per-match log, matches finish out of order
	var (
		mu      sync.Mutex
		running Tally
	)

	group, groupCtx := errgroup.WithContext(ctx)
	jobs := make(chan int)

	group.Go(func() error {
		defer close(jobs)
		for i := range n {
			select {
			case jobs <- i:
			case <-groupCtx.Done():
				return fmt.Errorf("batch interrupted after %d of %d matches: %w", i, n, groupCtx.Err())
			}
		}

		return nil
	})

	for range that.workers {
		group.Go(func() error {
			game := entity.NewGame()
			for i := range jobs {
				game.Reset()

				x, o := a, b
				if i%2 == 1 {
					x, o = b, a
				}

				outcome, err := that.RunMatch(groupCtx, game, x, o, rand.New(rand.NewSource(seeds[i])))
				if err != nil {
					return fmt.Errorf("match %d: %w", i+1, err)
				}

				outcomes[i] = outcome

				mu.Lock()
				err = running.add(outcome, i%2 == 0)
				snapshot := running
				mu.Unlock()
				if err != nil {
					return fmt.Errorf("match %d: %w", i+1, err)
				}

				log.Debug("match finished",
					"match", i+1, "x", x.Name(), "o", o.Name(), "outcome", outcome.String(),
					"completed", snapshot.Total(), "winsA", snapshot.WinsA, "winsB", snapshot.WinsB, "ties", snapshot.Ties)
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return Tally{}, fmt.Errorf("batch %s vs %s failed: %w", a.Name(), b.Name(), err)
	}

	if err := ctx.Err(); err != nil {
		return Tally{}, fmt.Errorf("batch %s vs %s interrupted: %w", a.Name(), b.Name(), err)
	}

	var tally Tally
	for i, outcome := range outcomes {
		if err := tally.add(outcome, i%2 == 0); err != nil {
			return Tally{}, fmt.Errorf("batch %s vs %s: match %d: %w", a.Name(), b.Name(), i+1, err)
		}
	}

	log.Info("batch finished", "games", n, "winsA", tally.WinsA, "winsB", tally.WinsB, "ties", tally.Ties)

	return tally, nil
}

func matchSeeds(seed uint64, n int) []uint64 {
	rng := rand.New(rand.NewSource(seed))
	seeds := make([]uint64, n)
	for i := range seeds {
		seeds[i] = rng.Uint64()
	}

	return seeds
}
