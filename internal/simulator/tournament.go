package simulator

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tictactoe-sim/internal/strategy"
)

// Standing is one strategy's record over a tournament.
type Standing struct {
	Name   string `json:"name"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Ties   int    `json:"ties"`
}

func (that Standing) Games() int {
	return that.Wins + that.Losses + that.Ties
}

// RunTournament plays a batch of n matches for every pair of strategies and
// returns the standings sorted by wins, then by name.
func (that *Simulator) RunTournament(ctx context.Context, strategies []strategy.Strategy, n int) ([]Standing, error) {
	standings := make([]Standing, len(strategies))
	for i, s := range strategies {
		standings[i].Name = s.Name()
	}

	for i := range strategies {
		for j := i + 1; j < len(strategies); j++ {
			tally, err := that.RunBatch(ctx, strategies[i], strategies[j], n)
			if err != nil {
				return nil, fmt.Errorf("tournament aborted: %w", err)
			}

			standings[i].Wins += tally.WinsA
			standings[i].Losses += tally.WinsB
			standings[i].Ties += tally.Ties

			standings[j].Wins += tally.WinsB
			standings[j].Losses += tally.WinsA
			standings[j].Ties += tally.Ties
		}
	}

	slices.SortStableFunc(standings, func(a, b Standing) int {
		if a.Wins != b.Wins {
			return cmp.Compare(b.Wins, a.Wins)
		}

		return cmp.Compare(a.Name, b.Name)
	})

	return standings, nil
}
