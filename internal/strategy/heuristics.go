package strategy

import (
	"context"

	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/tictactoe-sim/internal/entity"
)

// Random plays a uniformly chosen legal move.
type Random struct{}

func NewRandom() *Random {
	return &Random{}
}

func (that *Random) Name() string {
	return RandomName
}

func (that *Random) SelectMove(_ context.Context, game *entity.Game, rng *rand.Rand) (int, error) {
	if err := playable(game); err != nil {
		return 0, err
	}

	return randomMove(game, rng)
}

// OnePlyWin takes an immediate win when there is one and plays randomly
// otherwise.
type OnePlyWin struct{}

func NewOnePlyWin() *OnePlyWin {
	return &OnePlyWin{}
}

func (that *OnePlyWin) Name() string {
	return OnePlyWinName
}

func (that *OnePlyWin) SelectMove(_ context.Context, game *entity.Game, rng *rand.Rand) (int, error) {
	if err := playable(game); err != nil {
		return 0, err
	}

	if move, ok := winningMove(game); ok {
		return move, nil
	}

	return randomMove(game, rng)
}

// TwoPlyBlock wins if it can, blocks the opponent's immediate win if it
// must, and plays randomly otherwise.
type TwoPlyBlock struct{}

func NewTwoPlyBlock() *TwoPlyBlock {
	return &TwoPlyBlock{}
}

func (that *TwoPlyBlock) Name() string {
	return TwoPlyName
}

func (that *TwoPlyBlock) SelectMove(_ context.Context, game *entity.Game, rng *rand.Rand) (int, error) {
	if err := playable(game); err != nil {
		return 0, err
	}

	if move, ok := winningMove(game); ok {
		return move, nil
	}

	if move, ok := blockingMove(game); ok {
		return move, nil
	}

	return randomMove(game, rng)
}
