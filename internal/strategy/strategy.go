package strategy

import (
	"context"
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/tictactoe-sim/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-sim/internal/entity"
)

const (
	RandomName     = "random"
	OnePlyWinName  = "one-ply"
	TwoPlyName     = "two-ply"
	MonteCarloName = "monte-carlo"
)

// Strategy picks a move for the side to move. Implementations must not
// modify game; all randomness comes from rng, so one instance can serve
// several matches at once.
type Strategy interface {
	Name() string
	SelectMove(ctx context.Context, game *entity.Game, rng *rand.Rand) (int, error)
}

// New builds a strategy by name. Monte Carlo options are ignored by the
// other strategies.
func New(name string, options ...Option) (Strategy, error) {
	switch name {
	case RandomName:
		return NewRandom(), nil
	case OnePlyWinName:
		return NewOnePlyWin(), nil
	case TwoPlyName:
		return NewTwoPlyBlock(), nil
	case MonteCarloName:
		return NewMonteCarlo(options...), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownStrategy, name)
	}
}

// playable rejects positions no strategy can move in.
func playable(game *entity.Game) error {
	if game.IsOver() {
		return apperror.ErrGameFinished
	}

	if len(game.LegalMoves()) == 0 {
		return apperror.ErrNoAvailableMoves
	}

	return nil
}

// randomMove is the fallback shared by every strategy.
func randomMove(game *entity.Game, rng *rand.Rand) (int, error) {
	moves := game.LegalMoves()
	if len(moves) == 0 {
		return 0, apperror.ErrNoAvailableMoves
	}

	return moves[rng.Intn(len(moves))], nil
}

// winningMove returns the lowest index that ends the game with a win for the
// side to move.
func winningMove(game *entity.Game) (int, bool) {
	for _, move := range game.LegalMoves() {
		probe := game.Clone()
		if err := probe.ApplyMove(move); err != nil {
			continue
		}

		if probe.Outcome().IsDecisive() {
			return move, true
		}
	}

	return 0, false
}

// blockingMove returns the lowest index where the opponent would win if it
// were their turn.
func blockingMove(game *entity.Game) (int, bool) {
	for _, move := range game.LegalMoves() {
		probe := game.Clone()
		probe.PassTurn()
		if err := probe.ApplyMove(move); err != nil {
			continue
		}

		if probe.Outcome().IsDecisive() {
			return move, true
		}
	}

	return 0, false
}
