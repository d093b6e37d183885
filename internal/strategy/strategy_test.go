package strategy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/tictactoe-sim/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-sim/internal/entity"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestNew(t *testing.T) {
	t.Run("Builds every known strategy", func(t *testing.T) {
		for _, name := range []string{RandomName, OnePlyWinName, TwoPlyName, MonteCarloName} {
			// When: a strategy is built by name
			s, err := New(name)

			// Then: it reports the same name
			require.NoError(t, err)
			assert.Equal(t, name, s.Name())
		}
	})

	t.Run("Passes Monte Carlo options", func(t *testing.T) {
		s, err := New(MonteCarloName, WithPlayouts(7))
		require.NoError(t, err)

		mc, ok := s.(*MonteCarlo)
		require.True(t, ok)
		assert.Equal(t, 7, mc.Playouts())
	})

	t.Run("Error on unknown name", func(t *testing.T) {
		_, err := New("minimax")

		require.ErrorIs(t, err, apperror.ErrUnknownStrategy)
		assert.Contains(t, err.Error(), "minimax")
	})
}

func TestStrategies_RejectFinishedGame(t *testing.T) {
	// Given: a game X has won with empty cells left
	game := entity.NewGameFromBoard(entity.Board{
		x, x, x,
		o, o, e,
		e, e, e,
	}, o)

	for _, s := range []Strategy{NewRandom(), NewOnePlyWin(), NewTwoPlyBlock(), NewMonteCarlo()} {
		// When: a move is requested
		_, err := s.SelectMove(context.Background(), game, newRand(1))

		// Then: the strategy refuses
		assert.ErrorIs(t, err, apperror.ErrGameFinished, s.Name())
	}
}

func TestRandom_SelectMove(t *testing.T) {
	t.Run("Always returns a legal move", func(t *testing.T) {
		// Given: a partly filled board
		game := entity.NewGameFromBoard(entity.Board{
			x, o, e,
			e, x, e,
			o, e, e,
		}, x)
		rng := newRand(7)

		for range 200 {
			// When: a move is selected
			move, err := NewRandom().SelectMove(context.Background(), game, rng)

			// Then: it is one of the empty cells
			require.NoError(t, err)
			assert.Contains(t, game.LegalMoves(), move)
		}
	})

	t.Run("Reaches every legal move", func(t *testing.T) {
		game := entity.NewGame()
		rng := newRand(11)
		seen := map[int]int{}

		for range 900 {
			move, err := NewRandom().SelectMove(context.Background(), game, rng)
			require.NoError(t, err)
			seen[move]++
		}

		assert.Len(t, seen, entity.BoardSize)
	})

	t.Run("Same seed gives the same moves", func(t *testing.T) {
		game := entity.NewGame()
		first, second := newRand(3), newRand(3)

		for range 20 {
			a, err := NewRandom().SelectMove(context.Background(), game, first)
			require.NoError(t, err)
			b, err := NewRandom().SelectMove(context.Background(), game, second)
			require.NoError(t, err)
			assert.Equal(t, a, b)
		}
	})

	t.Run("Does not touch the game", func(t *testing.T) {
		game := entity.NewGame()
		before := game.Clone()

		_, err := NewRandom().SelectMove(context.Background(), game, newRand(1))

		require.NoError(t, err)
		assert.Equal(t, before, game)
	})
}

func TestOnePlyWin_SelectMove(t *testing.T) {
	t.Run("Takes the winning move", func(t *testing.T) {
		// Given: X can complete the top row, O threatens the middle row
		game := entity.NewGameFromBoard(entity.Board{
			x, x, e,
			o, o, e,
			e, e, e,
		}, x)

		for seed := range uint64(50) {
			// When: the strategy picks a move
			move, err := NewOnePlyWin().SelectMove(context.Background(), game, newRand(seed))

			// Then: it is always the win
			require.NoError(t, err)
			assert.Equal(t, 2, move)
		}
	})

	t.Run("Wins for O as well", func(t *testing.T) {
		// Given: O can complete the diagonal 0-4-8
		game := entity.NewGameFromBoard(entity.Board{
			o, x, x,
			e, o, e,
			x, e, e,
		}, o)

		move, err := NewOnePlyWin().SelectMove(context.Background(), game, newRand(1))

		require.NoError(t, err)
		assert.Equal(t, 8, move)
	})

	t.Run("Lowest index among several wins", func(t *testing.T) {
		// Given: X can win on cell 2 (row) or cell 6 (column)
		game := entity.NewGameFromBoard(entity.Board{
			x, x, e,
			x, o, o,
			e, o, e,
		}, x)

		move, err := NewOnePlyWin().SelectMove(context.Background(), game, newRand(1))

		require.NoError(t, err)
		assert.Equal(t, 2, move)
	})

	t.Run("Ignores the opponent's threat", func(t *testing.T) {
		// Given: only O threatens a win
		game := entity.NewGameFromBoard(entity.Board{
			x, e, e,
			o, o, e,
			x, e, e,
		}, x)
		picked := map[int]bool{}

		for seed := range uint64(100) {
			move, err := NewOnePlyWin().SelectMove(context.Background(), game, newRand(seed))
			require.NoError(t, err)
			picked[move] = true
		}

		// Then: the choice is random, not a forced block
		assert.Greater(t, len(picked), 1)
	})
}

func TestTwoPlyBlock_SelectMove(t *testing.T) {
	t.Run("Blocks the opponent's win", func(t *testing.T) {
		// Given: O threatens the middle row and X has no win
		game := entity.NewGameFromBoard(entity.Board{
			x, e, e,
			o, o, e,
			x, e, e,
		}, x)

		for seed := range uint64(50) {
			// When: the strategy picks a move
			move, err := NewTwoPlyBlock().SelectMove(context.Background(), game, newRand(seed))

			// Then: it blocks at 5
			require.NoError(t, err)
			assert.Equal(t, 5, move)
		}
	})

	t.Run("Prefers winning over blocking", func(t *testing.T) {
		// Given: both sides have an open line
		game := entity.NewGameFromBoard(entity.Board{
			x, x, e,
			o, o, e,
			e, e, e,
		}, x)

		move, err := NewTwoPlyBlock().SelectMove(context.Background(), game, newRand(1))

		require.NoError(t, err)
		assert.Equal(t, 2, move)
	})

	t.Run("Lowest index among several blocks", func(t *testing.T) {
		// Given: X threatens cell 2 and cell 6, O cannot win
		game := entity.NewGameFromBoard(entity.Board{
			x, x, e,
			x, o, e,
			e, o, e,
		}, o)

		move, err := NewTwoPlyBlock().SelectMove(context.Background(), game, newRand(1))

		require.NoError(t, err)
		assert.Equal(t, 2, move)
	})

	t.Run("Falls back to a random legal move", func(t *testing.T) {
		game := entity.NewGame()

		move, err := NewTwoPlyBlock().SelectMove(context.Background(), game, newRand(5))

		require.NoError(t, err)
		assert.True(t, game.IsLegal(move))
	})
}
