package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/tictactoe-sim/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-sim/internal/entity"
	"github.com/rocketscienceinc/tictactoe-sim/internal/simulator"
)

func TestRender(t *testing.T) {
	// Given: a board with a few marks
	board := entity.Board{
		entity.PlayerX, entity.EmptyCell, entity.EmptyCell,
		entity.EmptyCell, entity.PlayerO, entity.EmptyCell,
		entity.EmptyCell, entity.EmptyCell, entity.PlayerX,
	}
	var out bytes.Buffer

	// When: the board is rendered
	err := Render(&out, board)

	// Then: marks and 1-based positions are laid out in rows
	require.NoError(t, err)
	expected := strings.Join([]string{
		"   |   |   ",
		" X | 2 | 3",
		"   |   |   ",
		"-----------",
		"   |   |   ",
		" 4 | O | 6",
		"   |   |   ",
		"-----------",
		"   |   |   ",
		" 7 | 8 | X",
		"   |   |   ",
	}, "\n") + "\n"
	assert.Equal(t, expected, out.String())
}

func TestCellLabel(t *testing.T) {
	t.Run("Plain output", func(t *testing.T) {
		output := termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.Ascii))

		assert.Equal(t, "X", cellLabel(output, entity.PlayerX, 0))
		assert.Equal(t, "O", cellLabel(output, entity.PlayerO, 4))
		assert.Equal(t, "9", cellLabel(output, entity.EmptyCell, 8))
	})

	t.Run("Terminal output colors the marks", func(t *testing.T) {
		output := termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.ANSI))

		x := cellLabel(output, entity.PlayerX, 0)
		o := cellLabel(output, entity.PlayerO, 4)

		assert.Contains(t, x, "\x1b[")
		assert.Contains(t, x, "X")
		assert.Contains(t, o, "O")
		assert.NotEqual(t, x, strings.Replace(o, "O", "X", 1))
	})
}

func TestParseMove(t *testing.T) {
	t.Run("Converts 1-based input", func(t *testing.T) {
		for input, expected := range map[string]int{"1": 0, "5": 4, " 9\n": 8} {
			move, err := ParseMove(input)

			require.NoError(t, err)
			assert.Equal(t, expected, move)
		}
	})

	t.Run("Rejects text", func(t *testing.T) {
		for _, input := range []string{"", "x", "one", "1.5", "3a"} {
			_, err := ParseMove(input)

			assert.ErrorIs(t, err, apperror.ErrUnparsableInput, input)
		}
	})

	t.Run("Rejects positions off the board", func(t *testing.T) {
		for _, input := range []string{"0", "10", "-3"} {
			_, err := ParseMove(input)

			assert.ErrorIs(t, err, apperror.ErrInvalidCell, input)
		}
	})
}

func TestHuman_SelectMove(t *testing.T) {
	t.Run("Retries until a legal move is typed", func(t *testing.T) {
		// Given: a game where cell 1 is taken and a player who types badly first
		game := entity.NewGame()
		require.NoError(t, game.ApplyMove(0))
		before := game.Clone()
		var out bytes.Buffer
		human := NewHuman(strings.NewReader("abc\n12\n1\n5\n"), &out)

		// When: the human is asked for a move
		move, err := human.SelectMove(context.Background(), game, rand.New(rand.NewSource(1)))

		// Then: the first legal answer is returned and the game is untouched
		require.NoError(t, err)
		assert.Equal(t, 4, move)
		assert.Equal(t, before, game)
		assert.Equal(t, 2, strings.Count(out.String(), "Move not recognized"))
		assert.Equal(t, 1, strings.Count(out.String(), "Illegal move!"))
		assert.Contains(t, out.String(), "O's turn, input move")
	})

	t.Run("Closed input is an error", func(t *testing.T) {
		human := NewHuman(strings.NewReader(""), &bytes.Buffer{})

		_, err := human.SelectMove(context.Background(), entity.NewGame(), nil)

		require.ErrorIs(t, err, ErrInputClosed)
	})

	t.Run("Cancelled context is an error", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		human := NewHuman(strings.NewReader("5\n"), &bytes.Buffer{})

		_, err := human.SelectMove(ctx, entity.NewGame(), nil)

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestPrintResult(t *testing.T) {
	t.Run("Winner", func(t *testing.T) {
		game := entity.NewGameFromBoard(entity.Board{
			entity.PlayerO, entity.PlayerO, entity.PlayerO,
			entity.PlayerX, entity.PlayerX, entity.EmptyCell,
			entity.PlayerX, entity.EmptyCell, entity.EmptyCell,
		}, entity.PlayerX)
		var out bytes.Buffer

		PrintResult(&out, game)

		assert.True(t, strings.HasSuffix(out.String(), "O wins!\n"))
	})

	t.Run("Tie", func(t *testing.T) {
		game := entity.NewGameFromBoard(entity.Board{
			entity.PlayerX, entity.PlayerX, entity.PlayerO,
			entity.PlayerO, entity.PlayerX, entity.PlayerX,
			entity.PlayerX, entity.PlayerO, entity.PlayerO,
		}, entity.PlayerO)
		var out bytes.Buffer

		PrintResult(&out, game)

		assert.True(t, strings.HasSuffix(out.String(), "Tie\n"))
	})
}

func TestPrintTally(t *testing.T) {
	var out bytes.Buffer

	PrintTally(&out, "two-ply", "monte-carlo", simulator.Tally{WinsA: 3, WinsB: 5, Ties: 2})

	assert.Equal(t, "two-ply: 3, monte-carlo: 5, tie: 2\n", out.String())
}

func TestPrintStandings(t *testing.T) {
	var out bytes.Buffer

	PrintStandings(&out, []simulator.Standing{
		{Name: "two-ply", Wins: 10, Losses: 2, Ties: 8},
		{Name: "random", Wins: 2, Losses: 10, Ties: 8},
	})

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "two-ply")
	assert.Contains(t, lines[0], "wins: 10")
	assert.Contains(t, lines[1], "random")
}
