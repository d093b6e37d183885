package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/tictactoe-sim/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-sim/internal/entity"
	"github.com/rocketscienceinc/tictactoe-sim/internal/simulator"
)

const (
	HumanName = "human"

	rowPadding   = "   |   |   "
	rowSeparator = "-----------"

	colorX = "1"
	colorO = "4"
)

var ErrInputClosed = errors.New("input closed")

// Render writes the board as a 3x3 grid. Empty cells show their 1-based
// position so a player knows what to type. Marks are colored only when w is
// a terminal.
func Render(w io.Writer, board entity.Board) error {
	output := termenv.NewOutput(w)

	var sb strings.Builder
	for row := range 3 {
		if row > 0 {
			sb.WriteString(rowSeparator + "\n")
		}

		labels := make([]string, 3)
		for col := range 3 {
			idx := row*3 + col
			labels[col] = cellLabel(output, board[idx], idx)
		}

		sb.WriteString(rowPadding + "\n")
		sb.WriteString(" " + strings.Join(labels, " | ") + "\n")
		sb.WriteString(rowPadding + "\n")
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	return nil
}

func cellLabel(output *termenv.Output, cell entity.Cell, idx int) string {
	switch cell {
	case entity.PlayerX:
		return output.String(cell.String()).Bold().Foreground(output.Color(colorX)).String()
	case entity.PlayerO:
		return output.String(cell.String()).Bold().Foreground(output.Color(colorO)).String()
	default:
		return output.String(strconv.Itoa(idx + 1)).Faint().String()
	}
}

// ParseMove turns a 1-based position typed by a player into a cell index.
func ParseMove(input string) (int, error) {
	position, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrUnparsableInput, input)
	}

	if position < 1 || position > entity.BoardSize {
		return 0, fmt.Errorf("%w: position %d", apperror.ErrInvalidCell, position)
	}

	return position - 1, nil
}

// Human is a strategy that asks a person for every move.
type Human struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (that *Human) Name() string {
	return HumanName
}

// SelectMove prompts until the player types a legal move. Bad input never
// reaches the game.
func (that *Human) SelectMove(ctx context.Context, game *entity.Game, _ *rand.Rand) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("waiting for input: %w", err)
		}

		if err := Render(that.out, game.Board()); err != nil {
			return 0, err
		}
		fmt.Fprintf(that.out, "%s's turn, input move\n", game.Turn())

		if !that.in.Scan() {
			if err := that.in.Err(); err != nil {
				return 0, fmt.Errorf("failed to read move: %w", err)
			}

			return 0, ErrInputClosed
		}

		move, err := ParseMove(that.in.Text())
		if err != nil {
			fmt.Fprintln(that.out, "Move not recognized")
			continue
		}

		if !game.IsLegal(move) {
			fmt.Fprintln(that.out, "Illegal move!")
			continue
		}

		return move, nil
	}
}

// PrintResult announces the end of a single game.
func PrintResult(w io.Writer, game *entity.Game) {
	_ = Render(w, game.Board())

	if winner := game.Outcome().Winner(); winner != entity.EmptyCell {
		fmt.Fprintf(w, "%s wins!\n", winner)
		return
	}

	fmt.Fprintln(w, "Tie")
}

// PrintTally writes batch results per strategy name.
func PrintTally(w io.Writer, nameA, nameB string, tally simulator.Tally) {
	fmt.Fprintf(w, "%s: %d, %s: %d, tie: %d\n", nameA, tally.WinsA, nameB, tally.WinsB, tally.Ties)
}

// PrintStandings writes a tournament table.
func PrintStandings(w io.Writer, standings []simulator.Standing) {
	for _, standing := range standings {
		fmt.Fprintf(w, "%-12s wins: %d, losses: %d, ties: %d\n", standing.Name, standing.Wins, standing.Losses, standing.Ties)
	}
}
