package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-sim/internal/apperror"
)

// Outcome is derived from the board contents and never stored.
type Outcome int8

const (
	InProgress Outcome = iota
	XWins
	OWins
	Tie
)

func (that Outcome) String() string {
	switch that {
	case XWins:
		return "X wins"
	case OWins:
		return "O wins"
	case Tie:
		return "tie"
	default:
		return "in progress"
	}
}

// IsDecisive reports whether one of the players has won.
func (that Outcome) IsDecisive() bool {
	return that == XWins || that == OWins
}

// Winner returns the winning mark, or EmptyCell for a tie or an ongoing game.
func (that Outcome) Winner() Cell {
	switch that {
	case XWins:
		return PlayerX
	case OWins:
		return PlayerO
	default:
		return EmptyCell
	}
}

// Value is +1 when X won, -1 when O won and 0 otherwise.
func (that Outcome) Value() int {
	return int(that.Winner())
}

// Game is a board plus the side to move.
type Game struct {
	board Board
	turn  Cell
}

func NewGame() *Game {
	return &Game{turn: PlayerX}
}

// NewGameFromBoard starts a game from an arbitrary position.
func NewGameFromBoard(board Board, turn Cell) *Game {
	return &Game{board: board, turn: turn}
}

// Board returns a copy of the current board.
func (that *Game) Board() Board {
	return that.board
}

func (that *Game) Turn() Cell {
	return that.turn
}

func (that *Game) LegalMoves() []int {
	return that.board.LegalMoves()
}

func (that *Game) IsLegal(move int) bool {
	return that.board.IsLegal(move)
}

// ApplyMove places the mark of the side to move and passes the turn.
// A rejected move leaves the game unchanged. Moving in a finished game is a
// caller bug and panics.
func (that *Game) ApplyMove(move int) error {
	if that.IsOver() {
		panic(fmt.Errorf("apply move %d: %w", move, apperror.ErrGameFinished))
	}

	if move < 0 || move >= BoardSize {
		return fmt.Errorf("%w: %w: cell %d", apperror.ErrIllegalMove, apperror.ErrInvalidCell, move)
	}

	if !that.board.Apply(that.turn, move) {
		return fmt.Errorf("%w: %w: cell %d", apperror.ErrIllegalMove, apperror.ErrCellOccupied, move)
	}

	that.turn = that.turn.Opponent()

	return nil
}

// PassTurn hands the move to the other side without placing a mark.
func (that *Game) PassTurn() {
	that.turn = that.turn.Opponent()
}

func (that *Game) Outcome() Outcome {
	switch that.board.Winner() {
	case PlayerX:
		return XWins
	case PlayerO:
		return OWins
	}

	if that.board.IsFull() {
		return Tie
	}

	return InProgress
}

func (that *Game) IsOver() bool {
	return that.Outcome() != InProgress
}

// Reset clears the board and gives the first move back to X.
func (that *Game) Reset() {
	that.board = Board{}
	that.turn = PlayerX
}

// Clone returns an independent copy of the game.
func (that *Game) Clone() *Game {
	clone := *that

	return &clone
}
