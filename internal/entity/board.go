package entity

// Cell is the content of a single board square. The numeric values are
// chosen so that a mark can be negated to get its opponent.
type Cell int8

const (
	EmptyCell Cell = 0
	PlayerX   Cell = 1
	PlayerO   Cell = -1
)

// BoardSize is the number of cells on the board.
const BoardSize = 9

// Line is a row, column or diagonal of three cell indices.
type Line [3]int

// WinCombos lists the winning lines in the order they are checked.
var WinCombos = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

func (that Cell) Opponent() Cell {
	return -that
}

func (that Cell) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return ""
	}
}

// Board is a 3x3 grid stored row-major. It is an array, so copies never alias.
type Board [BoardSize]Cell

// LegalMoves returns the empty cell indices in ascending order.
func (that Board) LegalMoves() []int {
	moves := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			moves = append(moves, i)
		}
	}

	return moves
}

// IsLegal reports whether move is on the board and the cell is empty.
func (that Board) IsLegal(move int) bool {
	if move < 0 || move >= BoardSize {
		return false
	}

	return that[move] == EmptyCell
}

// Apply places player at move if the move is legal. The board is left
// untouched when it returns false.
func (that *Board) Apply(player Cell, move int) bool {
	if !that.IsLegal(move) {
		return false
	}

	that[move] = player

	return true
}

// Winner returns the mark on the first completed line, or EmptyCell.
func (that Board) Winner() Cell {
	for _, line := range WinCombos {
		if that.isComplete(line) {
			return that[line[0]]
		}
	}

	return EmptyCell
}

// WinningLines returns every completed line in check order.
func (that Board) WinningLines() []Line {
	var lines []Line
	for _, line := range WinCombos {
		if that.isComplete(line) {
			lines = append(lines, line)
		}
	}

	return lines
}

func (that Board) isComplete(line Line) bool {
	a, b, c := that[line[0]], that[line[1]], that[line[2]]

	return a != EmptyCell && a == b && b == c
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// Occupied counts the non-empty cells.
func (that Board) Occupied() int {
	count := 0
	for _, cell := range that {
		if cell != EmptyCell {
			count++
		}
	}

	return count
}
