package apperror

import "errors"

var (
	ErrIllegalMove         = errors.New("illegal move")
	ErrCellOccupied        = errors.New("cell is already occupied")
	ErrInvalidCell         = errors.New("invalid cell index")
	ErrUnparsableInput     = errors.New("move not recognized")
	ErrGameFinished        = errors.New("game is already finished")
	ErrNoAvailableMoves    = errors.New("no available moves")
	ErrTooManyIllegalMoves = errors.New("too many illegal moves")
	ErrUnknownStrategy     = errors.New("unknown strategy")
)
