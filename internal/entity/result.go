package entity

import "github.com/rocketscienceinc/tenten/internal/apperror"

type ResultKind int

const (
	OutOfRange ResultKind = iota
	CellOccupied
	TooFar
	Continue
	Win
)

func (k ResultKind) String() string {
	switch k {
	case OutOfRange:
		return "out_of_range"
	case CellOccupied:
		return "cell_occupied"
	case TooFar:
		return "too_far"
	case Continue:
		return "continue"
	case Win:
		return "win"
	default:
		return "unknown"
	}
}

// Result is the outcome of a placement. Mark is the next player for Continue
// and the winner for Win; it is empty for rejections.
type Result struct {
	Kind ResultKind
	Mark string
}

// Placed reports whether the placement changed the board.
func (r Result) Placed() bool {
	return r.Kind == Continue || r.Kind == Win
}

// Err maps a rejection to its sentinel error.
func (r Result) Err() error {
	switch r.Kind {
	case OutOfRange:
		return apperror.ErrOutOfRange
	case CellOccupied:
		return apperror.ErrCellOccupied
	case TooFar:
		return apperror.ErrTooFar
	default:
		return nil
	}
}

func (r Result) Message() string {
	switch r.Kind {
	case OutOfRange:
		return "Invalid position"
	case CellOccupied:
		return "Position already occupied"
	case TooFar:
		return "Move too far from existing pieces"
	case Win:
		return r.Mark + " wins!"
	case Continue:
		return r.Mark + "'s turn"
	default:
		return ""
	}
}
