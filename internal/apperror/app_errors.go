package apperror

import "errors"

var (
	ErrOutOfRange   = errors.New("position is out of range")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrTooFar       = errors.New("move is too far from existing pieces")
	ErrInvalidInput = errors.New("input is not a number")
	ErrGameFinished = errors.New("game is already finished")
	ErrGameNotFound = errors.New("game not found")
)
