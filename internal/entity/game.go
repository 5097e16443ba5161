package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tenten/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""
)

const (
	BoardSize   = 10
	BoardCells  = BoardSize * BoardSize
	WinLength   = 5
	MaxDistance = 3
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// directions scanned by CheckWin: horizontal, vertical, down-right, down-left.
var directions = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

type Game struct {
	ID     string             `json:"id"`
	Board  [BoardCells]string `json:"board"`
	Turn   string             `json:"player_turn"`
	Winner string             `json:"winner"`
	Status string             `json:"status"`
	Moves  int                `json:"moves"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Turn:   PlayerX,
		Status: StatusOngoing,
	}
}

// Position decodes a row-major index into its row and column.
func Position(index int) (int, int) {
	return index / BoardSize, index % BoardSize
}

// Index encodes a row and column into a row-major index.
func Index(row, col int) int {
	return row*BoardSize + col
}

func inBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// PlacePiece puts the current player's mark at index. Rejections leave the game untouched.
// A winning placement finishes the game and keeps the turn on the winner.
func (that *Game) PlacePiece(index int) Result {
	if index < 0 || index >= BoardCells {
		return Result{Kind: OutOfRange}
	}

	row, col := Position(index)

	if that.Board[index] != EmptyCell {
		return Result{Kind: CellOccupied}
	}

	if !that.IsValidMove(row, col) {
		return Result{Kind: TooFar}
	}

	mark := that.Turn
	that.Board[index] = mark
	that.Moves++

	if that.CheckWin(row, col) {
		that.Winner = mark
		that.Status = StatusFinished

		return Result{Kind: Win, Mark: mark}
	}

	that.Turn = toggleMark(mark)

	return Result{Kind: Continue, Mark: that.Turn}
}

// IsValidMove reports whether (row, col) is within MaxDistance (taxicab) of any piece.
// Every placement is valid on an empty board.
func (that *Game) IsValidMove(row, col int) bool {
	if that.IsEmpty() {
		return true
	}

	for i, cell := range that.Board {
		if cell == EmptyCell {
			continue
		}

		r, c := Position(i)
		if abs(row-r)+abs(col-c) <= MaxDistance {
			return true
		}
	}

	return false
}

// CheckWin reports whether the piece at (row, col) is part of a line of at least WinLength marks.
func (that *Game) CheckWin(row, col int) bool {
	if !inBounds(row, col) {
		return false
	}

	mark := that.Board[Index(row, col)]
	if mark == EmptyCell {
		return false
	}

	for _, d := range directions {
		count := 1

		for _, sign := range [2]int{1, -1} {
			for step := 1; step < WinLength; step++ {
				r, c := row+sign*d[0]*step, col+sign*d[1]*step
				if !inBounds(r, c) || that.Board[Index(r, c)] != mark {
					break
				}
				count++
			}
		}

		if count >= WinLength {
			return true
		}
	}

	return false
}

// CellAt returns the mark at index; ok is false for an empty or out-of-range cell.
func (that *Game) CellAt(index int) (string, bool) {
	if index < 0 || index >= BoardCells {
		return EmptyCell, false
	}

	mark := that.Board[index]

	return mark, mark != EmptyCell
}

// Cells returns a copy of the board for rendering.
func (that *Game) Cells() [BoardCells]string {
	return that.Board
}

func (that *Game) IsEmpty() bool {
	for _, cell := range that.Board {
		if cell != EmptyCell {
			return false
		}
	}
	return true
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

func toggleMark(currentMark string) string {
	if currentMark == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
