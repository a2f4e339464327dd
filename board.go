package tictactoe

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidDimension  = errors.New("side length must be positive")
	ErrDimensionMismatch = errors.New("cell count does not match side length")
	ErrIndexOutOfBounds  = errors.New("invalid cell index")
)

// Board - an immutable square grid of tiles. Cells are stored row-major,
// index = row*sideLength + col. Every update returns a new value, so
// boards can be shared across goroutines and kept in move histories
// without locking.
type Board struct {
	sideLength int
	cells      []Tile
}

// NewEmpty - an all-empty board with the given side length.
func NewEmpty(sideLength int) (Board, error) {
	if sideLength <= 0 {
		return Board{}, fmt.Errorf("%w: %d", ErrInvalidDimension, sideLength)
	}

	return Board{
		sideLength: sideLength,
		cells:      make([]Tile, sideLength*sideLength),
	}, nil
}

// FromCells - a board seeded with the given cells, for restoring a game
// in progress or setting up test positions. The slice is copied.
func FromCells(sideLength int, cells []Tile) (Board, error) {
	if sideLength <= 0 {
		return Board{}, fmt.Errorf("%w: %d", ErrInvalidDimension, sideLength)
	}

	if len(cells) != sideLength*sideLength {
		return Board{}, fmt.Errorf("%w: got %d cells for side length %d", ErrDimensionMismatch, len(cells), sideLength)
	}

	seeded := make([]Tile, len(cells))
	copy(seeded, cells)

	return Board{sideLength: sideLength, cells: seeded}, nil
}

// Standard - the classic 3x3 board.
func Standard() Board {
	board, _ := NewEmpty(3)
	return board
}

func (that Board) SideLength() int {
	return that.sideLength
}

// Cells - a copy of the board's cells in row-major order. A copy, so the
// receiver stays immutable no matter what the caller does with it.
func (that Board) Cells() []Tile {
	cells := make([]Tile, len(that.cells))
	copy(cells, that.cells)
	return cells
}

// Place - a new board equal to the receiver except the cell at index,
// which is set to tile. The receiver is never modified. Occupied cells
// are overwritten silently: turn order and occupancy are the caller's
// responsibility, not this core's.
func (that Board) Place(tile Tile, index int) (Board, error) {
	if index < 0 || index >= len(that.cells) {
		return Board{}, fmt.Errorf("%w: cell %d", ErrIndexOutOfBounds, index)
	}

	cells := make([]Tile, len(that.cells))
	copy(cells, that.cells)
	cells[index] = tile

	return Board{sideLength: that.sideLength, cells: cells}, nil
}

// Evaluate - the result of the current position. Lines are checked in a
// fixed order: rows, columns, main diagonal, anti-diagonal; the first
// complete line wins. With no winner, a full board is a draw and
// anything else is undecided.
func (that Board) Evaluate() Outcome {
	size := that.sideLength
	if size == 0 {
		return OutcomeNone
	}

	for row := 0; row < size; row++ {
		if outcome := that.lineOutcome(row*size, 1); !outcome.IsNone() {
			return outcome
		}
	}

	for col := 0; col < size; col++ {
		if outcome := that.lineOutcome(col, size); !outcome.IsNone() {
			return outcome
		}
	}

	if outcome := that.lineOutcome(0, size+1); !outcome.IsNone() {
		return outcome
	}

	if outcome := that.lineOutcome(size-1, size-1); !outcome.IsNone() {
		return outcome
	}

	// the game continues until all the cells are full
	for _, cell := range that.cells {
		if cell.IsEmpty() {
			return OutcomeNone
		}
	}

	return OutcomeDraw
}

// lineOutcome - reduces one line (sideLength cells starting at start,
// stride apart) to its result. A line counts only if every cell carries
// the same non-empty mark; an all-empty line is nobody's.
func (that Board) lineOutcome(start, stride int) Outcome {
	first := that.cells[start]
	for i := 1; i < that.sideLength; i++ {
		if that.cells[start+i*stride] != first {
			return OutcomeNone
		}
	}

	if first.IsEmpty() {
		return OutcomeNone
	}

	return Win(Player(first))
}

// String - a human-readable dump for debugging: one row per line with
// tiles joined by "|" (empty cells as "."), then the side length. Not a
// machine format.
func (that Board) String() string {
	var builder strings.Builder

	for row := 0; row < that.sideLength; row++ {
		glyphs := make([]string, 0, that.sideLength)
		for col := 0; col < that.sideLength; col++ {
			cell := that.cells[row*that.sideLength+col]
			if cell.IsEmpty() {
				glyphs = append(glyphs, ".")
				continue
			}
			glyphs = append(glyphs, string(cell))
		}
		builder.WriteString(strings.Join(glyphs, "|"))
		builder.WriteString("\n")
	}

	builder.WriteString(strconv.Itoa(that.sideLength))

	return builder.String()
}
