// Package board holds the Connect Four grid and the player to move.
package board

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"connect4-local/types"
)

// Board dimensions.
const (
	Width  = 7
	Height = 6
)

// Grid is indexed as Grid[row][col]. Row 0 is the top row.
type Grid [Height][Width]types.Player

// InBounds returns true if (row, col) lies on the grid.
func InBounds(row, col int) bool {
	return row >= 0 && row < Height && col >= 0 && col < Width
}

// Board owns the grid and the current player.
type Board struct {
	grid    Grid
	current types.Player
	moves   int
}

// New creates an empty board with first to move.
func New(first types.Player) *Board {
	if !first.Valid() {
		first = types.Player1
	}
	return &Board{current: first}
}

// FromGrid creates a board from an existing grid.
func FromGrid(grid Grid, current types.Player) *Board {
	b := New(current)
	b.grid = grid
	for _, row := range grid {
		for _, cell := range row {
			if cell != types.None {
				b.moves++
			}
		}
	}
	return b
}

// Parse builds a board from Height strings, top row first. '.' is empty,
// '1' and '2' are pieces. Spaces are ignored.
func Parse(current types.Player, rows ...string) (*Board, error) {
	if len(rows) != Height {
		return nil, errors.Errorf("expected %d rows, got %d", Height, len(rows))
	}
	var grid Grid
	for r, line := range rows {
		line = strings.ReplaceAll(line, " ", "")
		if len(line) != Width {
			return nil, errors.Errorf("row %d: expected %d cells, got %d", r, Width, len(line))
		}
		for c, ch := range line {
			switch ch {
			case '.':
				grid[r][c] = types.None
			case '1':
				grid[r][c] = types.Player1
			case '2':
				grid[r][c] = types.Player2
			default:
				return nil, errors.Errorf("row %d: invalid cell %q", r, ch)
			}
		}
	}
	return FromGrid(grid, current), nil
}

// Grid returns a copy of the grid.
func (b *Board) Grid() Grid {
	return b.grid
}

// Cell returns the occupant of (row, col).
func (b *Board) Cell(row, col int) types.Player {
	return b.grid[row][col]
}

// Current returns the player to move.
func (b *Board) Current() types.Player {
	return b.current
}

// Moves returns the number of pieces on the board.
func (b *Board) Moves() int {
	return b.moves
}

// IsColumnFull returns true if the top cell of col is occupied.
func (b *Board) IsColumnFull(col int) bool {
	return b.grid[0][col] != types.None
}

// FindLandingRow returns the lowest empty row of col. ok is false when the
// column is full.
func (b *Board) FindLandingRow(col int) (row int, ok bool) {
	if b.IsColumnFull(col) {
		return -1, false
	}
	for r := Height - 1; r >= 0; r-- {
		if b.grid[r][col] == types.None {
			return r, true
		}
	}
	return -1, false
}

// CommitMove writes player into (row, col). The cell must be empty.
func (b *Board) CommitMove(row, col int, player types.Player) {
	if !player.Valid() {
		panic(fmt.Sprintf("board: invalid player %d", player))
	}
	if b.grid[row][col] != types.None {
		panic(fmt.Sprintf("board: cell (%d, %d) already holds %s", row, col, b.grid[row][col]))
	}
	b.grid[row][col] = player
	b.moves++
}

// IsFull returns true if every cell is occupied.
func (b *Board) IsFull() bool {
	for _, row := range b.grid {
		for _, cell := range row {
			if cell == types.None {
				return false
			}
		}
	}
	return true
}

// AdvanceTurn toggles the current player.
func (b *Board) AdvanceTurn() {
	b.current = b.current.Opponent()
}

// LegalColumns lists the columns that can still take a piece.
func (b *Board) LegalColumns() []int {
	cols := make([]int, 0, Width)
	for c := 0; c < Width; c++ {
		if !b.IsColumnFull(c) {
			cols = append(cols, c)
		}
	}
	return cols
}

// String renders the grid in the format accepted by Parse.
func (b *Board) String() string {
	var sb strings.Builder
	for r, row := range b.grid {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			if cell == types.None {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(byte('0' + cell))
			}
		}
	}
	return sb.String()
}
