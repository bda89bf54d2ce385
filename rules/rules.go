// Package rules decides whether a Connect Four position is won, tied or still
// in progress.
package rules

import (
	"connect4-local/board"
	"connect4-local/types"
)

// LineLength is the number of pieces in a row needed to win.
const LineLength = 4

// Direction is a step from one cell of a line to the next.
type Direction struct {
	DRow int
	DCol int
}

// Directions covers horizontal, vertical and both diagonals. Lines are
// anchored at their first cell and extend in the given direction.
var Directions = [4]Direction{
	{0, 1},  // right
	{1, 0},  // down
	{1, 1},  // down-right
	{1, -1}, // down-left
}

// lineFrom builds the line of LineLength cells starting at (row, col).
func lineFrom(row, col int, d Direction) types.Line {
	var line types.Line
	for i := range line {
		line[i] = types.BoardPos{Row: row + i*d.DRow, Col: col + i*d.DCol}
	}
	return line
}

// isWin returns true if every cell of line is on the grid and holds player.
func isWin(grid *board.Grid, line types.Line, player types.Player) bool {
	for _, p := range line {
		if !board.InBounds(p.Row, p.Col) || grid[p.Row][p.Col] != player {
			return false
		}
	}
	return true
}

// WinningLine scans every cell as an anchor and returns the first line of
// four owned by player.
func WinningLine(grid *board.Grid, player types.Player) (types.Line, bool) {
	for y := 0; y < board.Height; y++ {
		for x := 0; x < board.Width; x++ {
			for _, d := range Directions {
				line := lineFrom(y, x, d)
				if isWin(grid, line, player) {
					return line, true
				}
			}
		}
	}
	return types.Line{}, false
}

// HasWinningLine returns true if player owns four in a row anywhere.
func HasWinningLine(grid *board.Grid, player types.Player) bool {
	_, ok := WinningLine(grid, player)
	return ok
}

// HasWinningLineThrough only checks lines passing through (row, col).
// It agrees with HasWinningLine whenever (row, col) is the last piece played.
func HasWinningLineThrough(grid *board.Grid, row, col int, player types.Player) bool {
	if !board.InBounds(row, col) || grid[row][col] != player {
		return false
	}
	for _, d := range Directions {
		count := 1 + countDirection(grid, row, col, d.DRow, d.DCol, player) +
			countDirection(grid, row, col, -d.DRow, -d.DCol, player)
		if count >= LineLength {
			return true
		}
	}
	return false
}

// countDirection counts consecutive pieces of player starting next to (row, col).
func countDirection(grid *board.Grid, row, col, dRow, dCol int, player types.Player) int {
	count := 0
	r, c := row+dRow, col+dCol
	for board.InBounds(r, c) && grid[r][c] == player {
		count++
		r += dRow
		c += dCol
	}
	return count
}

// Evaluate returns the status after mover has committed a piece. A win is
// checked before a tie, so filling the board with a winning move is a win.
func Evaluate(b *board.Board, mover types.Player) types.Status {
	grid := b.Grid()
	if HasWinningLine(&grid, mover) {
		return types.Status{Outcome: types.Won, Winner: mover}
	}
	if b.IsFull() {
		return types.Status{Outcome: types.Tie}
	}
	return types.Status{Outcome: types.InProgress}
}
