// Package game drives a single Connect Four game: it turns a column choice
// into a committed piece, evaluates the result and reports it to a Presenter.
package game

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"connect4-local/board"
	"connect4-local/rules"
	"connect4-local/types"
)

var (
	ErrColumnFull       = errors.New("column is full")
	ErrColumnOutOfRange = errors.New("column out of range")
	ErrGameOver         = errors.New("game is over")
)

// Presenter shows the game to the players.
type Presenter interface {
	// OnPieceDropped is called once per accepted move, after the piece is committed.
	OnPieceDropped(row, column int, player types.Player)

	// OnGameEnded is called at most once, when the game reaches a terminal state.
	OnGameEnded(message string)
}

// Game owns one board and its status.
type Game struct {
	ID        string
	board     *board.Board
	status    types.Status
	presenter Presenter
	lastMove  types.BoardPos
}

// New starts a game on an empty board.
func New(first types.Player, presenter Presenter) *Game {
	return Resume(board.New(first), presenter)
}

// Resume continues play on an existing board. The board must not already
// hold a winning line.
func Resume(b *board.Board, presenter Presenter) *Game {
	return &Game{
		ID:        uuid.NewString(),
		board:     b,
		presenter: presenter,
		lastMove:  types.BoardPos{Row: -1, Col: -1},
	}
}

// Board returns the game's board. Callers must not mutate it.
func (g *Game) Board() *board.Board {
	return g.board
}

// Status returns the current status.
func (g *Game) Status() types.Status {
	return g.status
}

// CurrentPlayer returns the player to move.
func (g *Game) CurrentPlayer() types.Player {
	return g.board.Current()
}

// LastMove returns the last committed cell, or (-1, -1) before the first move.
func (g *Game) LastMove() types.BoardPos {
	return g.lastMove
}

// WinningLine returns the winner's line once the game is won.
func (g *Game) WinningLine() (types.Line, bool) {
	if g.status.Outcome != types.Won {
		return types.Line{}, false
	}
	grid := g.board.Grid()
	return rules.WinningLine(&grid, g.status.Winner)
}

// SelectColumn plays the current player's piece into column.
// A full column or a finished game leaves everything untouched.
func (g *Game) SelectColumn(column int) error {
	if g.status.Finished() {
		return ErrGameOver
	}
	if column < 0 || column >= board.Width {
		return errors.Wrapf(ErrColumnOutOfRange, "column %d", column)
	}
	row, ok := g.board.FindLandingRow(column)
	if !ok {
		return errors.Wrapf(ErrColumnFull, "column %d", column)
	}

	mover := g.board.Current()
	g.board.CommitMove(row, column, mover)
	g.lastMove = types.BoardPos{Row: row, Col: column}
	if g.presenter != nil {
		g.presenter.OnPieceDropped(row, column, mover)
	}

	g.status = rules.Evaluate(g.board, mover)
	if g.status.Finished() {
		if g.presenter != nil {
			g.presenter.OnGameEnded(g.status.Message())
		}
		return nil
	}

	g.board.AdvanceTurn()
	return nil
}
