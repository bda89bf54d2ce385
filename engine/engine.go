// Package engine defines the interface the UI uses to drive a game.
package engine

import "connect4-local/types"

// GameEngine defines the interface for playing Connect Four.
type GameEngine interface {
	// Connect starts a new game.
	Connect() error

	// GetBoardState returns a snapshot of the current board.
	GetBoardState() *types.BoardState

	// PlayMove drops the current player's piece into column.
	// Returns an error if the column is full or the game is over.
	PlayMove(column int) error

	// CurrentPlayer returns the player to move.
	CurrentPlayer() types.Player

	// IsFinished returns true once the game is won or tied.
	IsFinished() bool

	// OnMove registers a callback for every committed piece.
	// boardState is a copy taken right after the move.
	OnMove(func(row, column int, player types.Player, boardState *types.BoardState))

	// OnGameEnd registers a callback for when the game ends.
	OnGameEnd(func(message string))

	// Reset discards the current game and starts a new one.
	Reset()

	// Close releases the engine.
	Close()
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	FirstPlayer types.Player // Player to make the first move
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		FirstPlayer: types.Player1,
	}
}
