// Package local provides an in-process Connect Four engine.
package local

import (
	"encoding/json"
	"io"
	"log"
	"sync"

	"connect4-local/board"
	"connect4-local/engine"
	"connect4-local/game"
	"connect4-local/types"
)

// LocalEngine implements the GameEngine interface on top of game.Game.
type LocalEngine struct {
	config   engine.GameConfig
	game     *game.Game
	debugLog *log.Logger

	// Events raised by the game while mu is held, delivered after unlocking.
	pending []event

	moveCallback func(row, column int, player types.Player, boardState *types.BoardState)
	endCallback  func(message string)

	mu sync.Mutex
}

var (
	_ engine.GameEngine = (*LocalEngine)(nil)
	_ game.Presenter    = (*LocalEngine)(nil)
)

type event struct {
	drop     bool
	row, col int
	player   types.Player
	message  string
}

// NewLocalEngine creates a new engine. A nil logger discards debug output.
func NewLocalEngine(cfg engine.GameConfig, logger *log.Logger) *LocalEngine {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if !cfg.FirstPlayer.Valid() {
		cfg.FirstPlayer = types.Player1
	}
	return &LocalEngine{
		config:   cfg,
		debugLog: logger,
	}
}

// Connect starts a new game.
func (l *LocalEngine) Connect() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.newGame()
	return nil
}

// newGame must be called while holding the lock.
func (l *LocalEngine) newGame() {
	l.game = game.New(l.config.FirstPlayer, l)
	l.pending = nil
	l.debugLog.Printf("game %s: started, %s moves first", l.game.ID, l.config.FirstPlayer)
}

// GetBoardState returns a snapshot of the current board.
func (l *LocalEngine) GetBoardState() *types.BoardState {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.game == nil {
		state := types.NewBoardState(board.Height, board.Width)
		state.PlayerToMove = l.config.FirstPlayer
		return state
	}
	return l.copyBoardState()
}

// PlayMove drops the current player's piece into column.
func (l *LocalEngine) PlayMove(column int) error {
	l.mu.Lock()
	if l.game == nil {
		l.newGame()
	}
	id := l.game.ID
	player := l.game.CurrentPlayer()
	err := l.game.SelectColumn(column)
	if err != nil {
		l.mu.Unlock()
		l.debugLog.Printf("game %s: %s rejected: %v", id, player, err)
		return err
	}
	events := l.pending
	l.pending = nil
	state := l.copyBoardState()
	l.mu.Unlock()

	// Notify callbacks (outside lock to prevent deadlock)
	for _, ev := range events {
		if ev.drop {
			l.debugLog.Printf("game %s: %s dropped at %s", id, ev.player, board.PosLabel(ev.row, ev.col))
			if l.moveCallback != nil {
				l.moveCallback(ev.row, ev.col, ev.player, state)
			}
			continue
		}
		if data, err := json.Marshal(state); err == nil {
			l.debugLog.Printf("game %s: %s final state %s", id, ev.message, data)
		}
		if l.endCallback != nil {
			l.endCallback(ev.message)
		}
	}
	return nil
}

// OnPieceDropped records a committed piece. Called by game.Game with the lock held.
func (l *LocalEngine) OnPieceDropped(row, column int, player types.Player) {
	l.pending = append(l.pending, event{drop: true, row: row, col: column, player: player})
}

// OnGameEnded records the outcome. Called by game.Game with the lock held.
func (l *LocalEngine) OnGameEnded(message string) {
	l.pending = append(l.pending, event{message: message})
}

// CurrentPlayer returns the player to move.
func (l *LocalEngine) CurrentPlayer() types.Player {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.game == nil {
		return l.config.FirstPlayer
	}
	return l.game.CurrentPlayer()
}

// IsFinished returns true once the game is won or tied.
func (l *LocalEngine) IsFinished() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.game != nil && l.game.Status().Finished()
}

// OnMove registers a callback for when a piece is dropped.
func (l *LocalEngine) OnMove(callback func(row, column int, player types.Player, boardState *types.BoardState)) {
	l.moveCallback = callback
}

// OnGameEnd registers a callback for when the game ends.
func (l *LocalEngine) OnGameEnd(callback func(message string)) {
	l.endCallback = callback
}

// Reset discards the current game and starts a new one.
func (l *LocalEngine) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.game != nil {
		l.debugLog.Printf("game %s: replaced after %d moves", l.game.ID, l.game.Board().Moves())
	}
	l.newGame()
}

// Close ends the session.
func (l *LocalEngine) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.game != nil {
		l.debugLog.Printf("game %s: closed (%s)", l.game.ID, l.game.Status().Outcome)
	}
	l.game = nil
}

// copyBoardState creates a deep copy of the current board state.
// Must be called while holding the lock.
func (l *LocalEngine) copyBoardState() *types.BoardState {
	state := types.NewBoardState(board.Height, board.Width)
	grid := l.game.Board().Grid()
	for r := range grid {
		copy(state.Board[r], grid[r][:])
	}
	state.GameID = l.game.ID
	state.MoveNumber = l.game.Board().Moves()
	state.PlayerToMove = l.game.CurrentPlayer()
	state.Status = l.game.Status()
	state.LastMove = l.game.LastMove()
	if line, ok := l.game.WinningLine(); ok {
		state.WinningLine = &line
	}
	return state
}
