// Package types contains shared data structures for connect4-local.
package types

import "fmt"

// Player identifies the owner of a piece. None marks an empty cell.
type Player int

const (
	None    Player = 0
	Player1 Player = 1
	Player2 Player = 2
)

// Valid returns true for Player1 and Player2.
func (p Player) Valid() bool {
	return p == Player1 || p == Player2
}

// Opponent returns the other player (1->2, 2->1).
func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

func (p Player) String() string {
	if !p.Valid() {
		return "None"
	}
	return fmt.Sprintf("Player %d", int(p))
}

// Outcome is the phase of a game.
type Outcome int

const (
	InProgress Outcome = iota
	Won
	Tie
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Tie:
		return "tie"
	default:
		return "playing"
	}
}

// Status is InProgress, Won(Winner) or Tie.
type Status struct {
	Outcome Outcome `json:"outcome"`
	Winner  Player  `json:"winner,omitempty"`
}

// Finished returns true if the game is over.
func (s Status) Finished() bool {
	return s.Outcome != InProgress
}

// Message returns the human readable outcome, or "" while the game is running.
func (s Status) Message() string {
	switch s.Outcome {
	case Won:
		return fmt.Sprintf("%s won!", s.Winner)
	case Tie:
		return "Tie!"
	default:
		return ""
	}
}

// BoardPos represents a cell on the board. Row 0 is the top row.
type BoardPos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Line is four consecutive cells.
type Line [4]BoardPos

// Contains reports whether pos is one of the line's cells.
func (l Line) Contains(pos BoardPos) bool {
	for _, p := range l {
		if p == pos {
			return true
		}
	}
	return false
}

// BoardState is a snapshot of a game handed to the presentation.
// Board is indexed as Board[row][col].
type BoardState struct {
	GameID       string     `json:"game_id"`
	MoveNumber   int        `json:"move_number"`
	PlayerToMove Player     `json:"player_to_move"`
	Status       Status     `json:"status"`
	Board        [][]Player `json:"board"`
	LastMove     BoardPos   `json:"last_move"`
	WinningLine  *Line      `json:"winning_line,omitempty"`
}

// Finished returns true if the game is over.
func (b *BoardState) Finished() bool {
	return b.Status.Finished()
}

// Height returns the board height.
func (b *BoardState) Height() int {
	return len(b.Board)
}

// Width returns the board width.
func (b *BoardState) Width() int {
	if b.Height() == 0 {
		return 0
	}
	return len(b.Board[0])
}

// IsWinningCell returns true if (row, col) is part of the winning line.
func (b *BoardState) IsWinningCell(row, col int) bool {
	if b.WinningLine == nil {
		return false
	}
	return b.WinningLine.Contains(BoardPos{Row: row, Col: col})
}

// NewBoardState creates an empty snapshot of the given dimensions.
func NewBoardState(height, width int) *BoardState {
	board := make([][]Player, height)
	for i := range board {
		board[i] = make([]Player, width)
	}
	return &BoardState{
		PlayerToMove: Player1,
		Board:        board,
		LastMove:     BoardPos{Row: -1, Col: -1},
	}
}
