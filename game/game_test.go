package game

import (
	"testing"

	"github.com/pkg/errors"

	"connect4-local/board"
	"connect4-local/types"
)

type drop struct {
	row, col int
	player   types.Player
}

type recorder struct {
	drops []drop
	ended []string
}

func (r *recorder) OnPieceDropped(row, column int, player types.Player) {
	r.drops = append(r.drops, drop{row, column, player})
}

func (r *recorder) OnGameEnded(message string) {
	r.ended = append(r.ended, message)
}

// tieSequence fills the board row by row without ever making four in a row.
func tieSequence() []int {
	order := []int{0, 2, 1, 3, 4, 6, 5}
	var moves []int
	for i := 0; i < board.Height; i++ {
		moves = append(moves, order...)
	}
	return moves
}

func play(t *testing.T, g *Game, cols ...int) {
	t.Helper()
	for i, col := range cols {
		if err := g.SelectColumn(col); err != nil {
			t.Fatalf("move %d (column %d): %v", i, col, err)
		}
	}
}

func TestVerticalWin(t *testing.T) {
	rec := &recorder{}
	g := New(types.Player1, rec)

	play(t, g, 0, 1, 0, 1, 0, 1)
	if g.Status().Finished() {
		t.Fatal("game should still be running after six moves")
	}
	play(t, g, 0)

	want := types.Status{Outcome: types.Won, Winner: types.Player1}
	if g.Status() != want {
		t.Fatalf("expected %+v, got %+v", want, g.Status())
	}
	if g.CurrentPlayer() != types.Player1 {
		t.Fatalf("turn must not advance after a win, got %d", g.CurrentPlayer())
	}
	if len(rec.ended) != 1 || rec.ended[0] != "Player 1 won!" {
		t.Fatalf("expected one \"Player 1 won!\" notification, got %q", rec.ended)
	}
	line, ok := g.WinningLine()
	if !ok {
		t.Fatal("expected a winning line")
	}
	wantLine := types.Line{{Row: 2, Col: 0}, {Row: 3, Col: 0}, {Row: 4, Col: 0}, {Row: 5, Col: 0}}
	if line != wantLine {
		t.Fatalf("expected line %v, got %v", wantLine, line)
	}
}

func TestDropsAreReported(t *testing.T) {
	rec := &recorder{}
	g := New(types.Player1, rec)
	play(t, g, 3, 3, 4)

	want := []drop{
		{5, 3, types.Player1},
		{4, 3, types.Player2},
		{5, 4, types.Player1},
	}
	if len(rec.drops) != len(want) {
		t.Fatalf("expected %d drops, got %d", len(want), len(rec.drops))
	}
	for i := range want {
		if rec.drops[i] != want[i] {
			t.Errorf("drop %d = %+v, want %+v", i, rec.drops[i], want[i])
		}
	}
	if last := g.LastMove(); last.Row != 5 || last.Col != 4 {
		t.Errorf("last move = %+v, want (5, 4)", last)
	}
	if len(rec.ended) != 0 {
		t.Errorf("game should not have ended, got %q", rec.ended)
	}
}

func TestTurnAlternates(t *testing.T) {
	g := New(types.Player1, nil)
	want := types.Player1
	for _, col := range []int{0, 1, 2, 3, 4, 5, 6, 0} {
		if g.CurrentPlayer() != want {
			t.Fatalf("expected player %d to move, got %d", want, g.CurrentPlayer())
		}
		if err := g.SelectColumn(col); err != nil {
			t.Fatal(err)
		}
		want = want.Opponent()
	}
}

func TestPlayer2CanStart(t *testing.T) {
	rec := &recorder{}
	g := New(types.Player2, rec)
	play(t, g, 6)
	if rec.drops[0].player != types.Player2 {
		t.Fatalf("expected player 2 to drop first, got %d", rec.drops[0].player)
	}
	if g.CurrentPlayer() != types.Player1 {
		t.Fatalf("expected player 1 next, got %d", g.CurrentPlayer())
	}
}

func TestFullColumnIsIgnored(t *testing.T) {
	rec := &recorder{}
	g := New(types.Player1, rec)
	play(t, g, 2, 2, 2, 2, 2, 2)

	before := g.Board().Grid()
	player := g.CurrentPlayer()
	drops := len(rec.drops)

	err := g.SelectColumn(2)
	if !errors.Is(err, ErrColumnFull) {
		t.Fatalf("expected ErrColumnFull, got %v", err)
	}
	if g.Board().Grid() != before {
		t.Fatal("grid changed after a move into a full column")
	}
	if g.CurrentPlayer() != player {
		t.Fatal("turn changed after a move into a full column")
	}
	if len(rec.drops) != drops || len(rec.ended) != 0 {
		t.Fatal("presenter notified after a move into a full column")
	}
	if g.Status().Finished() {
		t.Fatal("game should still be running")
	}
}

func TestColumnOutOfRange(t *testing.T) {
	rec := &recorder{}
	g := New(types.Player1, rec)
	for _, col := range []int{-1, board.Width} {
		if err := g.SelectColumn(col); !errors.Is(err, ErrColumnOutOfRange) {
			t.Errorf("column %d: expected ErrColumnOutOfRange, got %v", col, err)
		}
	}
	if len(rec.drops) != 0 {
		t.Fatal("presenter notified for an out of range column")
	}
}

func TestNoMovesAfterGameOver(t *testing.T) {
	rec := &recorder{}
	g := New(types.Player1, rec)
	play(t, g, 0, 1, 0, 1, 0, 1, 0)

	before := g.Board().Grid()
	for col := 0; col < board.Width; col++ {
		if err := g.SelectColumn(col); !errors.Is(err, ErrGameOver) {
			t.Fatalf("column %d: expected ErrGameOver, got %v", col, err)
		}
	}
	if g.Board().Grid() != before {
		t.Fatal("grid changed after the game ended")
	}
	if len(rec.drops) != 7 {
		t.Fatalf("expected 7 drops, got %d", len(rec.drops))
	}
	if len(rec.ended) != 1 {
		t.Fatalf("game end should be reported once, got %d", len(rec.ended))
	}
}

func TestTie(t *testing.T) {
	rec := &recorder{}
	g := New(types.Player1, rec)
	moves := tieSequence()
	if len(moves) != board.Width*board.Height {
		t.Fatalf("expected %d moves, got %d", board.Width*board.Height, len(moves))
	}

	for i, col := range moves {
		if g.Status().Finished() {
			t.Fatalf("game ended early at move %d: %+v", i, g.Status())
		}
		if err := g.SelectColumn(col); err != nil {
			t.Fatalf("move %d (column %d): %v", i, col, err)
		}
	}

	if g.Status() != (types.Status{Outcome: types.Tie}) {
		t.Fatalf("expected tie, got %+v", g.Status())
	}
	if len(rec.ended) != 1 || rec.ended[0] != "Tie!" {
		t.Fatalf("expected one \"Tie!\" notification, got %q", rec.ended)
	}
	if len(rec.drops) != board.Width*board.Height {
		t.Fatalf("expected %d drops, got %d", board.Width*board.Height, len(rec.drops))
	}
	if _, ok := g.WinningLine(); ok {
		t.Fatal("a tie has no winning line")
	}
}

func TestWinOnLastCellIsNotATie(t *testing.T) {
	b, err := board.Parse(types.Player2,
		"2212.22",
		"1122112",
		"2211221",
		"1122112",
		"2211221",
		"1122112",
	)
	if err != nil {
		t.Fatal(err)
	}
	rec := &recorder{}
	g := Resume(b, rec)
	play(t, g, 4)

	if !g.Board().IsFull() {
		t.Fatal("board should be full")
	}
	want := types.Status{Outcome: types.Won, Winner: types.Player2}
	if g.Status() != want {
		t.Fatalf("expected %+v, got %+v", want, g.Status())
	}
	if len(rec.ended) != 1 || rec.ended[0] != "Player 2 won!" {
		t.Fatalf("expected \"Player 2 won!\", got %q", rec.ended)
	}
}

func TestCellsNeverChange(t *testing.T) {
	g := New(types.Player1, nil)
	var seen board.Grid
	for _, col := range tieSequence() {
		if err := g.SelectColumn(col); err != nil {
			t.Fatal(err)
		}
		grid := g.Board().Grid()
		for r := 0; r < board.Height; r++ {
			for c := 0; c < board.Width; c++ {
				if seen[r][c] != types.None && grid[r][c] != seen[r][c] {
					t.Fatalf("cell (%d, %d) changed from %d to %d", r, c, seen[r][c], grid[r][c])
				}
			}
		}
		seen = grid
	}
}

func TestGameIDs(t *testing.T) {
	a, b := New(types.Player1, nil), New(types.Player1, nil)
	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("expected distinct game ids, got %q and %q", a.ID, b.ID)
	}
}
