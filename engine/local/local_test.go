package local

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"connect4-local/engine"
	"connect4-local/game"
	"connect4-local/types"
)

type moveCall struct {
	row, col int
	player   types.Player
	state    *types.BoardState
}

func newConnectedEngine(t *testing.T, cfg engine.GameConfig) (*LocalEngine, *[]moveCall, *[]string, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	eng := NewLocalEngine(cfg, log.New(&buf, "", 0))
	moves := &[]moveCall{}
	ends := &[]string{}
	eng.OnMove(func(row, column int, player types.Player, boardState *types.BoardState) {
		*moves = append(*moves, moveCall{row, column, player, boardState})
	})
	eng.OnGameEnd(func(message string) {
		*ends = append(*ends, message)
	})
	if err := eng.Connect(); err != nil {
		t.Fatal(err)
	}
	return eng, moves, ends, &buf
}

func TestPlayMoveCallsBack(t *testing.T) {
	eng, moves, ends, _ := newConnectedEngine(t, engine.DefaultConfig())

	if err := eng.PlayMove(3); err != nil {
		t.Fatal(err)
	}
	if len(*moves) != 1 {
		t.Fatalf("expected 1 move callback, got %d", len(*moves))
	}
	m := (*moves)[0]
	if m.row != 5 || m.col != 3 || m.player != types.Player1 {
		t.Fatalf("unexpected move callback %+v", m)
	}
	if m.state.Board[5][3] != types.Player1 {
		t.Fatal("snapshot should contain the new piece")
	}
	if m.state.PlayerToMove != types.Player2 {
		t.Fatalf("snapshot should show player 2 to move, got %d", m.state.PlayerToMove)
	}
	if m.state.MoveNumber != 1 {
		t.Fatalf("expected move number 1, got %d", m.state.MoveNumber)
	}
	if m.state.LastMove != (types.BoardPos{Row: 5, Col: 3}) {
		t.Fatalf("unexpected last move %+v", m.state.LastMove)
	}
	if len(*ends) != 0 {
		t.Fatalf("game should not have ended, got %q", *ends)
	}
	if eng.CurrentPlayer() != types.Player2 {
		t.Fatalf("expected player 2 to move, got %d", eng.CurrentPlayer())
	}
}

func TestWinIsReportedOnce(t *testing.T) {
	eng, moves, ends, buf := newConnectedEngine(t, engine.DefaultConfig())

	for _, col := range []int{0, 1, 0, 1, 0, 1, 0} {
		if err := eng.PlayMove(col); err != nil {
			t.Fatal(err)
		}
	}
	if len(*ends) != 1 || (*ends)[0] != "Player 1 won!" {
		t.Fatalf("expected one \"Player 1 won!\", got %q", *ends)
	}
	if !eng.IsFinished() {
		t.Fatal("engine should report the game as finished")
	}

	final := (*moves)[len(*moves)-1].state
	if !final.Finished() || final.Status.Winner != types.Player1 {
		t.Fatalf("final snapshot should show player 1 winning, got %+v", final.Status)
	}
	if final.WinningLine == nil || !final.IsWinningCell(2, 0) || !final.IsWinningCell(5, 0) {
		t.Fatalf("expected winning line in column 0, got %v", final.WinningLine)
	}

	err := eng.PlayMove(2)
	if !errors.Is(err, game.ErrGameOver) {
		t.Fatalf("expected ErrGameOver, got %v", err)
	}
	if len(*moves) != 7 || len(*ends) != 1 {
		t.Fatal("no callbacks expected after the game ended")
	}
	if !strings.Contains(buf.String(), "Player 1 won!") {
		t.Errorf("debug log should record the outcome, got:\n%s", buf.String())
	}
}

func TestFullColumnIsSilent(t *testing.T) {
	eng, moves, ends, _ := newConnectedEngine(t, engine.DefaultConfig())
	for i := 0; i < 6; i++ {
		if err := eng.PlayMove(4); err != nil {
			t.Fatal(err)
		}
	}
	before := eng.GetBoardState()

	if err := eng.PlayMove(4); !errors.Is(err, game.ErrColumnFull) {
		t.Fatalf("expected ErrColumnFull, got %v", err)
	}
	if len(*moves) != 6 || len(*ends) != 0 {
		t.Fatal("no callbacks expected for a full column")
	}
	after := eng.GetBoardState()
	if after.MoveNumber != before.MoveNumber || after.PlayerToMove != before.PlayerToMove {
		t.Fatal("state changed after a move into a full column")
	}
}

func TestSnapshotsAreCopies(t *testing.T) {
	eng, _, _, _ := newConnectedEngine(t, engine.DefaultConfig())
	state := eng.GetBoardState()
	state.Board[5][0] = types.Player2

	if err := eng.PlayMove(0); err != nil {
		t.Fatal(err)
	}
	if got := eng.GetBoardState().Board[5][0]; got != types.Player1 {
		t.Fatalf("engine state leaked through a snapshot, got %d", got)
	}
}

func TestResetStartsNewGame(t *testing.T) {
	eng, _, _, _ := newConnectedEngine(t, engine.GameConfig{FirstPlayer: types.Player2})
	first := eng.GetBoardState().GameID
	if eng.CurrentPlayer() != types.Player2 {
		t.Fatalf("expected player 2 to start, got %d", eng.CurrentPlayer())
	}
	if err := eng.PlayMove(0); err != nil {
		t.Fatal(err)
	}

	eng.Reset()
	state := eng.GetBoardState()
	if state.GameID == first {
		t.Fatal("reset should start a game with a new id")
	}
	if state.MoveNumber != 0 || state.Board[5][0] != types.None {
		t.Fatal("reset should clear the board")
	}
	if state.PlayerToMove != types.Player2 {
		t.Fatalf("expected player 2 to start again, got %d", state.PlayerToMove)
	}
}

func TestCloseThenPlayStartsFresh(t *testing.T) {
	eng, _, _, _ := newConnectedEngine(t, engine.DefaultConfig())
	if err := eng.PlayMove(1); err != nil {
		t.Fatal(err)
	}
	eng.Close()
	if eng.IsFinished() {
		t.Fatal("closed engine should not report a finished game")
	}
	if got := eng.GetBoardState().MoveNumber; got != 0 {
		t.Fatalf("closed engine should report an empty board, got %d moves", got)
	}
	if err := eng.PlayMove(1); err != nil {
		t.Fatal(err)
	}
	if got := eng.GetBoardState().MoveNumber; got != 1 {
		t.Fatalf("expected a fresh game with 1 move, got %d", got)
	}
}

func TestInvalidFirstPlayerDefaults(t *testing.T) {
	eng := NewLocalEngine(engine.GameConfig{}, nil)
	if eng.CurrentPlayer() != types.Player1 {
		t.Fatalf("expected player 1, got %d", eng.CurrentPlayer())
	}
}
