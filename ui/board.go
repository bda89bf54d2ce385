// Package ui specifies custom controls for tview to play Connect Four in the terminal.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"connect4-local/board"
	"connect4-local/config"
	"connect4-local/engine"
	"connect4-local/types"
)

// Each cell is 2 characters wide for a square appearance.
const cellWidth = 2

// Style palette indices.
const (
	styleBoard = iota
	stylePlayer1
	stylePlayer2
	styleBoardAlt
	styleLine
	styleCursorFG
	styleCursorBG
	styleLastPlayed
	styleWinning
)

type BoardUI struct {
	Box        *tview.Box
	BoardState *types.BoardState
	hint       *tview.TextView
	cfg        *config.Config
	finished   bool
	message    string
	selCol     int
	app        *tview.Application
	eng        engine.GameEngine
	styles     []tcell.Color
	infoPanel  *GameInfoPanel
	focusMode  bool
	onGameEnd  func(message string)
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *BoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *BoardUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

// IsFocusMode returns true if focus mode is enabled.
func (g *BoardUI) IsFocusMode() bool {
	return g.focusMode
}

// SelectedColumn returns the column under the cursor.
func (g *BoardUI) SelectedColumn() int {
	return g.selCol
}

// MoveSelection shifts the cursor by dx columns, stopping at the edges.
func (g *BoardUI) MoveSelection(dx int) {
	if g.finished {
		return
	}
	col := g.selCol + dx
	if col < 0 || col >= board.Width {
		return
	}
	g.selCol = col
}

func (g *BoardUI) ResetSelection() {
	g.selCol = board.Width / 2
}

// SetGameEndHandler registers a function to call once a game is over.
func (g *BoardUI) SetGameEndHandler(handler func(message string)) {
	g.onGameEnd = handler
}

func NewBoardUI(app *tview.Application, c *config.Config, hint *tview.TextView) *BoardUI {
	boardUI := &BoardUI{
		Box:        tview.NewBox(),
		BoardState: types.NewBoardState(board.Height, board.Width),
		hint:       hint,
		app:        app,
		selCol:     board.Width / 2,
	}
	boardUI.SetConfig(c)
	boardUI.Box.SetDrawFunc(boardUI.draw)
	return boardUI
}

func (g *BoardUI) draw(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
	state := g.BoardState
	if state == nil || state.Width() == 0 {
		return x, y, 1, 1
	}
	symbols := g.cfg.Theme.Symbols
	left, top := x+2, y+1

	// Cursor row above the board, in the colour of the player to move
	landing := -1
	if !state.Finished() {
		cursorStyle := tcell.StyleDefault.Foreground(g.pieceColor(state.PlayerToMove))
		screen.SetContent(left+g.selCol*cellWidth, y, symbols.Cursor, nil, cursorStyle)
		landing = landingRow(state, g.selCol)
	}

	for row := 0; row < state.Height(); row++ {
		for col := 0; col < state.Width(); col++ {
			bg := g.styles[styleBoard]
			if (row+col)%2 == 1 {
				bg = g.styles[styleBoardAlt]
			}
			fg := g.styles[styleLine]
			drawRune := symbols.EmptyCell

			if piece := state.Board[row][col]; piece.Valid() {
				drawRune = g.pieceRune(piece)
				fg = g.pieceColor(piece)
			}

			switch {
			case state.IsWinningCell(row, col):
				bg = g.styles[styleWinning]
			case row == landing && col == g.selCol:
				// Preview where the next piece will land
				if g.cfg.Theme.DrawCursorBackground {
					bg = g.styles[styleCursorBG]
				}
				drawRune = g.pieceRune(state.PlayerToMove)
				fg = g.pieceColor(state.PlayerToMove)
			case row == state.LastMove.Row && col == state.LastMove.Col:
				if g.cfg.Theme.DrawLastPlayedBackground {
					bg = g.styles[styleLastPlayed]
				}
			}

			drawCell(screen, tcell.StyleDefault.Background(bg).Foreground(fg), drawRune, left+col*cellWidth, top+row)
		}
	}
	drawColumnLabels(screen, left, top+state.Height(), g)
	return x, y, state.Width()*cellWidth + 2, state.Height() + 2
}

// ConnectEngine connects the board to a game engine.
func (g *BoardUI) ConnectEngine(e engine.GameEngine) error {
	g.finished = false
	g.message = ""
	g.eng = e

	if err := e.Connect(); err != nil {
		return err
	}

	e.OnMove(func(row, column int, player types.Player, boardState *types.BoardState) {
		g.BoardState = boardState
		g.refreshHint()
		g.redraw()
	})

	e.OnGameEnd(func(message string) {
		g.finished = true
		g.message = message
		g.BoardState = e.GetBoardState()
		g.refreshHint()
		g.redraw()
		if g.onGameEnd != nil {
			g.onGameEnd(message)
		}
	})

	g.BoardState = e.GetBoardState()
	g.ResetSelection()
	g.refreshHint()
	return nil
}

// redraw spawns a goroutine to avoid deadlock when called from the event loop.
func (g *BoardUI) redraw() {
	if g.app == nil {
		return
	}
	go func() {
		g.app.QueueUpdateDraw(func() {})
	}()
}

// PlayMove drops a piece into the selected column.
func (g *BoardUI) PlayMove() {
	g.PlayColumn(g.selCol)
}

// PlayColumn moves the cursor to col and drops a piece there.
// A full column is ignored.
func (g *BoardUI) PlayColumn(col int) {
	if g.finished || g.eng == nil {
		return
	}
	if col < 0 || col >= board.Width {
		return
	}
	g.selCol = col
	if err := g.eng.PlayMove(col); err != nil {
		return
	}
}

// NewGame discards the current game and starts over.
func (g *BoardUI) NewGame() {
	if g.eng == nil {
		return
	}
	g.eng.Reset()
	g.finished = false
	g.message = ""
	g.BoardState = g.eng.GetBoardState()
	g.ResetSelection()
	g.refreshHint()
}

// Close disconnects the engine.
func (g *BoardUI) Close() {
	if g.eng == nil {
		return
	}
	g.eng.Close()
}

func (g *BoardUI) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.BoardColor),        // 0
		tcell.PaletteColor(c.Theme.Colors.Player1Color),      // 1
		tcell.PaletteColor(c.Theme.Colors.Player2Color),      // 2
		tcell.PaletteColor(c.Theme.Colors.BoardColorAlt),     // 3
		tcell.PaletteColor(c.Theme.Colors.LineColor),         // 4
		tcell.PaletteColor(c.Theme.Colors.CursorColorFG),     // 5
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG),     // 6
		tcell.PaletteColor(c.Theme.Colors.LastPlayedColorBG), // 7
		tcell.PaletteColor(c.Theme.Colors.WinningColorBG),    // 8
	}
	g.cfg = c
}

func (g *BoardUI) pieceColor(p types.Player) tcell.Color {
	if p == types.Player2 {
		return g.styles[stylePlayer2]
	}
	return g.styles[stylePlayer1]
}

func (g *BoardUI) pieceRune(p types.Player) rune {
	if p == types.Player2 {
		return g.cfg.Theme.Symbols.Player2Piece
	}
	return g.cfg.Theme.Symbols.Player1Piece
}

func (g *BoardUI) refreshHint() {
	if g.infoPanel != nil {
		g.infoPanel.SetBoardState(g.BoardState)
	}

	if g.focusMode {
		g.hint.SetText("  f to toggle")
		return
	}

	var statusLine, controlsLine string
	if g.finished {
		statusLine = fmt.Sprintf("  Result: %s", g.message)
		controlsLine = "   n · new game   q · return to menu"
	} else {
		player := g.BoardState.PlayerToMove
		statusLine = fmt.Sprintf("  %c %s to move", g.pieceRune(player), player)
		controlsLine = "\n  h/l ←/→ move   ⏎ drop   1-7 column   n new   f focus   q quit"
	}
	g.hint.SetText(statusLine + controlsLine)
}

// IsFinished returns true if the game is over.
func (g *BoardUI) IsFinished() bool {
	return g.finished
}

// landingRow returns the row a piece dropped into col would occupy, or -1.
func landingRow(state *types.BoardState, col int) int {
	if col < 0 || col >= state.Width() || state.Board[0][col] != types.None {
		return -1
	}
	for row := state.Height() - 1; row >= 0; row-- {
		if state.Board[row][col] == types.None {
			return row
		}
	}
	return -1
}

// drawCell draws a cell (2 characters wide)
func drawCell(s tcell.Screen, c tcell.Style, r rune, x, y int) {
	s.SetContent(x, y, r, nil, c)
	s.SetContent(x+1, y, ' ', nil, c)
}

func drawColumnLabels(s tcell.Screen, x, y int, ui *BoardUI) {
	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(ui.styles[styleCursorBG]).Foreground(ui.styles[styleCursorFG])

	for col := 0; col < ui.BoardState.Width(); col++ {
		_style := style
		if col == ui.selCol && !ui.finished {
			_style = highlight
		}
		label := []rune(board.ColumnLabel(col))
		s.SetContent(x+col*cellWidth, y, label[0], nil, _style)
		s.SetContent(x+col*cellWidth+1, y, ' ', nil, _style)
	}
}
