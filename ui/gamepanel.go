package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"connect4-local/board"
	"connect4-local/types"
)

// GameInfoPanel displays game information alongside the board.
type GameInfoPanel struct {
	box        *tview.TextView
	boardState *types.BoardState
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box: tview.NewTextView(),
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetBoardState updates the panel with current board state.
func (p *GameInfoPanel) SetBoardState(state *types.BoardState) {
	p.boardState = state
	p.refresh()
}

// refresh updates the panel text.
func (p *GameInfoPanel) refresh() {
	if p.boardState == nil {
		p.box.SetText("")
		return
	}
	p.box.SetText(panelText(p.boardState))
}

func panelText(state *types.BoardState) string {
	var text string

	text += "[white::b]Game Info[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"

	if len(state.GameID) >= 8 {
		text += fmt.Sprintf("[white]Game:[-:-:-] %s\n", state.GameID[:8])
	}
	text += fmt.Sprintf("[white]Move:[-:-:-] %d/%d\n", state.MoveNumber, board.Width*board.Height)

	if state.LastMove.Row >= 0 && state.LastMove.Col >= 0 {
		text += fmt.Sprintf("[white]Last:[-:-:-] %s\n", board.PosLabel(state.LastMove.Row, state.LastMove.Col))
	}

	text += "\n"
	if state.Finished() {
		text += fmt.Sprintf("[yellow::b]%s[-:-:-]\n", state.Status.Message())
		if state.WinningLine != nil {
			first, last := state.WinningLine[0], state.WinningLine[len(state.WinningLine)-1]
			text += fmt.Sprintf("[dimgray]%s-%s[-]\n",
				board.PosLabel(first.Row, first.Col), board.PosLabel(last.Row, last.Col))
		}
	} else {
		text += fmt.Sprintf("[white]To move:[-:-:-] %s\n", state.PlayerToMove)
	}

	return text
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(boardUI *BoardUI, hint *tview.TextView) *tview.Flex {
	mainFlex := tview.NewFlex()
	RebuildNormalLayout(mainFlex, boardUI, hint)
	return mainFlex
}

// RebuildNormalLayout restores the normal game layout with board, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, boardUI *BoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	// Create the info panel
	infoPanel := NewGameInfoPanel()

	// Store panel reference in board for updates
	boardUI.infoPanel = infoPanel

	if boardUI.BoardState != nil {
		infoPanel.SetBoardState(boardUI.BoardState)
	}

	// Create horizontal flex: board | info panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(boardUI.Box, 0, 1, true)       // Board (flexible, takes remaining space)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false) // Info panel (fixed width)

	// Main vertical flex: board area on top, compact status bar at bottom
	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 2, 0, false)
}

// BuildFocusLayout builds the focus mode layout with just the centered board.
func BuildFocusLayout(gameFrame *tview.Flex, boardUI *BoardUI) {
	gameFrame.Clear()

	boardWidth := board.Width*cellWidth + 2 // + cursor column padding
	boardHeight := board.Height + 2         // + cursor row and labels

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false) // top spacer

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)
	centerRow.AddItem(boardUI.Box, boardWidth, 0, true)
	centerRow.AddItem(nil, 0, 1, false)

	gameFrame.AddItem(centerRow, boardHeight, 0, true)
	gameFrame.AddItem(nil, 0, 1, false) // bottom spacer
}

// CreateCenteredForm creates a centered container for the setup screen.
func CreateCenteredForm(form tview.Primitive, maxWidth, height int) *tview.Flex {
	row := tview.NewFlex().SetDirection(tview.FlexColumn)
	row.AddItem(nil, 0, 1, false)
	row.AddItem(form, maxWidth, 0, true)
	row.AddItem(nil, 0, 1, false)

	centered := tview.NewFlex().SetDirection(tview.FlexRow)
	centered.AddItem(nil, 0, 1, false)
	centered.AddItem(row, height, 0, true)
	centered.AddItem(nil, 0, 1, false)
	return centered
}
