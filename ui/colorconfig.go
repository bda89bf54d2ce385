package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/rivo/tview"

	"connect4-local/board"
	"connect4-local/config"
	"connect4-local/types"
)

// ColorConfigUI lets each player pick a piece colour, with a live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	onDone    func(error)
	save      func(*config.Config) error

	editing  types.Player
	selected [2]int // palette codes for Player1 and Player2
	problem  string

	// set while the list is rebuilt, which fires change events
	populating bool
}

// Piece colours to choose from.
var pieceColors = []struct {
	code int
	name string
}{
	{196, "Red"},
	{160, "Dark Red"},
	{202, "Orange"},
	{208, "Dark Orange"},
	{226, "Yellow"},
	{220, "Gold"},
	{46, "Green"},
	{34, "Forest Green"},
	{51, "Cyan"},
	{39, "Sky Blue"},
	{21, "Blue"},
	{93, "Purple"},
	{201, "Magenta"},
	{213, "Pink"},
	{255, "White"},
	{244, "Gray"},
	{16, "Black"},
}

// sample pieces for the preview, bottom row first
var previewRows = []string{
	"..1212.",
	"..2121.",
	"...2...",
}

// NewColorConfig creates the colour picker. onDone receives the result of
// saving the config, or nil when nothing needed saving.
func NewColorConfig(cfg *config.Config, onDone func(error)) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:     cfg,
		onDone:  onDone,
		save:    (*config.Config).Save,
		editing: types.Player1,
		selected: [2]int{
			cfg.Theme.Colors.Player1Color,
			cfg.Theme.Colors.Player2Color,
		},
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)
	cc.populateColorList()

	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if !cc.populating {
			cc.selectColor(index)
		}
	})
	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		cc.selectColor(index)
		cc.confirm()
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 30, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

// colorIndex returns the position of a palette code in pieceColors, or -1.
func colorIndex(code int) int {
	for i, c := range pieceColors {
		if c.code == code {
			return i
		}
	}
	return -1
}

func (cc *ColorConfigUI) populateColorList() {
	cc.populating = true
	defer func() { cc.populating = false }()

	cc.colorList.Clear()
	other := cc.editing.Opponent()
	cc.colorList.SetTitle(fmt.Sprintf(" %s colour (Tab: %s) ", cc.editing, other))
	for i, c := range pieceColors {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]%c%c[-] %s (%d)",
			tcell.PaletteColor(c.code).Hex(), cc.pieceRune(cc.editing), cc.pieceRune(cc.editing), c.name, c.code),
			"", rune('a'+i), nil)
	}
	if i := colorIndex(cc.selected[cc.editing-1]); i >= 0 {
		cc.colorList.SetCurrentItem(i)
	}
}

func (cc *ColorConfigUI) pieceRune(p types.Player) rune {
	if p == types.Player2 {
		return cc.cfg.Theme.Symbols.Player2Piece
	}
	return cc.cfg.Theme.Symbols.Player1Piece
}

// selectColor previews the colour at index for the player being edited.
func (cc *ColorConfigUI) selectColor(index int) {
	if index < 0 || index >= len(pieceColors) {
		return
	}
	cc.selected[cc.editing-1] = pieceColors[index].code
	cc.problem = ""
}

// confirm applies the previewed colour. Confirming Player 1 moves on to
// Player 2; confirming Player 2 saves and leaves the screen.
func (cc *ColorConfigUI) confirm() {
	candidate := *cc.cfg
	candidate.Theme.Colors.Player1Color = cc.selected[0]
	candidate.Theme.Colors.Player2Color = cc.selected[1]
	if err := candidate.Validate(); err != nil {
		cc.problem = err.Error()
		return
	}
	cc.cfg.Theme.Colors = candidate.Theme.Colors

	if cc.editing == types.Player1 {
		cc.ToggleMode()
		return
	}
	var err error
	if cc.save != nil {
		err = errors.Wrap(cc.save(cc.cfg), "saving colours")
	}
	cc.editing = types.Player1
	cc.populateColorList()
	if cc.onDone != nil {
		cc.onDone(err)
	}
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if width < 20 || height < 10 {
		return x, y, width, height
	}
	colors := cc.cfg.Theme.Colors
	symbols := cc.cfg.Theme.Symbols
	startX, startY := x+2, y+1
	rows := len(previewRows) + 1

	for row := 0; row < rows; row++ {
		for col := 0; col < board.Width; col++ {
			bg := tcell.PaletteColor(colors.BoardColor)
			if (row+col)%2 == 1 {
				bg = tcell.PaletteColor(colors.BoardColorAlt)
			}
			style := tcell.StyleDefault.Background(bg).Foreground(tcell.PaletteColor(colors.LineColor))
			r := symbols.EmptyCell

			// row 0 is the top of the preview
			if src := rows - 1 - row; src < len(previewRows) {
				switch previewRows[src][col] {
				case '1':
					r = symbols.Player1Piece
					style = style.Foreground(tcell.PaletteColor(cc.selected[0]))
				case '2':
					r = symbols.Player2Piece
					style = style.Foreground(tcell.PaletteColor(cc.selected[1]))
				}
			}
			drawCell(screen, style, r, startX+col*cellWidth, startY+row)
		}
	}

	info := fmt.Sprintf("%s: %d  %s: %d", types.Player1, cc.selected[0], types.Player2, cc.selected[1])
	lines := []string{info, "Enter: confirm  Esc: back"}
	if cc.problem != "" {
		lines = append(lines, cc.problem)
	}
	for i, line := range lines {
		style := tcell.StyleDefault
		if i == 2 {
			style = style.Foreground(tcell.ColorRed)
		}
		for j, ch := range []rune(line) {
			if startX+j < x+width-1 {
				screen.SetContent(startX+j, startY+rows+1+i, ch, nil, style)
			}
		}
	}

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the colour list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between editing Player 1 and Player 2.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editing = cc.editing.Opponent()
	cc.problem = ""
	cc.populateColorList()
}

// Editing returns the player whose colour is being picked.
func (cc *ColorConfigUI) Editing() types.Player {
	return cc.editing
}
