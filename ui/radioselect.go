package ui

import (
	"github.com/gdamore/tcell/v2"
)

// RadioOption is one choice of a RadioSelect. Marker is drawn in Color next
// to the label when set, so options can show a player's piece.
type RadioOption struct {
	Label  string
	Marker rune
	Color  tcell.Color
}

// RadioSelect is a vertical group of mutually exclusive options.
type RadioSelect struct {
	label    string
	options  []RadioOption
	selected int
	focused  bool
	onChange func(int)
}

// NewRadioSelect creates a new radio select component.
func NewRadioSelect(label string, options []RadioOption, initial int, onChange func(int)) *RadioSelect {
	if initial < 0 || initial >= len(options) {
		initial = 0
	}
	return &RadioSelect{
		label:    label,
		options:  options,
		selected: initial,
		onChange: onChange,
	}
}

// SetFocused sets the focus state.
func (r *RadioSelect) SetFocused(focused bool) {
	r.focused = focused
}

// HandleKey moves the selection with the arrow keys or j/k. It returns false
// when the selection is already at the edge in the requested direction so the
// caller can move focus out of the group.
func (r *RadioSelect) HandleKey(event *tcell.EventKey) bool {
	delta := 0
	switch event.Key() {
	case tcell.KeyUp:
		delta = -1
	case tcell.KeyDown:
		delta = 1
	case tcell.KeyRune:
		switch event.Rune() {
		case 'k':
			delta = -1
		case 'j':
			delta = 1
		}
	}
	if delta == 0 {
		return false
	}
	next := r.selected + delta
	if next < 0 || next >= len(r.options) {
		return false
	}
	r.SetSelected(next)
	return true
}

// Draw renders the group and returns the number of rows used.
func (r *RadioSelect) Draw(screen tcell.Screen, x, y, width int) int {
	bgStyle := tcell.StyleDefault.Background(MenuColors.CardBG)
	labelStyle := tcell.StyleDefault.Foreground(MenuColors.Label).Background(MenuColors.CardBG)
	accentStyle := tcell.StyleDefault.Foreground(MenuColors.TitleAccent).Background(MenuColors.CardBG)
	selectedStyle := tcell.StyleDefault.Foreground(MenuColors.Selected).Background(MenuColors.CardBG)
	unselectedStyle := tcell.StyleDefault.Foreground(MenuColors.Unselected).Background(MenuColors.CardBG)

	row := y
	screen.SetContent(x, row, '◈', nil, accentStyle)
	for i, ch := range []rune(r.label) {
		if x+2+i >= x+width {
			break
		}
		screen.SetContent(x+2+i, row, ch, nil, labelStyle)
	}
	row++

	for i, opt := range r.options {
		col := x + 2

		if r.focused && i == r.selected {
			screen.SetContent(col, row, '▸', nil, selectedStyle)
		} else {
			screen.SetContent(col, row, ' ', nil, bgStyle)
		}
		col += 2

		style := unselectedStyle
		bullet := '○'
		if i == r.selected {
			bullet = '◉'
			style = selectedStyle
		}
		screen.SetContent(col, row, bullet, nil, style)
		col += 2

		if opt.Marker != 0 {
			screen.SetContent(col, row, opt.Marker, nil, bgStyle.Foreground(opt.Color))
			col += 2
		}

		for _, ch := range opt.Label {
			screen.SetContent(col, row, ch, nil, style)
			col++
		}
		row++
	}

	return row - y
}

// Rows returns the number of rows Draw uses.
func (r *RadioSelect) Rows() int {
	return len(r.options) + 1
}

// Selected returns the currently selected index.
func (r *RadioSelect) Selected() int {
	return r.selected
}

// SetSelected sets the selected index, ignoring out of range values.
func (r *RadioSelect) SetSelected(index int) {
	if index < 0 || index >= len(r.options) || index == r.selected {
		return
	}
	r.selected = index
	if r.onChange != nil {
		r.onChange(r.selected)
	}
}
