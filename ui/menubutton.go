package ui

import (
	"github.com/gdamore/tcell/v2"
)

// MenuButton is a single-row button drawn inside a MenuCard.
type MenuButton struct {
	label    string
	primary  bool
	focused  bool
	onSelect func()
}

// NewMenuButton creates a new menu button. Primary buttons get a ▶ marker.
func NewMenuButton(label string, primary bool, onSelect func()) *MenuButton {
	return &MenuButton{
		label:    label,
		primary:  primary,
		onSelect: onSelect,
	}
}

// SetFocused sets the focus state.
func (b *MenuButton) SetFocused(focused bool) {
	b.focused = focused
}

// HandleKey activates the button on Enter or Space. Returns true if handled.
func (b *MenuButton) HandleKey(event *tcell.EventKey) bool {
	activate := event.Key() == tcell.KeyEnter ||
		(event.Key() == tcell.KeyRune && event.Rune() == ' ')
	if !activate {
		return false
	}
	if b.onSelect != nil {
		b.onSelect()
	}
	return true
}

func (b *MenuButton) text() []rune {
	if b.primary {
		return []rune("▶ " + b.label)
	}
	return []rune(b.label)
}

// Draw renders the button at the given position and returns the width used.
func (b *MenuButton) Draw(screen tcell.Screen, x, y int) int {
	label := b.text()
	width := b.Width()

	if b.focused {
		style := tcell.StyleDefault.
			Foreground(MenuColors.ButtonText).
			Background(MenuColors.ButtonFocus).
			Bold(true)
		for i := 0; i < width; i++ {
			screen.SetContent(x+i, y, ' ', nil, style)
		}
		for i, ch := range label {
			screen.SetContent(x+1+i, y, ch, nil, style)
		}
		return width
	}

	dimStyle := tcell.StyleDefault.Foreground(MenuColors.Hint).Background(MenuColors.CardBG)
	bracketStyle := tcell.StyleDefault.Foreground(MenuColors.Border).Background(MenuColors.CardBG)
	screen.SetContent(x, y, '[', nil, bracketStyle)
	for i, ch := range label {
		screen.SetContent(x+1+i, y, ch, nil, dimStyle)
	}
	screen.SetContent(x+width-1, y, ']', nil, bracketStyle)
	return width
}

// Width returns the button width including padding or brackets.
func (b *MenuButton) Width() int {
	return len(b.text()) + 2
}
