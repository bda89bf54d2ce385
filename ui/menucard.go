package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// titleRows is the number of card rows taken by the border, title and divider.
const titleRows = 5

// MenuCard is a card container with rounded borders and a title row.
type MenuCard struct {
	*tview.Box
	title   string
	accent  rune
	focused bool
}

// NewMenuCard creates a new menu card with the given title.
func NewMenuCard(title string) *MenuCard {
	return &MenuCard{
		Box:    tview.NewBox(),
		title:  title,
		accent: '●',
	}
}

// SetAccent replaces the rune drawn in front of the title.
func (c *MenuCard) SetAccent(r rune) *MenuCard {
	c.accent = r
	return c
}

// Draw renders the card frame. Embedding widgets draw their content on top.
func (c *MenuCard) Draw(screen tcell.Screen) {
	c.Box.DrawForSubclass(screen, c)

	x, y, width, height := c.GetInnerRect()
	if width < 10 || height < titleRows {
		return
	}

	borderStyle := c.borderStyle()
	bgStyle := tcell.StyleDefault.Background(MenuColors.CardBG)

	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			screen.SetContent(col, row, ' ', nil, bgStyle)
		}
	}

	c.hline(screen, y, '╭', '╮')
	for row := y + 1; row < y+height-1; row++ {
		screen.SetContent(x, row, '│', nil, borderStyle)
		screen.SetContent(x+width-1, row, '│', nil, borderStyle)
	}
	c.hline(screen, y+height-1, '╰', '╯')

	if c.title == "" {
		return
	}

	// ● CONNECT FOUR, centred two rows below the top border
	titleStyle := tcell.StyleDefault.Foreground(MenuColors.Title).Background(MenuColors.CardBG).Bold(true)
	accentStyle := tcell.StyleDefault.Foreground(MenuColors.TitleAccent).Background(MenuColors.CardBG)
	titleLen := len([]rune(c.title)) + 3
	titleX := x + (width-titleLen)/2
	titleY := y + 2

	screen.SetContent(titleX, titleY, c.accent, nil, accentStyle)
	for i, ch := range []rune(c.title) {
		screen.SetContent(titleX+3+i, titleY, ch, nil, titleStyle)
	}
	c.DrawDivider(screen, y+4)
}

// DrawDivider draws a horizontal divider at the given y position.
func (c *MenuCard) DrawDivider(screen tcell.Screen, divY int) {
	c.hline(screen, divY, '├', '┤')
}

func (c *MenuCard) hline(screen tcell.Screen, y int, left, right rune) {
	x, _, width, _ := c.GetInnerRect()
	style := c.borderStyle()
	screen.SetContent(x, y, left, nil, style)
	for col := x + 1; col < x+width-1; col++ {
		screen.SetContent(col, y, '─', nil, style)
	}
	screen.SetContent(x+width-1, y, right, nil, style)
}

func (c *MenuCard) borderStyle() tcell.Style {
	color := MenuColors.Border
	if c.focused {
		color = MenuColors.BorderFocus
	}
	return tcell.StyleDefault.Foreground(color).Background(MenuColors.CardBG)
}

// SetFocused sets the focus state of the card.
func (c *MenuCard) SetFocused(focused bool) {
	c.focused = focused
}
