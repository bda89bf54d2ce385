package ui

import "github.com/gdamore/tcell/v2"

// MenuColors is the palette shared by the setup card and the colour picker.
var MenuColors = struct {
	Border      tcell.Color
	BorderFocus tcell.Color
	CardBG      tcell.Color
	Title       tcell.Color
	TitleAccent tcell.Color // the disc in front of the title
	Label       tcell.Color
	Hint        tcell.Color
	Selected    tcell.Color
	Unselected  tcell.Color
	ButtonFocus tcell.Color
	ButtonText  tcell.Color
}{
	Border:      tcell.PaletteColor(24),
	BorderFocus: tcell.PaletteColor(33),
	CardBG:      tcell.PaletteColor(235),
	Title:       tcell.PaletteColor(255),
	TitleAccent: tcell.PaletteColor(196),
	Label:       tcell.PaletteColor(252),
	Hint:        tcell.PaletteColor(244),
	Selected:    tcell.PaletteColor(220),
	Unselected:  tcell.PaletteColor(244),
	ButtonFocus: tcell.PaletteColor(25),
	ButtonText:  tcell.PaletteColor(255),
}
