package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"connect4-local/config"
	"connect4-local/engine"
	"connect4-local/types"
)

// Size of the setup card, for centring it with CreateCenteredForm.
const (
	SetupWidth  = 40
	SetupHeight = 14
)

const setupHint = "Tab move · Enter select · q quit"

// GameSetupUI is the start menu: who moves first, then Start, Colours or Quit.
type GameSetupUI struct {
	*MenuCard
	firstPlayer *RadioSelect
	buttons     []*MenuButton
	focusIndex  int // 0 is the radio group, 1.. the buttons

	onStart  func(engine.GameConfig)
	onCancel func()
}

// NewGameSetup creates the setup card. first preselects the player to move.
func NewGameSetup(c *config.Config, first types.Player, onStart func(engine.GameConfig), onCancel func(), onColors func()) *GameSetupUI {
	setup := &GameSetupUI{
		MenuCard: NewMenuCard("CONNECT FOUR"),
		onStart:  onStart,
		onCancel: onCancel,
	}
	initial := 0
	if first == types.Player2 {
		initial = 1
	}
	setup.firstPlayer = NewRadioSelect("First to move", playerOptions(c), initial, nil)
	setup.buttons = []*MenuButton{
		NewMenuButton("Start", true, setup.start),
		NewMenuButton("Colours", false, func() {
			if onColors != nil {
				onColors()
			}
		}),
		NewMenuButton("Quit", false, setup.cancel),
	}
	setup.setFocus(0)
	return setup
}

func playerOptions(c *config.Config) []RadioOption {
	return []RadioOption{
		{Label: types.Player1.String(), Marker: c.Theme.Symbols.Player1Piece, Color: tcell.PaletteColor(c.Theme.Colors.Player1Color)},
		{Label: types.Player2.String(), Marker: c.Theme.Symbols.Player2Piece, Color: tcell.PaletteColor(c.Theme.Colors.Player2Color)},
	}
}

// SetConfig refreshes the piece markers after the colours changed.
func (s *GameSetupUI) SetConfig(c *config.Config) {
	s.firstPlayer.options = playerOptions(c)
}

// FirstPlayer returns the player currently selected to move first.
func (s *GameSetupUI) FirstPlayer() types.Player {
	if s.firstPlayer.Selected() == 1 {
		return types.Player2
	}
	return types.Player1
}

func (s *GameSetupUI) start() {
	if s.onStart != nil {
		s.onStart(engine.GameConfig{FirstPlayer: s.FirstPlayer()})
	}
}

func (s *GameSetupUI) cancel() {
	if s.onCancel != nil {
		s.onCancel()
	}
}

func (s *GameSetupUI) setFocus(index int) {
	n := len(s.buttons) + 1
	s.focusIndex = (index%n + n) % n
	s.firstPlayer.SetFocused(s.focusIndex == 0)
	for i, b := range s.buttons {
		b.SetFocused(s.focusIndex == i+1)
	}
}

// InputHandler routes keys to the focused control.
func (s *GameSetupUI) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return s.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		s.handleKey(event)
	})
}

func (s *GameSetupUI) handleKey(event *tcell.EventKey) {
	switch event.Key() {
	case tcell.KeyTab:
		s.setFocus(s.focusIndex + 1)
		return
	case tcell.KeyBacktab:
		s.setFocus(s.focusIndex - 1)
		return
	case tcell.KeyEsc:
		s.cancel()
		return
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q':
			s.cancel()
			return
		case '1':
			s.firstPlayer.SetSelected(0)
			return
		case '2':
			s.firstPlayer.SetSelected(1)
			return
		}
	}

	if s.focusIndex == 0 {
		if s.firstPlayer.HandleKey(event) {
			return
		}
		switch event.Key() {
		case tcell.KeyEnter:
			s.start()
		case tcell.KeyDown:
			s.setFocus(1)
		}
		return
	}

	button := s.buttons[s.focusIndex-1]
	if button.HandleKey(event) {
		return
	}
	switch event.Key() {
	case tcell.KeyLeft:
		if s.focusIndex > 1 {
			s.setFocus(s.focusIndex - 1)
		}
	case tcell.KeyRight:
		if s.focusIndex < len(s.buttons) {
			s.setFocus(s.focusIndex + 1)
		}
	case tcell.KeyUp:
		s.setFocus(0)
	}
}

// Draw renders the card, the radio group, the button row and a key hint.
func (s *GameSetupUI) Draw(screen tcell.Screen) {
	s.MenuCard.SetFocused(s.HasFocus())
	s.MenuCard.Draw(screen)

	x, y, width, height := s.GetInnerRect()
	if width < 10 || height < titleRows+s.firstPlayer.Rows()+4 {
		return
	}
	left := x + 3
	row := y + titleRows + 1
	row += s.firstPlayer.Draw(screen, left, row, width-6)
	row++

	total := -2
	for _, b := range s.buttons {
		total += b.Width() + 2
	}
	col := x + (width-total)/2
	for _, b := range s.buttons {
		col += b.Draw(screen, col, row) + 2
	}

	hintStyle := tcell.StyleDefault.Foreground(MenuColors.Hint).Background(MenuColors.CardBG)
	hint := []rune(setupHint)
	hintX := x + (width-len(hint))/2
	for i, ch := range hint {
		screen.SetContent(hintX+i, y+height-2, ch, nil, hintStyle)
	}
}
