package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground:     true,
		DrawLastPlayedBackground: true,
		Colors: ConfigColors{
			BoardColor:        25,
			BoardColorAlt:     26,
			LineColor:         17,
			Player1Color:      196,
			Player2Color:      226,
			CursorColorFG:     255,
			CursorColorBG:     4,
			LastPlayedColorBG: 31,
			WinningColorBG:    40,
		},
		Symbols: ConfigSymbols{
			Player1Piece: '●',
			Player2Piece: '●',
			EmptyCell:    '·',
			Cursor:       '▼',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameSettings{
			FirstPlayer: 1,
		},
	}
}
