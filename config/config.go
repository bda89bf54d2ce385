package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
)

var (
	cfgFile = "connect4-local/config.json"
	logFile = "connect4-local/debug.log"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor        int `json:"board"`
	BoardColorAlt     int `json:"board_alt"`
	LineColor         int `json:"line"`
	Player1Color      int `json:"player1"`
	Player2Color      int `json:"player2"`
	CursorColorFG     int `json:"cursor_fg"`
	CursorColorBG     int `json:"cursor_bg"`
	LastPlayedColorBG int `json:"last_played_bg"`
	WinningColorBG    int `json:"winning_bg"`
}

type ConfigSymbols struct {
	Player1Piece rune `json:"player1"`
	Player2Piece rune `json:"player2"`
	EmptyCell    rune `json:"empty"`
	Cursor       rune `json:"cursor"`
}

type Theme struct {
	DrawCursorBackground     bool          `json:"draw_cursor_bg"`
	DrawLastPlayedBackground bool          `json:"draw_last_played_bg"`
	Colors                   ConfigColors  `json:"colors"`
	Symbols                  ConfigSymbols `json:"symbols"`
}

// GameSettings holds defaults for new games.
type GameSettings struct {
	FirstPlayer int `json:"first_player"`
}

// LogConfig controls the debug log. An empty path disables it.
type LogConfig struct {
	Path string `json:"path"`
}

type Config struct {
	Theme Theme        `json:"theme"`
	Game  GameSettings `json:"game"`
	Log   LogConfig    `json:"log"`
}

func InitConfig() (*Config, error) {
	config := DefaultConfig
	if path, err := xdg.CacheFile(logFile); err == nil {
		config.Log.Path = path
	}
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	s := c.Theme.Symbols
	for _, r := range []rune{s.Player1Piece, s.Player2Piece, s.EmptyCell, s.Cursor} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if c.Theme.Colors.Player1Color == c.Theme.Colors.Player2Color && s.Player1Piece == s.Player2Piece {
		return &InvalidConfig{"players must differ in color or symbol"}
	}
	if c.Game.FirstPlayer != 1 && c.Game.FirstPlayer != 2 {
		return &InvalidConfig{fmt.Sprintf("first_player must be 1 or 2, got %d", c.Game.FirstPlayer)}
	}
	return nil
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return errors.Wrap(err, "locating config file")
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding config")
	}
	if err := os.WriteFile(filePath, jsonData, perm); err != nil {
		return errors.Wrapf(err, "writing %s", filePath)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return errors.Wrapf(err, "reading %s", filePath)
	}
	if err := json.Unmarshal(data, a); err != nil {
		return errors.Wrapf(err, "parsing %s", filePath)
	}
	return nil
}
