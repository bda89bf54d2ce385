// connect4-local is a terminal application to play Connect Four against a
// friend on the same keyboard.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"connect4-local/board"
	"connect4-local/config"
	"connect4-local/engine"
	"connect4-local/engine/local"
	"connect4-local/types"
	"connect4-local/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagQuickStart = flag.Bool("play", false, "Start game immediately with defaults")
	flagFirst      = flag.Int("first", 0, "Player to move first (1 or 2)")
	flagFocus      = flag.Bool("focus", false, "Start in focus mode (fullscreen board)")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.BoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var cfg *config.Config
var debugLog *log.Logger

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("connect4-local %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	debugLog, err = openDebugLog(cfg.Log.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "debug log disabled: %v\n", err)
	}

	first := types.Player(cfg.Game.FirstPlayer)
	if *flagFirst != 0 {
		first = types.Player(*flagFirst)
		if !first.Valid() {
			fmt.Fprintf(os.Stderr, "-first must be 1 or 2, got %d\n", *flagFirst)
			os.Exit(2)
		}
	}

	quickStart := *flagQuickStart || *flagFocus

	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ● connect four ")

	// Game view setup
	gameHint = tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewBoardUI(app, cfg, gameHint)
	gameBoard.SetGameEndHandler(showResult)

	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)
	gameBoard.Box.SetInputCapture(handleGameKey)

	// Game setup screen
	setupUI := ui.NewGameSetup(cfg, first,
		func(gameCfg engine.GameConfig) {
			startGame(gameCfg)
		},
		func() {
			app.Stop()
		},
		func() {
			rootPage.SwitchToPage("colors")
		},
	)

	// Colour configuration screen
	colorConfig := ui.NewColorConfig(cfg, func(err error) {
		gameBoard.SetConfig(cfg)
		setupUI.SetConfig(cfg)
		rootPage.SwitchToPage("setup")
		if err != nil {
			showError(err)
		}
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			rootPage.SwitchToPage("setup")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	rootPage.AddPage("setup", ui.CreateCenteredForm(setupUI, ui.SetupWidth, ui.SetupHeight), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)

	if quickStart {
		startGame(engine.GameConfig{FirstPlayer: first})
		if *flagFocus {
			gameBoard.SetFocusMode(true)
			ui.BuildFocusLayout(gameFrame, gameBoard)
		}
	}

	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		panic(err)
	}
}

// openDebugLog appends to path. An empty path or a failure discards output.
func openDebugLog(path string) (*log.Logger, error) {
	if path == "" {
		return log.New(io.Discard, "", 0), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return log.New(io.Discard, "", 0), err
	}
	return log.New(f, "", log.Ltime|log.Lmicroseconds), nil
}

// handleGameKey maps keys on the game view to board actions.
func handleGameKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyLeft:
		gameBoard.MoveSelection(-1)
		return nil
	case tcell.KeyRight:
		gameBoard.MoveSelection(1)
		return nil
	case tcell.KeyEnter, tcell.KeyDown:
		gameBoard.PlayMove()
		return nil
	case tcell.KeyRune:
	default:
		return event
	}

	switch r := event.Rune(); r {
	case 'h':
		gameBoard.MoveSelection(-1)
	case 'l':
		gameBoard.MoveSelection(1)
	case 'j', ' ':
		gameBoard.PlayMove()
	case 'n':
		gameBoard.NewGame()
	case 'q':
		gameBoard.Close()
		rootPage.SwitchToPage("setup")
	case 'f':
		if gameBoard.ToggleFocusMode() {
			ui.BuildFocusLayout(gameFrame, gameBoard)
		} else {
			ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
		}
	default:
		if r < '1' || r > '9' {
			return event
		}
		col, err := board.ParseColumn(string(r))
		if err != nil {
			return event
		}
		gameBoard.PlayColumn(col)
	}
	return nil
}

// startGame starts a game with the given configuration.
func startGame(gameCfg engine.GameConfig) {
	eng := local.NewLocalEngine(gameCfg, debugLog)
	if err := gameBoard.ConnectEngine(eng); err != nil {
		showError(err)
		return
	}
	rootPage.SwitchToPage("gameview")
}

// showResult offers a rematch once a game has ended.
func showResult(message string) {
	modal := tview.NewModal().
		SetText(message).
		AddButtons([]string{"New Game", "Menu"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			rootPage.RemovePage("result")
			if buttonLabel == "New Game" {
				gameBoard.NewGame()
				return
			}
			gameBoard.Close()
			rootPage.SwitchToPage("setup")
		})
	rootPage.AddPage("result", modal, true, true)
}

func showError(err error) {
	modal := tview.NewModal().
		SetText(fmt.Sprintf("Something went wrong:\n%s", err.Error())).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			rootPage.RemovePage("error")
		})
	rootPage.AddPage("error", modal, true, true)
}
