package ui

import (
	"strings"
	"testing"

	"github.com/pkg/errors"

	"connect4-local/config"
	"connect4-local/types"
)

func newTestColorConfig(saveErr error) (*ColorConfigUI, *config.Config, *int, *[]error) {
	c := config.DefaultConfig
	saved := new(int)
	done := &[]error{}
	cc := NewColorConfig(&c, func(err error) {
		*done = append(*done, err)
	})
	cc.save = func(*config.Config) error {
		*saved++
		return saveErr
	}
	return cc, &c, saved, done
}

func TestColorIndex(t *testing.T) {
	if colorIndex(196) != 0 {
		t.Errorf("expected red first, got %d", colorIndex(196))
	}
	if colorIndex(999) != -1 {
		t.Error("unknown colour should not be found")
	}
}

func TestColorConfigPicksBothPlayers(t *testing.T) {
	cc, c, saved, done := newTestColorConfig(nil)
	if cc.Editing() != types.Player1 {
		t.Fatalf("should start with player 1, got %s", cc.Editing())
	}

	cc.selectColor(colorIndex(21))
	cc.confirm()
	if c.Theme.Colors.Player1Color != 21 {
		t.Errorf("player 1 colour not applied, got %d", c.Theme.Colors.Player1Color)
	}
	if cc.Editing() != types.Player2 || len(*done) != 0 {
		t.Fatal("confirming player 1 should move on to player 2")
	}

	cc.selectColor(colorIndex(46))
	cc.confirm()
	if c.Theme.Colors.Player2Color != 46 {
		t.Errorf("player 2 colour not applied, got %d", c.Theme.Colors.Player2Color)
	}
	if *saved != 1 {
		t.Errorf("expected one save, got %d", *saved)
	}
	if len(*done) != 1 || (*done)[0] != nil {
		t.Errorf("expected one successful finish, got %v", *done)
	}
	if cc.Editing() != types.Player1 {
		t.Error("picker should reset to player 1")
	}
}

func TestColorConfigRejectsClash(t *testing.T) {
	cc, c, saved, _ := newTestColorConfig(nil)
	cc.selectColor(colorIndex(c.Theme.Colors.Player2Color))
	cc.confirm()

	if cc.problem == "" {
		t.Error("a clash should be reported")
	}
	if c.Theme.Colors.Player1Color != config.DefaultTheme.Colors.Player1Color {
		t.Error("a clash should not be applied")
	}
	if cc.Editing() != types.Player1 || *saved != 0 {
		t.Error("a clash should keep editing player 1")
	}

	cc.selectColor(colorIndex(46))
	if cc.problem != "" {
		t.Error("choosing another colour should clear the problem")
	}
}

func TestColorConfigSaveError(t *testing.T) {
	cc, _, _, done := newTestColorConfig(errors.New("disk full"))
	cc.ToggleMode()
	cc.confirm()

	if len(*done) != 1 || (*done)[0] == nil {
		t.Fatalf("expected a save error, got %v", *done)
	}
	if !strings.Contains((*done)[0].Error(), "disk full") {
		t.Errorf("unexpected error %v", (*done)[0])
	}
}

func TestColorConfigToggleKeepsSelections(t *testing.T) {
	cc, _, _, _ := newTestColorConfig(nil)
	cc.selectColor(colorIndex(93))
	cc.ToggleMode()
	cc.ToggleMode()
	if cc.selected[0] != 93 {
		t.Errorf("rebuilding the list should keep the preview colour, got %d", cc.selected[0])
	}
	if cc.selected[1] != config.DefaultTheme.Colors.Player2Color {
		t.Errorf("player 2 preview should be untouched, got %d", cc.selected[1])
	}
}
