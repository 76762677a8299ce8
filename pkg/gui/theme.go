package gui

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// Terminal safe color palette reference:
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

// Theme colors the board and its chrome.
type Theme struct {
	Name        string
	SquareDark  tcell.Color
	SquareLight tcell.Color
	SquareHigh  tcell.Color
	White       tcell.Color
	Black       tcell.Color
	Label       tcell.Color
	Prompt      tcell.Color
	Msg         tcell.Color
	MoveBox     tcell.Color
}

// ThemeBasic is the default theme.
var ThemeBasic = Theme{
	Name:        "basic",
	SquareDark:  tcell.Color188,
	SquareLight: tcell.Color230,
	SquareHigh:  tcell.Color217,
	White:       tcell.Color255,
	Black:       tcell.Color232,
	Label:       tcell.Color247,
	Prompt:      tcell.Color160,
	Msg:         tcell.Color160,
	MoveBox:     tcell.ColorDefault,
}

// ThemeForest is a darker alternative.
var ThemeForest = Theme{
	Name:        "forest",
	SquareDark:  tcell.Color22,
	SquareLight: tcell.Color108,
	SquareHigh:  tcell.Color178,
	White:       tcell.Color255,
	Black:       tcell.Color232,
	Label:       tcell.Color245,
	Prompt:      tcell.Color178,
	Msg:         tcell.Color178,
	MoveBox:     tcell.ColorDefault,
}

var themes = []Theme{ThemeBasic, ThemeForest}

// FindTheme returns the built-in theme with the given name.
func FindTheme(want string) (Theme, error) {
	for _, t := range themes {
		if t.Name == want {
			return t, nil
		}
	}
	return Theme{}, errors.New("theme: no theme found")
}
