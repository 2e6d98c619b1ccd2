package terminal

import (
	"fmt"

	"power4/game"

	"github.com/gdamore/tcell/v2"
)

// Theme holds the token color of each player.
type Theme struct {
	PlayerOne tcell.Color
	PlayerTwo tcell.Color
}

func DefaultTheme() Theme {
	return Theme{PlayerOne: tcell.ColorRed, PlayerTwo: tcell.ColorYellow}
}

// ThemeFromNames resolves color names ("red", "navy", "#ff8800", ...) into a
// theme. Unknown names and identical colors are rejected.
func ThemeFromNames(one, two string) (Theme, error) {
	first, err := colorByName(one)
	if err != nil {
		return Theme{}, fmt.Errorf("player one: %w", err)
	}
	second, err := colorByName(two)
	if err != nil {
		return Theme{}, fmt.Errorf("player two: %w", err)
	}
	if first == second {
		return Theme{}, fmt.Errorf("players cannot share the color %q", one)
	}
	return Theme{PlayerOne: first, PlayerTwo: second}, nil
}

func colorByName(name string) (tcell.Color, error) {
	color := tcell.GetColor(name)
	if color == tcell.ColorDefault {
		return color, fmt.Errorf("unknown color %q", name)
	}
	return color, nil
}

func (t Theme) color(p game.Player) tcell.Color {
	if p == game.One {
		return t.PlayerOne
	}
	return t.PlayerTwo
}
