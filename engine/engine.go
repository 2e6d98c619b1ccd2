package engine

import (
	"context"

	"power4/game"
	"power4/stats"
)

type Engine interface {
	// Run drives the game until the user quits, the input closes or ctx is done
	Run(ctx context.Context) error
}

// Intent is a discrete user command coming from an input device.
type Intent int

const (
	IntentLeft Intent = iota
	IntentRight
	IntentCommit
	IntentQuit
)

func (i Intent) String() string {
	switch i {
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	case IntentCommit:
		return "commit"
	case IntentQuit:
		return "quit"
	default:
		return "unknown"
	}
}

type Input interface {
	Intents() <-chan Intent
}

type Renderer interface {
	Render(Frame) error
}

// Frame is everything a renderer needs to draw one screen.
type Frame struct {
	Board     game.Grid
	Player    game.Player // Whose turn is next
	Winner    game.Player // Valid only when Won is true
	Won       bool
	Full      bool
	Resetting bool
	Tokens    [2]int // Remaining tokens, indexed by game.Player
	Selected  int    // Column under the drop indicator
	Score     stats.Scoreboard
}

// Over reports whether the game ended in a win or a draw.
func (f Frame) Over() bool {
	return f.Won || f.Full
}
