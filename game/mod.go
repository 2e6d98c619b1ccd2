package game

import "fmt"

const (
	Rows    = 6
	Columns = 7

	// Tokens each player starts a game with (half the board)
	TokensPerPlayer = Rows * Columns / 2

	// Number of aligned tokens needed to win
	ConnectLength = 4
)

// Player identifies one of the two sides. The zero value is One, who always
// opens a game.
type Player int

const (
	One Player = iota
	Two
)

// Other returns the opponent of p.
func (p Player) Other() Player {
	if p == One {
		return Two
	}
	return One
}

func (p Player) String() string {
	switch p {
	case One:
		return "One"
	case Two:
		return "Two"
	default:
		return fmt.Sprintf("Player(%d)", int(p))
	}
}

func checkColumn(column int) {
	if column < 0 || column >= Columns {
		panic(fmt.Sprintf("column %d out of range [0, %d)", column, Columns))
	}
}
