package game

// Engine holds the state of a single board. Game validity is decided on the
// logical grid, which is updated instantly on every accepted drop, while the
// display grid trails behind it and is advanced one gravity step per Animate.
//
// The zero value is a ready engine with an empty board and One to play.
type Engine struct {
	logical   Grid   // Authoritative board, gravity already resolved
	display   Grid   // Animated board shown to the user
	current   Player // Whose turn is next
	winner    Player // Valid only when won is true
	won       bool   // Whether a line of four was found
	played    [2]int // Tokens taken from each player's pool
	resetting bool   // Board is being cleared by Animate
}

// New returns an engine ready for a new game.
func New() *Engine {
	return &Engine{}
}

// Board returns a snapshot of the display grid.
func (e *Engine) Board() Grid {
	return e.display
}

// Logical returns a snapshot of the authoritative grid.
func (e *Engine) Logical() Grid {
	return e.logical
}

func (e *Engine) CurrentPlayer() Player {
	return e.current
}

// Winner returns the winning player; ok is false while playing, on a draw, or
// once a reset has completed.
func (e *Engine) Winner() (p Player, ok bool) {
	return e.winner, e.won
}

// IsFull reports whether every column is logically full.
func (e *Engine) IsFull() bool {
	for _, cell := range e.logical[0] {
		if cell.IsEmpty() {
			return false
		}
	}
	return true
}

// TokensRemaining returns how many tokens p still has in the pool.
func (e *Engine) TokensRemaining(p Player) int {
	return TokensPerPlayer - e.played[p]
}

// Resetting reports whether the board clearing animation is in progress.
func (e *Engine) Resetting() bool {
	return e.resetting
}

// Settled reports whether no token is falling and no reset is in progress.
func (e *Engine) Settled() bool {
	if e.resetting {
		return false
	}
	for column := 0; column < Columns; column++ {
		for row := Rows - 1; row > 0; row-- {
			if e.display[row][column].IsEmpty() && !e.display[row-1][column].IsEmpty() {
				return false
			}
		}
	}
	return true
}

// CanDrop reports whether Drop(column) would be accepted. It panics if column
// is out of range.
func (e *Engine) CanDrop(column int) bool {
	checkColumn(column)
	return e.canDrop(column)
}

func (e *Engine) canDrop(column int) bool {
	if e.won || e.resetting {
		return false
	}
	// A token still crossing the top row, or a visually full column
	if !e.display[0][column].IsEmpty() {
		return false
	}
	if e.landingRow(column) < 0 {
		return false
	}
	return e.TokensRemaining(e.current) > 0
}

// landingRow returns the lowest empty logical row in column, or -1 if the
// column is full.
func (e *Engine) landingRow(column int) int {
	for row := Rows - 1; row >= 0; row-- {
		if e.logical[row][column].IsEmpty() {
			return row
		}
	}
	return -1
}

// Drop commits a token of the current player into column. The token lands on
// the logical grid at once and enters the display grid at the top row, from
// where Animate brings it down. Drops into a busy column, after a win, or
// during a reset are ignored.
//
// Drop panics if column is out of range.
func (e *Engine) Drop(column int) {
	checkColumn(column)
	if !e.canDrop(column) {
		return
	}

	player := e.current
	e.display[0][column] = Occupied(player)
	e.played[player]++
	e.logical[e.landingRow(column)][column] = Occupied(player)

	e.current = player.Other()
	e.winner, e.won = e.computeWinner()
}

// Reset starts the clearing animation. The board is emptied by subsequent
// Animate calls; calling Reset again while resetting has no effect.
func (e *Engine) Reset() {
	e.resetting = true
}

// Animate advances the display grid by one tick.
func (e *Engine) Animate() {
	if e.resetting {
		e.shiftOut()
		return
	}
	e.fall()
}

// fall moves every token that has an empty cell beneath it down one row.
// Scanning bottom-up moves each token at most once per tick.
func (e *Engine) fall() {
	for column := 0; column < Columns; column++ {
		for row := Rows - 1; row > 0; row-- {
			if e.display[row][column].IsEmpty() && !e.display[row-1][column].IsEmpty() {
				e.display[row][column] = e.display[row-1][column]
				e.display[row-1][column] = Empty
			}
		}
	}
}

// shiftOut returns the bottom row's tokens to their pools and moves the whole
// display grid down one row. Once nothing is left the game starts over.
func (e *Engine) shiftOut() {
	for _, cell := range e.display[Rows-1] {
		if p, ok := cell.Player(); ok {
			e.played[p]--
		}
	}
	for row := Rows - 1; row > 0; row-- {
		e.display[row] = e.display[row-1]
	}
	e.display[0] = [Columns]Cell{}

	if !e.display.IsEmpty() {
		return
	}
	e.resetting = false
	e.current = One
	e.winner, e.won = One, false
	e.logical.clear()
}
