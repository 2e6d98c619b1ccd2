package game

type direction struct {
	row, column int
}

var directions = [...]direction{
	{0, 1},  // Horizontal (right)
	{1, 0},  // Vertical (down)
	{1, 1},  // Diagonal (down-right)
	{1, -1}, // Diagonal (down-left)
}

// computeWinner scans the logical grid in row-major order and returns the
// owner of the first line of ConnectLength tokens found.
func (e *Engine) computeWinner() (Player, bool) {
	for row := 0; row < Rows; row++ {
		for column := 0; column < Columns; column++ {
			player, ok := e.logical[row][column].Player()
			if !ok {
				continue
			}
			for _, d := range directions {
				if e.logical.isLine(row, column, d, player) {
					return player, true
				}
			}
		}
	}
	return One, false
}

// isLine checks the ConnectLength-1 cells following (row, column) in
// direction d; all must be inside the grid and owned by player.
func (g *Grid) isLine(row, column int, d direction, player Player) bool {
	for i := 1; i < ConnectLength; i++ {
		r := row + d.row*i
		c := column + d.column*i
		if r < 0 || r >= Rows || c < 0 || c >= Columns {
			return false
		}
		if g[r][c] != Occupied(player) {
			return false
		}
	}
	return true
}
