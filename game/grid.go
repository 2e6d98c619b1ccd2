package game

import "strings"

// Grid is the 6x7 board, row 0 at the top and column 0 on the left.
// It is a value type: assigning or returning it copies the board.
type Grid [Rows][Columns]Cell

// Count returns how many tokens of player p are on the grid.
func (g Grid) Count(p Player) int {
	count := 0
	for row := range g {
		for _, cell := range g[row] {
			if owner, ok := cell.Player(); ok && owner == p {
				count++
			}
		}
	}
	return count
}

// Occupied returns the total number of tokens on the grid.
func (g Grid) Occupied() int {
	return g.Count(One) + g.Count(Two)
}

func (g Grid) IsEmpty() bool {
	return g.Occupied() == 0
}

func (g *Grid) clear() {
	*g = Grid{}
}

func (g Grid) String() string {
	var sb strings.Builder
	for row := range g {
		for _, cell := range g[row] {
			sb.WriteString(cell.String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
