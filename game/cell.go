package game

// Cell is a single board slot: either Empty or occupied by a player.
// The zero value is Empty; occupied cells only come from Occupied.
type Cell struct {
	occupied bool
	player   Player
}

var Empty = Cell{}

// Occupied returns a cell holding a token of player p.
func Occupied(p Player) Cell {
	return Cell{occupied: true, player: p}
}

func (c Cell) IsEmpty() bool {
	return !c.occupied
}

// Player returns the owner of the token, ok is false for an empty cell.
func (c Cell) Player() (p Player, ok bool) {
	return c.player, c.occupied
}

func (c Cell) String() string {
	if !c.occupied {
		return "."
	}
	if c.player == One {
		return "X"
	}
	return "O"
}
