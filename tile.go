package tictactoe

const (
	PlayerX Player = "X"
	PlayerO Player = "O"
)

// EmptyCell - the content of a cell nobody has marked yet.
const EmptyCell Tile = ""

// Player - one of the two marks that take turns on the board.
type Player string

// Opponent - returns the other player's mark. Turn order is owned by the
// caller, this is just the toggle.
func (that Player) Opponent() Player {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// Tile - the content of one board cell: empty, or a player's mark.
type Tile string

// Mark - a tile carrying the given player's mark.
func Mark(player Player) Tile {
	return Tile(player)
}

func (that Tile) IsEmpty() bool {
	return that == EmptyCell
}
