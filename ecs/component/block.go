package component

// Block is a tile that releases Contents (a prefab name) when the player
// bumps it from below. Remaining counts how many times it still pays out.
type Block struct {
	Contents  string
	Remaining int
}

var BlockComponent = NewComponent[Block]()
