package component

// Jumper re-triggers an upward hop every tick while Count < MaxJumps. Count
// resets to zero whenever the floor probe touches a tile.
type Jumper struct {
	Count    int
	MaxJumps int
	Speed    float64
}

var JumperComponent = NewComponent[Jumper]()
