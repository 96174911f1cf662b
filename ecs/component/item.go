package component

// Item is shared by every pickup that pops out of a block. When Emerge is
// set the item spawns Emerging: it rises Speed units per tick towards
// TargetY and ignores physics and the player until it gets there.
type Item struct {
	Emerge   bool
	Emerging bool
	TargetY  float64
	Speed    float64
	Score    int
	// InvulnerableFrames is granted by the star.
	InvulnerableFrames int
}

var ItemComponent = NewComponent[Item]()
