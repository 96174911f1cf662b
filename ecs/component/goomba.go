package component

type Goomba struct {
	WalkSpeed float64
	Score     int
	// SquashFrames is how long the flattened body stays visible.
	SquashFrames int
	Squashed     bool
}

var GoombaComponent = NewComponent[Goomba]()
