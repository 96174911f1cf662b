package component

// Animation drives frame selection from a modulo-60 tick counter: the frame
// is Start + (Tick / Cadence) % Count.
type Animation struct {
	Tick    int
	Cadence int
	Count   int
	Start   int
}

var AnimationComponent = NewComponent[Animation]()
