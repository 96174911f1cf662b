package component

// WhiteFlash blinks a sprite while its owner is invulnerable. Every Interval
// frames the sprite toggles between visible and hidden.
type WhiteFlash struct {
	Frames   int
	Interval int
	Timer    int
	On       bool
}

var WhiteFlashComponent = NewComponent[WhiteFlash]()
