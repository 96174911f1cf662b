package component

// LevelBounds is the world-space extent of the loaded layout. The camera
// never scrolls past Width minus the view width.
type LevelBounds struct {
	Width  float64
	Height float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
