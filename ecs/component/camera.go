package component

// Camera tracks the horizontal scroll of the view. Entities keep world
// coordinates; view x is world x minus ScrollX.
type Camera struct {
	ScrollX float64
	Width   float64
	Height  float64
}

var CameraComponent = NewComponent[Camera]()
