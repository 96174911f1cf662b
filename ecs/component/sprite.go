package component

// Sprite selects a frame from the asset provider. The simulation only ever
// changes Frame and FlipX; images are resolved at draw time.
type Sprite struct {
	Category string
	Variant  string
	Frame    int
	FlipX    bool
	Hidden   bool
}

var SpriteComponent = NewComponent[Sprite]()
