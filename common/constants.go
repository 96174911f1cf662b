package common

// Defaults for the shared simulation constants. Sessions read the live values
// from world.yaml; these are used when a field is missing.
const (
	Gravity  = 1.0
	FPS      = 60
	TileSize = 48

	// Playfield is 32x15 tiles.
	BaseWidth  = 32 * TileSize
	BaseHeight = 15 * TileSize
)

// FrameCycle is the modulo applied to every per-entity animation counter.
const FrameCycle = 60
