package entity

import (
	"fmt"
)

// Placement is one prefab to build at a grid position. Contents and
// Remaining override a block's payload when set.
type Placement struct {
	Prefab    string
	X, Y      float64
	Contents  string
	Remaining int
}

type legendEntry struct {
	prefab   string
	contents string
}

// Legend maps layout characters to prefabs. '.' and ' ' are empty cells.
var Legend = map[rune]legendEntry{
	'#': {prefab: "ground"},
	'B': {prefab: "brick"},
	'?': {prefab: "block", contents: "coin_rising"},
	'M': {prefab: "block", contents: "mushroom_grow"},
	'L': {prefab: "block", contents: "mushroom_life"},
	'X': {prefab: "block", contents: "mushroom_poison"},
	'F': {prefab: "block", contents: "fire_flower"},
	'S': {prefab: "block", contents: "star"},
	'c': {prefab: "coin_static"},
	'g': {prefab: "goomba"},
	'k': {prefab: "koopa"},
	'j': {prefab: "jumping_koopa"},
	'P': {prefab: "player"},
	'G': {prefab: "goal"},
}

// ParseLayout turns a character grid into placements, one cell per tile
// size, with X/Y at the cell's top-left corner. It also returns the
// layout's width and height in world units.
func ParseLayout(rows []string, tileSize float64) ([]Placement, float64, float64, error) {
	if tileSize <= 0 {
		return nil, 0, 0, fmt.Errorf("layout: tile size %v must be positive", tileSize)
	}

	var out []Placement
	cols := 0
	players := 0
	for y, row := range rows {
		runes := []rune(row)
		cols = max(cols, len(runes))
		for x, r := range runes {
			if r == '.' || r == ' ' {
				continue
			}
			entry, ok := Legend[r]
			if !ok {
				return nil, 0, 0, fmt.Errorf("layout: unknown cell %q at %d,%d", r, x, y)
			}
			if entry.prefab == "player" {
				players++
			}
			out = append(out, Placement{
				Prefab:   entry.prefab,
				X:        float64(x) * tileSize,
				Y:        float64(y) * tileSize,
				Contents: entry.contents,
			})
		}
	}
	if players > 1 {
		return nil, 0, 0, fmt.Errorf("layout: %d players, want at most one", players)
	}
	return out, float64(cols) * tileSize, float64(len(rows)) * tileSize, nil
}
