package entity

import (
	"github.com/milk9111/koopa/ecs"
)

func NewPlayerAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	return BuildAt(w, "player.yaml", x, y)
}
