package system

import (
	"github.com/milk9111/koopa/ecs"
	"github.com/milk9111/koopa/ecs/component"
)

// RespawnSystem asks the game loop to rebuild the level after the player has
// been fatally hit. While the game over screen is up the HUD issues that
// request itself when the countdown ends.
type RespawnSystem struct{}

func NewRespawnSystem() *RespawnSystem { return &RespawnSystem{} }

func (s *RespawnSystem) Update(w *ecs.World) {
	if w == nil || gameOverActive(w) {
		return
	}

	ecs.ForEach(w, component.PlayerComponent.Kind(), func(_ ecs.Entity, p *component.Player) {
		if p.Died {
			requestReload(w)
		}
	})
}
