package entity

import (
	"fmt"

	"github.com/milk9111/koopa/ecs"
	"github.com/milk9111/koopa/ecs/component"
	"github.com/milk9111/koopa/prefabs"
)

// NewHUD creates the HUD singleton from the hud section of the world spec.
// A previous HUD can be passed to carry score, coins and lives over a
// level reload.
func NewHUD(w *ecs.World, spec prefabs.HUDSpec, carry *component.HUD) (ecs.Entity, error) {
	h := &component.HUD{
		Time:           spec.Time,
		World:          spec.World,
		Lives:          spec.Lives,
		StartTime:      spec.Time,
		StartLives:     spec.Lives,
		GameOverFrames: spec.GameOverTime,
		CountBonus:     spec.CountBonus,
		PlayerState:    component.PlayerSmall.String(),
	}
	if carry != nil {
		h.Score = carry.Score
		h.Coins = carry.Coins
		h.Lives = carry.Lives
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.HUDComponent.Kind(), h); err != nil {
		return 0, fmt.Errorf("hud: %w", err)
	}
	return e, nil
}
