package system

import (
	"github.com/milk9111/koopa/common"
	"github.com/milk9111/koopa/ecs/component"
)

// Animate advances the modulo-60 tick and selects the sprite frame for it.
func Animate(anim *component.Animation, sprite *component.Sprite) {
	if anim == nil || anim.Count <= 0 {
		return
	}
	cadence := anim.Cadence
	if cadence <= 0 {
		cadence = 1
	}
	anim.Tick = (anim.Tick + 1) % common.FrameCycle
	if sprite != nil {
		sprite.Frame = anim.Start + anim.Tick/cadence%anim.Count
	}
}

// faceVelocity flips the sprite so it faces the direction of vx. Sprites are
// drawn facing left.
func faceVelocity(sprite *component.Sprite, vx float64) {
	if sprite == nil || vx == 0 {
		return
	}
	sprite.FlipX = vx > 0
}
