package system

import (
	"github.com/milk9111/koopa/ecs"
	"github.com/milk9111/koopa/ecs/component"
)

const goombaSquashedFrame = 2

func goombaUpdate(ctx *Context, e ecs.Entity) {
	w := ctx.World
	g, ok := ecs.Get(w, e, component.GoombaComponent.Kind())
	if !ok || g.Squashed {
		return
	}
	body, sides, ok := parts(w, e)
	if !ok {
		return
	}

	Integrate(ctx, body, gravityScale(w, e))
	Resolve(w, ctx.Tiles, e, body, sides)
	Resolve(w, ctx.Enemies, e, body, sides)
	animate(w, e)
}

// goombaDie flattens the goomba. It leaves the enemy group at once and is
// removed when its TTL runs out.
func goombaDie(ctx *Context, e ecs.Entity, rate int) {
	w := ctx.World
	g, ok := ecs.Get(w, e, component.GoombaComponent.Kind())
	if !ok || g.Squashed {
		return
	}
	body, _, ok := parts(w, e)
	if !ok {
		return
	}

	g.Squashed = true
	body.VX, body.VY = 0, 0
	ctx.Enemies.Remove(e)
	if sprite := spriteOf(w, e); sprite != nil {
		sprite.Frame = goombaSquashedFrame
	}
	_ = ecs.Remove(w, e, component.AnimationComponent.Kind())
	_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: max(1, g.SquashFrames)})
	Award(ctx, body.Rect.X, body.Rect.Y, g.Score*rate, true)
}
