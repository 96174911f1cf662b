package system

import (
	"github.com/milk9111/koopa/ecs"
	"github.com/milk9111/koopa/ecs/component"
)

func staticCoinUpdate(ctx *Context, e ecs.Entity) {
	w := ctx.World
	animate(w, e)
	body, ok := ecs.Get(w, e, component.BodyComponent.Kind())
	if !ok {
		return
	}
	if player, ok := ctx.Players.Overlapping(body.Rect, e); ok {
		Collect(ctx, e, player)
	}
}

func coinTouch(ctx *Context, item, _ ecs.Entity) {
	c, ok := ecs.Get(ctx.World, item, component.CoinComponent.Kind())
	if !ok {
		return
	}
	ctx.Sink.AddCoins(c.Value)
	awardAt(ctx, item, c.Score, false)
}

// risingCoinSpawn pays out immediately and sets up the arc: the coin starts
// one height above its spawn point, peaks two heights above that and is
// removed when it falls back to the start.
func risingCoinSpawn(ctx *Context, e ecs.Entity) {
	w := ctx.World
	c, ok := ecs.Get(w, e, component.CoinComponent.Kind())
	if !ok {
		return
	}
	body, ok := ecs.Get(w, e, component.BodyComponent.Kind())
	if !ok {
		return
	}
	c.StartY = body.Rect.Y - body.Rect.Height
	c.ApexY = c.StartY - 2*body.Rect.Height
	c.Falling = false

	ctx.Sink.AddCoins(c.Value)
	Award(ctx, body.Rect.X, body.Rect.Y, c.Score, false)
}

func risingCoinUpdate(ctx *Context, e ecs.Entity) {
	w := ctx.World
	animate(w, e)
	c, ok := ecs.Get(w, e, component.CoinComponent.Kind())
	if !ok {
		return
	}
	body, ok := ecs.Get(w, e, component.BodyComponent.Kind())
	if !ok {
		return
	}

	if !c.Falling {
		body.Rect.Y -= c.Step
		if body.Rect.Y <= c.ApexY {
			c.Falling = true
		}
		return
	}
	body.Rect.Y += c.Step
	if body.Rect.Y >= c.StartY {
		ctx.Kill(e)
	}
}
