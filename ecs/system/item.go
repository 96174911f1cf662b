package system

import (
	"github.com/milk9111/koopa/ecs"
	"github.com/milk9111/koopa/ecs/component"
)

const defaultItemScore = 1000

// itemSpawn starts the emerge phase: the item rises a third of its height
// out of the block before physics takes over.
func itemSpawn(ctx *Context, e ecs.Entity) {
	w := ctx.World
	item, ok := ecs.Get(w, e, component.ItemComponent.Kind())
	if !ok || !item.Emerge {
		return
	}
	body, ok := ecs.Get(w, e, component.BodyComponent.Kind())
	if !ok {
		return
	}
	item.Emerging = true
	item.TargetY = body.Rect.Y - body.Rect.Height/3
	if item.Speed <= 0 {
		item.Speed = 1
	}
}

func flowerSpawn(ctx *Context, e ecs.Entity) {
	itemSpawn(ctx, e)
	if body, ok := ecs.Get(ctx.World, e, component.BodyComponent.Kind()); ok {
		body.VX = 0
	}
}

func emerge(body *component.Body, item *component.Item) {
	body.Rect.Y -= min(item.Speed, body.Rect.Y-item.TargetY)
	if body.Rect.Y <= item.TargetY {
		body.Rect.Y = item.TargetY
		item.Emerging = false
	}
}

func itemUpdate(ctx *Context, e ecs.Entity) {
	w := ctx.World
	body, sides, ok := parts(w, e)
	if !ok {
		return
	}
	item, ok := ecs.Get(w, e, component.ItemComponent.Kind())
	if !ok {
		return
	}
	caps := kindOf(w, e).Capabilities()

	animate(w, e)
	if item.Emerging {
		emerge(body, item)
		return
	}

	jumper, hops := ecs.Get(w, e, component.JumperComponent.Kind())
	if hops && jumper.Count < jumper.MaxJumps {
		body.VY = -jumper.Speed
		jumper.Count++
	}

	Integrate(ctx, body, gravityScale(w, e))
	if player, ok := ctx.Players.Overlapping(body.Rect, e); ok {
		Collect(ctx, e, player)
		return
	}

	vx := body.VX
	switch caps.Resolver {
	case component.ResolveAll:
		Resolve(w, ctx.Tiles, e, body, sides)
	case component.ResolveFloor:
		ResolveFloor(w, ctx.Tiles, e, body, sides)
	}
	if caps.FlipOnTurn && vx != body.VX {
		if sprite := spriteOf(w, e); sprite != nil {
			sprite.FlipX = !sprite.FlipX
		}
	}

	if hops && OnGround(ctx.Tiles, e, body, sides) {
		jumper.Count = 0
	}
}

func growTouch(ctx *Context, item, player ecs.Entity) {
	setPlayerSize(ctx, player, component.PlayerBig)
	awardAt(ctx, item, itemScore(ctx.World, item), true)
}

func lifeTouch(ctx *Context, _, _ ecs.Entity) {
	ctx.Sink.AddLives(1)
}

func poisonTouch(ctx *Context, _, player ecs.Entity) {
	setPlayerSize(ctx, player, component.PlayerSmall)
	fatalHit(ctx, player)
}

func flowerTouch(ctx *Context, item, player ecs.Entity) {
	setPlayerSize(ctx, player, component.PlayerBig)
	if p, ok := ecs.Get(ctx.World, player, component.PlayerComponent.Kind()); ok {
		p.Fire = true
	}
	publishPlayerState(ctx, player)
	awardAt(ctx, item, itemScore(ctx.World, item), true)
}

func starTouch(ctx *Context, item, player ecs.Entity) {
	w := ctx.World
	frames := 0
	if it, ok := ecs.Get(w, item, component.ItemComponent.Kind()); ok {
		frames = it.InvulnerableFrames
	}
	if p, ok := ecs.Get(w, player, component.PlayerComponent.Kind()); ok {
		if frames <= 0 {
			frames = p.StarFrames
		}
		p.StarFrames = frames
	}
	_ = ecs.Add(w, player, component.InvulnerableComponent.Kind(), &component.Invulnerable{Frames: frames, Star: true})
	flash(w, player, frames)
	publishPlayerState(ctx, player)
	awardAt(ctx, item, itemScore(ctx.World, item), true)
}

func awardAt(ctx *Context, e ecs.Entity, amount int, popup bool) {
	if body, ok := ecs.Get(ctx.World, e, component.BodyComponent.Kind()); ok {
		Award(ctx, body.Rect.X, body.Rect.Y, amount, popup)
		return
	}
	Award(ctx, 0, 0, amount, false)
}

func itemScore(w *ecs.World, e ecs.Entity) int {
	if it, ok := ecs.Get(w, e, component.ItemComponent.Kind()); ok && it.Score > 0 {
		return it.Score
	}
	return defaultItemScore
}
