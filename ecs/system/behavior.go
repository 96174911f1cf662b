package system

import (
	"fmt"

	"github.com/milk9111/koopa/ecs"
	"github.com/milk9111/koopa/ecs/component"
)

// behavior is the per-kind dispatch entry. Any hook may be nil.
type behavior struct {
	// spawn runs once after the prefab is built and placed.
	spawn func(ctx *Context, e ecs.Entity)
	// update advances the kind's state machine by one frame.
	update func(ctx *Context, e ecs.Entity)
	// die applies a hit; rate multiplies any score it awards.
	die func(ctx *Context, e ecs.Entity, rate int)
	// touch applies a pickup's effect to the player that collected it.
	touch func(ctx *Context, item, player ecs.Entity)
}

var behaviors map[component.ActorKind]behavior

func init() {
	behaviors = map[component.ActorKind]behavior{
		component.KindPlayer:         {update: playerUpdate, die: playerDie},
		component.KindKoopa:          {update: koopaUpdate, die: koopaDie},
		component.KindJumpingKoopa:   {update: jumpingKoopaUpdate, die: jumpingKoopaDie},
		component.KindGoomba:         {update: goombaUpdate, die: goombaDie},
		component.KindMushroomGrow:   {spawn: itemSpawn, update: itemUpdate, touch: growTouch},
		component.KindMushroomLife:   {spawn: itemSpawn, update: itemUpdate, touch: lifeTouch},
		component.KindMushroomPoison: {spawn: itemSpawn, update: itemUpdate, touch: poisonTouch},
		component.KindFireFlower:     {spawn: flowerSpawn, update: itemUpdate, touch: flowerTouch},
		component.KindStar:           {spawn: itemSpawn, update: itemUpdate, touch: starTouch},
		component.KindCoinStatic:     {update: staticCoinUpdate, touch: coinTouch},
		component.KindCoinRising:     {spawn: risingCoinSpawn, update: risingCoinUpdate},
	}
}

func kindOf(w *ecs.World, e ecs.Entity) component.ActorKind {
	if a, ok := ecs.Get(w, e, component.ActorComponent.Kind()); ok {
		return a.Kind
	}
	return component.KindNone
}

// Spawn builds a prefab through ctx.Spawn and runs the kind's spawn hook.
func Spawn(ctx *Context, name string, x, y float64) (ecs.Entity, error) {
	if ctx.Spawn == nil {
		return 0, fmt.Errorf("spawn %q: no spawner configured", name)
	}
	e, err := ctx.Spawn(name, x, y)
	if err != nil {
		return 0, fmt.Errorf("spawn %q: %w", name, err)
	}
	OnSpawn(ctx, e)
	return e, nil
}

// OnSpawn runs the spawn hook for e's kind.
func OnSpawn(ctx *Context, e ecs.Entity) {
	if b := behaviors[kindOf(ctx.World, e)]; b.spawn != nil {
		b.spawn(ctx, e)
	}
}

// Damage delivers a hit to e. Kinds without a die hook ignore it.
func Damage(ctx *Context, e ecs.Entity, rate int) {
	if !ecs.IsAlive(ctx.World, e) {
		return
	}
	kind := kindOf(ctx.World, e)
	if b := behaviors[kind]; b.die != nil {
		ctx.Logger.Debug("hit", "entity", e, "kind", kind, "rate", rate)
		b.die(ctx, e, rate)
	}
}

// Step runs one frame of e's state machine.
func Step(ctx *Context, e ecs.Entity) {
	if b := behaviors[kindOf(ctx.World, e)]; b.update != nil {
		b.update(ctx, e)
	}
}

// Collect applies a pickup to player and removes the pickup.
func Collect(ctx *Context, item, player ecs.Entity) {
	kind := kindOf(ctx.World, item)
	if b := behaviors[kind]; b.touch != nil {
		ctx.Logger.Debug("pickup", "item", item, "kind", kind, "player", player)
		b.touch(ctx, item, player)
	}
	ctx.Kill(item)
}
