package system

import (
	"github.com/milk9111/koopa/ecs"
	"github.com/milk9111/koopa/ecs/component"
)

const (
	koopaShellFrame   = 2
	koopaRevivalFrame = 3
	// shellChainRate multiplies the score of enemies hit by a sliding shell.
	shellChainRate = 4
)

func koopaUpdate(ctx *Context, e ecs.Entity) {
	w := ctx.World
	body, sides, ok := parts(w, e)
	if !ok {
		return
	}
	k, ok := ecs.Get(w, e, component.KoopaComponent.Kind())
	if !ok {
		return
	}
	sprite := spriteOf(w, e)

	Integrate(ctx, body, gravityScale(w, e))
	Resolve(w, ctx.Tiles, e, body, sides)
	faceVelocity(sprite, body.VX)

	if k.Phase == component.KoopaShellSliding {
		for _, other := range ctx.Enemies.OverlappingAll(body.Rect, e) {
			Damage(ctx, other, shellChainRate)
		}
		k.SlideTicks++
		if k.SlideFrames > 0 && k.SlideTicks >= k.SlideFrames {
			ctx.Kill(e)
		}
		return
	}
	Resolve(w, ctx.Enemies, e, body, sides)

	switch k.Phase {
	case component.KoopaWalking:
		animate(w, e)
	case component.KoopaShelled, component.KoopaReviving:
		if body.VX != 0 {
			return
		}
		k.ShellTicks++
		switch {
		case k.ShellTicks == k.RevivalTime:
			k.Phase = component.KoopaReviving
			if sprite != nil {
				sprite.Frame = koopaRevivalFrame
			}
			ctx.Logger.Debug("koopa reviving", "entity", e)
		case k.ShellTicks >= k.SmertTime:
			k.Phase = component.KoopaWalking
			k.ShellTicks = 0
			body.VX = k.WalkSpeed
			animate(w, e)
			ctx.Logger.Debug("koopa revived", "entity", e)
		}
	}
}

// koopaDie hides a walking koopa in its shell, launches a resting shell and
// removes a sliding one.
func koopaDie(ctx *Context, e ecs.Entity, rate int) {
	w := ctx.World
	body, _, ok := parts(w, e)
	if !ok {
		return
	}
	k, ok := ecs.Get(w, e, component.KoopaComponent.Kind())
	if !ok {
		return
	}
	sprite := spriteOf(w, e)

	switch {
	case k.Phase == component.KoopaWalking:
		k.Phase = component.KoopaShelled
		k.ShellTicks = 0
		body.VX = 0
		if sprite != nil {
			sprite.Frame = koopaShellFrame
		}
	case body.VX == 0:
		k.Phase = component.KoopaShellSliding
		k.SlideTicks = 0
		body.VX = k.LaunchSpeed
		if sprite != nil {
			sprite.Frame = koopaShellFrame
		}
	default:
		Award(ctx, body.Rect.X, body.Rect.Y, k.Score*rate, true)
		ctx.Kill(e)
	}
}

func jumpingKoopaUpdate(ctx *Context, e ecs.Entity) {
	koopaUpdate(ctx, e)
	if !ecs.IsAlive(ctx.World, e) {
		return
	}

	body, sides, ok := parts(ctx.World, e)
	if !ok {
		return
	}
	j, ok := ecs.Get(ctx.World, e, component.JumperComponent.Kind())
	if !ok {
		return
	}
	if OnGround(ctx.Tiles, e, body, sides) {
		j.Count = 0
	}
	if j.Count < j.MaxJumps {
		j.Count++
		body.VY = -j.Speed
	}
}

// jumpingKoopaDie replaces the winged koopa with a ground koopa at the same
// spot and passes the hit on to it.
func jumpingKoopaDie(ctx *Context, e ecs.Entity, rate int) {
	body, _, ok := parts(ctx.World, e)
	if !ok {
		ctx.Kill(e)
		return
	}
	x, y := body.Rect.X, body.Rect.Y
	ctx.Kill(e)

	ground, err := Spawn(ctx, "koopa", x, y)
	if err != nil {
		ctx.Logger.Error("replace jumping koopa", "error", err)
		return
	}
	Damage(ctx, ground, rate)
}
