package system

import (
	"github.com/milk9111/koopa/common"
	"github.com/milk9111/koopa/ecs"
	"github.com/milk9111/koopa/ecs/component"
)

const (
	// stompTolerance is how far below an enemy's top the player's previous
	// bottom edge may be and still count as landing on it.
	stompTolerance  = 4
	kickGraceFrames = 12
	blockUsedFrame  = 1
)

func playerUpdate(ctx *Context, e ecs.Entity) {
	w := ctx.World
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok || p.Died || p.Finished {
		return
	}
	body, sides, ok := parts(w, e)
	if !ok {
		return
	}

	var in component.Input
	if i, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
		in = *i
	}

	body.VX = in.MoveX * p.MoveSpeed
	if in.Jump && OnGround(ctx.Tiles, e, body, sides) {
		body.VY = -p.JumpSpeed
	}

	prevBottom := body.Rect.Bottom()
	Integrate(ctx, body, gravityScale(w, e))
	resolvePlayer(ctx, e, body, sides)

	sprite := spriteOf(w, e)
	faceVelocity(sprite, body.VX)
	if body.VX != 0 {
		animate(w, e)
	} else if sprite != nil {
		sprite.Frame = 0
	}

	touchEnemies(ctx, e, p, body, prevBottom)
	if ecs.IsAlive(w, e) && !p.Died {
		if _, ok := ctx.Goals.Overlapping(body.Rect, e); ok {
			reachGoal(ctx, e, p, body)
			return
		}
	}

	if ecs.IsAlive(w, e) && body.Rect.Y > ctx.Height {
		fatalHit(ctx, e)
	}
}

// resolvePlayer is the player's own tile resolver: walls stop rather than
// bounce, and a ceiling stops upward motion and bumps the block hit.
func resolvePlayer(ctx *Context, e ecs.Entity, body *component.Body, sides *component.Sides) {
	w := ctx.World
	BuildSides(body, sides)

	if hit, ok := overlappingRect(w, ctx.Tiles, sides.Left, e); ok {
		body.Rect.X = hit.Right()
		body.VX = 0
		BuildSides(body, sides)
	}
	if hit, ok := overlappingRect(w, ctx.Tiles, sides.Right, e); ok {
		body.Rect.SetRight(hit.X)
		body.VX = 0
		BuildSides(body, sides)
	}

	if body.VY < 0 && sides.HasCeilingProbe() {
		if tile, ok := ctx.Tiles.Overlapping(sides.Top, e); ok {
			if tb, ok := ecs.Get(w, tile, component.BodyComponent.Kind()); ok {
				body.Rect.Y = tb.Rect.Bottom()
				body.VY = 0
				BuildSides(body, sides)
				bumpBlock(ctx, tile, tb.Rect)
			}
		}
	}

	ResolveFloor(w, ctx.Tiles, e, body, sides)
}

// bumpBlock pays out one of the block's contents and hits any enemy standing
// on top of it.
func bumpBlock(ctx *Context, tile ecs.Entity, rect common.Rect) {
	w := ctx.World
	for _, enemy := range ctx.Enemies.OverlappingAll(common.NewRect(rect.X, rect.Y-1, rect.Width, 1), 0) {
		Damage(ctx, enemy, 1)
	}

	block, ok := ecs.Get(w, tile, component.BlockComponent.Kind())
	if !ok || block.Remaining == 0 || block.Contents == "" {
		return
	}
	block.Remaining--
	if block.Remaining == 0 {
		if sprite := spriteOf(w, tile); sprite != nil {
			sprite.Frame = blockUsedFrame
		}
	}

	e, err := ctx.Spawn(block.Contents, rect.X, rect.Y)
	if err != nil {
		ctx.Logger.Error("block contents", "contents", block.Contents, "error", err)
		return
	}
	// Items start two thirds of their height above the block top so that
	// the emerge rise leaves them resting on it.
	if _, ok := ecs.Get(w, e, component.ItemComponent.Kind()); ok {
		if body, ok := ecs.Get(w, e, component.BodyComponent.Kind()); ok {
			body.Rect.Y = rect.Y - 2*body.Rect.Height/3
		}
	}
	OnSpawn(ctx, e)
}

func touchEnemies(ctx *Context, e ecs.Entity, p *component.Player, body *component.Body, prevBottom float64) {
	w := ctx.World
	for _, enemy := range ctx.Enemies.OverlappingAll(body.Rect, e) {
		if !ecs.IsAlive(w, e) || p.Died {
			return
		}
		if !ecs.IsAlive(w, enemy) || !ctx.Enemies.Contains(enemy) {
			continue
		}
		eb, ok := ecs.Get(w, enemy, component.BodyComponent.Kind())
		if !ok {
			continue
		}
		inv, invulnerable := ecs.Get(w, e, component.InvulnerableComponent.Kind())

		switch {
		case invulnerable && inv.Star:
			Damage(ctx, enemy, 1)
		case body.VY > 0 && prevBottom <= eb.Rect.Y+stompTolerance:
			body.Rect.SetBottom(eb.Rect.Y)
			body.VY = -p.BounceSpeed
			Damage(ctx, enemy, 1)
		case restingShell(w, enemy, eb):
			Damage(ctx, enemy, 1)
			if !invulnerable {
				_ = ecs.Add(w, e, component.InvulnerableComponent.Kind(), &component.Invulnerable{Frames: kickGraceFrames})
			}
		case invulnerable:
		default:
			hurtPlayer(ctx, e)
			return
		}
	}
}

// reachGoal ends the level: the player stops and the HUD starts turning the
// remaining time into score.
func reachGoal(ctx *Context, e ecs.Entity, p *component.Player, body *component.Body) {
	p.Finished = true
	body.VX, body.VY = 0, 0
	ecs.ForEach(ctx.World, component.HUDComponent.Kind(), func(_ ecs.Entity, h *component.HUD) {
		StartCount(h)
	})
	ctx.Logger.Info("level complete", "entity", e)
}

func restingShell(w *ecs.World, e ecs.Entity, body *component.Body) bool {
	k, ok := ecs.Get(w, e, component.KoopaComponent.Kind())
	return ok && k.Phase.InShell() && body.VX == 0
}

// hurtPlayer shrinks a big player and gives it a moment of invulnerability.
// A small player dies.
func hurtPlayer(ctx *Context, e ecs.Entity) {
	w := ctx.World
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	if p.Size == component.PlayerSmall {
		fatalHit(ctx, e)
		return
	}
	setPlayerSize(ctx, e, component.PlayerSmall)
	_ = ecs.Add(w, e, component.InvulnerableComponent.Kind(), &component.Invulnerable{Frames: p.HurtFrames})
	flash(w, e, p.HurtFrames)
}

func playerDie(ctx *Context, e ecs.Entity, _ int) {
	hurtPlayer(ctx, e)
}

// fatalHit marks the player dead and takes a life. The level reload is
// requested by the RespawnSystem or the HUD game over.
func fatalHit(ctx *Context, e ecs.Entity) {
	w := ctx.World
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok || p.Died {
		return
	}
	p.Died = true
	if body, ok := ecs.Get(w, e, component.BodyComponent.Kind()); ok {
		body.VX, body.VY = 0, 0
	}
	ctx.Sink.AddLives(-1)
	publishPlayerState(ctx, e)
	ctx.Logger.Info("player died", "entity", e)
}

// setPlayerSize swaps the player between its small and big heights, keeping
// the feet where they are.
func setPlayerSize(ctx *Context, e ecs.Entity, size component.PlayerSize) {
	w := ctx.World
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	p.Size = size
	if size == component.PlayerSmall {
		p.Fire = false
	}

	if body, ok := ecs.Get(w, e, component.BodyComponent.Kind()); ok {
		h := p.SmallHeight
		if size == component.PlayerBig {
			h = p.BigHeight
		}
		if h > 0 {
			bottom := body.Rect.Bottom()
			body.Rect.Height = h
			body.Rect.SetBottom(bottom)
		}
	}
	publishPlayerState(ctx, e)
}

func playerStateName(p *component.Player) string {
	switch {
	case p.Died:
		return "dead"
	case p.Fire:
		return "fire"
	default:
		return p.Size.String()
	}
}

func publishPlayerState(ctx *Context, e ecs.Entity) {
	w := ctx.World
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	name := playerStateName(p)
	if sprite := spriteOf(w, e); sprite != nil {
		sprite.Category = "player_" + name
	}
	ctx.Sink.SetPlayerState(name)
}
