package system

import (
	"testing"

	"github.com/milk9111/koopa/common"
	"github.com/milk9111/koopa/ecs"
	"github.com/milk9111/koopa/ecs/component"
)

func playerOf(t *testing.T, ctx *Context, e ecs.Entity) *component.Player {
	t.Helper()
	p, ok := ecs.Get(ctx.World, e, component.PlayerComponent.Kind())
	if !ok {
		t.Fatalf("entity %v is not a player", e)
	}
	return p
}

func TestPlayerStompsGoomba(t *testing.T) {
	ctx, sink := newTestContext(t)
	floor(t, ctx, 0, 480, 300)
	goomba := spawn(t, ctx, "goomba", 100, 252)
	player := spawn(t, ctx, "player", 100, 200)
	body(t, ctx, player).VY = 5

	Step(ctx, player)
	flushScore(ctx)

	g, _ := ecs.Get(ctx.World, goomba, component.GoombaComponent.Kind())
	if !g.Squashed {
		t.Fatalf("expected goomba squashed")
	}
	pb := body(t, ctx, player)
	if pb.VY != -10 || pb.Rect.Bottom() != 252 {
		t.Fatalf("expected bounce off the goomba top, got vy %v bottom %v", pb.VY, pb.Rect.Bottom())
	}
	if sink.score != 100 {
		t.Fatalf("expected 100 points, got %d", sink.score)
	}
	if playerOf(t, ctx, player).Died {
		t.Fatalf("expected the player unharmed")
	}

	ttl, ok := ecs.Get(ctx.World, goomba, component.TTLComponent.Kind())
	if !ok || ttl.Frames != 30 {
		t.Fatalf("expected squashed goomba to expire after 30 frames, got %+v", ttl)
	}
}

func TestSmallPlayerDiesOnSideContact(t *testing.T) {
	ctx, sink := newTestContext(t)
	floor(t, ctx, 0, 480, 300)
	spawn(t, ctx, "goomba", 100, 252)
	player := spawn(t, ctx, "player", 60, 252)

	Step(ctx, player)

	p := playerOf(t, ctx, player)
	if !p.Died {
		t.Fatalf("expected a fatal hit")
	}
	if sink.lives != -1 || sink.state != "dead" {
		t.Fatalf("expected a life lost and state dead, got %d %q", sink.lives, sink.state)
	}
	if got := spriteOf(ctx.World, player).Category; got != "player_dead" {
		t.Fatalf("expected dead sprite, got %q", got)
	}

	x := body(t, ctx, player).Rect.X
	Step(ctx, player)
	if body(t, ctx, player).Rect.X != x {
		t.Fatalf("expected a dead player to stay put")
	}
}

func TestBigPlayerShrinksOnHit(t *testing.T) {
	ctx, sink := newTestContext(t)
	floor(t, ctx, 0, 480, 300)
	spawn(t, ctx, "goomba", 100, 252)
	player := spawn(t, ctx, "player", 60, 252)
	setPlayerSize(ctx, player, component.PlayerBig)

	Step(ctx, player)

	p := playerOf(t, ctx, player)
	if p.Died || p.Size != component.PlayerSmall {
		t.Fatalf("expected the player shrunk, got %+v", p)
	}
	if pb := body(t, ctx, player); pb.Rect.Height != 48 || pb.Rect.Bottom() != 300 {
		t.Fatalf("expected small body on the floor, got %+v", pb.Rect)
	}
	inv, ok := ecs.Get(ctx.World, player, component.InvulnerableComponent.Kind())
	if !ok || inv.Frames != 120 || inv.Star {
		t.Fatalf("expected hurt invulnerability, got %+v", inv)
	}
	if !ecs.Has(ctx.World, player, component.WhiteFlashComponent.Kind()) {
		t.Fatalf("expected the player to blink")
	}
	if sink.state != "small" {
		t.Fatalf("expected state small, got %q", sink.state)
	}

	Step(ctx, player)
	if playerOf(t, ctx, player).Died {
		t.Fatalf("expected no damage while invulnerable")
	}
}

func TestStarPlayerKillsOnContact(t *testing.T) {
	ctx, _ := newTestContext(t)
	floor(t, ctx, 0, 480, 300)
	goomba := spawn(t, ctx, "goomba", 100, 252)
	player := spawn(t, ctx, "player", 60, 252)
	if err := ecs.Add(ctx.World, player, component.InvulnerableComponent.Kind(), &component.Invulnerable{Frames: 600, Star: true}); err != nil {
		t.Fatalf("add invulnerable: %v", err)
	}

	Step(ctx, player)

	g, _ := ecs.Get(ctx.World, goomba, component.GoombaComponent.Kind())
	if !g.Squashed {
		t.Fatalf("expected goomba killed by the star")
	}
	if playerOf(t, ctx, player).Died {
		t.Fatalf("expected the player unharmed")
	}
}

func TestPlayerKicksRestingShell(t *testing.T) {
	ctx, _ := newTestContext(t)
	floor(t, ctx, 0, 960, 300)
	koopa := spawn(t, ctx, "koopa", 100, 228)
	Damage(ctx, koopa, 1)
	player := spawn(t, ctx, "player", 60, 252)

	Step(ctx, player)

	if p := playerOf(t, ctx, player); p.Died {
		t.Fatalf("expected kicking a shell to be safe")
	}
	if k := koopaOf(t, ctx, koopa); k.Phase != component.KoopaShellSliding {
		t.Fatalf("expected kicked shell, got %v", k.Phase)
	}
	inv, ok := ecs.Get(ctx.World, player, component.InvulnerableComponent.Kind())
	if !ok || inv.Frames != kickGraceFrames {
		t.Fatalf("expected kick grace frames, got %+v", inv)
	}
}

func TestPlayerBumpsBlock(t *testing.T) {
	ctx, sink := newTestContext(t)
	block := spawn(t, ctx, "block", 96, 100)
	b, _ := ecs.Get(ctx.World, block, component.BlockComponent.Kind())
	b.Contents = "mushroom_grow"
	goomba := spawn(t, ctx, "goomba", 96, 52)
	player := spawn(t, ctx, "player", 96, 150)
	body(t, ctx, player).VY = -10

	Step(ctx, player)
	flushScore(ctx)

	pb := body(t, ctx, player)
	if pb.Rect.Y != 148 || pb.VY != 0 {
		t.Fatalf("expected head stopped under the block, got y %v vy %v", pb.Rect.Y, pb.VY)
	}
	if b.Remaining != 0 || spriteOf(ctx.World, block).Frame != blockUsedFrame {
		t.Fatalf("expected block used, got %+v", b)
	}
	g, _ := ecs.Get(ctx.World, goomba, component.GoombaComponent.Kind())
	if !g.Squashed || sink.score != 100 {
		t.Fatalf("expected the goomba on the block hit, got squashed %v score %d", g.Squashed, sink.score)
	}

	item, ok := ctx.Items.Overlapping(common.NewRect(96, 60, 48, 10), player)
	if !ok || kindOf(ctx.World, item) != component.KindMushroomGrow {
		t.Fatalf("expected a mushroom above the block")
	}
	it, _ := ecs.Get(ctx.World, item, component.ItemComponent.Kind())
	if !it.Emerging || it.TargetY != 100-48 {
		t.Fatalf("expected the mushroom to emerge onto the block top, got %+v", it)
	}

	// An empty block still stops the head but pays nothing.
	pb.Rect.Y, pb.VY = 150, -10
	Step(ctx, player)
	if n := ctx.Items.Len(); n != 1 {
		t.Fatalf("expected no second payout, got %d items", n)
	}
}

func TestPlayerFallsOutOfView(t *testing.T) {
	ctx, sink := newTestContext(t)
	player := spawn(t, ctx, "player", 0, ctx.Height+10)

	Step(ctx, player)
	if !playerOf(t, ctx, player).Died || sink.lives != -1 {
		t.Fatalf("expected falling out of view to be fatal")
	}
}

func TestPlayerJumpsOnlyFromGround(t *testing.T) {
	ctx, _ := newTestContext(t)
	floor(t, ctx, 0, 480, 300)
	player := spawn(t, ctx, "player", 0, 100)
	in, _ := ecs.Get(ctx.World, player, component.InputComponent.Kind())
	in.Jump = true

	Step(ctx, player)
	if vy := body(t, ctx, player).VY; vy != 1 {
		t.Fatalf("expected no jump in the air, got vy %v", vy)
	}

	body(t, ctx, player).Rect.SetBottom(300)
	Step(ctx, player)
	if vy := body(t, ctx, player).VY; vy != -17 {
		t.Fatalf("expected jump from the ground, got vy %v", vy)
	}
}

func TestPlayerReachingGoalStartsCount(t *testing.T) {
	ctx, _ := newTestContext(t)
	floor(t, ctx, 0, 480, 300)
	h := NewHUD()
	if err := ecs.Add(ctx.World, ecs.CreateEntity(ctx.World), component.HUDComponent.Kind(), h); err != nil {
		t.Fatalf("add hud: %v", err)
	}
	goal := spawn(t, ctx, "goal", 150, 252)
	if !ctx.Goals.Contains(goal) || ctx.Tiles.Contains(goal) {
		t.Fatalf("expected goal indexed as a goal only")
	}
	player := spawn(t, ctx, "player", 100, 252)
	in, _ := ecs.Get(ctx.World, player, component.InputComponent.Kind())
	in.MoveX = 1

	Step(ctx, player)
	if !playerOf(t, ctx, player).Finished || !h.Counting {
		t.Fatalf("expected the goal to finish the level, player %+v hud %+v", playerOf(t, ctx, player), h)
	}

	x := body(t, ctx, player).Rect.X
	Step(ctx, player)
	if got := body(t, ctx, player).Rect.X; got != x {
		t.Fatalf("expected a finished player to stay put, moved from %v to %v", x, got)
	}
}
