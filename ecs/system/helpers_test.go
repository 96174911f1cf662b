package system

import (
	"testing"

	"github.com/milk9111/koopa/ecs"
	"github.com/milk9111/koopa/ecs/component"
	"github.com/milk9111/koopa/ecs/entity"
)

type recordingSink struct {
	score, coins, lives int
	state               string
}

func (s *recordingSink) AddScore(n int)           { s.score += n }
func (s *recordingSink) AddCoins(n int)           { s.coins += n }
func (s *recordingSink) AddLives(n int)           { s.lives += n }
func (s *recordingSink) SetPlayerState(st string) { s.state = st }

// newTestContext returns a context whose spawner builds embedded prefabs
// and indexes them by their group membership.
func newTestContext(t *testing.T) (*Context, *recordingSink) {
	t.Helper()
	w := ecs.NewWorld()
	sink := &recordingSink{}
	ctx := NewContext(w, sink, nil)
	ctx.Spawn = func(name string, x, y float64) (ecs.Entity, error) {
		e, err := entity.BuildAt(w, name, x, y)
		if err != nil {
			return 0, err
		}
		ctx.Index(e)
		return e, nil
	}
	t.Cleanup(ctx.Close)
	return ctx, sink
}

func spawn(t *testing.T, ctx *Context, name string, x, y float64) ecs.Entity {
	t.Helper()
	e, err := ctx.Spawn(name, x, y)
	if err != nil {
		t.Fatalf("spawn %s: %v", name, err)
	}
	return e
}

// floor lays a row of ground tiles with their top edge at y.
func floor(t *testing.T, ctx *Context, x0, x1, y float64) {
	t.Helper()
	for x := x0; x < x1; x += 48 {
		spawn(t, ctx, "ground", x, y)
	}
}

func body(t *testing.T, ctx *Context, e ecs.Entity) *component.Body {
	t.Helper()
	b, ok := ecs.Get(ctx.World, e, component.BodyComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no body", e)
	}
	return b
}

func koopaOf(t *testing.T, ctx *Context, e ecs.Entity) *component.Koopa {
	t.Helper()
	k, ok := ecs.Get(ctx.World, e, component.KoopaComponent.Kind())
	if !ok {
		t.Fatalf("entity %v is not a koopa", e)
	}
	return k
}

func steps(ctx *Context, e ecs.Entity, n int) {
	for i := 0; i < n && ecs.IsAlive(ctx.World, e); i++ {
		Step(ctx, e)
	}
}

func flushScore(ctx *Context) {
	NewScoreSystem(ctx).Update(ctx.World)
}
