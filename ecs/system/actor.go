package system

import (
	"sort"

	"github.com/milk9111/koopa/ecs"
	"github.com/milk9111/koopa/ecs/component"
)

// ActorSystem steps every actor's state machine once per frame. The player
// goes first, then the rest in entity order. Actors spawned during the pass
// start moving on the next frame.
type ActorSystem struct {
	ctx *Context
}

func NewActorSystem(ctx *Context) *ActorSystem {
	return &ActorSystem{ctx: ctx}
}

func (s *ActorSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var order []ecs.Entity
	ecs.ForEach(w, component.ActorComponent.Kind(), func(e ecs.Entity, _ *component.Actor) {
		order = append(order, e)
	})
	sort.Slice(order, func(i, j int) bool {
		pi := kindOf(w, order[i]) == component.KindPlayer
		pj := kindOf(w, order[j]) == component.KindPlayer
		if pi != pj {
			return pi
		}
		return order[i].Less(order[j])
	})

	for _, e := range order {
		if !ecs.IsAlive(w, e) {
			continue
		}
		Step(s.ctx, e)
	}
}

// parts fetches the components every moving actor carries.
func parts(w *ecs.World, e ecs.Entity) (*component.Body, *component.Sides, bool) {
	body, ok := ecs.Get(w, e, component.BodyComponent.Kind())
	if !ok {
		return nil, nil, false
	}
	sides, ok := ecs.Get(w, e, component.SidesComponent.Kind())
	if !ok {
		return nil, nil, false
	}
	return body, sides, true
}

func spriteOf(w *ecs.World, e ecs.Entity) *component.Sprite {
	s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
	return s
}

func animate(w *ecs.World, e ecs.Entity) {
	anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind())
	if !ok {
		return
	}
	Animate(anim, spriteOf(w, e))
}
