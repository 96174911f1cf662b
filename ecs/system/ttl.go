package system

import (
	"github.com/milk9111/koopa/ecs"
	"github.com/milk9111/koopa/ecs/component"
)

// TTLSystem counts down frame-based TTL components and kills entities when
// the TTL reaches zero.
type TTLSystem struct {
	ctx *Context
}

func NewTTLSystem(ctx *Context) *TTLSystem {
	return &TTLSystem{ctx: ctx}
}

func (s *TTLSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.TTLComponent.Kind(), func(e ecs.Entity, ttl *component.TTL) {
		if ttl.Frames > 0 {
			ttl.Frames--
			if ttl.Frames > 0 {
				return
			}
		}
		s.ctx.Kill(e)
	})
}
