package system

import (
	"github.com/milk9111/koopa/ecs"
	"github.com/milk9111/koopa/ecs/component"
)

// InvulnerabilitySystem counts down Invulnerable frames and blinks the
// sprite of any entity carrying a WhiteFlash while it lasts.
type InvulnerabilitySystem struct{}

func NewInvulnerabilitySystem() *InvulnerabilitySystem { return &InvulnerabilitySystem{} }

func (s *InvulnerabilitySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.InvulnerableComponent.Kind(), func(e ecs.Entity, inv *component.Invulnerable) {
		inv.Frames--
		if inv.Frames > 0 {
			return
		}
		_ = ecs.Remove(w, e, component.InvulnerableComponent.Kind())
		if inv.Star {
			if p, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
				p.StarFrames = 0
			}
		}
	})

	ecs.ForEach2(w, component.WhiteFlashComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, wf *component.WhiteFlash, sprite *component.Sprite) {
		if wf.Interval <= 0 {
			wf.Interval = 1
		}
		wf.Timer++
		if wf.Timer >= wf.Interval {
			wf.Timer = 0
			wf.On = !wf.On
			wf.Frames -= wf.Interval
		}
		sprite.Hidden = wf.On
		if wf.Frames <= 0 {
			sprite.Hidden = false
			_ = ecs.Remove(w, e, component.WhiteFlashComponent.Kind())
		}
	})
}

func flash(w *ecs.World, e ecs.Entity, frames int) {
	_ = ecs.Add(w, e, component.WhiteFlashComponent.Kind(), &component.WhiteFlash{Frames: frames, Interval: 4})
}
