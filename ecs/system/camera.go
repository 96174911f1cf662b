package system

import (
	"github.com/milk9111/koopa/ecs"
	"github.com/milk9111/koopa/ecs/component"
)

// CameraSystem scrolls the view to keep the player centred. It only moves
// forward: the player cannot walk back past the left edge of the view.
// Non-player bodies that leave the playfield, to the left of the view or
// below its bottom, are removed.
type CameraSystem struct {
	ctx *Context
}

func NewCameraSystem(ctx *Context) *CameraSystem {
	return &CameraSystem{ctx: ctx}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return
	}
	cam, _ := ecs.Get(w, camEntity, component.CameraComponent.Kind())
	if cam.Width <= 0 {
		cam.Width = cs.ctx.Width
	}
	if cam.Height <= 0 {
		cam.Height = cs.ctx.Height
	}

	player, hasPlayer := ecs.First(w, component.PlayerTagComponent.Kind())
	var playerBody *component.Body
	if hasPlayer {
		playerBody, hasPlayer = ecs.Get(w, player, component.BodyComponent.Kind())
	}

	if hasPlayer {
		viewX := playerBody.Rect.X - cam.ScrollX
		dx := min(0, -(viewX + playerBody.Rect.Width/2 - cam.Width/2))
		scroll := cam.ScrollX - dx
		if bounds, ok := levelBounds(w); ok && bounds.Width > cam.Width {
			scroll = min(scroll, bounds.Width-cam.Width)
		}
		cam.ScrollX = max(cam.ScrollX, scroll)
		if playerBody.Rect.X-cam.ScrollX <= 0 {
			playerBody.Rect.X = cam.ScrollX
			playerBody.VX = max(0, playerBody.VX)
		}
	}

	ecs.ForEach(w, component.BodyComponent.Kind(), func(e ecs.Entity, body *component.Body) {
		if hasPlayer && e == player {
			return
		}
		if body.Rect.Right()-cam.ScrollX < 0 || body.Rect.Y > cam.Height {
			cs.ctx.Logger.Debug("culled", "entity", e, "x", body.Rect.X, "y", body.Rect.Y)
			cs.ctx.Kill(e)
		}
	})
}

func levelBounds(w *ecs.World) (*component.LevelBounds, bool) {
	e, ok := ecs.First(w, component.LevelBoundsComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.LevelBoundsComponent.Kind())
}
