package system

import (
	"fmt"

	"github.com/milk9111/koopa/common"
	"github.com/milk9111/koopa/ecs"
	"github.com/milk9111/koopa/ecs/component"
)

// BuildSides recomputes the probe regions configured in sides.Mask from the
// current body rect. Wall probes are inset by MaxV at both ends so that a
// floor or ceiling the body sank into this frame does not register as a
// wall.
func BuildSides(body *component.Body, sides *component.Sides) {
	r := body.Rect
	sides.Top, sides.Bottom, sides.Left, sides.Right = common.Rect{}, common.Rect{}, common.Rect{}, common.Rect{}

	if sides.HasCeilingProbe() {
		sides.Top = common.NewRect(r.X, r.Y-1, r.Width, 1)
	}
	if sides.Mask&component.SideBottom != 0 {
		sides.Bottom = common.NewRect(r.X, r.Bottom(), r.Width, 1)
	}
	if sides.Mask&component.SidesWalls != 0 {
		h := r.Height - 2*body.MaxV
		if h <= 0 {
			panic(fmt.Sprintf("sides: wall probe height %.2f for body height %.2f and max_v %.2f", h, r.Height, body.MaxV))
		}
		if sides.Mask&component.SideLeft != 0 {
			sides.Left = common.NewRect(r.X-1, r.Y+body.MaxV, 1, h)
		}
		if sides.Mask&component.SideRight != 0 {
			sides.Right = common.NewRect(r.Right(), r.Y+body.MaxV, 1, h)
		}
	}
}

// Integrate advances body by one frame: gravity, vertical clamp, then move.
func Integrate(ctx *Context, body *component.Body, scale float64) {
	body.VY += ctx.Gravity * scale
	body.VY = common.Clamp(body.VY, -body.MaxV, body.MaxV)
	body.Rect.Move(body.VX, body.VY)
}

func gravityScale(w *ecs.World, e ecs.Entity) float64 {
	if gs, ok := ecs.Get(w, e, component.GravityScaleComponent.Kind()); ok {
		return gs.Scale
	}
	return 1
}
