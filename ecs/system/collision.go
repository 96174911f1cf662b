package system

import (
	"github.com/milk9111/koopa/common"
	"github.com/milk9111/koopa/ecs"
	"github.com/milk9111/koopa/ecs/component"
)

// Resolve corrects body against group by checking the left probe, then the
// right probe, then the bottom probe. Each correction rebuilds the probes so
// later checks see the corrected rect. Only the first overlapping member is
// used per probe. Top contacts are left to callers that need a ceiling.
func Resolve(w *ecs.World, group Group, e ecs.Entity, body *component.Body, sides *component.Sides) {
	BuildSides(body, sides)

	if sides.Has(component.SideLeft) {
		if hit, ok := overlappingRect(w, group, sides.Region(component.SideLeft), e); ok {
			body.Rect.X = hit.Right()
			body.VX = -body.VX
			BuildSides(body, sides)
		}
	}

	if sides.Has(component.SideRight) {
		if hit, ok := overlappingRect(w, group, sides.Region(component.SideRight), e); ok {
			body.Rect.SetRight(hit.X)
			body.VX = -body.VX
			BuildSides(body, sides)
		}
	}

	ResolveFloor(w, group, e, body, sides)
}

// ResolveFloor only stops downward motion on the bottom probe. Upward
// velocity is preserved. It reports whether a floor was hit.
func ResolveFloor(w *ecs.World, group Group, e ecs.Entity, body *component.Body, sides *component.Sides) bool {
	BuildSides(body, sides)
	if !sides.Has(component.SideBottom) {
		return false
	}
	hit, ok := overlappingRect(w, group, sides.Region(component.SideBottom), e)
	if !ok {
		return false
	}
	body.Rect.SetBottom(hit.Y)
	body.VY = min(0, body.VY)
	BuildSides(body, sides)
	return true
}

// OnGround reports whether the bottom probe currently touches group.
func OnGround(group Group, e ecs.Entity, body *component.Body, sides *component.Sides) bool {
	BuildSides(body, sides)
	if group == nil || !sides.Has(component.SideBottom) {
		return false
	}
	_, ok := group.Overlapping(sides.Bottom, e)
	return ok
}

func overlappingRect(w *ecs.World, group Group, region common.Rect, except ecs.Entity) (common.Rect, bool) {
	if group == nil {
		return common.Rect{}, false
	}
	hit, ok := group.Overlapping(region, except)
	if !ok {
		return common.Rect{}, false
	}
	b, ok := ecs.Get(w, hit, component.BodyComponent.Kind())
	if !ok {
		return common.Rect{}, false
	}
	return b.Rect, true
}
