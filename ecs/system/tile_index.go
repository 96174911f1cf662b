package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/koopa/common"
	"github.com/milk9111/koopa/ecs"
	"github.com/milk9111/koopa/ecs/component"
)

// tileGroup indexes static tiles as boxes on the static body of a chipmunk
// space. The space is only used as a broadphase: BBQuery bounds touch at
// their edges, so every candidate is confirmed with the strict rect test.
type tileGroup struct {
	w      *ecs.World
	space  *cp.Space
	shapes map[ecs.Entity]*cp.Shape
}

func NewTileGroup(w *ecs.World) Group {
	return &tileGroup{
		w:      w,
		space:  cp.NewSpace(),
		shapes: make(map[ecs.Entity]*cp.Shape),
	}
}

func rectBB(r common.Rect) cp.BB {
	return cp.BB{L: r.X, B: r.Y, R: r.Right(), T: r.Bottom()}
}

// Add indexes e at its current body rect. Tiles are not expected to move;
// re-adding a tile refreshes its shape.
func (g *tileGroup) Add(e ecs.Entity) {
	body, ok := ecs.Get(g.w, e, component.BodyComponent.Kind())
	if !ok {
		return
	}
	if old, ok := g.shapes[e]; ok {
		g.space.RemoveShape(old)
	}

	shape := cp.NewBox2(g.space.StaticBody, rectBB(body.Rect), 0)
	shape.UserData = e
	g.space.AddShape(shape)
	g.shapes[e] = shape

	if m, ok := ecs.Get(g.w, e, component.MembershipComponent.Kind()); ok {
		m.Groups |= component.GroupTiles
	} else {
		_ = ecs.Add(g.w, e, component.MembershipComponent.Kind(), &component.Membership{Groups: component.GroupTiles})
	}
}

func (g *tileGroup) Remove(e ecs.Entity) {
	shape, ok := g.shapes[e]
	if !ok {
		return
	}
	g.space.RemoveShape(shape)
	delete(g.shapes, e)
	if m, ok := ecs.Get(g.w, e, component.MembershipComponent.Kind()); ok {
		m.Groups &^= component.GroupTiles
	}
}

func (g *tileGroup) Contains(e ecs.Entity) bool {
	_, ok := g.shapes[e]
	return ok
}

func (g *tileGroup) Len() int {
	return len(g.shapes)
}

func (g *tileGroup) Overlapping(region common.Rect, except ecs.Entity) (ecs.Entity, bool) {
	var best ecs.Entity
	found := false
	for _, e := range g.query(region, except) {
		if !found || e.Less(best) {
			best, found = e, true
		}
	}
	return best, found
}

func (g *tileGroup) OverlappingAll(region common.Rect, except ecs.Entity) []ecs.Entity {
	out := g.query(region, except)
	sortEntities(out)
	return out
}

func (g *tileGroup) query(region common.Rect, except ecs.Entity) []ecs.Entity {
	if region.Empty() {
		return nil
	}

	var hits, stale []ecs.Entity
	g.space.BBQuery(rectBB(region), cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		e, ok := shape.UserData.(ecs.Entity)
		if !ok || e == except {
			return
		}
		body, ok := ecs.Get(g.w, e, component.BodyComponent.Kind())
		if !ok {
			stale = append(stale, e)
			return
		}
		if region.Intersects(body.Rect) {
			hits = append(hits, e)
		}
	}, nil)

	// Tiles destroyed without going through Remove are pruned once the
	// query has finished with the space.
	for _, e := range stale {
		g.Remove(e)
	}
	return hits
}

// Close drops every shape and the space.
func (g *tileGroup) Close() error {
	for e, shape := range g.shapes {
		g.space.RemoveShape(shape)
		delete(g.shapes, e)
	}
	g.space = nil
	return nil
}
