package system

import (
	"sort"

	"github.com/milk9111/koopa/common"
	"github.com/milk9111/koopa/ecs"
	"github.com/milk9111/koopa/ecs/component"
)

const (
	GroupTilesMask   = component.GroupTiles
	GroupEnemiesMask = component.GroupEnemies
	GroupItemsMask   = component.GroupItems
	GroupPlayersMask = component.GroupPlayers
	GroupGoalsMask   = component.GroupGoals
)

// Group is a spatially queried set of entities. Overlapping returns a single
// representative member (the lowest entity id among overlaps) and
// OverlappingAll returns every overlapping member as a fresh slice, so
// callers may kill or spawn while walking it.
type Group interface {
	Overlapping(region common.Rect, except ecs.Entity) (ecs.Entity, bool)
	OverlappingAll(region common.Rect, except ecs.Entity) []ecs.Entity
	Add(e ecs.Entity)
	Remove(e ecs.Entity)
	Contains(e ecs.Entity) bool
	Len() int
}

// memberGroup is a group backed by the Membership component bit mask.
type memberGroup struct {
	w   *ecs.World
	bit component.GroupMask
}

func NewMemberGroup(w *ecs.World, bit component.GroupMask) Group {
	return &memberGroup{w: w, bit: bit}
}

func (g *memberGroup) Add(e ecs.Entity) {
	m, ok := ecs.Get(g.w, e, component.MembershipComponent.Kind())
	if !ok {
		_ = ecs.Add(g.w, e, component.MembershipComponent.Kind(), &component.Membership{Groups: g.bit})
		return
	}
	m.Groups |= g.bit
}

func (g *memberGroup) Remove(e ecs.Entity) {
	if m, ok := ecs.Get(g.w, e, component.MembershipComponent.Kind()); ok {
		m.Groups &^= g.bit
	}
}

func (g *memberGroup) Contains(e ecs.Entity) bool {
	m, ok := ecs.Get(g.w, e, component.MembershipComponent.Kind())
	return ok && m.In(g.bit)
}

func (g *memberGroup) Len() int {
	n := 0
	ecs.ForEach(g.w, component.MembershipComponent.Kind(), func(_ ecs.Entity, m *component.Membership) {
		if m.In(g.bit) {
			n++
		}
	})
	return n
}

func (g *memberGroup) Overlapping(region common.Rect, except ecs.Entity) (ecs.Entity, bool) {
	var best ecs.Entity
	found := false
	g.each(region, except, func(e ecs.Entity) {
		if !found || e.Less(best) {
			best, found = e, true
		}
	})
	return best, found
}

func (g *memberGroup) OverlappingAll(region common.Rect, except ecs.Entity) []ecs.Entity {
	var out []ecs.Entity
	g.each(region, except, func(e ecs.Entity) {
		out = append(out, e)
	})
	sortEntities(out)
	return out
}

func (g *memberGroup) each(region common.Rect, except ecs.Entity, fn func(ecs.Entity)) {
	ecs.ForEach2(g.w, component.MembershipComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, m *component.Membership, body *component.Body) {
		if e == except || !m.In(g.bit) {
			return
		}
		if region.Intersects(body.Rect) {
			fn(e)
		}
	})
}

func sortEntities(es []ecs.Entity) {
	sort.Slice(es, func(i, j int) bool { return es[i].Less(es[j]) })
}
