package ecs

import "github.com/milk9111/koopa/ecs/component"

// The ForEach family walks a snapshot of the smallest participating store.
// Entities destroyed, or components removed, by an earlier callback are
// skipped; entities created during the walk are not visited.

func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	store := w.store(kind.ID(), false)
	for _, e := range store.Snapshot() {
		if !w.entities.isAlive(e) {
			continue
		}
		v, ok := store.Get(e).(*T)
		if !ok {
			continue
		}
		fn(e, v)
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	sa, sb := w.store(ka.ID(), false), w.store(kb.ID(), false)
	for _, e := range smallest(sa, sb) {
		if !w.entities.isAlive(e) {
			continue
		}
		a, ok := sa.Get(e).(*A)
		if !ok {
			continue
		}
		b, ok := sb.Get(e).(*B)
		if !ok {
			continue
		}
		fn(e, a, b)
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	if w == nil || fn == nil {
		return
	}
	sa, sb, sc := w.store(ka.ID(), false), w.store(kb.ID(), false), w.store(kc.ID(), false)
	for _, e := range smallest(sa, sb, sc) {
		if !w.entities.isAlive(e) {
			continue
		}
		a, ok := sa.Get(e).(*A)
		if !ok {
			continue
		}
		b, ok := sb.Get(e).(*B)
		if !ok {
			continue
		}
		c, ok := sc.Get(e).(*C)
		if !ok {
			continue
		}
		fn(e, a, b, c)
	}
}

func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	if w == nil || fn == nil {
		return
	}
	sa, sb, sc, sd := w.store(ka.ID(), false), w.store(kb.ID(), false), w.store(kc.ID(), false), w.store(kd.ID(), false)
	for _, e := range smallest(sa, sb, sc, sd) {
		if !w.entities.isAlive(e) {
			continue
		}
		a, ok := sa.Get(e).(*A)
		if !ok {
			continue
		}
		b, ok := sb.Get(e).(*B)
		if !ok {
			continue
		}
		c, ok := sc.Get(e).(*C)
		if !ok {
			continue
		}
		d, ok := sd.Get(e).(*D)
		if !ok {
			continue
		}
		fn(e, a, b, c, d)
	}
}

// smallest snapshots the shortest store; a missing store means no entity can
// match.
func smallest(sets ...*SparseSet) []Entity {
	var best *SparseSet
	for _, s := range sets {
		if s == nil {
			return nil
		}
		if best == nil || s.Len() < best.Len() {
			best = s
		}
	}
	return best.Snapshot()
}
