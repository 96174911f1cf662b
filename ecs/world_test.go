package ecs

import (
	"testing"

	"github.com/milk9111/koopa/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("second DestroyEntity should report false")
				}
				if len(Entities(w)) != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
				}
			}
		})
	}
}

func TestWorldSlotReuseInvalidatesOldHandle(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()

	old := CreateEntity(w)
	if err := Add(w, old, kind, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected slot %d to be reused, got %d", old.id(), fresh.id())
	}
	if fresh == old || IsAlive(w, old) {
		t.Fatalf("stale handle %v must not alias %v", old, fresh)
	}
	if Has(w, fresh, kind) {
		t.Fatalf("reused slot must not inherit components")
	}
	if err := Add(w, old, kind, intPtr(2)); err != component.ErrEntityNotAlive {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestWorldComponents(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get[int](w, e1, h1.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove[int](w, e1, h1.Kind()) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, h2.Kind(), stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has[string](w, e1, h2.Kind()) || !Has[string](w, e2, h2.Kind()) {
					t.Fatalf("expected both entities to have string component")
				}
				if Count(w, h2.Kind()) != 2 {
					t.Fatalf("expected 2 string components, got %d", Count(w, h2.Kind()))
				}
			},
			teardown: func() bool { return Remove[string](w, e1, h2.Kind()) },
		},
		{
			name:  "nil_value_rejected",
			setup: func() error { return nil },
			check: func(t *testing.T) {
				if err := Add[int](w, e1, h1.Kind(), nil); err != component.ErrNilComponent {
					t.Fatalf("expected ErrNilComponent, got %v", err)
				}
			},
			teardown: func() bool { return true },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestForEach(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		w := NewWorld()
		h := component.NewComponent[int]()

		e1 := CreateEntity(w)
		e2 := CreateEntity(w)
		e3 := CreateEntity(w)

		if err := Add(w, e1, h.Kind(), intPtr(1)); err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if err := Add(w, e3, h.Kind(), intPtr(3)); err != nil {
			t.Fatalf("add failed: %v", err)
		}

		var ents []Entity
		ForEach(w, h.Kind(), func(e Entity, _ *int) { ents = append(ents, e) })
		if len(ents) != 2 || ents[0] != e1 || ents[1] != e3 {
			t.Fatalf("expected [e1 e3], got %v (e2=%v)", ents, e2)
		}
	})

	t.Run("destroy_during_walk", func(t *testing.T) {
		w := NewWorld()
		h := component.NewComponent[int]()

		var ents []Entity
		for i := 0; i < 4; i++ {
			e := CreateEntity(w)
			if err := Add(w, e, h.Kind(), intPtr(i)); err != nil {
				t.Fatal(err)
			}
			ents = append(ents, e)
		}

		var visited []int
		ForEach(w, h.Kind(), func(e Entity, v *int) {
			visited = append(visited, *v)
			if *v == 0 {
				DestroyEntity(w, ents[2])
				spawned := CreateEntity(w)
				_ = Add(w, spawned, h.Kind(), intPtr(99))
			}
		})
		want := []int{0, 1, 3}
		if len(visited) != len(want) {
			t.Fatalf("expected %v, got %v", want, visited)
		}
		for i := range want {
			if visited[i] != want[i] {
				t.Fatalf("expected %v, got %v", want, visited)
			}
		}
	})
}

func TestForEach3(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				_ = Add(w, e1, ka, intPtr(1))
				_ = Add(w, e2, ka, intPtr(2))
				_ = Add(w, e2, kb, intPtr(3))
				_ = Add(w, e2, kc, intPtr(5))
				_ = Add(w, e3, kb, intPtr(4))

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 1 || res[0].id() != e2.id() {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				_ = Add(w, e, ka, intPtr(1))
				_ = Add(w, e, kb, intPtr(2))
				_ = Add(w, e, kc, intPtr(3))

				if !DestroyEntity(w, e) {
					t.Fatal("failed to destroy entity")
				}

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
			},
		},
		{
			name: "missing_store_returns_nil",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				_ = Add(w, e, ka, intPtr(1))

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty when other store missing, got %v", res)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestFirstAndEvents(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[string]()
	if _, ok := First(w, kind); ok {
		t.Fatalf("First on empty store should fail")
	}
	e := CreateEntity(w)
	_ = Add(w, e, kind, stringPtr("hud"))
	if got, ok := First(w, kind); !ok || got != e {
		t.Fatalf("First = %v,%v want %v", got, ok, e)
	}

	w.Events().Push(Event{Type: "a"})
	w.Events().Push(Event{Type: "b"})
	if w.Events().Len() != 2 {
		t.Fatalf("expected 2 queued events")
	}
	evs := w.Events().Drain()
	if len(evs) != 2 || evs[0].Type != "a" || w.Events().Len() != 0 {
		t.Fatalf("unexpected drain result %v", evs)
	}
}
