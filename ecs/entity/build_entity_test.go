package entity

import (
	"testing"

	"github.com/milk9111/koopa/ecs"
	"github.com/milk9111/koopa/ecs/component"
	"github.com/milk9111/koopa/prefabs"
)

func TestBuildEmbeddedPrefabs(t *testing.T) {
	names, err := prefabs.Names()
	if err != nil {
		t.Fatalf("list prefabs: %v", err)
	}

	for _, name := range names {
		if name == "world.yaml" {
			continue
		}
		t.Run(name, func(t *testing.T) {
			w := ecs.NewWorld()
			e, err := BuildAt(w, name, 96, 48)
			if err != nil {
				t.Fatalf("build %s: %v", name, err)
			}
			body, ok := ecs.Get(w, e, component.BodyComponent.Kind())
			if !ok {
				t.Fatalf("expected body")
			}
			if body.Rect.X != 96 || body.Rect.Y != 48 {
				t.Fatalf("expected body at 96,48, got %v,%v", body.Rect.X, body.Rect.Y)
			}
			if !ecs.Has(w, e, component.MembershipComponent.Kind()) {
				t.Fatalf("expected group membership")
			}
		})
	}
}

func TestBuildKoopaSeedsBody(t *testing.T) {
	w := ecs.NewWorld()
	e, err := BuildEntity(w, "koopa")
	if err != nil {
		t.Fatalf("build koopa: %v", err)
	}

	k, ok := ecs.Get(w, e, component.KoopaComponent.Kind())
	if !ok {
		t.Fatalf("expected koopa component")
	}
	if k.RevivalTime != 360 || k.SmertTime != 480 || k.LaunchSpeed != 15 {
		t.Fatalf("unexpected koopa tunables %+v", k)
	}
	body, _ := ecs.Get(w, e, component.BodyComponent.Kind())
	if body.VX != -2 {
		t.Fatalf("expected walk vx -2, got %v", body.VX)
	}
	sides, _ := ecs.Get(w, e, component.SidesComponent.Kind())
	if sides.Mask != component.SidesAll {
		t.Fatalf("expected all sides, got %v", sides.Mask)
	}
}

func TestJumperSpeed(t *testing.T) {
	tests := []struct {
		name   string
		jumper map[string]any
		want   float64
	}{
		{name: "defaults to max_v", jumper: map[string]any{"max_jumps": 8}, want: 14},
		{name: "explicit speed", jumper: map[string]any{"max_jumps": 25, "speed": 5}, want: 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e, err := BuildFromSpec(w, tc.name, prefabs.EntityBuildSpec{Components: map[string]any{
				"body":   map[string]any{"width": 48, "height": 48, "max_v": 14},
				"jumper": tc.jumper,
			}})
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			j, _ := ecs.Get(w, e, component.JumperComponent.Kind())
			if j.Speed != tc.want {
				t.Fatalf("expected hop speed %v, got %v", tc.want, j.Speed)
			}
		})
	}

	w := ecs.NewWorld()
	e, err := BuildEntity(w, "star")
	if err != nil {
		t.Fatalf("build star: %v", err)
	}
	j, _ := ecs.Get(w, e, component.JumperComponent.Kind())
	body, _ := ecs.Get(w, e, component.BodyComponent.Kind())
	if j.Speed != body.MaxV {
		t.Fatalf("expected the star to hop at max_v %v, got %v", body.MaxV, j.Speed)
	}
}

func TestBuildFromSpecErrors(t *testing.T) {
	tests := []struct {
		name string
		spec prefabs.EntityBuildSpec
	}{
		{name: "empty", spec: prefabs.EntityBuildSpec{Name: "empty"}},
		{name: "unknown component", spec: prefabs.EntityBuildSpec{Components: map[string]any{"wings": map[string]any{}}}},
		{name: "unknown kind", spec: prefabs.EntityBuildSpec{Components: map[string]any{"actor": map[string]any{"kind": "bowser"}}}},
		{name: "bad body", spec: prefabs.EntityBuildSpec{Components: map[string]any{"body": map[string]any{"width": 0, "height": 10}}}},
		{
			name: "top region on a ceiling-less kind",
			spec: prefabs.EntityBuildSpec{Components: map[string]any{
				"actor": map[string]any{"kind": "mushroom_grow"},
				"body":  map[string]any{"width": 48, "height": 48, "max_v": 10},
				"sides": map[string]any{"sides": []any{"top", "bottom"}},
			}},
		},
		{
			name: "wall region too short",
			spec: prefabs.EntityBuildSpec{Components: map[string]any{
				"actor": map[string]any{"kind": "goomba"},
				"body":  map[string]any{"width": 48, "height": 20, "max_v": 10},
				"sides": map[string]any{},
			}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			if _, err := BuildFromSpec(w, tc.name, tc.spec); err == nil {
				t.Fatalf("expected error")
			}
			if n := len(ecs.Entities(w)); n != 0 {
				t.Fatalf("expected failed build to leave no entities, got %d", n)
			}
		})
	}
}
