package system

import (
	"testing"

	"github.com/milk9111/koopa/ecs"
	"github.com/milk9111/koopa/ecs/component"
)

func TestInputSystemWritesEveryInput(t *testing.T) {
	w := ecs.NewWorld()
	var inputs []*component.Input
	for i := 0; i < 2; i++ {
		e := ecs.CreateEntity(w)
		in := &component.Input{MoveX: 1, Jump: true}
		if err := ecs.Add(w, e, component.InputComponent.Kind(), in); err != nil {
			t.Fatalf("add input: %v", err)
		}
		inputs = append(inputs, in)
	}

	frames := []component.Input{{MoveX: -1}, {MoveX: 0.5, Jump: true}, {}}
	next := 0
	s := NewInputSystemFrom(func() component.Input {
		in := frames[next]
		next++
		return in
	})

	for _, want := range frames {
		s.Update(w)
		for i, got := range inputs {
			if *got != want {
				t.Fatalf("input %d: expected %+v, got %+v", i, want, *got)
			}
		}
	}
}

func TestInputSystemWithoutReader(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	in := &component.Input{MoveX: 1}
	_ = ecs.Add(w, e, component.InputComponent.Kind(), in)

	NewInputSystemFrom(nil).Update(w)
	NewInputSystem().Update(nil)
	if in.MoveX != 1 {
		t.Fatalf("expected input untouched, got %+v", *in)
	}
}

func TestMoveAxis(t *testing.T) {
	tests := []struct {
		left, right bool
		want        float64
	}{
		{false, false, 0},
		{true, false, -1},
		{false, true, 1},
		{true, true, 0},
	}
	for _, tc := range tests {
		if got := moveAxis(tc.left, tc.right); got != tc.want {
			t.Fatalf("moveAxis(%v, %v) = %v, want %v", tc.left, tc.right, got, tc.want)
		}
	}
}
