package system

import (
	"testing"

	"github.com/milk9111/koopa/common"
	"github.com/milk9111/koopa/ecs/component"
)

func TestBuildSidesOffsets(t *testing.T) {
	b := &component.Body{Rect: common.NewRect(10, 20, 48, 72), MaxV: 10}
	sides := &component.Sides{Mask: component.SidesAll}
	BuildSides(b, sides)

	tests := []struct {
		side component.Side
		want common.Rect
	}{
		{component.SideTop, common.NewRect(10, 19, 48, 1)},
		{component.SideBottom, common.NewRect(10, 92, 48, 1)},
		{component.SideLeft, common.NewRect(9, 30, 1, 52)},
		{component.SideRight, common.NewRect(58, 30, 1, 52)},
	}
	for _, tc := range tests {
		t.Run(tc.side.String(), func(t *testing.T) {
			if got := sides.Region(tc.side); got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestBuildSidesFollowsRect(t *testing.T) {
	b := &component.Body{Rect: common.NewRect(0, 0, 48, 48), MaxV: 5}
	sides := &component.Sides{Mask: component.SidesAll}
	BuildSides(b, sides)
	b.Rect.Move(7, -3)
	BuildSides(b, sides)

	if sides.Bottom != common.NewRect(7, 45, 48, 1) {
		t.Fatalf("expected bottom region to follow the rect, got %+v", sides.Bottom)
	}
	if sides.Left.Height != 48-2*5 {
		t.Fatalf("expected wall region height 38, got %v", sides.Left.Height)
	}
}

func TestBuildSidesOnlyConfigured(t *testing.T) {
	b := &component.Body{Rect: common.NewRect(0, 0, 48, 48), MaxV: 10}
	sides := &component.Sides{Mask: component.SidesFloor}
	BuildSides(b, sides)

	if sides.Bottom.Empty() {
		t.Fatalf("expected a bottom region")
	}
	if !sides.Left.Empty() || !sides.Top.Empty() {
		t.Fatalf("expected no wall or top regions, got %+v", sides)
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for unconfigured side")
		}
	}()
	sides.Region(component.SideLeft)
}

func TestBuildSidesPanicsWithoutWallHeight(t *testing.T) {
	b := &component.Body{Rect: common.NewRect(0, 0, 48, 20), MaxV: 10}
	sides := &component.Sides{Mask: component.SidesAll}

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for a body too short for its wall regions")
		}
	}()
	BuildSides(b, sides)
}

func TestIntegrate(t *testing.T) {
	ctx := &Context{Gravity: 1}

	tests := []struct {
		name   string
		vx, vy float64
		scale  float64
		wantVY float64
		wantX  float64
		wantY  float64
		maxV   float64
	}{
		{name: "gravity", vx: 2, vy: 0, scale: 1, maxV: 10, wantVY: 1, wantX: 2, wantY: 1},
		{name: "clamp falling", vx: 0, vy: 10, scale: 1, maxV: 10, wantVY: 10, wantY: 10},
		{name: "clamp rising", vx: -3, vy: -30, scale: 1, maxV: 10, wantVY: -10, wantX: -3, wantY: -10},
		{name: "scaled gravity", vx: 0, vy: 0, scale: 0.5, maxV: 10, wantVY: 0.5, wantY: 0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := &component.Body{Rect: common.NewRect(0, 0, 48, 48), VX: tc.vx, VY: tc.vy, MaxV: tc.maxV}
			Integrate(ctx, b, tc.scale)
			if b.VY != tc.wantVY {
				t.Fatalf("expected vy %v, got %v", tc.wantVY, b.VY)
			}
			if b.Rect.X != tc.wantX || b.Rect.Y != tc.wantY {
				t.Fatalf("expected position %v,%v, got %v,%v", tc.wantX, tc.wantY, b.Rect.X, b.Rect.Y)
			}
		})
	}
}

func TestIntegrateStaysClamped(t *testing.T) {
	tests := []struct {
		name    string
		gravity float64
		vy      float64
		scale   float64
	}{
		{name: "free fall", gravity: 1, vy: 0, scale: 1},
		{name: "launched upward", gravity: 1, vy: -40, scale: 0.7},
		{name: "heavy gravity", gravity: 25, vy: 0, scale: 1},
		{name: "upward gravity", gravity: -3, vy: 0, scale: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := &Context{Gravity: tc.gravity}
			b := &component.Body{Rect: common.NewRect(0, 0, 48, 48), VY: tc.vy, MaxV: 10}
			for i := 0; i < 500; i++ {
				Integrate(ctx, b, tc.scale)
				if b.VY < -b.MaxV || b.VY > b.MaxV {
					t.Fatalf("tick %d: vy %v outside [-%v, %v]", i, b.VY, b.MaxV, b.MaxV)
				}
			}
		})
	}
}
