package entity

import (
	"fmt"

	"github.com/milk9111/koopa/ecs"
	"github.com/milk9111/koopa/ecs/component"
	"github.com/milk9111/koopa/prefabs"
)

// NewCamera creates the view singleton sized to the playfield of spec.
func NewCamera(w *ecs.World, spec prefabs.WorldSpec) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		Width:  spec.Width,
		Height: spec.Height,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}
	return camera, nil
}

// NewLevelBounds records the extent of the loaded layout.
func NewLevelBounds(w *ecs.World, width, height float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.LevelBoundsComponent.Kind(), &component.LevelBounds{Width: width, Height: height}); err != nil {
		return 0, fmt.Errorf("level bounds: %w", err)
	}
	return e, nil
}
