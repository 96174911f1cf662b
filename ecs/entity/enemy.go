package entity

import (
	"fmt"
	"strings"

	"github.com/milk9111/koopa/ecs"
	"github.com/milk9111/koopa/ecs/component"
)

// NewEnemyAt builds an enemy prefab ("goomba", "koopa", "jumping_koopa").
func NewEnemyAt(w *ecs.World, name string, x, y float64) (ecs.Entity, error) {
	e, err := BuildAt(w, name, x, y)
	if err != nil {
		return 0, err
	}
	actor, ok := ecs.Get(w, e, component.ActorComponent.Kind())
	if !ok || !actor.Kind.Capabilities().Enemy {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("enemy: prefab %q is not an enemy", strings.TrimSuffix(name, ".yaml"))
	}
	return e, nil
}
