package entity

import (
	"fmt"
	"sort"

	"github.com/jinzhu/copier"
	"github.com/milk9111/koopa/common"
	"github.com/milk9111/koopa/ecs"
	"github.com/milk9111/koopa/ecs/component"
	"github.com/milk9111/koopa/prefabs"
)

type entityPrefabSpec = prefabs.EntityBuildSpec

type buildContext struct {
	PrefabPath string
	Kind       component.ActorKind
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"actor":         addActor,
	"player_tag":    addPlayerTag,
	"tile_tag":      addTileTag,
	"input":         addInput,
	"body":          addBody,
	"sides":         addSides,
	"gravity_scale": addGravityScale,
	"player":        addPlayer,
	"koopa":         addKoopa,
	"jumper":        addJumper,
	"goomba":        addGoomba,
	"item":          addItem,
	"coin":          addCoin,
	"block":         addBlock,
	"sprite":        addSprite,
	"animation":     addAnimation,
	"render_layer":  addRenderLayer,
	"groups":        addGroups,
}

// Components that read others must come after them: sides needs the actor
// kind, and the per-kind data may seed the body.
var componentBuildOrder = []string{
	"actor",
	"player_tag",
	"tile_tag",
	"input",
	"body",
	"sides",
	"gravity_scale",
	"player",
	"koopa",
	"jumper",
	"goomba",
	"item",
	"coin",
	"block",
	"sprite",
	"animation",
	"render_layer",
	"groups",
}

// BuildEntity creates an entity from a prefab file. Group membership is
// recorded on the entity; indexing it into the session's groups is up to
// the caller.
func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabs.FileName(prefabPath))
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return BuildFromSpec(w, prefabPath, spec)
}

// BuildFromSpec is BuildEntity for an already decoded prefab.
func BuildFromSpec(w *ecs.World, prefabPath string, spec entityPrefabSpec) (ecs.Entity, error) {
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, names[0])
	}

	return e, nil
}

// SetEntityPosition moves e's body so its top-left corner is at (x, y).
func SetEntityPosition(w *ecs.World, e ecs.Entity, x, y float64) error {
	body, ok := ecs.Get(w, e, component.BodyComponent.Kind())
	if !ok {
		return fmt.Errorf("set position: entity %v has no body", e)
	}
	body.Rect.X = x
	body.Rect.Y = y
	if sides, ok := ecs.Get(w, e, component.SidesComponent.Kind()); ok {
		sides.Top, sides.Bottom, sides.Left, sides.Right = common.Rect{}, common.Rect{}, common.Rect{}, common.Rect{}
	}
	return nil
}

// BuildAt builds prefabPath and places it at (x, y).
func BuildAt(w *ecs.World, prefabPath string, x, y float64) (ecs.Entity, error) {
	e, err := BuildEntity(w, prefabPath)
	if err != nil {
		return 0, err
	}
	if err := SetEntityPosition(w, e, x, y); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("%s: %w", prefabPath, err)
	}
	return e, nil
}

type actorSpec = prefabs.ActorComponentSpec

func addActor(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[actorSpec](raw)
	if err != nil {
		return fmt.Errorf("decode actor spec: %w", err)
	}
	kind, ok := component.ParseActorKind(spec.Kind)
	if !ok {
		return fmt.Errorf("unknown actor kind %q", spec.Kind)
	}
	ctx.Kind = kind
	return ecs.Add(w, e, component.ActorComponent.Kind(), &component.Actor{Kind: kind})
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addTileTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.TileTagComponent.Kind(), &component.TileTag{})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

type bodySpec = prefabs.BodyComponentSpec

func addBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[bodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode body spec: %w", err)
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return fmt.Errorf("body size %vx%v must be positive", spec.Width, spec.Height)
	}
	if spec.MaxV < 0 {
		return fmt.Errorf("body max_v %v must not be negative", spec.MaxV)
	}
	return ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{
		Rect: common.NewRect(0, 0, spec.Width, spec.Height),
		VX:   spec.VX,
		VY:   spec.VY,
		MaxV: spec.MaxV,
	})
}

type sidesSpec = prefabs.SidesComponentSpec

var sideNames = map[string]component.Side{
	"top":    component.SideTop,
	"bottom": component.SideBottom,
	"left":   component.SideLeft,
	"right":  component.SideRight,
}

// addSides takes the probe set from the actor kind unless the prefab lists
// the sides explicitly.
func addSides(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[sidesSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sides spec: %w", err)
	}
	caps := ctx.Kind.Capabilities()
	mask := caps.Sides
	if len(spec.Sides) > 0 {
		mask = component.SidesNone
		for _, name := range spec.Sides {
			side, ok := sideNames[name]
			if !ok {
				return fmt.Errorf("unknown side %q", name)
			}
			mask |= side
		}
		if mask&component.SideTop != 0 && ctx.Kind != component.KindNone && !caps.HasCeilingProbe() {
			return fmt.Errorf("kind %v has no ceiling probe", ctx.Kind)
		}
	}

	body, ok := ecs.Get(w, e, component.BodyComponent.Kind())
	if ok && mask&component.SidesWalls != 0 && body.Rect.Height-2*body.MaxV <= 0 {
		return fmt.Errorf("body height %v leaves no wall probe with max_v %v", body.Rect.Height, body.MaxV)
	}
	return ecs.Add(w, e, component.SidesComponent.Kind(), &component.Sides{Mask: mask})
}

type gravityScaleSpec = prefabs.GravityScaleComponentSpec

func addGravityScale(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[gravityScaleSpec](raw)
	if err != nil {
		return fmt.Errorf("decode gravity scale spec: %w", err)
	}
	return ecs.Add(w, e, component.GravityScaleComponent.Kind(), &component.GravityScale{Scale: spec.Scale})
}

type playerSpec = prefabs.PlayerComponentSpec

func addPlayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[playerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}
	var p component.Player
	if err := copier.Copy(&p, &spec); err != nil {
		return fmt.Errorf("copy player spec: %w", err)
	}
	return ecs.Add(w, e, component.PlayerComponent.Kind(), &p)
}

type koopaSpec = prefabs.KoopaComponentSpec

func addKoopa(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[koopaSpec](raw)
	if err != nil {
		return fmt.Errorf("decode koopa spec: %w", err)
	}
	if spec.SmertTime <= spec.RevivalTime {
		return fmt.Errorf("koopa smert_time %d must follow revival_time %d", spec.SmertTime, spec.RevivalTime)
	}
	var k component.Koopa
	if err := copier.Copy(&k, &spec); err != nil {
		return fmt.Errorf("copy koopa spec: %w", err)
	}
	if body, ok := ecs.Get(w, e, component.BodyComponent.Kind()); ok {
		body.VX = k.WalkSpeed
	}
	return ecs.Add(w, e, component.KoopaComponent.Kind(), &k)
}

type jumperSpec = prefabs.JumperComponentSpec

func addJumper(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[jumperSpec](raw)
	if err != nil {
		return fmt.Errorf("decode jumper spec: %w", err)
	}
	var j component.Jumper
	if err := copier.Copy(&j, &spec); err != nil {
		return fmt.Errorf("copy jumper spec: %w", err)
	}
	// Without its own speed a jumper hops at the body's terminal velocity.
	if j.Speed <= 0 {
		if body, ok := ecs.Get(w, e, component.BodyComponent.Kind()); ok {
			j.Speed = body.MaxV
		}
	}
	return ecs.Add(w, e, component.JumperComponent.Kind(), &j)
}

type goombaSpec = prefabs.GoombaComponentSpec

func addGoomba(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[goombaSpec](raw)
	if err != nil {
		return fmt.Errorf("decode goomba spec: %w", err)
	}
	var g component.Goomba
	if err := copier.Copy(&g, &spec); err != nil {
		return fmt.Errorf("copy goomba spec: %w", err)
	}
	if body, ok := ecs.Get(w, e, component.BodyComponent.Kind()); ok {
		body.VX = g.WalkSpeed
	}
	return ecs.Add(w, e, component.GoombaComponent.Kind(), &g)
}

type itemSpec = prefabs.ItemComponentSpec

func addItem(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[itemSpec](raw)
	if err != nil {
		return fmt.Errorf("decode item spec: %w", err)
	}
	var it component.Item
	if err := copier.Copy(&it, &spec); err != nil {
		return fmt.Errorf("copy item spec: %w", err)
	}
	return ecs.Add(w, e, component.ItemComponent.Kind(), &it)
}

type coinSpec = prefabs.CoinComponentSpec

func addCoin(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[coinSpec](raw)
	if err != nil {
		return fmt.Errorf("decode coin spec: %w", err)
	}
	var c component.Coin
	if err := copier.Copy(&c, &spec); err != nil {
		return fmt.Errorf("copy coin spec: %w", err)
	}
	return ecs.Add(w, e, component.CoinComponent.Kind(), &c)
}

type blockSpec = prefabs.BlockComponentSpec

func addBlock(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[blockSpec](raw)
	if err != nil {
		return fmt.Errorf("decode block spec: %w", err)
	}
	return ecs.Add(w, e, component.BlockComponent.Kind(), &component.Block{
		Contents:  spec.Contents,
		Remaining: spec.Remaining,
	})
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}
	if spec.Category == "" {
		return fmt.Errorf("sprite category is required")
	}
	var s component.Sprite
	if err := copier.Copy(&s, &spec); err != nil {
		return fmt.Errorf("copy sprite spec: %w", err)
	}
	return ecs.Add(w, e, component.SpriteComponent.Kind(), &s)
}

type animationSpec = prefabs.AnimationComponentSpec

func addAnimation(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[animationSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animation spec: %w", err)
	}
	if spec.Count <= 0 || spec.Cadence <= 0 {
		return fmt.Errorf("animation needs a positive count and cadence")
	}
	var a component.Animation
	if err := copier.Copy(&a, &spec); err != nil {
		return fmt.Errorf("copy animation spec: %w", err)
	}
	if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		s.Frame = a.Start
	}
	return ecs.Add(w, e, component.AnimationComponent.Kind(), &a)
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

type groupsSpec = prefabs.GroupsComponentSpec

func addGroups(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[groupsSpec](raw)
	if err != nil {
		return fmt.Errorf("decode groups spec: %w", err)
	}
	var mask component.GroupMask
	for _, name := range spec {
		g, ok := component.ParseGroup(name)
		if !ok {
			return fmt.Errorf("unknown group %q", name)
		}
		mask |= g
	}
	return ecs.Add(w, e, component.MembershipComponent.Kind(), &component.Membership{Groups: mask})
}
