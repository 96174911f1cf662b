package system

import (
	"image/color"
	"sort"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/koopa/assets"
	"github.com/milk9111/koopa/ecs"
	"github.com/milk9111/koopa/ecs/component"
	"golang.org/x/image/font/basicfont"
)

// RenderSystem draws sprites stretched over their body rects, offset by the
// camera scroll, then the floating points text.
type RenderSystem struct {
	provider assets.Provider
	face     text.Face
	missing  map[string]bool
	ctx      *Context
}

func NewRenderSystem(ctx *Context, provider assets.Provider) *RenderSystem {
	return &RenderSystem{
		provider: provider,
		face:     text.NewGoXFace(basicfont.Face7x13),
		missing:  make(map[string]bool),
		ctx:      ctx,
	}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	scroll := 0.0
	if camEntity, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
		if cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind()); ok {
			scroll = cam.ScrollX
		}
	}

	var entities []ecs.Entity
	ecs.ForEach2(w, component.BodyComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, _ *component.Body, s *component.Sprite) {
		if !s.Hidden {
			entities = append(entities, e)
		}
	})
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := layerOf(w, entities[i]), layerOf(w, entities[j])
		if li != lj {
			return li < lj
		}
		return entities[i].Less(entities[j])
	})

	for _, e := range entities {
		body, _ := ecs.Get(w, e, component.BodyComponent.Kind())
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())

		frames, err := r.provider.Frames(s.Category, s.Variant)
		if err != nil || len(frames) == 0 {
			r.reportMissing(s.Category, s.Variant, err)
			continue
		}
		img := frames[((s.Frame%len(frames))+len(frames))%len(frames)]
		iw, ih := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
		if iw == 0 || ih == 0 {
			continue
		}

		op := &ebiten.DrawImageOptions{}
		sx, sy := body.Rect.Width/iw, body.Rect.Height/ih
		if s.FlipX {
			op.GeoM.Scale(-sx, sy)
			op.GeoM.Translate(body.Rect.Width, 0)
		} else {
			op.GeoM.Scale(sx, sy)
		}
		op.GeoM.Translate(body.Rect.X-scroll, body.Rect.Y)
		screen.DrawImage(img, op)
	}

	ecs.ForEach(w, component.PointsPopupComponent.Kind(), func(_ ecs.Entity, p *component.PointsPopup) {
		op := &text.DrawOptions{}
		op.GeoM.Scale(2, 2)
		op.GeoM.Translate(p.X-scroll, p.Y)
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, strconv.Itoa(p.Amount), r.face, op)
	})
}

func (r *RenderSystem) reportMissing(category, variant string, err error) {
	key := category + "/" + variant
	if r.missing[key] {
		return
	}
	r.missing[key] = true
	if r.ctx != nil {
		r.ctx.Logger.Warn("no frames", "category", category, "variant", variant, "error", err)
	}
}

func layerOf(w *ecs.World, e ecs.Entity) int {
	if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
		return layer.Index
	}
	return 0
}
