package system

import (
	"github.com/milk9111/koopa/ecs"
	"github.com/milk9111/koopa/ecs/component"
)

// Sink receives score and status changes. It never reads back into the
// simulation.
type Sink interface {
	AddScore(amount int)
	AddCoins(n int)
	AddLives(n int)
	SetPlayerState(name string)
}

type discardSink struct{}

func (discardSink) AddScore(int)          {}
func (discardSink) AddCoins(int)          {}
func (discardSink) AddLives(int)          {}
func (discardSink) SetPlayerState(string) {}

const scoreEventType = "score"

type scoreEvent struct {
	X, Y   float64
	Amount int
	Popup  bool
}

// Award queues a score delta at (x, y). The ScoreSystem forwards it to the
// sink later in the same frame and, when popup is set, spawns floating
// points text there.
func Award(ctx *Context, x, y float64, amount int, popup bool) {
	if ctx == nil || amount == 0 {
		return
	}
	ctx.World.Events().Push(ecs.Event{
		Type: scoreEventType,
		Data: scoreEvent{X: x, Y: y, Amount: amount, Popup: popup},
	})
}

const (
	popupFrames = 30
	popupRise   = 1
)

type ScoreSystem struct {
	ctx *Context
}

func NewScoreSystem(ctx *Context) *ScoreSystem {
	return &ScoreSystem{ctx: ctx}
}

func (s *ScoreSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var keep []ecs.Event
	for _, evt := range w.Events().Drain() {
		se, ok := evt.Data.(scoreEvent)
		if evt.Type != scoreEventType || !ok {
			keep = append(keep, evt)
			continue
		}
		s.ctx.Sink.AddScore(se.Amount)
		if se.Popup {
			spawnPopup(w, se.X, se.Y, se.Amount)
		}
	}
	for _, evt := range keep {
		w.Events().Push(evt)
	}
}

func spawnPopup(w *ecs.World, x, y float64, amount int) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.PointsPopupComponent.Kind(), &component.PointsPopup{X: x, Y: y, Amount: amount, Rise: popupRise})
	_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: popupFrames})
	_ = ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerPopups})
	return e
}

// PopupSystem floats points text upwards.
type PopupSystem struct{}

func NewPopupSystem() *PopupSystem { return &PopupSystem{} }

func (s *PopupSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.PointsPopupComponent.Kind(), func(_ ecs.Entity, p *component.PointsPopup) {
		p.Y -= p.Rise
	})
}

// HUDSink applies sink calls to the HUD singleton in w.
type HUDSink struct {
	w *ecs.World
}

func NewHUDSink(w *ecs.World) *HUDSink {
	return &HUDSink{w: w}
}

func (s *HUDSink) hud() *component.HUD {
	e, ok := ecs.First(s.w, component.HUDComponent.Kind())
	if !ok {
		return nil
	}
	h, _ := ecs.Get(s.w, e, component.HUDComponent.Kind())
	return h
}

func (s *HUDSink) AddScore(amount int) {
	if h := s.hud(); h != nil {
		h.Score += amount
	}
}

func (s *HUDSink) AddCoins(n int) {
	if h := s.hud(); h != nil {
		h.Coins += n
	}
}

func (s *HUDSink) AddLives(n int) {
	if h := s.hud(); h != nil {
		h.Lives += n
		if h.Lives < 0 {
			StartGameOver(h)
		}
	}
}

func (s *HUDSink) SetPlayerState(name string) {
	if h := s.hud(); h != nil {
		h.PlayerState = name
	}
}
