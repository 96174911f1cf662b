package system

import (
	"github.com/milk9111/koopa/common"
	"github.com/milk9111/koopa/ecs"
	"github.com/milk9111/koopa/ecs/component"
)

const (
	DefaultHUDTime      = 400
	DefaultHUDLives     = 3
	DefaultHUDWorld     = "1-1"
	DefaultGameOverTime = 240
	DefaultCountBonus   = 50
)

// NewHUD returns a HUD in its start-of-level state.
func NewHUD() *component.HUD {
	return &component.HUD{
		Time:           DefaultHUDTime,
		World:          DefaultHUDWorld,
		Lives:          DefaultHUDLives,
		StartTime:      DefaultHUDTime,
		StartLives:     DefaultHUDLives,
		GameOverFrames: DefaultGameOverTime,
		CountBonus:     DefaultCountBonus,
	}
}

func StartGameOver(h *component.HUD) {
	h.GameOver = h.GameOverFrames
}

// StartCount switches the HUD into converting remaining time into score. The
// level reloads once the clock is empty.
func StartCount(h *component.HUD) {
	h.Counting = true
}

// ResetHUD restores the timer and, when clearScore is set, score and coins.
func ResetHUD(h *component.HUD, clearScore bool) {
	if clearScore {
		h.Score = 0
		h.Coins = 0
	}
	h.Time = h.StartTime
}

// HUDSystem counts the level timer down once per second, runs the time to
// score conversion at the end of a level and drives the game over countdown.
type HUDSystem struct{}

func NewHUDSystem() *HUDSystem { return &HUDSystem{} }

func (s *HUDSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.HUDComponent.Kind(), func(_ ecs.Entity, h *component.HUD) {
		switch {
		case h.GameOver > 0:
			h.GameOver--
			if h.GameOver == 1 {
				h.LoadLevel = true
				h.Lives = h.StartLives
				requestReload(w)
			} else if h.GameOver == 0 {
				h.LoadLevel = false
			}
		case h.Counting:
			if h.Time > 0 {
				h.Time--
				h.Score += h.CountBonus
			}
			if h.Time == 0 {
				h.Counting = false
				requestReload(w)
			}
		default:
			h.Frame = (h.Frame + 1) % common.FrameCycle
			if h.Frame == common.FPS-1 && h.Time > 0 {
				h.Time--
				if h.Time == 0 {
					StartGameOver(h)
				}
			}
		}
	})
}

func requestReload(w *ecs.World) {
	if _, ok := ecs.First(w, component.ReloadRequestComponent.Kind()); ok {
		return
	}
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.ReloadRequestComponent.Kind(), &component.ReloadRequest{})
}

func gameOverActive(w *ecs.World) bool {
	active := false
	ecs.ForEach(w, component.HUDComponent.Kind(), func(_ ecs.Entity, h *component.HUD) {
		if h.GameOver > 0 {
			active = true
		}
	})
	return active
}
