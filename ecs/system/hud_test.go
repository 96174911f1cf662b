package system

import (
	"testing"

	"github.com/milk9111/koopa/ecs"
	"github.com/milk9111/koopa/ecs/component"
)

func newHUDWorld(t *testing.T) (*ecs.World, *component.HUD) {
	t.Helper()
	w := ecs.NewWorld()
	h := NewHUD()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.HUDComponent.Kind(), h); err != nil {
		t.Fatalf("add hud: %v", err)
	}
	return w, h
}

func reloadRequested(w *ecs.World) bool {
	_, ok := ecs.First(w, component.ReloadRequestComponent.Kind())
	return ok
}

func TestHUDTimerCountsSeconds(t *testing.T) {
	w, h := newHUDWorld(t)
	s := NewHUDSystem()

	for i := 0; i < 59; i++ {
		s.Update(w)
	}
	if h.Time != 399 {
		t.Fatalf("expected one second off after 59 frames, got %d", h.Time)
	}
	for i := 0; i < 60; i++ {
		s.Update(w)
	}
	if h.Time != 398 {
		t.Fatalf("expected two seconds off, got %d", h.Time)
	}
}

func TestHUDTimeOutStartsGameOver(t *testing.T) {
	w, h := newHUDWorld(t)
	s := NewHUDSystem()
	h.Time = 1

	for i := 0; i < 59; i++ {
		s.Update(w)
	}
	if h.Time != 0 || h.GameOver != DefaultGameOverTime {
		t.Fatalf("expected game over at time zero, got time %d game over %d", h.Time, h.GameOver)
	}
}

func TestHUDGameOverReloads(t *testing.T) {
	w, h := newHUDWorld(t)
	s := NewHUDSystem()
	sink := NewHUDSink(w)

	sink.AddLives(-4)
	if h.GameOver != DefaultGameOverTime {
		t.Fatalf("expected game over when lives run out, got %d", h.GameOver)
	}
	if !gameOverActive(w) {
		t.Fatalf("expected game over active")
	}

	for i := 0; i < DefaultGameOverTime-2; i++ {
		s.Update(w)
	}
	if reloadRequested(w) {
		t.Fatalf("expected no reload before the countdown ends")
	}
	s.Update(w)
	if !reloadRequested(w) || !h.LoadLevel || h.Lives != DefaultHUDLives {
		t.Fatalf("expected reload with lives restored, got %+v", h)
	}
	s.Update(w)
	if h.GameOver != 0 || h.LoadLevel {
		t.Fatalf("expected the game over cleared, got %+v", h)
	}
	if n := ecs.Count(w, component.ReloadRequestComponent.Kind()); n != 1 {
		t.Fatalf("expected a single reload request, got %d", n)
	}
}

func TestHUDCountConvertsTime(t *testing.T) {
	w, h := newHUDWorld(t)
	s := NewHUDSystem()
	h.Time = 3
	StartCount(h)

	for i := 0; i < 5; i++ {
		s.Update(w)
	}
	if h.Time != 0 || h.Score != 3*DefaultCountBonus || h.Counting {
		t.Fatalf("expected time converted to score, got %+v", h)
	}
	if n := ecs.Count(w, component.ReloadRequestComponent.Kind()); n != 1 {
		t.Fatalf("expected a reload request after counting, got %d", n)
	}
}

func TestResetHUD(t *testing.T) {
	h := NewHUD()
	h.Score, h.Coins, h.Time = 500, 7, 12

	ResetHUD(h, false)
	if h.Score != 500 || h.Coins != 7 || h.Time != DefaultHUDTime {
		t.Fatalf("expected only the timer reset, got %+v", h)
	}
	ResetHUD(h, true)
	if h.Score != 0 || h.Coins != 0 {
		t.Fatalf("expected score and coins cleared, got %+v", h)
	}
}

func TestHUDSink(t *testing.T) {
	w, h := newHUDWorld(t)
	sink := NewHUDSink(w)

	sink.AddScore(200)
	sink.AddCoins(2)
	sink.AddLives(1)
	sink.SetPlayerState("fire")
	if h.Score != 200 || h.Coins != 2 || h.Lives != 4 || h.PlayerState != "fire" {
		t.Fatalf("unexpected hud %+v", h)
	}
}

func TestRespawnSystem(t *testing.T) {
	w, h := newHUDWorld(t)
	p := ecs.CreateEntity(w)
	player := &component.Player{}
	if err := ecs.Add(w, p, component.PlayerComponent.Kind(), player); err != nil {
		t.Fatalf("add player: %v", err)
	}
	s := NewRespawnSystem()

	s.Update(w)
	if reloadRequested(w) {
		t.Fatalf("expected no reload while alive")
	}

	player.Died = true
	StartGameOver(h)
	s.Update(w)
	if reloadRequested(w) {
		t.Fatalf("expected the game over to own the reload")
	}

	h.GameOver = 0
	s.Update(w)
	s.Update(w)
	if n := ecs.Count(w, component.ReloadRequestComponent.Kind()); n != 1 {
		t.Fatalf("expected one reload request, got %d", n)
	}
}
