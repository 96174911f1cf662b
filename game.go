package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/koopa/assets"
	"github.com/milk9111/koopa/ecs/component"
	"github.com/milk9111/koopa/ecs/system"
	"github.com/milk9111/koopa/levels"
	"github.com/milk9111/koopa/prefabs"
	"github.com/milk9111/koopa/sim"
	"golang.org/x/image/font/basicfont"
)

var skyColors = map[string]color.Color{
	"normal":      color.RGBA{R: 0x5c, G: 0x94, B: 0xfc, A: 0xff},
	"underground": color.Black,
	"castle":      color.Black,
	"underwater":  color.RGBA{R: 0x20, G: 0x38, B: 0xec, A: 0xff},
}

type GameOptions struct {
	Level     string
	WorldFile string
	Variant   string
	Watch     bool
	Provider  assets.Provider
	Logger    *log.Logger
}

type Game struct {
	session *sim.Session
	render  *system.RenderSystem
	opts    GameOptions
	logger  *log.Logger
	watcher *prefabs.Watcher
	stamps  prefabs.ModTimes
	face    text.Face

	width, height float64

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI
}

func NewGame(opts GameOptions) (*Game, error) {
	lvl, err := levels.LoadLevelFromFS(opts.Level)
	if err != nil {
		return nil, err
	}
	session, err := sim.NewSession(sim.Options{
		WorldFile: opts.WorldFile,
		Variant:   opts.Variant,
		Logger:    opts.Logger,
		Level:     lvl,
		Input:     system.NewInputSystem(),
	})
	if err != nil {
		return nil, err
	}

	g := &Game{
		session: session,
		opts:    opts,
		logger:  opts.Logger,
		face:    text.NewGoXFace(basicfont.Face7x13),
		width:   session.Spec().Width,
		height:  session.Spec().Height,
	}
	g.render = system.NewRenderSystem(session.Context(), opts.Provider)
	g.pauseUI = NewPauseUI(g)

	if opts.Watch {
		if _, err := os.Stat("prefabs"); err != nil {
			g.logger.Warn("nothing to watch", "dir", "prefabs", "error", err)
		} else if w, err := prefabs.NewWatcher("prefabs"); err != nil {
			g.logger.Warn("prefab watcher disabled", "error", err)
		} else {
			g.watcher = w
			g.stamps = make(prefabs.ModTimes)
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.session.Update()
	if g.session.TakeReload() {
		g.reload(false)
	}
	return nil
}

// reload swaps in a fresh session. A restart from the pause menu starts
// from a clean HUD.
func (g *Game) reload(restart bool) {
	var next *sim.Session
	var err error
	if restart {
		opts := g.session.Options()
		opts.Carry = nil
		next, err = sim.NewSession(opts)
		if err == nil {
			g.session.Close()
		}
	} else {
		next, err = g.session.Reload()
	}
	if err != nil {
		g.logger.Error("reload level", "error", err)
		return
	}
	g.session = next
	g.render = system.NewRenderSystem(next.Context(), g.opts.Provider)
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	changed := false
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if g.stamps.Changed(name) {
				g.logger.Info("prefab changed", "file", name)
				changed = true
			}
			continue
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.logger.Warn("prefab watcher", "error", err)
			}
		default:
		}
		break
	}
	if changed {
		g.reload(false)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	variant := g.opts.Variant
	if variant == "" {
		variant = g.session.Spec().Variant
	}
	if c, ok := skyColors[variant]; ok {
		screen.Fill(c)
	}

	g.render.Draw(g.session.World(), screen)
	g.drawHUD(screen)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	h := g.session.HUD()
	if h == nil {
		return
	}

	columns := []struct {
		title, value string
	}{
		{"SCORE", fmt.Sprintf("%06d", h.Score)},
		{"COINS", fmt.Sprintf("x%02d", h.Coins)},
		{"WORLD", h.World},
		{"TIME", fmt.Sprintf("%03d", h.Time)},
		{"LIVES", fmt.Sprintf("%d", max(0, h.Lives))},
	}
	step := g.width / float64(len(columns))
	for i, col := range columns {
		x := step*float64(i) + step/4
		g.drawText(screen, col.title, x, 12)
		g.drawText(screen, col.value, x, 40)
	}

	if h.GameOver > 0 {
		g.drawText(screen, "GAME OVER", g.width/2-60, g.height/2)
	}
	if g.logger.GetLevel() <= log.DebugLevel {
		g.drawText(screen, fmt.Sprintf("%s  frame %d  fps %.1f", playerLabel(h), g.session.Frame(), ebiten.ActualFPS()), 12, g.height-36)
	}
}

func playerLabel(h *component.HUD) string {
	if h.PlayerState == "" {
		return "small"
	}
	return h.PlayerState
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(2, 2)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, s, g.face, op)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return g.width, g.height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	g.session.Close()
}
